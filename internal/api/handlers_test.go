package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHydrator struct {
	last app.HydrateRequest
	out  *hydration.HydratedWorkPackage
	err  error
}

func (f *fakeHydrator) Hydrate(_ context.Context, req app.HydrateRequest) (*hydration.HydratedWorkPackage, error) {
	f.last = req
	return f.out, f.err
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result), rr.Body.String())
	return result
}

func TestHealthz(t *testing.T) {
	rr := doRequest(t, New(&fakeHydrator{}, "", nil).Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeJSON(t, rr)["status"])
}

func TestHydrated_OK(t *testing.T) {
	start := "2025-01-06"
	fake := &fakeHydrator{out: &hydration.HydratedWorkPackage{
		ID:                 "wp-1",
		Name:               "Launch",
		EffectiveStartDate: &start,
		ViewMode:           domain.ViewClient,
		Phases:             []hydration.HydratedPhase{},
		OrphanItems:        []hydration.HydratedItem{},
		Progress:           domain.NewProgress(1, 4),
	}}

	rr := doRequest(t, New(fake, "", nil).Handler(), "/api/work-packages/wp-1/hydrated?view=client")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "wp-1", fake.last.WorkPackageID)
	assert.Equal(t, "client", fake.last.ViewMode)

	body := decodeJSON(t, rr)
	assert.Equal(t, "Launch", body["name"])
	assert.Equal(t, "2025-01-06", body["effective_start_date"])
	progress := body["progress"].(map[string]any)
	assert.EqualValues(t, 25, progress["percentage"])
}

func TestHydrated_DefaultView(t *testing.T) {
	fake := &fakeHydrator{out: &hydration.HydratedWorkPackage{}}
	rr := doRequest(t, New(fake, domain.ViewClient, nil).Handler(), "/api/work-packages/wp-1/hydrated")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "client", fake.last.ViewMode)
}

func TestHydrated_NotFound(t *testing.T) {
	fake := &fakeHydrator{err: &app.HydrateError{Code: app.HydrateErrNotFound, Message: "gone"}}
	rr := doRequest(t, New(fake, "", nil).Handler(), "/api/work-packages/missing/hydrated")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "WORK_PACKAGE_NOT_FOUND", decodeJSON(t, rr)["code"])
}

func TestHydrated_BadView(t *testing.T) {
	fake := &fakeHydrator{err: &app.HydrateError{Code: app.HydrateErrInvalidViewMode, Message: "bad"}}
	rr := doRequest(t, New(fake, "", nil).Handler(), "/api/work-packages/wp-1/hydrated?view=public")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_VIEW_MODE", decodeJSON(t, rr)["code"])
}

func TestHydrated_InternalError(t *testing.T) {
	fake := &fakeHydrator{err: errors.New("disk on fire")}
	rr := doRequest(t, New(fake, "", nil).Handler(), "/api/work-packages/wp-1/hydrated")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "disk on fire")
}

func TestUnknownRoute(t *testing.T) {
	rr := doRequest(t, New(&fakeHydrator{}, "", nil).Handler(), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
