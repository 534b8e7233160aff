package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/alexanderramin/engage/internal/service"
	"github.com/alexanderramin/engage/internal/testutil"
	"github.com/alexanderramin/engage/internal/webpage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cliNow = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	phaseRepo := repository.NewSQLitePhaseRepo(database)
	artifactRepos := repository.NewSQLiteArtifactRepos(database)

	registry := hydration.NewRegistry()
	sources := make([]repository.ArtifactRepo, 0, len(artifactRepos))
	for kind, repo := range artifactRepos {
		registry.Register(kind, repo)
		sources = append(sources, repo)
	}
	hydrator := hydration.NewHydrator(hydration.NewResolver(registry, nil),
		hydration.WithClock(func() time.Time { return cliNow }))

	return &App{
		Packages:    service.NewWorkPackageService(repository.NewSQLiteWorkPackageRepo(database)),
		Phases:      service.NewPhaseService(phaseRepo),
		Items:       service.NewItemService(repository.NewSQLiteItemRepo(database), phaseRepo, repository.NewSQLiteReferenceRepo(database)),
		Artifacts:   service.NewArtifactService(sources...),
		Hydrate:     service.NewHydrationService(repository.NewSQLiteTreeReader(database), hydrator),
		Import:      service.NewImportService(db.NewSQLiteUnitOfWork(database), testutil.TestTenant),
		Titles:      webpage.NewTitleFetcher(nil),
		Tenant:      testutil.TestTenant,
		DefaultView: domain.ViewInternal,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "engage %v: %s", args, out)
	return out
}

// seedBoard creates a package with two phases, two items and a draft and
// a published document, returning the package and the document IDs.
func seedBoard(t *testing.T, app *App) (wpID, publishedID, draftID string) {
	t.Helper()
	ctx := context.Background()

	mustExecute(t, app, "package", "new", "--name", "Launch", "--start", "2025-06-02")
	mustExecute(t, app, "phase", "add", "Launch", "--name", "Research")
	mustExecute(t, app, "phase", "add", "Launch", "--name", "Build")
	mustExecute(t, app, "item", "add", "Launch", "--title", "Personas", "--qty", "2", "--hours", "4", "--phase", "1")
	mustExecute(t, app, "item", "add", "Launch", "--title", "Loose ends", "--hours", "2")

	published := &domain.Artifact{TenantID: app.Tenant, Kind: domain.ArtifactPersona, Title: "Buyer", Published: true}
	draft := &domain.Artifact{TenantID: app.Tenant, Kind: domain.ArtifactPersona, Title: "Champion"}
	require.NoError(t, app.Artifacts.Create(ctx, published))
	require.NoError(t, app.Artifacts.Create(ctx, draft))

	packages, err := app.Packages.List(ctx, app.Tenant)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	return packages[0].ID, published.ID, draft.ID
}

func itemByTitle(t *testing.T, app *App, wpID, title string) *domain.Item {
	t.Helper()
	items, err := app.Items.ListByWorkPackage(context.Background(), wpID)
	require.NoError(t, err)
	for _, it := range items {
		if it.Title == title {
			return it
		}
	}
	t.Fatalf("item %q not found", title)
	return nil
}

func hydrateJSON(t *testing.T, app *App, args ...string) hydration.HydratedWorkPackage {
	t.Helper()
	out := mustExecute(t, app, append([]string{"hydrate", "--json"}, args...)...)
	var h hydration.HydratedWorkPackage
	require.NoError(t, json.Unmarshal([]byte(out), &h), out)
	return h
}

// --- package ---

func TestPackageNew_RequiresNameWhenNotInteractive(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "package", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

func TestPackageNew_InvalidStart(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "package", "new", "--name", "X", "--start", "June 2nd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestPackageListAndShow(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "package", "list")
	assert.Contains(t, out, "No work packages found.")

	seedBoard(t, app)

	out = mustExecute(t, app, "package", "list")
	assert.Contains(t, out, "Launch")
	assert.Contains(t, out, "2025-06-02")

	out = mustExecute(t, app, "package", "show", "launch")
	assert.Contains(t, out, "Research")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "Personas")
	assert.Contains(t, out, "Loose ends")
}

func TestPackageStart_SetAndClear(t *testing.T) {
	app := testApp(t)
	wpID, _, _ := seedBoard(t, app)
	ctx := context.Background()

	out := mustExecute(t, app, "package", "start", "Launch", "2025-07-01")
	assert.Contains(t, out, "2025-07-01")
	wp, err := app.Packages.GetByID(ctx, wpID)
	require.NoError(t, err)
	require.NotNil(t, wp.EffectiveStartDate)
	assert.Equal(t, "2025-07-01", wp.EffectiveStartDate.Format(dateLayout))

	out = mustExecute(t, app, "package", "start", wpID[:8], "none")
	assert.Contains(t, out, "cleared")
	wp, err = app.Packages.GetByID(ctx, wpID)
	require.NoError(t, err)
	assert.Nil(t, wp.EffectiveStartDate)
}

func TestPackageDelete(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	mustExecute(t, app, "package", "delete", "Launch")

	out := mustExecute(t, app, "package", "list")
	assert.Contains(t, out, "No work packages found.")
}

func TestPackage_UnknownReference(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "package", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- phase ---

func TestPhaseAdd_AppendsPositions(t *testing.T) {
	app := testApp(t)
	wpID, _, _ := seedBoard(t, app)

	mustExecute(t, app, "phase", "add", "Launch", "--name", "Ship", "--estimate", "24")

	phases, err := app.Phases.ListByWorkPackage(context.Background(), wpID)
	require.NoError(t, err)
	require.Len(t, phases, 3)
	assert.Equal(t, "Ship", phases[2].Name)
	assert.Equal(t, 3, phases[2].Position)
	require.NotNil(t, phases[2].EstimatedHours)
	assert.Equal(t, 24.0, *phases[2].EstimatedHours)
	assert.Nil(t, phases[0].EstimatedHours)

	out := mustExecute(t, app, "phase", "list", "Launch")
	assert.Contains(t, out, "Ship")
	assert.Contains(t, out, "24h")
}

func TestPhaseRemove_OrphansItems(t *testing.T) {
	app := testApp(t)
	wpID, _, _ := seedBoard(t, app)

	mustExecute(t, app, "phase", "rm", "Launch", "1")

	it := itemByTitle(t, app, wpID, "Personas")
	assert.Nil(t, it.PhaseID)

	h := hydrateJSON(t, app, "Launch")
	require.Len(t, h.Phases, 1)
	assert.Len(t, h.OrphanItems, 2)
}

// --- item ---

func TestItemAdd_RejectsUnknownPhase(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "item", "add", "Launch", "--title", "X", "--phase", "zz")
	require.Error(t, err)
}

func TestItemStatusAndAssign(t *testing.T) {
	app := testApp(t)
	wpID, _, _ := seedBoard(t, app)
	loose := itemByTitle(t, app, wpID, "Loose ends")

	mustExecute(t, app, "item", "status", "Launch", loose.ID[:8], "completed")
	mustExecute(t, app, "item", "assign", "Launch", loose.ID, "2")

	it := itemByTitle(t, app, wpID, "Loose ends")
	assert.Equal(t, domain.ItemCompleted, it.Status)
	require.NotNil(t, it.PhaseID)

	out := mustExecute(t, app, "item", "assign", "Launch", loose.ID, "none")
	assert.Contains(t, out, "unassigned")
	assert.Nil(t, itemByTitle(t, app, wpID, "Loose ends").PhaseID)

	_, err := executeCmd(t, app, "item", "status", "Launch", loose.ID, "done")
	require.Error(t, err)
}

func TestItemList(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	out := mustExecute(t, app, "item", "list", "Launch")
	assert.Contains(t, out, "Personas")
	assert.Contains(t, out, "Research")
	assert.Contains(t, out, "Loose ends")
}

func TestItemRemove(t *testing.T) {
	app := testApp(t)
	wpID, _, _ := seedBoard(t, app)
	loose := itemByTitle(t, app, wpID, "Loose ends")

	mustExecute(t, app, "item", "rm", "Launch", loose.ID)

	items, err := app.Items.ListByWorkPackage(context.Background(), wpID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// --- link, unlink and hydrate ---

func TestLink_DrivesItemProgress(t *testing.T) {
	app := testApp(t)
	wpID, publishedID, draftID := seedBoard(t, app)
	personas := itemByTitle(t, app, wpID, "Personas")

	mustExecute(t, app, "item", "link", "Launch", personas.ID, "persona", publishedID[:8])
	mustExecute(t, app, "item", "link", "Launch", personas.ID, "persona", draftID)

	internal := hydrateJSON(t, app, "Launch")
	require.Len(t, internal.Phases, 2)
	research := internal.Phases[0]
	require.Len(t, research.Items, 1)
	assert.Equal(t, domain.Progress{Completed: 2, Total: 2, Percentage: 100}, research.Items[0].Progress)
	assert.Equal(t, domain.Progress{Completed: 1, Total: 1, Percentage: 100}, research.Progress)
	assert.Equal(t, domain.PhaseCompleted, research.Status)
	assert.Equal(t, domain.TimelineComplete, research.TimelineStatus)
	assert.Equal(t, domain.Progress{Completed: 1, Total: 2, Percentage: 50}, internal.Progress)

	client := hydrateJSON(t, app, "Launch", "--client")
	assert.Equal(t, domain.ViewClient, client.ViewMode)
	item := client.Phases[0].Items[0]
	assert.Equal(t, domain.Progress{Completed: 1, Total: 2, Percentage: 50}, item.Progress)
	require.Len(t, item.Artifacts, 1)
	assert.Equal(t, "Buyer", item.Artifacts[0].Title)
	assert.Equal(t, 1, client.Resolution.Hidden)

	mustExecute(t, app, "item", "unlink", "Launch", personas.ID, "persona", draftID)
	internal = hydrateJSON(t, app, "Launch")
	assert.Equal(t, 50, internal.Phases[0].Items[0].Progress.Percentage)
}

func TestLink_UnknownKind(t *testing.T) {
	app := testApp(t)
	wpID, publishedID, _ := seedBoard(t, app)
	personas := itemByTitle(t, app, wpID, "Personas")

	_, err := executeCmd(t, app, "item", "link", "Launch", personas.ID, "video", publishedID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown artifact kind")
}

func TestHydrate_ScheduleFromStartDate(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	h := hydrateJSON(t, app, "Launch")
	require.NotNil(t, h.EffectiveStartDate)
	assert.Equal(t, "2025-06-02", *h.EffectiveStartDate)

	research := h.Phases[0]
	assert.Equal(t, 8.0, research.TotalEffortHours)
	require.NotNil(t, research.EffectiveDate)
	require.NotNil(t, research.ExpectedEndDate)
	assert.Equal(t, "2025-06-02", *research.EffectiveDate)
	assert.Equal(t, "2025-06-03", *research.ExpectedEndDate)

	// An empty phase starts where its predecessor ends.
	build := h.Phases[1]
	require.NotNil(t, build.EffectiveDate)
	assert.Equal(t, "2025-06-03", *build.EffectiveDate)
}

func TestHydrate_NowFlag(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	h := hydrateJSON(t, app, "Launch", "--now", "2025-09-01")
	assert.Equal(t, domain.TimelineOverdue, h.Phases[0].TimelineStatus)

	h = hydrateJSON(t, app, "Launch", "--now", "2025-05-01")
	assert.Equal(t, domain.TimelineOnTrack, h.Phases[0].TimelineStatus)
}

func TestHydrate_TextOutput(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	out := mustExecute(t, app, "hydrate", "Launch")
	assert.Contains(t, out, "LAUNCH")
	assert.Contains(t, out, "1. RESEARCH")
	assert.Contains(t, out, "UNASSIGNED")
	assert.Contains(t, out, "Loose ends")
}

func TestHydrate_InvalidView(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "hydrate", "Launch", "--view", "public")
	require.Error(t, err)
}

// --- artifacts ---

func TestArtifactAddListPublish(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "artifact", "list")
	assert.Contains(t, out, "No artifacts found.")

	mustExecute(t, app, "artifact", "add", "landing-page", "--title", "Pricing")
	out = mustExecute(t, app, "artifact", "list", "landing_page")
	assert.Contains(t, out, "Pricing")
	assert.Contains(t, out, "draft")

	arts, err := app.Artifacts.List(context.Background(), domain.ArtifactLandingPage, app.Tenant)
	require.NoError(t, err)
	require.Len(t, arts, 1)

	mustExecute(t, app, "artifact", "publish", "landing_page", arts[0].ID[:6])
	a, err := app.Artifacts.GetByID(context.Background(), domain.ArtifactLandingPage, arts[0].ID)
	require.NoError(t, err)
	assert.True(t, a.Published)

	mustExecute(t, app, "artifact", "unpublish", "landing_page", arts[0].ID)
	a, err = app.Artifacts.GetByID(context.Background(), domain.ArtifactLandingPage, arts[0].ID)
	require.NoError(t, err)
	assert.False(t, a.Published)
}

func TestArtifactAdd_TitleFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Q3 Webinar</title></head><body><article>
<p>Join the product team for a walkthrough of the quarter's releases and the roadmap ahead.</p>
</article></body></html>`))
	}))
	defer srv.Close()

	app := testApp(t)
	mustExecute(t, app, "artifact", "add", "landing_page", "--url", srv.URL, "--published")

	arts, err := app.Artifacts.List(context.Background(), domain.ArtifactLandingPage, app.Tenant)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "Q3 Webinar", arts[0].Title)
	assert.True(t, arts[0].Published)
}

func TestArtifactAdd_RequiresTitleOrURL(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "artifact", "add", "deck")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--title or --url")
}

// --- import ---

const planYAML = `work_package:
  name: Imported
  start_date: "2025-06-02"
phases:
  - ref: discover
    name: Discover
  - ref: deliver
    name: Deliver
    estimated_hours: 16
items:
  - title: Interviews
    phase_ref: discover
    quantity: 3
    estimated_hours_each: 2
  - title: Backlog
    estimated_hours_each: 1
`

func TestImport(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o644))

	out := mustExecute(t, app, "import", path)
	assert.Contains(t, out, "2 phases, 2 items, 0 references")

	h := hydrateJSON(t, app, "Imported")
	require.Len(t, h.Phases, 2)
	assert.Equal(t, 6.0, h.Phases[0].TotalEffortHours)
	assert.Equal(t, 16.0, h.Phases[1].TotalEffortHours)
	assert.Len(t, h.OrphanItems, 1)
}

func TestImport_MissingFile(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// --- board ---

func TestBoard_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "board", "Launch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive")
}
