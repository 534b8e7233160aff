package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestItemEffort(t *testing.T) {
	cases := []struct {
		name     string
		qty      int
		hours    float64
		expected float64
	}{
		{"simple", 4, 2, 8},
		{"zero quantity", 0, 5, 0},
		{"fractional hours", 3, 1.5, 4.5},
		{"negative taken at face value", -2, 8, -16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := &Item{Quantity: tc.qty, EstimatedHoursEach: tc.hours}
			assert.InDelta(t, tc.expected, it.Effort(), 1e-9)
		})
	}
}

func TestItemSetStatus(t *testing.T) {
	it := &Item{Status: ItemTodo}
	require.NoError(t, it.SetStatus(ItemInProgress, testNow))
	assert.Equal(t, ItemInProgress, it.Status)
	assert.Equal(t, testNow, it.UpdatedAt)

	require.NoError(t, it.SetStatus(ItemCompleted, testNow))
	require.NoError(t, it.SetStatus(ItemTodo, testNow), "completed items can be reopened")
	assert.Equal(t, ItemTodo, it.Status)
}

func TestItemSetStatus_Invalid(t *testing.T) {
	it := &Item{Status: ItemTodo}
	err := it.SetStatus("done", testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "done")
	assert.Equal(t, ItemTodo, it.Status, "status should not change")
}

func TestItemInPhase(t *testing.T) {
	pid := "p1"
	assert.True(t, (&Item{PhaseID: &pid}).InPhase("p1"))
	assert.False(t, (&Item{PhaseID: &pid}).InPhase("p2"))
	assert.False(t, (&Item{}).InPhase("p1"))
}

func TestArtifactVisibleIn(t *testing.T) {
	published := &Artifact{Published: true}
	draft := &Artifact{Published: false}

	assert.True(t, published.VisibleIn(ViewInternal))
	assert.True(t, published.VisibleIn(ViewClient))
	assert.True(t, draft.VisibleIn(ViewInternal))
	assert.False(t, draft.VisibleIn(ViewClient))

	var missing *Artifact
	assert.False(t, missing.VisibleIn(ViewInternal))
}

func TestParseViewMode(t *testing.T) {
	m, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewInternal, m)

	m, err = ParseViewMode("client")
	require.NoError(t, err)
	assert.Equal(t, ViewClient, m)

	_, err = ParseViewMode("public")
	assert.Error(t, err)
}

func TestArtifactKindIsKnown(t *testing.T) {
	for _, k := range ArtifactKinds {
		assert.True(t, k.IsKnown(), "kind=%s", k)
	}
	assert.False(t, ArtifactKind("video").IsKnown())
}
