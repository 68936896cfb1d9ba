package events

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewDocumentFullBody(t *testing.T) {
	body := map[string]any{
		"uid":          "user-7",
		"name":         "Go Meetup",
		"tagline":      "monthly",
		"schedule":     "2026-09-01T18:00:00Z",
		"description":  "talks and pizza",
		"files":        []any{"poster.png"},
		"moderator":    "sam",
		"category":     "tech",
		"sub_category": "programming",
		"rigor_rank":   3,
	}

	doc := NewDocument(body)

	require.Equal(t, "event", doc["type"])
	require.Equal(t, []any{}, doc["attendees"])
	require.Equal(t, "user-7", doc["uid"])
	require.Equal(t, "Go Meetup", doc["name"])
	require.Equal(t, []any{"poster.png"}, doc["files"])
	require.Equal(t, 3, doc["rigor_rank"])
	require.Equal(t, bson.M{"tagged": false, "title": ""}, doc["nudge"])
}

func TestNewDocumentOmitsAbsentFields(t *testing.T) {
	doc := NewDocument(map[string]any{"name": "Sparse"})

	require.Equal(t, "Sparse", doc["name"])
	_, hasUID := doc["uid"]
	require.False(t, hasUID)
	_, hasSchedule := doc["schedule"]
	require.False(t, hasSchedule)
}

func TestNewDocumentNudgeTagging(t *testing.T) {
	doc := NewDocument(map[string]any{
		"tagged":     true,
		"nudgeTitle": "Don't miss it",
	})
	require.Equal(t, bson.M{"tagged": true, "title": "Don't miss it"}, doc["nudge"])

	// Explicit null falls back to the defaults on create.
	doc = NewDocument(map[string]any{"tagged": nil, "nudgeTitle": nil})
	require.Equal(t, bson.M{"tagged": false, "title": ""}, doc["nudge"])
}

func TestMergeUpdateOnlyTouchesProvidedFields(t *testing.T) {
	existing := bson.M{
		"_id":       "ignored",
		"type":      "event",
		"uid":       "owner",
		"name":      "Old name",
		"tagline":   "old tagline",
		"schedule":  "2026-01-01",
		"attendees": []any{"a", "b"},
		"nudge":     bson.M{"tagged": true, "title": "keep me"},
	}

	merged := MergeUpdate(existing, map[string]any{"name": "New name"})

	require.Equal(t, "New name", merged["name"])
	require.Equal(t, "old tagline", merged["tagline"])
	require.Equal(t, "2026-01-01", merged["schedule"])
	require.Equal(t, bson.M{"tagged": true, "title": "keep me"}, merged["nudge"])
	// Immutable fields stay out of the update entirely.
	for _, field := range []string{"_id", "type", "uid", "attendees"} {
		_, ok := merged[field]
		require.Falsef(t, ok, "field %q must not appear in the update", field)
	}
}

func TestMergeUpdateFalsyValuesCountAsProvided(t *testing.T) {
	existing := bson.M{
		"name":       "Something",
		"rigor_rank": 5,
		"nudge":      bson.M{"tagged": true, "title": "old"},
	}

	merged := MergeUpdate(existing, map[string]any{
		"name":       "",
		"rigor_rank": 0,
		"tagged":     false,
		"nudgeTitle": "",
	})

	require.Equal(t, "", merged["name"])
	require.Equal(t, 0, merged["rigor_rank"])
	require.Equal(t, bson.M{"tagged": false, "title": ""}, merged["nudge"])
}

func TestMergeUpdateExplicitNullCountsAsProvided(t *testing.T) {
	existing := bson.M{"schedule": "2026-01-01"}

	merged := MergeUpdate(existing, map[string]any{"schedule": nil})

	value, ok := merged["schedule"]
	require.True(t, ok)
	require.Nil(t, value)
}

func TestMergeUpdatePartialNudge(t *testing.T) {
	existing := bson.M{"nudge": bson.M{"tagged": true, "title": "existing title"}}

	merged := MergeUpdate(existing, map[string]any{"nudgeTitle": "new title"})
	require.Equal(t, bson.M{"tagged": true, "title": "new title"}, merged["nudge"])

	merged = MergeUpdate(existing, map[string]any{"tagged": false})
	require.Equal(t, bson.M{"tagged": false, "title": "existing title"}, merged["nudge"])
}

func TestMergeUpdateImmutableFieldsIgnored(t *testing.T) {
	existing := bson.M{"type": "event", "uid": "owner", "attendees": []any{}}

	merged := MergeUpdate(existing, map[string]any{
		"type":      "something-else",
		"uid":       "attacker",
		"attendees": []any{"x"},
	})

	for _, field := range []string{"type", "uid", "attendees"} {
		_, ok := merged[field]
		require.Falsef(t, ok, "field %q must not appear in the update", field)
	}
}

func TestMergeUpdateRepairsMissingNudge(t *testing.T) {
	merged := MergeUpdate(bson.M{"name": "legacy doc"}, map[string]any{})
	require.Equal(t, bson.M{"tagged": false, "title": ""}, merged["nudge"])
}
