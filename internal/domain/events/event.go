package events

import "go.mongodb.org/mongo-driver/bson"

// Collection is the events collection name.
const Collection = "events"

// createFields are the caller-supplied top-level fields stored on create.
// Absent keys stay absent in the store; values are not validated.
var createFields = []string{
	"uid",
	"name",
	"tagline",
	"schedule",
	"description",
	"files",
	"moderator",
	"category",
	"sub_category",
	"rigor_rank",
}

// mutableFields are the top-level fields an update may replace. type, uid,
// and attendees are deliberately absent: they keep their stored values.
var mutableFields = []string{
	"name",
	"files",
	"tagline",
	"schedule",
	"description",
	"moderator",
	"category",
	"sub_category",
	"rigor_rank",
}

// NewDocument builds the stored shape of a new event from a decoded request
// body. type is fixed, attendees starts empty, and the embedded nudge object
// defaults to {tagged:false, title:""} unless tagging fields are supplied.
func NewDocument(body map[string]any) bson.M {
	doc := bson.M{
		"type":      "event",
		"attendees": []any{},
	}
	for _, field := range createFields {
		if value, ok := body[field]; ok {
			doc[field] = value
		}
	}

	nudge := bson.M{"tagged": false, "title": ""}
	if value, ok := body["tagged"]; ok && value != nil {
		nudge["tagged"] = value
	}
	if value, ok := body["nudgeTitle"]; ok && value != nil {
		nudge["title"] = value
	}
	doc["nudge"] = nudge
	return doc
}

// MergeUpdate builds the update document for a PUT. Only whitelisted mutable
// fields appear in it, each resolved independently: the request value when the
// key is present in the body (explicit false, 0, empty string, and null all
// count as provided), the stored value otherwise. Fields outside the whitelist
// never enter the update, so stale data cannot be resurrected by the write.
func MergeUpdate(existing bson.M, body map[string]any) bson.M {
	update := bson.M{}
	for _, field := range mutableFields {
		if value, ok := body[field]; ok {
			update[field] = value
		} else if value, ok := existing[field]; ok {
			update[field] = value
		}
	}

	update["nudge"] = mergeNudge(existing, body)
	return update
}

// mergeNudge resolves the two embedded nudge fields independently so a
// partial update never drops the untouched one. The result always carries
// both fields even if the stored document predates the invariant.
func mergeNudge(existing bson.M, body map[string]any) bson.M {
	nudge := bson.M{"tagged": false, "title": ""}
	if stored, ok := existing["nudge"].(bson.M); ok {
		if value, ok := stored["tagged"]; ok {
			nudge["tagged"] = value
		}
		if value, ok := stored["title"]; ok {
			nudge["title"] = value
		}
	}
	if value, ok := body["tagged"]; ok {
		nudge["tagged"] = value
	}
	if value, ok := body["nudgeTitle"]; ok {
		nudge["title"] = value
	}
	return nudge
}
