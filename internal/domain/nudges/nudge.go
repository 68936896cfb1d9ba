package nudges

import "go.mongodb.org/mongo-driver/bson"

// Collection is the nudges collection name.
const Collection = "nudges"

// flatFields are the caller-supplied fields stored as-is on the document.
var flatFields = []string{
	"tag",
	"title",
	"coverImage",
	"description",
	"icon",
	"invitationText",
}

// NewDocument builds the stored shape of a nudge from a decoded request body.
// The flat date/startTime/endTime fields fold into the nested
// schedule.date / schedule.time.start / schedule.time.end structure.
func NewDocument(body map[string]any) bson.M {
	doc := bson.M{}
	for _, field := range flatFields {
		if value, ok := body[field]; ok {
			doc[field] = value
		}
	}

	timeWindow := bson.M{}
	if value, ok := body["startTime"]; ok {
		timeWindow["start"] = value
	}
	if value, ok := body["endTime"]; ok {
		timeWindow["end"] = value
	}
	schedule := bson.M{"time": timeWindow}
	if value, ok := body["date"]; ok {
		schedule["date"] = value
	}
	doc["schedule"] = schedule
	return doc
}
