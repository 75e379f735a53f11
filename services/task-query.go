package services

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/models"
)

const SuggestionLimit = 10

// TaskFilter holds the raw task listing filters. Empty fields are ignored.
type TaskFilter struct {
	Project        string
	Status         string
	AssignedMember string
	Search         string
	StartDate      string
	EndDate        string
}

// BuildTaskFilter turns f into a conjunction of store clauses.
// A deadline range is only applied when both bounds are given.
func BuildTaskFilter(f TaskFilter) (bson.M, error) {
	filter := bson.M{}

	if f.Project != "" {
		id, err := ParseID(f.Project, "project")
		if err != nil {
			return nil, err
		}
		filter["project"] = id
	}

	if f.Status != "" {
		filter["status"] = f.Status
	}

	if f.AssignedMember != "" {
		id, err := ParseID(f.AssignedMember, "assignedMember")
		if err != nil {
			return nil, err
		}
		filter["assignedMembers"] = id
	}

	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	if f.StartDate != "" && f.EndDate != "" {
		start, err := ParseDate(f.StartDate)
		if err != nil {
			return nil, validationError("Invalid startDate")
		}
		end, err := ParseDate(f.EndDate)
		if err != nil {
			return nil, validationError("Invalid endDate")
		}
		filter["deadline"] = bson.M{"$gte": start, "$lte": end}
	}

	return filter, nil
}

// TitlePrefixFilter matches titles starting with prefix, case-insensitive.
func TitlePrefixFilter(prefix string) bson.M {
	return bson.M{"title": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}}
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC).
func ParseDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// ParseID parses a hex object id, reporting field in the validation message.
func ParseID(raw, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, validationError("Invalid " + field + " id")
	}
	return id, nil
}

// ParseIDs parses every id in raw, failing on the first malformed one.
func ParseIDs(raw []string, field string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := ParseID(r, field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func validStatus(s models.TaskStatus) error {
	if !s.Valid() {
		return validationError("Invalid status")
	}
	return nil
}
