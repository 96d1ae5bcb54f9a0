package mongo

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID         = "_id"
	FieldCreateTime = "create_time"
	FieldUpdateTime = "update_time"
	FieldDeleteTime = "delete_time"
)

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return oid, nil
}

// NotDeleted restricts filter to rows without a delete_time. A null and a
// missing field both count as live.
func NotDeleted(filter bson.M) bson.M {
	filter[FieldDeleteTime] = nil
	return filter
}

// ContainsFold matches rows where any of fields contains term, case
// insensitive. term is matched literally.
func ContainsFold(term string, fields ...string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: pattern})
	}
	return bson.M{"$or": or}
}

// WithSearch adds a ContainsFold clause to filter when term is not empty.
func WithSearch(filter bson.M, term string, fields ...string) bson.M {
	if term == "" || len(fields) == 0 {
		return filter
	}
	filter["$or"] = ContainsFold(term, fields...)["$or"]
	return filter
}
