package validators

import (
	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/normalize"
)

var (
	objectID = bson.M{"bsonType": "objectId"}
	text     = bson.M{"bsonType": "string"}
	flag     = bson.M{"bsonType": "bool"}
	date     = bson.M{"bsonType": "date"}
	optDate  = bson.M{"bsonType": bson.A{"date", "null"}}
	counter  = bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0}

	// tristate constrains a stored normalize.Rule code.
	tristate = bson.M{
		"bsonType": bson.A{"int", "long"},
		"enum":     bson.A{normalize.CodeNeutral, normalize.CodeNegative, normalize.CodePositive},
	}

	// refID is an ObjectID hex string referencing another row.
	refID    = bson.M{"bsonType": "string", "pattern": "^[0-9a-fA-F]{24}$"}
	optRefID = bson.M{"bsonType": "string", "pattern": "^([0-9a-fA-F]{24})?$"}
)

func maxText(n int) bson.M {
	return bson.M{"bsonType": "string", "maxLength": n}
}

// timestamped adds the create/update/delete time properties shared by every
// soft-deletable collection.
func timestamped(required []string, properties bson.M) bson.M {
	properties["create_time"] = date
	properties["update_time"] = date
	properties["delete_time"] = optDate
	return schema(append(required, "create_time", "update_time"), properties)
}

func schema(required []string, properties bson.M) bson.M {
	properties["_id"] = objectID
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":             "object",
			"required":             required,
			"additionalProperties": true,
			"properties":           properties,
		},
	}
}
