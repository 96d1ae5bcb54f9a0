package validators

import "go.mongodb.org/mongo-driver/bson"

var ArticleValidator = timestamped(
	[]string{"title", "content", "state"},
	bson.M{
		"column_id": optRefID,
		"title":     maxText(255),
		"summary":   maxText(2000),
		"tags": bson.M{
			"bsonType": bson.A{"array", "null"},
			"maxItems": 20,
			"items":    maxText(50),
		},
		"content":         text,
		"views":           counter,
		"praises":         counter,
		"collects":        counter,
		"comments":        counter,
		"state":           flag,
		"top_time":        optDate,
		"author_top_time": optDate,
		"publish_time":    optDate,
		"attachments":     bson.M{"bsonType": bson.A{"array", "null"}},
	},
)

var TopicValidator = timestamped(
	[]string{"uid", "title", "content", "state"},
	bson.M{
		"uid":     refID,
		"title":   maxText(255),
		"summary": maxText(2000),
		"tags": bson.M{
			"bsonType": bson.A{"array", "null"},
			"maxItems": 20,
			"items":    maxText(50),
		},
		"content":      text,
		"views":        counter,
		"praises":      counter,
		"collects":     counter,
		"comments":     counter,
		"state":        flag,
		"top_time":     optDate,
		"publish_time": optDate,
		"attachments":  bson.M{"bsonType": bson.A{"array", "null"}},
	},
)

var CommentValidator = timestamped(
	[]string{"uid", "type", "type_id", "content"},
	bson.M{
		"uid":        refID,
		"type":       maxText(255),
		"type_id":    refID,
		"comment_id": optRefID,
		"reply_uid":  optRefID,
		"content":    text,
		"praises":    counter,
		"ip":         maxText(200),
	},
)

var TagValidator = timestamped(
	[]string{"title", "is_top"},
	bson.M{
		"title":  maxText(255),
		"is_top": flag,
	},
)
