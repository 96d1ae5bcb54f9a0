package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = timestamped(
	[]string{"email", "password", "nickname", "state"},
	bson.M{
		"email":             text,
		"password":          text,
		"nickname":          maxText(255),
		"mobile":            maxText(100),
		"avatar":            maxText(255),
		"gender":            bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0, "maximum": 3},
		"org_type":          flag,
		"org_title":         maxText(255),
		"summary":           maxText(255),
		"manager_role_id":   counter,
		"state":             tristate,
		"points":            counter,
		"praises":           counter,
		"follows":           counter,
		"fans":              counter,
		"topics":            counter,
		"articles":          counter,
		"curr_duration":     counter,
		"max_duration":      counter,
		"last_sign_in_date": optDate,
	},
)

var NoticeValidator = timestamped(
	[]string{"uid", "send_uid", "is_new"},
	bson.M{
		"uid":      refID,
		"category": maxText(20),
		"content":  text,
		"send_uid": refID,
		"is_new":   flag,
	},
)

var ColumnRequestValidator = timestamped(
	[]string{"uid", "title", "state"},
	bson.M{
		"uid":       refID,
		"title":     maxText(255),
		"thumbnail": maxText(255),
		"summary":   maxText(4000),
		"state":     tristate,
	},
)

var ReportValidator = timestamped(
	[]string{"uid", "type", "type_id", "state"},
	bson.M{
		"uid":      refID,
		"type":     maxText(255),
		"type_id":  refID,
		"category": counter,
		"summary":  text,
		"state":    tristate,
	},
)

var BadgeValidator = schema(
	[]string{"name"},
	bson.M{"name": maxText(255)},
)

var SettingValidator = schema(
	[]string{"title", "title_en", "keywords", "keywords_en", "description", "description_en", "logo", "logo2", "favicon"},
	bson.M{
		"title":          maxText(255),
		"title_en":       maxText(255),
		"keywords":       maxText(255),
		"keywords_en":    maxText(255),
		"description":    maxText(255),
		"description_en": maxText(255),
		"logo":           maxText(255),
		"logo2":          maxText(255),
		"favicon":        maxText(255),
		"i18n":           text,
	},
)
