package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
)

// Setting holds the site-wide configuration edited from the admin panel.
// Footer and SMTP are free-form documents.
type Setting struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	TitleEn       string             `bson:"title_en"`
	Keywords      string             `bson:"keywords"`
	KeywordsEn    string             `bson:"keywords_en"`
	Description   string             `bson:"description"`
	DescriptionEn string             `bson:"description_en"`
	Logo          string             `bson:"logo"`
	Logo2         string             `bson:"logo2"`
	Favicon       string             `bson:"favicon"`
	Footer        any                `bson:"footer"`
	SMTP          any                `bson:"smtp"`
	I18n          string             `bson:"i18n"`
}

type SettingDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	Keywords      string `json:"keywords"`
	KeywordsEn    string `json:"keywordsEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Logo          string `json:"logo"`
	Logo2         string `json:"logo2"`
	Favicon       string `json:"favicon"`
	Footer        any    `json:"footer"`
	SMTP          any    `json:"smtp"`
	I18n          string `json:"i18n"`
}

type CreateSetting struct {
	Title         string `json:"title" validate:"required,max=255"`
	TitleEn       string `json:"titleEn" validate:"required,max=255"`
	Keywords      string `json:"keywords" validate:"required,max=255"`
	KeywordsEn    string `json:"keywordsEn" validate:"required,max=255"`
	Description   string `json:"description" validate:"required,max=255"`
	DescriptionEn string `json:"descriptionEn" validate:"required,max=255"`
	Logo          string `json:"logo" validate:"required,max=255"`
	Logo2         string `json:"logo2" validate:"required,max=255"`
	Favicon       string `json:"favicon" validate:"required,max=255"`
	Footer        any    `json:"footer"`
	SMTP          any    `json:"smtp"`
	I18n          string `json:"i18n"`
}

type UpdateSetting struct {
	Title         *string `json:"title" validate:"omitnil,min=1,max=255"`
	TitleEn       *string `json:"titleEn" validate:"omitnil,min=1,max=255"`
	Keywords      *string `json:"keywords" validate:"omitnil,min=1,max=255"`
	KeywordsEn    *string `json:"keywordsEn" validate:"omitnil,min=1,max=255"`
	Description   *string `json:"description" validate:"omitnil,min=1,max=255"`
	DescriptionEn *string `json:"descriptionEn" validate:"omitnil,min=1,max=255"`
	Logo          *string `json:"logo" validate:"omitnil,min=1,max=255"`
	Logo2         *string `json:"logo2" validate:"omitnil,min=1,max=255"`
	Favicon       *string `json:"favicon" validate:"omitnil,min=1,max=255"`
	Footer        any     `json:"footer"`
	SMTP          any     `json:"smtp"`
	I18n          *string `json:"i18n"`
}

type SettingFilter struct {
	httputil.ListQuery
}
