package service

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
)

func sanitizeCreate(in *model.CreateSetting) {
	for _, s := range []*string{
		&in.Title, &in.TitleEn, &in.Keywords, &in.KeywordsEn, &in.Description,
		&in.DescriptionEn, &in.Logo, &in.Logo2, &in.Favicon, &in.I18n,
	} {
		*s = strings.TrimSpace(*s)
	}
}

func sanitizeUpdate(in *model.UpdateSetting) {
	for _, s := range []*string{
		in.Title, in.TitleEn, in.Keywords, in.KeywordsEn, in.Description,
		in.DescriptionEn, in.Logo, in.Logo2, in.Favicon, in.I18n,
	} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func newSetting(in *model.CreateSetting) *model.Setting {
	return &model.Setting{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Keywords:      in.Keywords,
		KeywordsEn:    in.KeywordsEn,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Logo:          in.Logo,
		Logo2:         in.Logo2,
		Favicon:       in.Favicon,
		Footer:        in.Footer,
		SMTP:          in.SMTP,
		I18n:          in.I18n,
	}
}

func toDTO(setting *model.Setting) *model.SettingDTO {
	return &model.SettingDTO{
		ID:            setting.ID.Hex(),
		Title:         setting.Title,
		TitleEn:       setting.TitleEn,
		Keywords:      setting.Keywords,
		KeywordsEn:    setting.KeywordsEn,
		Description:   setting.Description,
		DescriptionEn: setting.DescriptionEn,
		Logo:          setting.Logo,
		Logo2:         setting.Logo2,
		Favicon:       setting.Favicon,
		Footer:        setting.Footer,
		SMTP:          setting.SMTP,
		I18n:          setting.I18n,
	}
}

func updateSet(in *model.UpdateSetting) bson.M {
	set := bson.M{}
	strs := []struct {
		field string
		value *string
	}{
		{"title", in.Title},
		{"title_en", in.TitleEn},
		{"keywords", in.Keywords},
		{"keywords_en", in.KeywordsEn},
		{"description", in.Description},
		{"description_en", in.DescriptionEn},
		{"logo", in.Logo},
		{"logo2", in.Logo2},
		{"favicon", in.Favicon},
		{"i18n", in.I18n},
	}
	for _, f := range strs {
		if f.value != nil {
			set[f.field] = *f.value
		}
	}
	if in.Footer != nil {
		set["footer"] = in.Footer
	}
	if in.SMTP != nil {
		set["smtp"] = in.SMTP
	}
	return set
}
