package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/sanitizer"
)

const defaultState = false

func sanitizeCreate(in *model.CreateArticle) {
	in.ColumnID = strings.TrimSpace(in.ColumnID)
	in.Title = sanitizer.TrimAndNormalize(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Tags = sanitizer.NormalizeTags(in.Tags)
}

func sanitizeUpdate(in *model.UpdateArticle) {
	if in.ColumnID != nil {
		*in.ColumnID = strings.TrimSpace(*in.ColumnID)
	}
	if in.Title != nil {
		*in.Title = sanitizer.TrimAndNormalize(*in.Title)
	}
	if in.Summary != nil {
		*in.Summary = strings.TrimSpace(*in.Summary)
	}
	if in.Tags != nil {
		*in.Tags = sanitizer.NormalizeTags(*in.Tags)
	}
}

func newArticle(in *model.CreateArticle, now time.Time) *model.Article {
	return &model.Article{
		ColumnID:      in.ColumnID,
		Title:         in.Title,
		Summary:       in.Summary,
		Tags:          in.Tags,
		Content:       in.Content,
		Views:         valueOr(in.Views),
		Praises:       valueOr(in.Praises),
		Collects:      valueOr(in.Collects),
		Comments:      valueOr(in.Comments),
		State:         normalize.Boolean(in.State, defaultState),
		TopTime:       in.TopTime.Ptr(),
		AuthorTopTime: in.AuthorTopTime.Ptr(),
		PublishTime:   in.PublishTime.Ptr(),
		Attachments:   in.Attachments,
		Timestamps:    model.NewTimestamps(now),
	}
}

func valueOr(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func toDTO(article *model.Article) *model.ArticleDTO {
	return &model.ArticleDTO{
		ID:            article.ID.Hex(),
		ColumnID:      article.ColumnID,
		Title:         article.Title,
		Summary:       article.Summary,
		Tags:          article.Tags,
		Content:       article.Content,
		Views:         article.Views,
		Praises:       article.Praises,
		Collects:      article.Collects,
		Comments:      article.Comments,
		State:         article.State,
		TopTime:       article.TopTime,
		AuthorTopTime: article.AuthorTopTime,
		PublishTime:   article.PublishTime,
		Attachments:   article.Attachments,
		TimestampsDTO: article.Timestamps.DTO(),
	}
}

func toDTOs(articles []*model.Article) []*model.ArticleDTO {
	out := make([]*model.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		out = append(out, toDTO(article))
	}
	return out
}

// updateSet lists the provided fields as a $set document. update_time is
// left to the caller so an empty result means nothing was provided.
func updateSet(in *model.UpdateArticle) bson.M {
	set := bson.M{}
	if in.ColumnID != nil {
		set["column_id"] = *in.ColumnID
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Views != nil {
		set["views"] = *in.Views
	}
	if in.Praises != nil {
		set["praises"] = *in.Praises
	}
	if in.Collects != nil {
		set["collects"] = *in.Collects
	}
	if in.Comments != nil {
		set["comments"] = *in.Comments
	}
	if state := normalize.OptionalBoolean(in.State); state != nil {
		set["state"] = *state
	}
	if in.TopTime.Set {
		set["top_time"] = in.TopTime.Ptr()
	}
	if in.AuthorTopTime.Set {
		set["author_top_time"] = in.AuthorTopTime.Ptr()
	}
	if in.PublishTime.Set {
		set["publish_time"] = in.PublishTime.Ptr()
	}
	if in.Attachments != nil {
		set["attachments"] = *in.Attachments
	}
	return set
}
