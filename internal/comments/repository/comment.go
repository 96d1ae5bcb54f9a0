package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "comments"

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id string) (*model.Comment, error)
	List(ctx context.Context, filter model.CommentFilter) ([]*model.Comment, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Comment, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Comment, error)
	Delete(ctx context.Context, id string) (*model.Comment, error)
}

type mongoCommentRepository struct {
	store *mongotx.Store[model.Comment]
}

func NewMongoCommentRepository(cfg *config.Config) CommentRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCommentRepository{
		store: mongotx.NewStore[model.Comment](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	id, err := r.store.Insert(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = id
	return nil
}

func (r *mongoCommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoCommentRepository) List(ctx context.Context, filter model.CommentFilter) ([]*model.Comment, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoCommentRepository) Update(ctx context.Context, id string, set bson.M) (*model.Comment, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoCommentRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Comment, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoCommentRepository) Delete(ctx context.Context, id string) (*model.Comment, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.CommentFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.TypeID != "" {
		query["type_id"] = filter.TypeID
	}
	if filter.CommentID != "" {
		query["comment_id"] = filter.CommentID
	}
	return mongotx.WithSearch(query, filter.Search, "content")
}
