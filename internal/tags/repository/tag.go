package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "tags"

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

var searchFields = []string{"title"}

type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, id string) (*model.Tag, error)
	List(ctx context.Context, filter model.TagFilter) ([]*model.Tag, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Tag, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Tag, error)
	Delete(ctx context.Context, id string) (*model.Tag, error)
}

type mongoTagRepository struct {
	store *mongotx.Store[model.Tag]
}

func NewMongoTagRepository(cfg *config.Config) TagRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTagRepository{
		store: mongotx.NewStore[model.Tag](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	id, err := r.store.Insert(ctx, tag)
	if err != nil {
		return err
	}
	tag.ID = id
	return nil
}

func (r *mongoTagRepository) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoTagRepository) List(ctx context.Context, filter model.TagFilter) ([]*model.Tag, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoTagRepository) Update(ctx context.Context, id string, set bson.M) (*model.Tag, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoTagRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Tag, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoTagRepository) Delete(ctx context.Context, id string) (*model.Tag, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.TagFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.IsTop != nil {
		query["is_top"] = *filter.IsTop
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
