package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const (
	CollectionName = "articles"

	FieldComments = "comments"
)

var listSort = bson.D{
	{Key: "publish_time", Value: -1},
	{Key: mongotx.FieldCreateTime, Value: -1},
}

var searchFields = []string{"title", "summary", "content"}

type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id string) (*model.Article, error)
	List(ctx context.Context, filter model.ArticleFilter) ([]*model.Article, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Article, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Article, error)
	Delete(ctx context.Context, id string) (*model.Article, error)
	IncrementCounter(ctx context.Context, id string, field string, delta int64) error
}

type mongoArticleRepository struct {
	store *mongotx.Store[model.Article]
}

func NewMongoArticleRepository(cfg *config.Config) ArticleRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoArticleRepository{
		store: mongotx.NewStore[model.Article](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoArticleRepository) Create(ctx context.Context, article *model.Article) error {
	id, err := r.store.Insert(ctx, article)
	if err != nil {
		return err
	}
	article.ID = id
	return nil
}

func (r *mongoArticleRepository) FindByID(ctx context.Context, id string) (*model.Article, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoArticleRepository) List(ctx context.Context, filter model.ArticleFilter) ([]*model.Article, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoArticleRepository) Update(ctx context.Context, id string, set bson.M) (*model.Article, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoArticleRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Article, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoArticleRepository) Delete(ctx context.Context, id string) (*model.Article, error) {
	return r.store.Delete(ctx, id)
}

func (r *mongoArticleRepository) IncrementCounter(ctx context.Context, id string, field string, delta int64) error {
	return r.store.Increment(ctx, id, field, delta)
}

func buildFilter(filter model.ArticleFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.ColumnID != "" {
		query["column_id"] = filter.ColumnID
	}
	if filter.State != nil {
		query["state"] = *filter.State
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
