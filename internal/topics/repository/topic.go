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
	CollectionName = "topics"

	FieldComments = "comments"
)

var listSort = bson.D{
	{Key: "publish_time", Value: -1},
	{Key: mongotx.FieldCreateTime, Value: -1},
}

var searchFields = []string{"title", "summary", "content"}

type TopicRepository interface {
	Create(ctx context.Context, topic *model.Topic) error
	FindByID(ctx context.Context, id string) (*model.Topic, error)
	List(ctx context.Context, filter model.TopicFilter) ([]*model.Topic, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Topic, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Topic, error)
	Delete(ctx context.Context, id string) (*model.Topic, error)
	IncrementCounter(ctx context.Context, id string, field string, delta int64) error
}

type mongoTopicRepository struct {
	store *mongotx.Store[model.Topic]
}

func NewMongoTopicRepository(cfg *config.Config) TopicRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTopicRepository{
		store: mongotx.NewStore[model.Topic](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoTopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	id, err := r.store.Insert(ctx, topic)
	if err != nil {
		return err
	}
	topic.ID = id
	return nil
}

func (r *mongoTopicRepository) FindByID(ctx context.Context, id string) (*model.Topic, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoTopicRepository) List(ctx context.Context, filter model.TopicFilter) ([]*model.Topic, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoTopicRepository) Update(ctx context.Context, id string, set bson.M) (*model.Topic, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoTopicRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Topic, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoTopicRepository) Delete(ctx context.Context, id string) (*model.Topic, error) {
	return r.store.Delete(ctx, id)
}

func (r *mongoTopicRepository) IncrementCounter(ctx context.Context, id string, field string, delta int64) error {
	return r.store.Increment(ctx, id, field, delta)
}

func buildFilter(filter model.TopicFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if filter.State != nil {
		query["state"] = *filter.State
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
