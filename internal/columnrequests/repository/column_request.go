package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "column_requests"

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

var searchFields = []string{"title", "summary"}

type ColumnRequestRepository interface {
	Create(ctx context.Context, request *model.ColumnRequest) error
	FindByID(ctx context.Context, id string) (*model.ColumnRequest, error)
	List(ctx context.Context, filter model.ColumnRequestFilter) ([]*model.ColumnRequest, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.ColumnRequest, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.ColumnRequest, error)
	Delete(ctx context.Context, id string) (*model.ColumnRequest, error)
}

type mongoColumnRequestRepository struct {
	store *mongotx.Store[model.ColumnRequest]
}

func NewMongoColumnRequestRepository(cfg *config.Config) ColumnRequestRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoColumnRequestRepository{
		store: mongotx.NewStore[model.ColumnRequest](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoColumnRequestRepository) Create(ctx context.Context, request *model.ColumnRequest) error {
	id, err := r.store.Insert(ctx, request)
	if err != nil {
		return err
	}
	request.ID = id
	return nil
}

func (r *mongoColumnRequestRepository) FindByID(ctx context.Context, id string) (*model.ColumnRequest, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoColumnRequestRepository) List(ctx context.Context, filter model.ColumnRequestFilter) ([]*model.ColumnRequest, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoColumnRequestRepository) Update(ctx context.Context, id string, set bson.M) (*model.ColumnRequest, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoColumnRequestRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.ColumnRequest, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoColumnRequestRepository) Delete(ctx context.Context, id string) (*model.ColumnRequest, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.ColumnRequestFilter) bson.M {
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
