package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "badges"

var listSort = bson.D{{Key: mongotx.FieldID, Value: 1}}

type BadgeRepository interface {
	Create(ctx context.Context, badge *model.Badge) error
	FindByID(ctx context.Context, id string) (*model.Badge, error)
	List(ctx context.Context, filter model.BadgeFilter) ([]*model.Badge, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Badge, error)
	Delete(ctx context.Context, id string) (*model.Badge, error)
}

type mongoBadgeRepository struct {
	store *mongotx.Store[model.Badge]
}

func NewMongoBadgeRepository(cfg *config.Config) BadgeRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBadgeRepository{
		store: mongotx.NewStore[model.Badge](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}),
	}
}

func (r *mongoBadgeRepository) Create(ctx context.Context, badge *model.Badge) error {
	id, err := r.store.Insert(ctx, badge)
	if err != nil {
		return err
	}
	badge.ID = id
	return nil
}

func (r *mongoBadgeRepository) FindByID(ctx context.Context, id string) (*model.Badge, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoBadgeRepository) List(ctx context.Context, filter model.BadgeFilter) ([]*model.Badge, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoBadgeRepository) Update(ctx context.Context, id string, set bson.M) (*model.Badge, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoBadgeRepository) Delete(ctx context.Context, id string) (*model.Badge, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.BadgeFilter) bson.M {
	return mongotx.WithSearch(bson.M{}, filter.Search, "name")
}
