package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "settings"

var listSort = bson.D{{Key: mongotx.FieldID, Value: 1}}

var searchFields = []string{"title", "title_en", "keywords", "description"}

type SettingRepository interface {
	Create(ctx context.Context, setting *model.Setting) error
	FindByID(ctx context.Context, id string) (*model.Setting, error)
	List(ctx context.Context, filter model.SettingFilter) ([]*model.Setting, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Setting, error)
	Delete(ctx context.Context, id string) (*model.Setting, error)
}

type mongoSettingRepository struct {
	store *mongotx.Store[model.Setting]
}

func NewMongoSettingRepository(cfg *config.Config) SettingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSettingRepository{
		store: mongotx.NewStore[model.Setting](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}),
	}
}

func (r *mongoSettingRepository) Create(ctx context.Context, setting *model.Setting) error {
	id, err := r.store.Insert(ctx, setting)
	if err != nil {
		return err
	}
	setting.ID = id
	return nil
}

func (r *mongoSettingRepository) FindByID(ctx context.Context, id string) (*model.Setting, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoSettingRepository) List(ctx context.Context, filter model.SettingFilter) ([]*model.Setting, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoSettingRepository) Update(ctx context.Context, id string, set bson.M) (*model.Setting, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoSettingRepository) Delete(ctx context.Context, id string) (*model.Setting, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.SettingFilter) bson.M {
	return mongotx.WithSearch(bson.M{}, filter.Search, searchFields...)
}
