package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "notices"

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

var searchFields = []string{"content", "category"}

type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	FindByID(ctx context.Context, id string) (*model.Notice, error)
	List(ctx context.Context, filter model.NoticeFilter) ([]*model.Notice, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Notice, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Notice, error)
	Delete(ctx context.Context, id string) (*model.Notice, error)
}

type mongoNoticeRepository struct {
	store *mongotx.Store[model.Notice]
}

func NewMongoNoticeRepository(cfg *config.Config) NoticeRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoNoticeRepository{
		store: mongotx.NewStore[model.Notice](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoNoticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	id, err := r.store.Insert(ctx, notice)
	if err != nil {
		return err
	}
	notice.ID = id
	return nil
}

func (r *mongoNoticeRepository) FindByID(ctx context.Context, id string) (*model.Notice, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoNoticeRepository) List(ctx context.Context, filter model.NoticeFilter) ([]*model.Notice, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoNoticeRepository) Update(ctx context.Context, id string, set bson.M) (*model.Notice, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoNoticeRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Notice, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoNoticeRepository) Delete(ctx context.Context, id string) (*model.Notice, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.NoticeFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if filter.SendUID != "" {
		query["send_uid"] = filter.SendUID
	}
	if filter.IsNew != nil {
		query["is_new"] = *filter.IsNew
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
