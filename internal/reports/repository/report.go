package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const CollectionName = "reports"

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

var searchFields = []string{"type", "summary"}

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id string) (*model.Report, error)
	List(ctx context.Context, filter model.ReportFilter) ([]*model.Report, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.Report, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.Report, error)
	Delete(ctx context.Context, id string) (*model.Report, error)
}

type mongoReportRepository struct {
	store *mongotx.Store[model.Report]
}

func NewMongoReportRepository(cfg *config.Config) ReportRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReportRepository{
		store: mongotx.NewStore[model.Report](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoReportRepository) Create(ctx context.Context, report *model.Report) error {
	id, err := r.store.Insert(ctx, report)
	if err != nil {
		return err
	}
	report.ID = id
	return nil
}

func (r *mongoReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoReportRepository) List(ctx context.Context, filter model.ReportFilter) ([]*model.Report, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoReportRepository) Update(ctx context.Context, id string, set bson.M) (*model.Report, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoReportRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Report, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoReportRepository) Delete(ctx context.Context, id string) (*model.Report, error) {
	return r.store.Delete(ctx, id)
}

func buildFilter(filter model.ReportFilter) bson.M {
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
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.State != nil {
		query["state"] = *filter.State
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
