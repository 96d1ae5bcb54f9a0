package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/model"
)

const (
	CollectionName = "users"

	FieldEmail = "email"
)

var listSort = bson.D{{Key: mongotx.FieldCreateTime, Value: -1}}

var searchFields = []string{"email", "nickname", "mobile", "org_title"}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]*model.User, int64, error)
	Update(ctx context.Context, id string, set bson.M) (*model.User, error)
	SoftDelete(ctx context.Context, id string, now time.Time) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.User, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoUserRepository struct {
	store *mongotx.Store[model.User]
}

func NewMongoUserRepository(cfg *config.Config) UserRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoUserRepository{
		store: mongotx.NewStore[model.User](db, CollectionName, mongotx.Timeouts{
			Read:  cfg.ReadTimeout,
			Write: cfg.WriteTimeout,
		}, mongotx.WithSoftDelete()),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	id, err := r.store.Insert(ctx, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.store.FindByID(ctx, id)
}

// FindByEmail returns the live user owning email, or nil when there is none.
func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.store.FindOne(ctx, mongotx.NotDeleted(bson.M{FieldEmail: email}))
	if errors.Is(err, mongotx.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (r *mongoUserRepository) List(ctx context.Context, filter model.UserFilter) ([]*model.User, int64, error) {
	return r.store.FindPage(ctx, buildFilter(filter), mongotx.FindOptions{
		Skip:  filter.Page.Skip(),
		Limit: filter.Page.Limit(),
		Sort:  listSort,
	})
}

func (r *mongoUserRepository) Update(ctx context.Context, id string, set bson.M) (*model.User, error) {
	return r.store.UpdateFields(ctx, id, set)
}

func (r *mongoUserRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.User, error) {
	return r.store.SoftDelete(ctx, id, now)
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) (*model.User, error) {
	return r.store.Delete(ctx, id)
}

func (r *mongoUserRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.store.ExecuteTransaction(ctx, fn)
}

func buildFilter(filter model.UserFilter) bson.M {
	query := bson.M{}
	if !filter.IncludeDeleted {
		query = mongotx.NotDeleted(query)
	}
	if filter.Email != "" {
		query[FieldEmail] = filter.Email
	}
	if filter.Mobile != "" {
		query["mobile"] = filter.Mobile
	}
	if filter.State != nil {
		query["state"] = *filter.State
	}
	return mongotx.WithSearch(query, filter.Search, searchFields...)
}
