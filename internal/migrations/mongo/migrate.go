package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	articles "mocms/internal/articles/repository"
	badges "mocms/internal/badges/repository"
	columnrequests "mocms/internal/columnrequests/repository"
	comments "mocms/internal/comments/repository"
	"mocms/internal/migrations/mongo/validators"
	notices "mocms/internal/notices/repository"
	reports "mocms/internal/reports/repository"
	settings "mocms/internal/settings/repository"
	tags "mocms/internal/tags/repository"
	topics "mocms/internal/topics/repository"
	users "mocms/internal/users/repository"
	"mocms/pkg/logger"
)

type Collection struct {
	Name      string
	Validator bson.M
	Indexes   []mongo.IndexModel
}

// liveByCreateTime backs the default list query of soft-deletable
// collections: live rows, newest first.
var liveByCreateTime = mongo.IndexModel{
	Keys: bson.D{{Key: "delete_time", Value: 1}, {Key: "create_time", Value: -1}},
}

var Collections = []Collection{
	{
		Name:      articles.CollectionName,
		Validator: validators.ArticleValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "column_id", Value: 1}, {Key: "state", Value: 1}}},
			{Keys: bson.D{{Key: "publish_time", Value: -1}, {Key: "create_time", Value: -1}}},
		},
	},
	{
		Name:      topics.CollectionName,
		Validator: validators.TopicValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "uid", Value: 1}, {Key: "state", Value: 1}}},
			{Keys: bson.D{{Key: "publish_time", Value: -1}, {Key: "create_time", Value: -1}}},
		},
	},
	{
		Name:      comments.CollectionName,
		Validator: validators.CommentValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "type_id", Value: 1}}},
			{Keys: bson.D{{Key: "uid", Value: 1}}},
			{Keys: bson.D{{Key: "comment_id", Value: 1}}},
		},
	},
	{
		Name:      users.CollectionName,
		Validator: validators.UserValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{
				Keys: bson.D{{Key: users.FieldEmail, Value: 1}},
				Options: options.Index().
					SetName("email_live_unique").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"delete_time": bson.M{"$type": "null"}}),
			},
			{Keys: bson.D{{Key: "mobile", Value: 1}}},
			{Keys: bson.D{{Key: "state", Value: 1}}},
		},
	},
	{
		Name:      badges.CollectionName,
		Validator: validators.BadgeValidator,
	},
	{
		Name:      notices.CollectionName,
		Validator: validators.NoticeValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "uid", Value: 1}, {Key: "is_new", Value: 1}}},
			{Keys: bson.D{{Key: "send_uid", Value: 1}}},
		},
	},
	{
		Name:      settings.CollectionName,
		Validator: validators.SettingValidator,
	},
	{
		Name:      tags.CollectionName,
		Validator: validators.TagValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "is_top", Value: 1}}},
		},
	},
	{
		Name:      columnrequests.CollectionName,
		Validator: validators.ColumnRequestValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "uid", Value: 1}, {Key: "state", Value: 1}}},
		},
	},
	{
		Name:      reports.CollectionName,
		Validator: validators.ReportValidator,
		Indexes: []mongo.IndexModel{
			liveByCreateTime,
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "type_id", Value: 1}}},
			{Keys: bson.D{{Key: "uid", Value: 1}}},
			{Keys: bson.D{{Key: "state", Value: 1}, {Key: "category", Value: 1}}},
		},
	},
}

// RunMigration creates every collection with its validator and indexes. It
// is safe to run repeatedly: existing collections get their validator
// refreshed and existing indexes are left alone.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name(), "collections", len(Collections))

	for _, def := range Collections {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}

	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "count", len(models))
	return nil
}
