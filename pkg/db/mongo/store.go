package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

// FindOptions describes one page of a list query.
type FindOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Store is the typed collection access shared by every resource repository.
// T is the stored row type and must map _id to a primitive.ObjectID field.
type Store[T any] struct {
	collection *mongo.Collection
	timeouts   Timeouts
	txManager  TransactionManager
	softDelete bool
}

type StoreOption func(*storeOptions)

type storeOptions struct {
	softDelete bool
}

// WithSoftDelete hides rows carrying a delete_time from FindByID,
// UpdateFields and SoftDelete.
func WithSoftDelete() StoreOption {
	return func(o *storeOptions) { o.softDelete = true }
}

func NewStore[T any](db *mongo.Database, collection string, timeouts Timeouts, opts ...StoreOption) *Store[T] {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Free-form fields typed as any decode as bson.M rather than bson.D so
	// they render as JSON objects.
	collOpts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	return &Store[T]{
		collection: db.Collection(collection, collOpts),
		timeouts:   timeouts,
		txManager:  NewTransactionManager(db.Client()),
		softDelete: o.softDelete,
	}
}

func (s *Store[T]) Collection() *mongo.Collection {
	return s.collection
}

func (s *Store[T]) byID(oid primitive.ObjectID, live bool) bson.M {
	filter := bson.M{FieldID: oid}
	if live && s.softDelete {
		return NotDeleted(filter)
	}
	return filter
}

func (s *Store[T]) Name() string {
	return s.collection.Name()
}

func (s *Store[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", s.Name(), err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T in %s", result.InsertedID, s.Name())
	}
	return oid, nil
}

// FindByID returns a live row.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return s.findByID(ctx, id, true)
}

// FindAnyByID returns the row whether or not it was soft deleted.
func (s *Store[T]) FindAnyByID(ctx context.Context, id string) (*T, error) {
	return s.findByID(ctx, id, false)
}

func (s *Store[T]) findByID(ctx context.Context, id string, live bool) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.FindOne(ctx, s.byID(oid, live))
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return doc, err
}

func (s *Store[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	var doc T
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s document: %w", s.Name(), err)
	}
	return &doc, nil
}

func (s *Store[T]) Find(ctx context.Context, filter bson.M, opts FindOptions) ([]*T, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	findOpts := options.Find().SetSkip(opts.Skip)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Name(), err)
	}
	return docs, nil
}

func (s *Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.Name(), err)
	}
	return count, nil
}

// FindPage runs Find and Count for the same filter concurrently.
func (s *Store[T]) FindPage(ctx context.Context, filter bson.M, opts FindOptions) ([]*T, int64, error) {
	var (
		docs              []*T
		total             int64
		errFind, errCount error
		wg                sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		total, errCount = s.Count(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		docs, errFind = s.Find(ctx, filter, opts)
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return docs, total, nil
}

// UpdateFields applies $set to one row and returns the row as stored after
// the update.
func (s *Store[T]) UpdateFields(ctx context.Context, id string, set bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = s.collection.FindOneAndUpdate(ctx, s.byID(oid, true), bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, fmt.Errorf("failed to update %s document: %w", s.Name(), err)
	}
	return &doc, nil
}

// SoftDelete stamps delete_time and update_time with now. Deleting a row
// that is already soft deleted reports ErrNotFound.
func (s *Store[T]) SoftDelete(ctx context.Context, id string, now time.Time) (*T, error) {
	return s.UpdateFields(ctx, id, bson.M{
		FieldDeleteTime: now,
		FieldUpdateTime: now,
	})
}

// Delete removes the row, soft deleted or not, and returns it as it was.
func (s *Store[T]) Delete(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	var doc T
	if err := s.collection.FindOneAndDelete(ctx, bson.M{FieldID: oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to delete %s document: %w", s.Name(), err)
	}
	return &doc, nil
}

// Increment adds delta to a numeric field. A negative delta never takes the
// field below zero: when the current value is too small the row is left
// untouched.
func (s *Store[T]) Increment(ctx context.Context, id string, field string, delta int64) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	filter := bson.M{FieldID: oid}
	if delta < 0 {
		filter[field] = bson.M{"$gte": -delta}
	}

	result, err := s.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("failed to increment %s.%s: %w", s.Name(), field, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	exists, err := s.collection.CountDocuments(ctx, bson.M{FieldID: oid}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check %s document: %w", s.Name(), err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *Store[T]) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	return s.txManager.ExecuteTransaction(ctx, fn)
}
