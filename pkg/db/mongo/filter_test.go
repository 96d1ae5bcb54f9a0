package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = ParseID("42")
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestNotDeleted(t *testing.T) {
	filter := NotDeleted(bson.M{"state": true})

	assert.Contains(t, filter, FieldDeleteTime)
	assert.Nil(t, filter[FieldDeleteTime])
	assert.Equal(t, true, filter["state"])
}

func TestContainsFold(t *testing.T) {
	filter := ContainsFold("a.b+", "title", "summary")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	first := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `a\.b\+`, first.Pattern)
	assert.Equal(t, "i", first.Options)
}

func TestWithTimeout_KeepsEarlierDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ctx, cancelInner := WithTimeout(parent, time.Hour)
	defer cancelInner()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestWithTimeout_AppliesTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}

func TestWithSearch(t *testing.T) {
	assert.Equal(t, bson.M{"state": true}, WithSearch(bson.M{"state": true}, "", "title"))

	got := WithSearch(bson.M{"state": true}, "news", "title", "content")
	assert.Equal(t, true, got["state"])
	assert.Len(t, got["$or"], 2)
}
