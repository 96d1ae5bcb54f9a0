package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"mocms/pkg/client"
)

const ReadyTimeout = 30 * time.Second

type TestEnv struct {
	MongoURI      string
	DatabaseName  string
	ServerURL     string
	SigningSecret string
}

// NewTestEnv reads the target server from TEST_SERVER_URL and skips the
// test when it is unset.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set; skipping integration test")
	}

	return &TestEnv{
		MongoURI:      getEnv("TEST_MONGO_URI", DefaultMongoURI),
		DatabaseName:  getEnv("TEST_DB_NAME", DefaultDatabaseName),
		ServerURL:     serverURL,
		SigningSecret: os.Getenv("TEST_SIGNING_SECRET"),
	}
}

// Setup empties the database, waits for the server and returns a client for
// the named resource.
func (e *TestEnv) Setup(t *testing.T, resource string) (*MongoHelper, *client.ResourceClient) {
	t.Helper()

	mongo := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	mongo.CleanDatabase(t)
	t.Cleanup(func() {
		mongo.CleanDatabase(t)
		mongo.Close(t)
	})

	rc := e.Resource(resource)
	if err := rc.HTTP().WaitForReady(context.Background(), ReadyTimeout); err != nil {
		t.Fatalf("server not ready: %v", err)
	}
	return mongo, rc
}

func (e *TestEnv) Resource(resource string) *client.ResourceClient {
	rc := client.NewResourceClient(e.ServerURL, resource)
	rc.HTTP().SigningSecret = e.SigningSecret
	return rc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
