package integration

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/tests/testutil"
)

// newRedisClient starts a throwaway Redis container and returns a connected
// client. Skipped under -short; CI without Docker runs the unit suites only.
func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	client := newRedisClient(t)
	store := session.NewRedisStoreWithClient(client, "test:session:")

	ctx := context.Background()
	id, err := session.NewID()
	require.NoError(t, err)

	sess := &session.Session{
		ID:               id,
		Email:            "ops@misoft.example.com",
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  time.Now().Add(15 * time.Minute).UTC(),
		RefreshExpiresAt: time.Now().Add(12 * time.Hour).UTC(),
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, sess.AccessToken, got.AccessToken)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	client := newRedisClient(t)
	store := session.NewRedisStoreWithClient(client, "test:session:")

	ctx := context.Background()
	id, err := session.NewID()
	require.NoError(t, err)

	sess := &session.Session{ID: id, Email: "ops@misoft.example.com"}
	require.NoError(t, store.Save(ctx, sess, time.Second))

	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, id)
		return errors.Is(err, session.ErrNotFound)
	}, 5*time.Second, 100*time.Millisecond, "session must expire with its TTL")
}

func TestDashboardSessionsSurviveOnRedis(t *testing.T) {
	client := newRedisClient(t)
	store := session.NewRedisStoreWithClient(client, "test:session:")

	api := testutil.NewCoreAPI(t)
	stubLogin(api, time.Now().Add(time.Hour))

	// Two service instances sharing the store: the session established on
	// one authenticates requests on the other.
	first := NewDashboard(t, api, store)
	second := NewDashboard(t, api, store)

	cookie := login(t, first)
	rec := testutil.DoJSON(t, second.Engine, http.MethodGet, "/api/v1/auth/me", nil,
		testutil.WithCookie(cookie.Name, cookie.Value))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
