package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSessionConfig = config.Session{CookieName: "shop_session", TTL: time.Hour}

func newRedisManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	storage := store.NewSessionStorage(client, "test:session:", logger.Nop())
	return NewManager(storage, testSessionConfig, logger.Nop()), mr
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: testSessionConfig.CookieName, Value: value})
	}
	return r
}

func TestManager_SaveAndLoad(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	sess := &models.Session{APIToken: "token"}
	require.NoError(t, m.Save(ctx, rec, sess))
	require.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "shop_session", cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	assert.True(t, mr.Exists("test:session:"+sess.ID))

	loaded, err := m.Load(requestWithCookie(sess.ID))
	require.NoError(t, err)
	assert.Equal(t, "token", loaded.APIToken)
}

func TestManager_Load_Errors(t *testing.T) {
	m, mr := newRedisManager(t)

	_, err := m.Load(requestWithCookie(""))
	assert.ErrorIs(t, err, ErrNoSessionCookie)

	_, err = m.Load(requestWithCookie("missing"))
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	sess := &models.Session{}
	require.NoError(t, m.Save(context.Background(), httptest.NewRecorder(), sess))
	mr.FastForward(2 * time.Hour)

	_, err = m.Load(requestWithCookie(sess.ID))
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestManager_Destroy(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	sess := &models.Session{APIToken: "token"}
	require.NoError(t, m.Save(ctx, httptest.NewRecorder(), sess))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Destroy(ctx, rec, sess))
	assert.False(t, mr.Exists("test:session:"+sess.ID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)

	// destroying twice or destroying nothing is not an error
	assert.NoError(t, m.Destroy(ctx, httptest.NewRecorder(), sess))
	assert.NoError(t, m.Destroy(ctx, httptest.NewRecorder(), nil))
}

func TestManager_SaveNil(t *testing.T) {
	m, _ := newRedisManager(t)
	assert.ErrorIs(t, m.Save(context.Background(), httptest.NewRecorder(), nil), ErrNilSession)
}

func TestManager_Renew(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	sess := &models.Session{APIToken: "anonymous"}
	require.NoError(t, m.Save(ctx, httptest.NewRecorder(), sess))
	oldID := sess.ID

	rec := httptest.NewRecorder()
	sess.APIToken = "authenticated"
	require.NoError(t, m.Renew(ctx, rec, sess))

	assert.NotEqual(t, oldID, sess.ID)
	assert.False(t, mr.Exists("test:session:"+oldID))
	assert.True(t, mr.Exists("test:session:"+sess.ID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sess.ID, cookies[0].Value)

	_, err := m.Load(requestWithCookie(oldID))
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	loaded, err := m.Load(requestWithCookie(sess.ID))
	require.NoError(t, err)
	assert.Equal(t, "authenticated", loaded.APIToken)

	t.Run("session without ID gets one", func(t *testing.T) {
		fresh := &models.Session{}
		require.NoError(t, m.Renew(ctx, httptest.NewRecorder(), fresh))
		assert.NotEmpty(t, fresh.ID)
	})

	t.Run("nil session", func(t *testing.T) {
		assert.ErrorIs(t, m.Renew(ctx, httptest.NewRecorder(), nil), ErrNilSession)
	})
}

func TestManager_Renew_SaveFailureKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)
	m := NewManager(storage, testSessionConfig, logger.Nop())

	storage.EXPECT().SaveSession(gomock.Any(), gomock.Any(), testSessionConfig.TTL).Return(store.ErrRedisUnavailable)

	sess := &models.Session{ID: "old"}
	err := m.Renew(context.Background(), httptest.NewRecorder(), sess)
	assert.ErrorIs(t, err, store.ErrRedisUnavailable)
	assert.Equal(t, "old", sess.ID)
}

func TestManager_Middleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)
	m := NewManager(storage, testSessionConfig, logger.Nop())

	var (
		got   *models.Session
		found bool
		calls int
	)
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		got, found = FromContext(r.Context())
	}))

	t.Run("attaches session", func(t *testing.T) {
		calls = 0
		storage.EXPECT().GetSession(gomock.Any(), "abc").Return(&models.Session{ID: "abc", APIToken: "t"}, nil)

		handler.ServeHTTP(httptest.NewRecorder(), requestWithCookie("abc"))
		assert.Equal(t, 1, calls)
		require.True(t, found)
		assert.Equal(t, "t", got.APIToken)
	})

	t.Run("no cookie", func(t *testing.T) {
		calls = 0
		handler.ServeHTTP(httptest.NewRecorder(), requestWithCookie(""))
		assert.Equal(t, 1, calls)
		assert.False(t, found)
	})

	t.Run("storage failure does not block the request", func(t *testing.T) {
		calls = 0
		storage.EXPECT().GetSession(gomock.Any(), "abc").Return(nil, errors.Join(store.ErrRedisUnavailable, errors.New("dial tcp")))

		handler.ServeHTTP(httptest.NewRecorder(), requestWithCookie("abc"))
		assert.Equal(t, 1, calls)
		assert.False(t, found)
	})
}
