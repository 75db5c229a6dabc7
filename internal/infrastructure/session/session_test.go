package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/adapters/repository"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/config"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/infrastructure/session"
	"github.com/grantreports/core/internal/ports"
)

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		Driver:     config.SessionDriverMemory,
		CookieName: "test_session",
		TTL:        time.Hour,
		Secret:     "test-secret",
		Issuer:     "grantreports-test",
	}
}

// serve runs one request through the middleware and a handler that counts
// reports in the session, adding one when add is true
func serve(t *testing.T, m *session.Manager, cookie *http.Cookie, add bool) (*httptest.ResponseRecorder, int) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var count int
	handler := m.Middleware()(func(c echo.Context) error {
		data := session.Data(c)
		if add {
			data.Reports = append(data.Reports, &entities.Report{ID: "r", ReportName: "Annual Return"})
		}
		count = len(data.Reports)
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	return rec, count
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "test_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestMiddlewarePersistsAcrossRequests(t *testing.T) {
	t.Parallel()

	store := repository.NewMemorySessionStore()
	m := session.NewManager(store, testConfig(), logger.NewNop())

	rec, count := serve(t, m, nil, true)
	assert.Equal(t, 1, count)
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, store.Len())

	_, count = serve(t, m, cookie, false)
	assert.Equal(t, 1, count)

	_, count = serve(t, m, cookie, true)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, store.Len())
}

func TestMiddlewareStartsFreshSessionOnBadToken(t *testing.T) {
	t.Parallel()

	store := repository.NewMemorySessionStore()
	m := session.NewManager(store, testConfig(), logger.NewNop())

	rec, _ := serve(t, m, nil, true)
	good := sessionCookie(t, rec)

	forged := &http.Cookie{Name: "test_session", Value: good.Value + "x"}
	_, count := serve(t, m, forged, false)
	assert.Equal(t, 0, count)

	other := testConfig()
	other.Secret = "other-secret"
	stranger := session.NewManager(store, other, logger.NewNop())
	_, count = serve(t, stranger, good, false)
	assert.Equal(t, 0, count)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := session.NewManager(repository.NewMemorySessionStore(), testConfig(), logger.NewNop())

	token, err := m.IssueToken("abc")
	require.NoError(t, err)

	id, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = m.ParseToken("not-a-token")
	assert.Error(t, err)
}

type failingStore struct {
	ports.SessionStore
}

func (failingStore) Load(context.Context, string) (*entities.SessionData, error) {
	return nil, errors.New("connection refused")
}

func TestMiddlewareStoreFailure(t *testing.T) {
	t.Parallel()

	m := session.NewManager(failingStore{}, testConfig(), logger.NewNop())
	token, err := m.IssueToken("abc")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	err = m.Middleware()(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

type unsavableStore struct {
	*repository.MemorySessionStore
}

func (unsavableStore) Save(context.Context, string, *entities.SessionData, time.Duration) error {
	return errors.New("store down")
}

func TestMiddlewareSaveFailureHoldsBackResponse(t *testing.T) {
	t.Parallel()

	store := unsavableStore{repository.NewMemorySessionStore()}
	m := session.NewManager(store, testConfig(), logger.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	err := m.Middleware()(func(c echo.Context) error {
		data := session.Data(c)
		data.Reports = append(data.Reports, &entities.Report{ID: "r", ReportName: "Annual Return"})
		return c.JSON(http.StatusCreated, data.Reports[0])
	})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	assert.False(t, c.Response().Committed)
	assert.Zero(t, rec.Body.Len())
	assert.Equal(t, 0, store.Len())

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMiddlewareWritesResponseAfterSave(t *testing.T) {
	t.Parallel()

	store := repository.NewMemorySessionStore()
	m := session.NewManager(store, testConfig(), logger.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	err := m.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"reportName": "Annual Return"})
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.JSONEq(t, `{"reportName":"Annual Return"}`, rec.Body.String())
	assert.NotEmpty(t, sessionCookie(t, rec).Value)
	assert.Equal(t, 1, store.Len())
}

func TestDataOutsideMiddleware(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	data := session.Data(c)
	require.NotNil(t, data)
	assert.Same(t, data, session.Data(c))
	assert.Empty(t, session.ID(c))
}

func TestRunPurgerStopsOnCancel(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := repository.NewMemorySessionStore().WithClock(func() time.Time { return now })
	require.NoError(t, store.Save(context.Background(), "old", entities.NewSessionData(), -time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	purged := make(chan int64, 1)
	done := make(chan struct{})

	go func() {
		session.RunPurger(ctx, store, 10*time.Millisecond, logger.NewNop(), func(n int64) {
			select {
			case purged <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-purged:
		assert.Equal(t, int64(1), n)
	case <-time.After(time.Second):
		t.Fatal("purger did not run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop")
	}
	assert.Equal(t, 0, store.Len())
}
