package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/config"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

const (
	dataContextKey = "session_data"
	idContextKey   = "session_id"
)

// Claims is the payload of the session cookie. The cookie only carries the
// session ID; the data itself lives in the store.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager loads session data before a request and saves it afterwards
type Manager struct {
	store  ports.SessionStore
	cfg    config.SessionConfig
	logger *logger.Logger
	now    func() time.Time
}

// NewManager creates a session manager on the given store
func NewManager(store ports.SessionStore, cfg config.SessionConfig, log *logger.Logger) *Manager {
	return &Manager{
		store:  store,
		cfg:    cfg,
		logger: log.WithComponent("session"),
		now:    time.Now,
	}
}

// IssueToken signs a cookie token for the session ID
func (m *Manager) IssueToken(sessionID string) (string, error) {
	now := m.now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ParseToken validates a cookie token and returns its session ID
func (m *Manager) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithIssuer(m.cfg.Issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return "", errors.New("invalid session token claims")
	}

	return claims.SessionID, nil
}

// Middleware attaches the caller's session data to the echo context and
// persists it once the handler returns. A missing, invalid or expired cookie
// starts a new, empty session.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sessionID, data, err := m.load(ctx, c)
			if err != nil {
				m.logger.Errorw("Failed to load session", "error", err.Error())
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Session store unavailable")
			}

			if err := m.writeCookie(c, sessionID); err != nil {
				m.logger.Errorw("Failed to issue session cookie", "error", err.Error())
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue session")
			}

			c.Set(idContextKey, sessionID)
			c.Set(dataContextKey, data)

			// the response is held back until the session is stored
			res := c.Response()
			underlying := res.Writer
			held := newBufferedWriter(underlying.Header())
			res.Writer = held

			handlerErr := next(c)

			res.Writer = underlying

			start := m.now()
			saveErr := m.store.Save(context.WithoutCancel(ctx), sessionID, data, m.cfg.TTL)
			m.logger.LogStoreOperation("save", float64(m.now().Sub(start).Nanoseconds())/1e6, saveErr)

			if saveErr != nil {
				res.Committed = false
				res.Status = http.StatusOK
				res.Size = 0
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Failed to save session").SetInternal(saveErr)
			}

			if res.Committed {
				if err := held.flushTo(underlying); err != nil {
					m.logger.Errorw("Failed to write response", "error", err.Error())
				}
			}

			return handlerErr
		}
	}
}

func (m *Manager) load(ctx context.Context, c echo.Context) (string, *entities.SessionData, error) {
	cookie, err := c.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return m.start(c, "no_cookie"), entities.NewSessionData(), nil
	}

	sessionID, err := m.ParseToken(cookie.Value)
	if err != nil {
		m.logger.LogSessionEvent("rejected_token", "", c.RealIP(), map[string]interface{}{
			"error": err.Error(),
		})
		return m.start(c, "invalid_token"), entities.NewSessionData(), nil
	}

	start := m.now()
	data, err := m.store.Load(ctx, sessionID)
	m.logger.LogStoreOperation("load", float64(m.now().Sub(start).Nanoseconds())/1e6, ignoreNotFound(err))

	if errors.Is(err, ports.ErrSessionNotFound) {
		return m.start(c, "expired"), entities.NewSessionData(), nil
	}
	if err != nil {
		return "", nil, err
	}

	return sessionID, data, nil
}

func (m *Manager) start(c echo.Context, reason string) string {
	sessionID := uuid.NewString()
	m.logger.LogSessionEvent("created", sessionID, c.RealIP(), map[string]interface{}{
		"reason": reason,
	})
	return sessionID
}

// writeCookie reissues the cookie on every request so the expiry slides
func (m *Manager) writeCookie(c echo.Context, sessionID string) error {
	token, err := m.IssueToken(sessionID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  m.now().Add(m.cfg.TTL),
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Data returns the session data attached by Middleware. Outside the
// middleware it attaches and returns empty data.
func Data(c echo.Context) *entities.SessionData {
	if data, ok := c.Get(dataContextKey).(*entities.SessionData); ok && data != nil {
		return data
	}
	data := entities.NewSessionData()
	c.Set(dataContextKey, data)
	return data
}

// ID returns the current session ID, or "" outside the middleware
func ID(c echo.Context) string {
	id, _ := c.Get(idContextKey).(string)
	return id
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ports.ErrSessionNotFound) {
		return nil
	}
	return err
}
