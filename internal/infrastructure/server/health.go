package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// healthCheck handles basic health check
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// detailedHealthCheck reports on the session store and, when sessions live
// in postgres, the connection pool
func (s *Server) detailedHealthCheck(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	status := "ok"
	checks := make(map[string]interface{})

	store := map[string]interface{}{"driver": s.config.Session.Driver}
	if err := s.store.Ping(ctx); err != nil {
		status = "error"
		store["status"] = "error"
		store["error"] = err.Error()
	} else {
		store["status"] = "ok"
	}
	if counter, ok := s.store.(sessionCounter); ok {
		store["sessions"] = counter.Len()
	}
	checks["session_store"] = store

	if s.db != nil {
		if err := s.db.HealthCheck(ctx); err != nil {
			status = "error"
			checks["database"] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		} else {
			checks["database"] = map[string]interface{}{
				"status": "ok",
				"stats":  s.db.GetConnectionInfo(),
			}
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
			"go":  runtime.Version(),
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

// readinessCheck handles the readiness check
func (s *Server) readinessCheck(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "session_store_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
