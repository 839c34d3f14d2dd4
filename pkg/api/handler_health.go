package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/database"
	"github.com/fabula-ai/fabula/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// healthHandler probes the server's dependencies. A degraded worker pool
// keeps the API usable (reads, downloads), so it only degrades the status;
// an unreachable database is unhealthy and returns 503.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]HealthCheck)
	overall := "healthy"

	if s.db != nil {
		dbStatus, err := database.Health(ctx, s.db.DB())
		check := HealthCheck{Status: dbStatus.Status}
		if err != nil {
			check.Message = err.Error()
			overall = "unhealthy"
		} else {
			check.Message = fmt.Sprintf("response time %dms", dbStatus.ResponseTime)
		}
		checks["database"] = check
	} else {
		checks["database"] = HealthCheck{Status: "unknown", Message: "not configured"}
		overall = "unhealthy"
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		check := HealthCheck{Status: "healthy"}
		if !poolHealth.IsHealthy {
			check.Status = "degraded"
			check.Message = poolHealth.DBError
			if overall == "healthy" {
				overall = "degraded"
			}
		} else {
			check.Message = fmt.Sprintf("%d/%d workers, %d active tasks",
				poolHealth.ActiveWorkers, poolHealth.TotalWorkers, poolHealth.ActiveTasks)
		}
		checks["worker_pool"] = check
	}

	status := http.StatusOK
	if overall == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{
		Status:  overall,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// versionHandler identifies the running build.
func (s *Server) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		App:     version.AppName,
		Commit:  version.GitCommit,
		Version: version.Full(),
	})
}
