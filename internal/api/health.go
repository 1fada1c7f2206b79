package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on upstream API reachability).
type HealthHandler struct {
	upstreamPing func() error // Function to check upstream API reachability
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - upstreamPing (func() error): A function used to check whether the
//     upstream market-data API is reachable.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(upstreamPing func() error) *HealthHandler {
	return &HealthHandler{upstreamPing: upstreamPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the upstream API is reachable, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the upstream API)
	// @Summary      Readiness probe
	// @Description  Returns ready if the upstream market-data API is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.upstreamPing != nil && h.upstreamPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
