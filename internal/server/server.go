package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marell/syndimarket/internal/aggregate"
	"github.com/marell/syndimarket/internal/dispatch"
	"github.com/marell/syndimarket/internal/market"
)

// Config holds HTTP surface settings.
type Config struct {
	Addr        string  // listen address (default: ":3000")
	ClientRPS   float64 // per-client inbound rate (default: 10)
	ClientBurst int     // per-client burst (default: 20)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:        ":3000",
		ClientRPS:   10,
		ClientBurst: 20,
	}
}

// Server routes inbound requests to the aggregator.
type Server struct {
	cfg    Config
	engine *gin.Engine
	agg    *aggregate.Aggregator
	disp   *dispatch.Dispatcher
	logger *slog.Logger
}

// New creates a Server with its routes registered.
func New(cfg Config, agg *aggregate.Aggregator, disp *dispatch.Dispatcher, logger *slog.Logger) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.ClientRPS <= 0 {
		cfg.ClientRPS = def.ClientRPS
	}
	if cfg.ClientBurst <= 0 {
		cfg.ClientBurst = def.ClientBurst
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(clientRateLimit(cfg.ClientRPS, cfg.ClientBurst))

	s := &Server{
		cfg:    cfg,
		engine: engine,
		agg:    agg,
		disp:   disp,
		logger: logger,
	}
	s.routes()
	return s
}

// Handler returns the router for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

func (s *Server) routes() {
	api := s.engine.Group("/api/market")
	api.GET("/data/:item", s.handleItemData)
	api.POST("/data/batch", s.handleBatch)
	api.GET("/snapshot/:item", s.handleSnapshot)
	api.GET("/catalogue", s.handleCatalogue)

	s.engine.GET("/health", s.handleHealth)
}

// handleItemData serves the raw order/statistics payload pair for one item.
// Statistics render as null when the upstream statistics fetch was degraded.
func (s *Server) handleItemData(c *gin.Context) {
	d, err := s.agg.FetchItem(c.Request.Context(), c.Param("item"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":     d.Orders,
		"statistics": d.Statistics,
	})
}

type batchRequest struct {
	Items []string `json:"items" binding:"required"`
}

// handleBatch serves raw payload pairs for a list of items. Per-item failures
// are embedded in the response; the request itself always succeeds once the
// body parses.
func (s *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items must be a list of item slugs"})
		return
	}

	results := make(map[string]gin.H, len(req.Items))
	for _, slug := range req.Items {
		d, err := s.agg.FetchItem(c.Request.Context(), slug)
		if err != nil {
			results[slug] = gin.H{"error": err.Error()}
			continue
		}
		results[slug] = gin.H{
			"orders":     d.Orders,
			"statistics": d.Statistics,
		}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) handleSnapshot(c *gin.Context) {
	snap, err := s.agg.Aggregate(c.Request.Context(), c.Param("item"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// handleCatalogue serves the configured item list from the snapshot cache.
// refresh=1 forces a rebuild. A run where every item failed maps to 503 so
// consumers see a retryable condition.
func (s *Server) handleCatalogue(c *gin.Context) {
	force := c.Query("refresh") == "1"
	results, err := s.agg.Catalogue(c.Request.Context(), force)
	if err != nil {
		if errors.Is(err, aggregate.ErrNoData) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"queue_depth":     s.disp.Pending(),
		"cached_items":    s.agg.CachedItems(),
		"catalogue_items": len(s.agg.Items()),
	})
}

// errorStatus maps an aggregation error to an HTTP status: upstream statuses
// pass through, everything else (transport, context) is a 500.
func errorStatus(err error) int {
	var se *market.StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}
