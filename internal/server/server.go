package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobagg/internal/cache"
	"github.com/MrJJimenez/jobagg/internal/engine"
	"github.com/MrJJimenez/jobagg/internal/metrics"
	"github.com/MrJJimenez/jobagg/internal/models"
)

// Server is the HTTP request boundary: it validates incoming payloads,
// consults the result cache, and drives the aggregation engine.
type Server struct {
	engine *engine.Engine
	cache  cache.Cache
	log    zerolog.Logger
}

func New(eng *engine.Engine, resultCache cache.Cache, log zerolog.Logger) *Server {
	return &Server{engine: eng, cache: resultCache, log: log}
}

// Router builds the gin routing table.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/search", s.handleSearch)

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearch(c *gin.Context) {
	requestID := uuid.NewString()
	log := s.log.With().Str("request_id", requestID).Logger()

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch := "scoped"
	if req.IsRemote {
		branch = "remote"
	}
	metrics.SearchesTotal.WithLabelValues(branch).Inc()

	key := cache.Key(req)
	if resp, ok := s.cache.Get(c.Request.Context(), key); ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		log.Debug().Str("key", key).Msg("cache hit")
		c.JSON(http.StatusOK, resp)
		return
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	result, err := s.engine.Search(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("aggregation aborted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search aborted"})
		return
	}

	resp := engine.Paginate(result, req.Page, req.PageSize)
	s.cache.Set(c.Request.Context(), key, &resp)

	log.Info().
		Strs("skills", req.Skills).
		Int("total", resp.Total).
		Int("returned", resp.Returned).
		Bool("fallback", resp.Fallback).
		Msg("search completed")

	c.JSON(http.StatusOK, resp)
}
