package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"techpulse/internal/app"
	"techpulse/internal/models"
	"techpulse/internal/tasks"
)

const internalErrorMessage = "internal server error"

type APIHandler struct {
	App *app.App
}

// RegisterRoutes mounts the API surface on the router.
func RegisterRoutes(r *gin.Engine, h *APIHandler) {
	r.GET("/health", h.HealthHandler)

	v1 := r.Group("/api/v1")
	v1.GET("/content", h.ListContentHandler)
	v1.POST("/content/generate", h.GenerateInitialHandler)
	v1.GET("/content/generate", h.GenerateHourlyHandler)
	v1.PUT("/content/generate", h.StartSchedulerHandler)
	v1.DELETE("/content/generate", h.StopSchedulerHandler)
	v1.POST("/content/discover", h.DiscoverHandler)
	v1.POST("/content/:id/engagement", h.EngagementHandler)
	v1.POST("/init", h.InitHandler)
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	counts := h.App.Store.CountContent(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok", "counts": counts})
}

// ListContentHandler serves the content listing for one type, memoized for
// the cache TTL.
func (h *APIHandler) ListContentHandler(c *gin.Context) {
	typeParam := c.Query("type")
	if typeParam == "" {
		BadRequest(c, "missing required query parameter: type")
		return
	}
	contentType, err := models.ParseContentType(typeParam)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	cacheKey := "content:" + string(contentType)
	if cached, ok := h.App.Cache.Get(cacheKey); ok {
		c.JSON(http.StatusOK, gin.H{"data": cached})
		return
	}

	items, err := h.App.Store.ListContent(c.Request.Context(), contentType)
	if err != nil {
		log.Errorf("listing %s content failed: %v", contentType, err)
		Internal(c, internalErrorMessage)
		return
	}

	h.App.Cache.Set(cacheKey, items)
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GenerateInitialHandler seeds the catalog with the initial AI batch. The
// work is queued when a job client is configured, otherwise run inline.
func (h *APIHandler) GenerateInitialHandler(c *gin.Context) {
	if h.App.JobClient != nil {
		if _, err := h.App.JobClient.Enqueue(c.Request.Context(), tasks.NewContentGenerateInitialTask()); err != nil {
			log.Errorf("enqueueing initial generation failed: %v", err)
			Internal(c, internalErrorMessage)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": "initial content generation queued"})
		return
	}

	if err := h.App.Generator.GenerateInitial(c.Request.Context()); err != nil {
		log.Errorf("initial generation failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	h.App.Cache.Purge()
	c.JSON(http.StatusOK, gin.H{"data": "initial content generated"})
}

// GenerateHourlyHandler runs one hourly top-up batch.
func (h *APIHandler) GenerateHourlyHandler(c *gin.Context) {
	if h.App.JobClient != nil {
		if _, err := h.App.JobClient.Enqueue(c.Request.Context(), tasks.NewContentGenerateHourlyTask()); err != nil {
			log.Errorf("enqueueing hourly generation failed: %v", err)
			Internal(c, internalErrorMessage)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": "hourly content generation queued"})
		return
	}

	if err := h.App.Generator.GenerateHourly(c.Request.Context()); err != nil {
		log.Errorf("hourly generation failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	h.App.Cache.Purge()
	c.JSON(http.StatusOK, gin.H{"data": "hourly content generated"})
}

func (h *APIHandler) StartSchedulerHandler(c *gin.Context) {
	if err := h.App.Scheduler.Start(); err != nil {
		log.Errorf("starting scheduler failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "scheduler started"})
}

func (h *APIHandler) StopSchedulerHandler(c *gin.Context) {
	h.App.Scheduler.Stop()
	c.JSON(http.StatusOK, gin.H{"data": "scheduler stopped"})
}

// DiscoverHandler triggers one full aggregation cycle.
func (h *APIHandler) DiscoverHandler(c *gin.Context) {
	if h.App.JobClient != nil {
		if _, err := h.App.JobClient.Enqueue(c.Request.Context(), tasks.NewContentDiscoverTask()); err != nil {
			log.Errorf("enqueueing discovery failed: %v", err)
			Internal(c, internalErrorMessage)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": "content discovery queued"})
		return
	}

	items, err := h.App.Aggregator.AutoDiscover(c.Request.Context())
	if err != nil {
		log.Errorf("discovery failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	h.App.Cache.Purge()
	c.JSON(http.StatusOK, gin.H{"data": items})
}

type engagementRequest struct {
	Action string `json:"action"`
}

// EngagementHandler records one view/like/share/comment action against a
// content item.
func (h *APIHandler) EngagementHandler(c *gin.Context) {
	contentID := c.Param("id")

	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	err := h.App.Analytics.Track(c.Request.Context(), contentID, req.Action)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"data": "engagement recorded"})
	case errors.Is(err, models.ErrNotFound):
		NotFound(c, "content not found: "+contentID)
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, err.Error())
	default:
		log.Errorf("tracking engagement failed: %v", err)
		Internal(c, internalErrorMessage)
	}
}

// InitHandler seeds the catalog and starts the hourly scheduler in one call.
func (h *APIHandler) InitHandler(c *gin.Context) {
	if h.App.JobClient != nil {
		if _, err := h.App.JobClient.Enqueue(c.Request.Context(), tasks.NewContentGenerateInitialTask()); err != nil {
			log.Errorf("enqueueing initial generation failed: %v", err)
			Internal(c, internalErrorMessage)
			return
		}
		if err := h.App.Scheduler.Start(); err != nil {
			log.Errorf("starting scheduler failed: %v", err)
			Internal(c, internalErrorMessage)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"data": "initialization queued, scheduler started"})
		return
	}

	if err := h.App.Generator.GenerateInitial(c.Request.Context()); err != nil {
		log.Errorf("initial generation failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	if err := h.App.Scheduler.Start(); err != nil {
		log.Errorf("starting scheduler failed: %v", err)
		Internal(c, internalErrorMessage)
		return
	}
	h.App.Cache.Purge()
	c.JSON(http.StatusOK, gin.H{"data": "initialization complete, scheduler started"})
}
