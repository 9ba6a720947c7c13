package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/service/airports"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/hubs", h.hubs)
	router.GET("/:code", h.get)
}

// RegisterMeta mounts the route and stats endpoints outside the /airports
// group.
func (h *AirportHandler) RegisterMeta(router *gin.RouterGroup) {
	router.GET("/routes/:from/:to", h.route)
	router.GET("/stats/summary", h.stats)
}

// list serves GET /airports. Supports ?min_gates=N and
// ?sort=population&order=asc|desc. The modes are mutually exclusive:
// min_gates takes precedence and sort is ignored when both are present.
func (h *AirportHandler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result []domain.Airport
		err    error
	)

	if raw, ok := c.GetQuery("min_gates"); ok {
		minGates, convErr := strconv.Atoi(raw)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_gates"})
			return
		}
		result, err = h.service.FilterByMinGates(ctx, minGates)
	} else if c.Query("sort") == "population" {
		result, err = h.service.SortByPopulation(ctx, c.DefaultQuery("order", "desc") == "desc")
	} else {
		result, err = h.service.List(ctx)
	}

	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AirportHandler) hubs(c *gin.Context) {
	hubs, err := h.service.ListHubs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hubs)
}

func (h *AirportHandler) get(c *gin.Context) {
	airport, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) route(c *gin.Context) {
	route, err := h.service.Route(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *AirportHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
