package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcloudair/airports/internal/service/network"
)

type NetworkHandler struct {
	service network.NetworkUseCase
}

func NewNetworkHandler(service network.NetworkUseCase) *NetworkHandler {
	return &NetworkHandler{service: service}
}

func (h *NetworkHandler) Register(router *gin.RouterGroup) {
	router.GET("/legs", h.legs)
	router.GET("/stats", h.stats)
	router.GET("/options/:from/:to", h.routeOptions)
}

func (h *NetworkHandler) legs(c *gin.Context) {
	legs, err := h.service.Legs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, legs)
}

func (h *NetworkHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *NetworkHandler) routeOptions(c *gin.Context) {
	options, err := h.service.RouteOptions(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
