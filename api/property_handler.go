package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/daypass/daypass-backend/catalog"
	"github.com/gin-gonic/gin"
)

type PropertyService interface {
	ListActiveProperties(ctx context.Context) ([]catalog.Property, error)
	FindProperty(ctx context.Context, id string) (catalog.Property, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]catalog.Property, error)
}

type PropertyHandler struct {
	service PropertyService
}

func NewPropertyHandler(service PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/nearby", h.Nearby)
	rg.GET("/:id", h.GetByID)
}

func (h *PropertyHandler) List(c *gin.Context) {
	if properties, err := h.service.ListActiveProperties(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve properties",
		})
	} else {
		c.IndentedJSON(http.StatusOK, properties)
	}
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	property, err := h.service.FindProperty(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch property",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, property)
}

func (h *PropertyHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse lat"})
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse lon"})
		return
	}

	radiusKm := 10.0

	if radiusQuery := c.Query("radiusKm"); len(radiusQuery) != 0 {
		radiusKm, err = strconv.ParseFloat(radiusQuery, 64)

		if err != nil || radiusKm <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse radiusKm"})
			return
		}
	}

	properties, err := h.service.FindNearby(c.Request.Context(), lat, lon, radiusKm)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve properties"})
		return
	}

	c.IndentedJSON(http.StatusOK, properties)
}
