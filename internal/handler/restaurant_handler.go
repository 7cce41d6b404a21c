package handler

import (
	"net/http"
	"strings"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/audit"
	"github.com/foodexpress/foodexpress-api/internal/middleware"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/service"
	"github.com/foodexpress/foodexpress-api/internal/validation"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	restaurantService *service.RestaurantService
	auditLog          *audit.Log
}

func NewRestaurantHandler(restaurantService *service.RestaurantService, auditLog *audit.Log) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		auditLog:          auditLog,
	}
}

// restaurantSortFields is the allow-list for the restaurant sort query.
var restaurantSortFields = map[string]bool{
	"name":    true,
	"address": true,
}

// parseRestaurantSort accepts a single field, optionally prefixed with
// "-" for descending. Unknown fields are silently ignored; menus reject
// them instead, and the asymmetry is kept deliberately.
func parseRestaurantSort(query string) []repository.SortField {
	if query == "" {
		return nil
	}
	desc := strings.HasPrefix(query, "-")
	field := strings.TrimPrefix(query, "-")
	if !restaurantSortFields[field] {
		return nil
	}
	return []repository.SortField{{Field: field, Desc: desc}}
}

// GetAll handles GET /api/restaurants (public, paginated, sortable).
func (h *RestaurantHandler) GetAll(c *gin.Context) {
	sort := parseRestaurantSort(c.Query("sort"))

	page, limit, err := pagination(c)
	if err != nil {
		c.Error(err)
		return
	}

	restaurants, err := h.restaurantService.GetAll(sort, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetByID handles GET /api/restaurants/:id (public).
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	restaurant, err := h.restaurantService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create handles POST /api/restaurants (admin only).
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req validation.RestaurantCreationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateRestaurantCreation(&req); err != nil {
		c.Error(err)
		return
	}

	restaurant, err := h.restaurantService.Add(req.Name, req.Address, req.Phone, req.OpeningHours)
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "create", restaurant.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant created successfully",
		"restaurant": restaurant,
	})
}

// Update handles PUT /api/restaurants/:id (admin only).
func (h *RestaurantHandler) Update(c *gin.Context) {
	var req validation.RestaurantUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateRestaurantUpdate(&req); err != nil {
		c.Error(err)
		return
	}

	restaurant, err := h.restaurantService.Update(c.Param("id"), service.RestaurantPatch{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "update", restaurant.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant updated successfully",
		"restaurant": restaurant,
	})
}

// Delete handles DELETE /api/restaurants/:id (admin only). Menus of the
// deleted restaurant are not cascaded.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	restaurant, err := h.restaurantService.Delete(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "delete", restaurant.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant deleted successfully",
		"restaurant": restaurant,
	})
}

func (h *RestaurantHandler) recordAudit(c *gin.Context, action, resourceID string) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return
	}
	if err := h.auditLog.Record(principal.ID, principal.Username, action, "restaurant", resourceID); err != nil {
		logger.Log.Warn("Failed to record audit entry", zap.Error(err))
	}
}
