package handler

import (
	"fmt"
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

type MenuHandler struct {
	menuService *service.MenuService
	auditLog    *audit.Log
}

func NewMenuHandler(menuService *service.MenuService, auditLog *audit.Log) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		auditLog:    auditLog,
	}
}

// menuSortFields is the allow-list for the menu sort query, in the
// order the error message advertises them.
var menuSortFields = []string{"category", "price"}

// parseMenuSort accepts a comma-separated list of field:direction
// pairs, e.g. "category:asc,price:desc". Unknown fields are rejected,
// naming the field and the allow-list. Only the literal "desc" selects
// descending order.
func parseMenuSort(query string) ([]repository.SortField, error) {
	if query == "" {
		return nil, nil
	}

	allowed := func(field string) bool {
		for _, f := range menuSortFields {
			if f == field {
				return true
			}
		}
		return false
	}

	var sort []repository.SortField
	for _, pair := range strings.Split(query, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		field, dir, _ := strings.Cut(pair, ":")
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !allowed(field) {
			return nil, apperr.BadRequest(fmt.Sprintf(
				"Sorting by '%s' is not allowed. Allowed fields: %s",
				field, strings.Join(menuSortFields, ", "),
			))
		}
		sort = append(sort, repository.SortField{
			Field: field,
			Desc:  strings.TrimSpace(dir) == "desc",
		})
	}

	return sort, nil
}

// GetAll handles GET /api/menus (public, paginated, sortable).
func (h *MenuHandler) GetAll(c *gin.Context) {
	sort, err := parseMenuSort(c.Query("sort"))
	if err != nil {
		c.Error(err)
		return
	}

	page, limit, err := pagination(c)
	if err != nil {
		c.Error(err)
		return
	}

	menus, err := h.menuService.GetAll(sort, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, menus)
}

// GetByID handles GET /api/menus/:id (public).
func (h *MenuHandler) GetByID(c *gin.Context) {
	menu, err := h.menuService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetByRestaurant handles GET /api/menus/by-restaurant/:restaurantId
// (public).
func (h *MenuHandler) GetByRestaurant(c *gin.Context) {
	menus, err := h.menuService.GetMenusByRestaurant(c.Param("restaurantId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// Create handles POST /api/menus (admin only).
func (h *MenuHandler) Create(c *gin.Context) {
	var req validation.MenuCreationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateMenuCreation(&req); err != nil {
		c.Error(err)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	category := ""
	if req.Category != nil {
		category = *req.Category
	}

	menu, err := h.menuService.Add(req.Name, description, *req.Price, req.RestaurantID, category)
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "create", menu.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu created successfully",
		"menu":    menu,
	})
}

// Update handles PUT /api/menus/:id (admin only).
func (h *MenuHandler) Update(c *gin.Context) {
	var req validation.MenuUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateMenuUpdate(&req); err != nil {
		c.Error(err)
		return
	}

	menu, err := h.menuService.Update(c.Param("id"), service.MenuPatch{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "update", menu.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu updated successfully",
		"menu":    menu,
	})
}

// Delete handles DELETE /api/menus/:id (admin only).
func (h *MenuHandler) Delete(c *gin.Context) {
	menu, err := h.menuService.Delete(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "delete", menu.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu deleted successfully",
		"menu":    menu,
	})
}

func (h *MenuHandler) recordAudit(c *gin.Context, action, resourceID string) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return
	}
	if err := h.auditLog.Record(principal.ID, principal.Username, action, "menu", resourceID); err != nil {
		logger.Log.Warn("Failed to record audit entry", zap.Error(err))
	}
}
