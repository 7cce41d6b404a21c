package service

import (
	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"go.uber.org/zap"
)

type MenuService struct {
	menuRepo       *repository.MenuRepository
	restaurantRepo *repository.RestaurantRepository
}

func NewMenuService(menuRepo *repository.MenuRepository, restaurantRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
	}
}

// MenuPatch carries the optional fields of a menu update.
type MenuPatch struct {
	Name         *string
	Description  *string
	Price        *float64
	RestaurantID *string
	Category     *string
}

// Add creates a menu item. The named restaurant must exist and the
// (restaurant, name) pair must be free. The existence check and the
// insert are not atomic; a restaurant deleted in between leaves an
// orphaned menu row.
func (s *MenuService) Add(name, description string, price float64, restaurantID, category string) (*models.Menu, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		logger.Log.Error("Failed to check restaurant existence",
			zap.String("restaurant_id", restaurantID),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}
	if restaurant == nil {
		return nil, apperr.BadRequest("Restaurant does not exist")
	}

	existing, err := s.menuRepo.FindByRestaurantAndName(restaurantID, name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		logger.Log.Warn("Menu creation rejected: duplicate name for restaurant",
			zap.String("restaurant_id", restaurantID),
			zap.String("name", name),
		)
		return nil, apperr.BadRequest("A menu with this name already exists for this restaurant")
	}

	menu := &models.Menu{
		Name:         name,
		Description:  description,
		Price:        price,
		RestaurantID: restaurantID,
		Category:     category,
	}

	if err := s.menuRepo.Create(menu); err != nil {
		logger.Log.Error("Failed to create menu",
			zap.String("restaurant_id", restaurantID),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Menu created",
		zap.String("menu_id", menu.ID),
		zap.String("restaurant_id", restaurantID),
	)

	return menu, nil
}

// GetAll returns one page of menus with the same paging contract as
// RestaurantService.GetAll.
func (s *MenuService) GetAll(sort []repository.SortField, page, limit int) ([]*models.Menu, error) {
	offset, limit, err := pageWindow(page, limit)
	if err != nil {
		return nil, err
	}
	menus, err := s.menuRepo.GetAll(sort, offset, limit)
	if err != nil {
		logger.Log.Error("Failed to fetch menus", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return menus, nil
}

func (s *MenuService) GetByID(id string) (*models.Menu, error) {
	if !utils.IsValidID(id) {
		return nil, apperr.BadRequest("Invalid menu ID format")
	}
	menu, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if menu == nil {
		return nil, apperr.NotFound("Menu not found")
	}
	return menu, nil
}

// GetMenusByRestaurant lists every menu item of one restaurant.
func (s *MenuService) GetMenusByRestaurant(restaurantID string) ([]*models.Menu, error) {
	if !utils.IsValidID(restaurantID) {
		return nil, apperr.BadRequest("Invalid restaurant ID format")
	}
	menus, err := s.menuRepo.GetByRestaurant(restaurantID)
	if err != nil {
		logger.Log.Error("Failed to fetch menus by restaurant",
			zap.String("restaurant_id", restaurantID),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}
	return menus, nil
}

// FindByRestaurantAndName returns the menu item with the given
// (restaurant, name) pair, or nil when none exists.
func (s *MenuService) FindByRestaurantAndName(restaurantID, name string) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByRestaurantAndName(restaurantID, name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return menu, nil
}

// Update applies the non-nil patch fields. When a name is supplied the
// (restaurant, name) invariant is re-checked against the target
// restaurant (the new one if supplied, else the item's current one),
// excluding the item being updated from the collision check.
func (s *MenuService) Update(id string, patch MenuPatch) (*models.Menu, error) {
	menu, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		targetRestaurantID := menu.RestaurantID
		if patch.RestaurantID != nil {
			targetRestaurantID = *patch.RestaurantID
		}
		existing, err := s.menuRepo.FindByRestaurantAndName(targetRestaurantID, *patch.Name)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.BadRequest("A menu with this name already exists for this restaurant")
		}
		menu.Name = *patch.Name
	}
	if patch.Description != nil {
		menu.Description = *patch.Description
	}
	if patch.Price != nil {
		menu.Price = *patch.Price
	}
	if patch.RestaurantID != nil {
		menu.RestaurantID = *patch.RestaurantID
	}
	if patch.Category != nil {
		menu.Category = *patch.Category
	}

	if err := s.menuRepo.Save(menu); err != nil {
		logger.Log.Error("Failed to update menu",
			zap.String("menu_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Menu updated", zap.String("menu_id", id))

	return menu, nil
}

// Delete removes the menu item and returns the deleted record.
func (s *MenuService) Delete(id string) (*models.Menu, error) {
	menu, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete menu",
			zap.String("menu_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Menu deleted", zap.String("menu_id", id))

	return menu, nil
}
