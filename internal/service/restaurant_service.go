package service

import (
	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"go.uber.org/zap"
)

type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// RestaurantPatch carries the optional fields of a restaurant update.
type RestaurantPatch struct {
	Name         *string
	Address      *string
	Phone        *string
	OpeningHours *string
}

// Add creates a restaurant after checking the global name invariant.
func (s *RestaurantService) Add(name, address, phone, openingHours string) (*models.Restaurant, error) {
	existing, err := s.restaurantRepo.GetByName(name)
	if err != nil {
		logger.Log.Error("Failed to check restaurant name",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		logger.Log.Warn("Restaurant creation rejected: duplicate name",
			zap.String("name", name),
		)
		return nil, apperr.BadRequest("Name for this restaurant is already in use")
	}

	restaurant := &models.Restaurant{
		Name:         name,
		Address:      address,
		Phone:        phone,
		OpeningHours: openingHours,
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		logger.Log.Error("Failed to create restaurant",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID),
		zap.String("name", name),
	)

	return restaurant, nil
}

// GetAll returns one page of restaurants. Limits above 100 are clamped
// silently; page/limit below 1 fail before the datastore is touched.
func (s *RestaurantService) GetAll(sort []repository.SortField, page, limit int) ([]*models.Restaurant, error) {
	offset, limit, err := pageWindow(page, limit)
	if err != nil {
		return nil, err
	}
	restaurants, err := s.restaurantRepo.GetAll(sort, offset, limit)
	if err != nil {
		logger.Log.Error("Failed to fetch restaurants", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return restaurants, nil
}

func (s *RestaurantService) GetByID(id string) (*models.Restaurant, error) {
	if !utils.IsValidID(id) {
		return nil, apperr.BadRequest("Invalid restaurant ID format")
	}
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if restaurant == nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

func (s *RestaurantService) GetByName(name string) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByName(name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return restaurant, nil
}

// Update applies the non-nil patch fields. A supplied name is
// re-checked for uniqueness, excluding the restaurant being updated.
func (s *RestaurantService) Update(id string, patch RestaurantPatch) (*models.Restaurant, error) {
	restaurant, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		existing, err := s.restaurantRepo.GetByName(*patch.Name)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.BadRequest("Name for this restaurant is already in use")
		}
		restaurant.Name = *patch.Name
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}
	if patch.OpeningHours != nil {
		restaurant.OpeningHours = *patch.OpeningHours
	}

	if err := s.restaurantRepo.Save(restaurant); err != nil {
		logger.Log.Error("Failed to update restaurant",
			zap.String("restaurant_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Restaurant updated", zap.String("restaurant_id", id))

	return restaurant, nil
}

// Delete removes the restaurant and returns the deleted record. Menus
// referencing it are left in place; there is no cascade.
func (s *RestaurantService) Delete(id string) (*models.Restaurant, error) {
	restaurant, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete restaurant",
			zap.String("restaurant_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Restaurant deleted", zap.String("restaurant_id", id))

	return restaurant, nil
}
