package repository

import (
	"errors"

	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Create(menu *models.Menu) error {
	if menu.ID == "" {
		menu.ID = utils.NewID()
	}
	return r.db.Create(menu).Error
}

func (r *MenuRepository) GetByID(id string) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.Where("id = ?", id).First(&menu).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &menu, nil
}

func (r *MenuRepository) GetAll(sort []SortField, offset, limit int) ([]*models.Menu, error) {
	var menus []*models.Menu
	q := applySort(r.db, sort)
	err := q.Offset(offset).Limit(limit).Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepository) GetByRestaurant(restaurantID string) ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// FindByRestaurantAndName looks up a menu item by its unique
// (restaurant, name) pair.
func (r *MenuRepository) FindByRestaurantAndName(restaurantID, name string) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.Where("restaurant_id = ? AND name = ?", restaurantID, name).First(&menu).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &menu, nil
}

func (r *MenuRepository) Save(menu *models.Menu) error {
	return r.db.Save(menu).Error
}

func (r *MenuRepository) Delete(id string) error {
	return r.db.Delete(&models.Menu{}, "id = ?", id).Error
}
