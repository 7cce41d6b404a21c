package repository

import (
	"errors"

	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = utils.NewID()
	}
	return r.db.Create(restaurant).Error
}

func (r *RestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("id = ?", id).First(&restaurant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) GetByName(name string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("name = ?", name).First(&restaurant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) GetAll(sort []SortField, offset, limit int) ([]*models.Restaurant, error) {
	var restaurants []*models.Restaurant
	q := applySort(r.db, sort)
	err := q.Offset(offset).Limit(limit).Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(id string) error {
	return r.db.Delete(&models.Restaurant{}, "id = ?", id).Error
}
