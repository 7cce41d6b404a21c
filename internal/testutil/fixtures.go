package testutil

import (
	"testing"
	"time"

	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"gorm.io/gorm"
)

// TestJWTSecret is the secret used to sign tokens in tests.
const TestJWTSecret = "test-secret-key-for-tests-only"

// CreateTestUser inserts a user with a hashed password and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, username, email, password string, roles []string) *models.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if roles == nil {
		roles = []string{models.RoleUser}
	}

	user := &models.User{
		ID:           utils.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin inserts a user carrying both the user and admin roles.
func CreateTestAdmin(t *testing.T, db *gorm.DB, username, email, password string) *models.User {
	return CreateTestUser(t, db, username, email, password, []string{models.RoleUser, models.RoleAdmin})
}

// CreateTestRestaurant inserts a restaurant and returns it.
func CreateTestRestaurant(t *testing.T, db *gorm.DB, name string) *models.Restaurant {
	restaurant := &models.Restaurant{
		ID:           utils.NewID(),
		Name:         name,
		Address:      "12 Test Street, Testville",
		Phone:        "+33123456789",
		OpeningHours: "Mon-Sun 9:00-22:00",
	}
	if err := db.Create(restaurant).Error; err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}
	return restaurant
}

// CreateTestMenu inserts a menu attached to the given restaurant.
func CreateTestMenu(t *testing.T, db *gorm.DB, restaurantID, name string, price float64, category string) *models.Menu {
	menu := &models.Menu{
		ID:           utils.NewID(),
		RestaurantID: restaurantID,
		Name:         name,
		Description:  "A dish prepared for testing purposes",
		Price:        price,
		Category:     category,
	}
	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("Failed to create test menu: %v", err)
	}
	return menu
}

// TokenFor signs a JWT for the given user with the test secret.
func TokenFor(t *testing.T, user *models.User) string {
	token, err := utils.GenerateToken(user, TestJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}
	return token
}
