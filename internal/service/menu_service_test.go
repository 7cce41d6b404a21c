package service

import (
	"testing"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/testutil"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/stretchr/testify/suite"
)

type MenuServiceTestSuite struct {
	suite.Suite
	testDB  *testutil.TestDatabase
	service *MenuService
}

func (s *MenuServiceTestSuite) SetupSuite() {
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.service = NewMenuService(
		repository.NewMenuRepository(s.testDB.DB),
		repository.NewRestaurantRepository(s.testDB.DB),
	)
}

func (s *MenuServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *MenuServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *MenuServiceTestSuite) restaurant(name string) *models.Restaurant {
	return testutil.CreateTestRestaurant(s.T(), s.testDB.DB, name)
}

func (s *MenuServiceTestSuite) TestAdd() {
	r := s.restaurant("Le Jardin")

	menu, err := s.service.Add("Salade Niçoise", "Tuna, olives and green beans", 12.5, r.ID, "Salads")
	s.Require().NoError(err)

	s.True(utils.IsValidID(menu.ID))
	s.Equal(r.ID, menu.RestaurantID)
	s.Equal(12.5, menu.Price)
}

func (s *MenuServiceTestSuite) TestAdd_RestaurantMissing() {
	_, err := s.service.Add("Salade", "A fine salad indeed", 10, utils.NewID(), "Salads")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(400, ae.Status)
	s.Equal("Restaurant does not exist", ae.Message)
}

func (s *MenuServiceTestSuite) TestAdd_DuplicateNameSameRestaurant() {
	r := s.restaurant("Le Jardin")

	_, err := s.service.Add("Salade", "A fine salad indeed", 10, r.ID, "Salads")
	s.Require().NoError(err)

	_, err = s.service.Add("Salade", "A different salad", 11, r.ID, "Salads")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("A menu with this name already exists for this restaurant", ae.Message)
}

// The (restaurant, name) pair is the unit of uniqueness; the same dish
// name is fine at another restaurant.
func (s *MenuServiceTestSuite) TestAdd_SameNameOtherRestaurant() {
	r1 := s.restaurant("Le Jardin")
	r2 := s.restaurant("Chez Marcel")

	_, err := s.service.Add("Salade", "A fine salad indeed", 10, r1.ID, "Salads")
	s.Require().NoError(err)

	_, err = s.service.Add("Salade", "A fine salad indeed", 10, r2.ID, "Salads")
	s.NoError(err)
}

func (s *MenuServiceTestSuite) TestGetByID_InvalidFormat() {
	_, err := s.service.GetByID("nope")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(400, ae.Status)
	s.Equal("Invalid menu ID format", ae.Message)
}

func (s *MenuServiceTestSuite) TestGetByID_NotFound() {
	_, err := s.service.GetByID(utils.NewID())
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(404, ae.Status)
	s.Equal("Menu not found", ae.Message)
}

func (s *MenuServiceTestSuite) TestGetMenusByRestaurant() {
	r1 := s.restaurant("Le Jardin")
	r2 := s.restaurant("Chez Marcel")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r1.ID, "Salade", 10, "Salads")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r1.ID, "Tartare", 15, "Mains")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r2.ID, "Soupe", 7, "Starters")

	menus, err := s.service.GetMenusByRestaurant(r1.ID)
	s.Require().NoError(err)
	s.Len(menus, 2)
	for _, m := range menus {
		s.Equal(r1.ID, m.RestaurantID)
	}
}

// An unknown but well-formed restaurant ID lists as empty, not 404.
func (s *MenuServiceTestSuite) TestGetMenusByRestaurant_UnknownID() {
	menus, err := s.service.GetMenusByRestaurant(utils.NewID())
	s.Require().NoError(err)
	s.Empty(menus)
}

func (s *MenuServiceTestSuite) TestGetMenusByRestaurant_InvalidFormat() {
	_, err := s.service.GetMenusByRestaurant("bad")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("Invalid restaurant ID format", ae.Message)
}

func (s *MenuServiceTestSuite) TestGetAll_Pagination() {
	r := s.restaurant("Le Jardin")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Aioli", 9, "Starters")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Bouillabaisse", 22, "Mains")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Crêpe", 6, "Desserts")

	byPrice := []repository.SortField{{Field: "price"}}
	page, err := s.service.GetAll(byPrice, 1, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("Crêpe", page[0].Name)
	s.Equal("Aioli", page[1].Name)
}

func (s *MenuServiceTestSuite) TestUpdate_RenameCollision() {
	r := s.restaurant("Le Jardin")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Salade", 10, "Salads")
	target := testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Tartare", 15, "Mains")

	taken := "Salade"
	_, err := s.service.Update(target.ID, MenuPatch{Name: &taken})
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("A menu with this name already exists for this restaurant", ae.Message)
}

// Keeping the current name while changing other fields must not
// collide with itself.
func (s *MenuServiceTestSuite) TestUpdate_OwnNameAllowed() {
	r := s.restaurant("Le Jardin")
	menu := testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Salade", 10, "Salads")

	name := "Salade"
	price := 11.5
	updated, err := s.service.Update(menu.ID, MenuPatch{Name: &name, Price: &price})
	s.Require().NoError(err)
	s.Equal(11.5, updated.Price)
}

// Moving an item to another restaurant re-checks the name there.
func (s *MenuServiceTestSuite) TestUpdate_MoveChecksTargetRestaurant() {
	r1 := s.restaurant("Le Jardin")
	r2 := s.restaurant("Chez Marcel")
	testutil.CreateTestMenu(s.T(), s.testDB.DB, r2.ID, "Salade", 9, "Salads")
	moving := testutil.CreateTestMenu(s.T(), s.testDB.DB, r1.ID, "Tartare", 15, "Mains")

	name := "Salade"
	_, err := s.service.Update(moving.ID, MenuPatch{Name: &name, RestaurantID: &r2.ID})
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("A menu with this name already exists for this restaurant", ae.Message)
}

func (s *MenuServiceTestSuite) TestDelete() {
	r := s.restaurant("Le Jardin")
	menu := testutil.CreateTestMenu(s.T(), s.testDB.DB, r.ID, "Salade", 10, "Salads")

	deleted, err := s.service.Delete(menu.ID)
	s.Require().NoError(err)
	s.Equal(menu.ID, deleted.ID)

	_, err = s.service.GetByID(menu.ID)
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(404, ae.Status)
}

func TestMenuServiceSuite(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}
