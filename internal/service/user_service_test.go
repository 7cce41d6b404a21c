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

type UserServiceTestSuite struct {
	suite.Suite
	testDB  *testutil.TestDatabase
	service *UserService
}

func (s *UserServiceTestSuite) SetupSuite() {
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.service = NewUserService(repository.NewUserRepository(s.testDB.DB))
}

func (s *UserServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *UserServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *UserServiceTestSuite) TestRegister() {
	user, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	s.True(utils.IsValidID(user.ID))
	s.Equal("alice@example.com", user.Email)
	s.Equal([]string{models.RoleUser}, user.Roles)
	s.NotEqual("supersecret", user.PasswordHash)

	ok, err := utils.VerifyPassword("supersecret", user.PasswordHash)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	_, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	_, err = s.service.Register("alice@example.com", "someoneelse", "supersecret")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(400, ae.Status)
	s.Equal("Email already in use", ae.Message)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	_, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	_, err = s.service.Register("other@example.com", "alice", "supersecret")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("Username already in use", ae.Message)
}

// When both credentials collide the email message wins.
func (s *UserServiceTestSuite) TestRegister_EmailCollisionReportedFirst() {
	_, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	_, err = s.service.Register("alice@example.com", "alice", "supersecret")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("Email already in use", ae.Message)
}

func (s *UserServiceTestSuite) TestGetByEmail_ReturnsNilWhenMissing() {
	user, err := s.service.GetByEmail("ghost@example.com")
	s.NoError(err)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestGetByID() {
	created, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	found, err := s.service.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal(created.Email, found.Email)
}

func (s *UserServiceTestSuite) TestGetByID_InvalidFormat() {
	_, err := s.service.GetByID("not-a-valid-id")
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(400, ae.Status)
	s.Equal("Invalid user ID format", ae.Message)
}

func (s *UserServiceTestSuite) TestGetByID_NotFound() {
	_, err := s.service.GetByID(utils.NewID())
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(404, ae.Status)
	s.Equal("User not found", ae.Message)
}

func (s *UserServiceTestSuite) TestUpdate() {
	created, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	newEmail := "alice2@example.com"
	updated, err := s.service.Update(created.ID, UserPatch{Email: &newEmail})
	s.Require().NoError(err)
	s.Equal(newEmail, updated.Email)
	s.Equal("alice", updated.Username)
}

// Re-submitting a user's own email must not trip the uniqueness check.
func (s *UserServiceTestSuite) TestUpdate_OwnEmailAllowed() {
	created, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	email := "alice@example.com"
	newName := "alice_two"
	_, err = s.service.Update(created.ID, UserPatch{Email: &email, Username: &newName})
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestUpdate_EmailTakenByOther() {
	_, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)
	bob, err := s.service.Register("bob@example.com", "bob", "supersecret")
	s.Require().NoError(err)

	taken := "alice@example.com"
	_, err = s.service.Update(bob.ID, UserPatch{Email: &taken})
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal("Email already in use", ae.Message)
}

func (s *UserServiceTestSuite) TestUpdate_RolesReplaced() {
	created, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	updated, err := s.service.Update(created.ID, UserPatch{Roles: []string{models.RoleUser, models.RoleAdmin}})
	s.Require().NoError(err)
	s.True(updated.HasRole(models.RoleAdmin))
}

func (s *UserServiceTestSuite) TestDelete() {
	created, err := s.service.Register("alice@example.com", "alice", "supersecret")
	s.Require().NoError(err)

	deleted, err := s.service.Delete(created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, deleted.ID)

	_, err = s.service.GetByID(created.ID)
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(404, ae.Status)
}

func (s *UserServiceTestSuite) TestDelete_NotFound() {
	_, err := s.service.Delete(utils.NewID())
	ae := apperr.As(err)
	s.Require().NotNil(ae)
	s.Equal(404, ae.Status)
	s.Equal("User not found", ae.Message)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
