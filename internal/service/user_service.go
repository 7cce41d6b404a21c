package service

import (
	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserPatch carries the optional fields of a user update. Nil fields
// are left untouched.
type UserPatch struct {
	Email    *string
	Username *string
	Password *string
	Roles    []string
}

// Register creates a user with a hashed password and the default role
// set. Email collisions are reported before username collisions.
func (s *UserService) Register(email, username, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		logger.Log.Warn("Registration rejected: email already in use",
			zap.String("email", email),
		)
		return nil, apperr.BadRequest("Email already in use")
	}

	existing, err = s.userRepo.GetByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		logger.Log.Warn("Registration rejected: username already in use",
			zap.String("username", username),
		)
		return nil, apperr.BadRequest("Username already in use")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        []string{models.RoleUser},
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByEmail returns the user with the given email, or nil when no
// such user exists. Login uses the nil result to mask which credential
// check failed.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *UserService) GetAll() ([]*models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	if !utils.IsValidID(id) {
		return nil, apperr.BadRequest("Invalid user ID format")
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

// Update applies the non-nil patch fields and returns the updated
// record. Changed emails and usernames are re-checked for uniqueness,
// excluding the user being updated.
func (s *UserService) Update(id string, patch UserPatch) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(*patch.Email)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.BadRequest("Email already in use")
		}
		user.Email = *patch.Email
	}
	if patch.Username != nil && *patch.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(*patch.Username)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.BadRequest("Username already in use")
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		hashed, err := utils.HashPassword(*patch.Password)
		if err != nil {
			logger.Log.Error("Failed to hash password", zap.Error(err))
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = hashed
	}
	if patch.Roles != nil {
		user.Roles = patch.Roles
	}

	if err := s.userRepo.Save(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("User updated", zap.String("user_id", id))

	return user, nil
}

// Delete removes the user permanently and returns the deleted record.
func (s *UserService) Delete(id string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete user",
			zap.String("user_id", id),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("User deleted", zap.String("user_id", id))

	return user, nil
}
