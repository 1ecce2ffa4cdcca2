package adminController

import (
	"context"
	"errors"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
}

type AdminController struct {
	userRepo repositories.UserRepository
	log      logger.Logger
}

type AdminControllerInterface interface {
	ListUsers(ctx context.Context) ([]UserProfile, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, request *UpdateUserRequest) (*User, error)
}

func New(repos repositories.Repository) AdminControllerInterface {
	return &AdminController{
		userRepo: repos.User,
		log:      logger.New("adminController"),
	}
}

func (c *AdminController) ListUsers(ctx context.Context) ([]UserProfile, error) {
	log := logger.NewWithContext(ctx, "adminController").Function("ListUsers")

	users, err := c.userRepo.List(ctx)
	if err != nil {
		return nil, log.Err("failed to list users", err)
	}

	profiles := make([]UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ToProfile())
	}

	return profiles, nil
}

func (c *AdminController) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	request *UpdateUserRequest,
) (*User, error) {
	log := logger.NewWithContext(ctx, "adminController").Function("UpdateUser")

	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to load user", err, "userID", userID)
	}

	if request.Name != nil {
		if *request.Name == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		user.Name = *request.Name
	}

	if request.JobTitle != nil {
		user.JobTitle = *request.JobTitle
	}

	if request.IsAdmin != nil {
		user.IsAdmin = *request.IsAdmin
	}

	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, log.Err("failed to update user", err, "userID", userID)
	}

	log.Info("user updated by admin", "userID", userID)
	return user, nil
}
