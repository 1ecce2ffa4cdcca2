package authController

import (
	"context"
	"errors"
	"time"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"
	"modreport/internal/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

type AuthController struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
	log      logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, request *RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	UpdateProfile(ctx context.Context, user *User, request *UpdateProfileRequest) (*User, error)
}

func New(repos repositories.Repository) AuthControllerInterface {
	return &AuthController{
		userRepo: repos.User,
		validate: validator.New(),
		log:      logger.New("authController"),
	}
}

func (c *AuthController) Register(
	ctx context.Context,
	request *RegisterRequest,
) (*User, error) {
	log := logger.NewWithContext(ctx, "authController").Function("Register")

	if err := c.validate.Struct(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid registration request", "error", err)
	}

	if _, err := c.userRepo.GetByEmail(ctx, request.Email); err == nil {
		return nil, log.ErrorWithType(ErrConflict, "email already registered", "email", request.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to check existing email", err)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
	}

	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, log.Err("failed to create user", err)
	}

	log.Info("user registered", "userID", user.ID)
	return user, nil
}

func (c *AuthController) Login(ctx context.Context, email, password string) (*User, error) {
	log := logger.NewWithContext(ctx, "authController").Function("Login")

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := c.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, log.Err("failed to look up user", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (c *AuthController) UpdateProfile(
	ctx context.Context,
	user *User,
	request *UpdateProfileRequest,
) (*User, error) {
	log := logger.NewWithContext(ctx, "authController").Function("UpdateProfile")

	if request.Name != nil {
		if *request.Name == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		user.Name = *request.Name
	}

	if request.JobTitle != nil {
		user.JobTitle = *request.JobTitle
	}

	if request.Timezone != nil {
		if *request.Timezone != "" {
			if _, err := time.LoadLocation(*request.Timezone); err != nil {
				return nil, log.ErrorWithType(
					ErrValidation,
					"unknown timezone",
					"timezone", *request.Timezone,
				)
			}
		}
		user.Timezone = *request.Timezone
	}

	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, log.Err("failed to update profile", err, "userID", user.ID)
	}

	return user, nil
}
