package middleware

import (
	"modreport/config"
	"modreport/internal/database"
	"modreport/internal/logger"
	"modreport/internal/repositories"
	"modreport/internal/services"
)

type Middleware struct {
	DB             database.DB
	userRepo       repositories.UserRepository
	sessionService *services.SessionService
	Config         config.Config
	log            logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	sessionService *services.SessionService,
) Middleware {
	return Middleware{
		DB:             db,
		userRepo:       repos.User,
		sessionService: sessionService,
		Config:         config,
		log:            logger.New("middleware"),
	}
}
