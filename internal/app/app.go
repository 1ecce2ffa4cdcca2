package app

import (
	"modreport/config"
	"modreport/internal/controllers"
	"modreport/internal/database"
	"modreport/internal/handlers/middleware"
	"modreport/internal/logger"
	"modreport/internal/repositories"
	"modreport/internal/services"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	svcs := services.New(db, config)
	ctrls := controllers.New(svcs, repos)
	mw := middleware.New(db, config, repos, svcs.Session)

	app := &App{
		Database:    db,
		Middleware:  mw,
		Config:      config,
		Services:    svcs,
		Repos:       repos,
		Controllers: ctrls,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Session,
		a.Services.PDF,
		a.Services.Report,
		a.Repos.User,
		a.Repos.Shift,
		a.Repos.Record,
		a.Repos.Comment,
		a.Repos.Search,
		a.Controllers.Auth,
		a.Controllers.Shift,
		a.Controllers.Record,
		a.Controllers.Report,
		a.Controllers.Search,
		a.Controllers.Admin,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
