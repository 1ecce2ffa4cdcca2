package controllers

import (
	"modreport/internal/repositories"
	"modreport/internal/services"

	adminController "modreport/internal/controllers/admin"
	authController "modreport/internal/controllers/auth"
	recordController "modreport/internal/controllers/records"
	reportController "modreport/internal/controllers/reports"
	searchController "modreport/internal/controllers/search"
	shiftController "modreport/internal/controllers/shifts"
)

type Controllers struct {
	Auth   authController.AuthControllerInterface
	Shift  shiftController.ShiftControllerInterface
	Record recordController.RecordControllerInterface
	Report reportController.ReportControllerInterface
	Search searchController.SearchControllerInterface
	Admin  adminController.AdminControllerInterface
}

func New(services services.Service, repos repositories.Repository) Controllers {
	return Controllers{
		Auth:   authController.New(repos),
		Shift:  shiftController.New(repos, services),
		Record: recordController.New(repos),
		Report: reportController.New(repos, services),
		Search: searchController.New(repos),
		Admin:  adminController.New(repos),
	}
}
