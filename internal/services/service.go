package services

import (
	"modreport/config"
	"modreport/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Session     *SessionService
	PDF         *PDFService
	Report      *ReportService
}

func New(db database.DB, config config.Config) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Session:     NewSessionService(db, config),
		PDF:         NewPDFService(config),
		Report:      NewReportService(),
	}
}
