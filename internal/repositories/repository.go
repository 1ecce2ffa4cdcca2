package repositories

import (
	"modreport/internal/database"
)

type Repository struct {
	User    UserRepository
	Shift   ShiftRepository
	Record  ShiftRecordRepository
	Comment ReportCommentRepository
	Search  SearchRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:    NewUserRepository(db), // user repo needs the valkey cache
		Shift:   NewShiftRepository(db),
		Record:  NewShiftRecordRepository(db),
		Comment: NewReportCommentRepository(db),
		Search:  NewSearchRepository(db),
	}
}
