package repositories

import (
	"context"

	"modreport/internal/database"
	"modreport/internal/logger"
	. "modreport/internal/models"

	"github.com/google/uuid"
)

type ReportCommentRepository interface {
	Create(ctx context.Context, comment *ReportComment) error
	ListByShift(ctx context.Context, shiftID uuid.UUID) ([]ReportComment, error)
}

type reportCommentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReportCommentRepository(db database.DB) ReportCommentRepository {
	return &reportCommentRepository{
		db:  db,
		log: logger.New("reportCommentRepository"),
	}
}

func (r *reportCommentRepository) Create(ctx context.Context, comment *ReportComment) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(comment).Error; err != nil {
		return log.Err("failed to create report comment", err, "shiftID", comment.ShiftID)
	}

	return nil
}

func (r *reportCommentRepository) ListByShift(
	ctx context.Context,
	shiftID uuid.UUID,
) ([]ReportComment, error) {
	log := r.log.Function("ListByShift")

	var comments []ReportComment
	err := r.db.SQLWithContext(ctx).
		Preload("Author").
		Where("shift_id = ?", shiftID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, log.Err("failed to list report comments", err, "shiftID", shiftID)
	}

	return comments, nil
}
