package repositories

import (
	"context"

	"modreport/internal/database"
	"modreport/internal/logger"
	. "modreport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Shift, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Shift, error)
	FindOpenByMod(ctx context.Context, modID uuid.UUID) (*Shift, error)
	Create(ctx context.Context, shift *Shift) error
	Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error
	ListClosed(ctx context.Context) ([]Shift, error)
	ReplaceEditors(ctx context.Context, shift *Shift, editors []User) error
	DeleteCascade(ctx context.Context, tx *gorm.DB, shift *Shift) error
}

type shiftRepository struct {
	db  database.DB
	log logger.Logger
}

func NewShiftRepository(db database.DB) ShiftRepository {
	return &shiftRepository{
		db:  db,
		log: logger.New("shiftRepository"),
	}
}

// GetByID loads a shift with its mod and editors, enough for access checks.
func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*Shift, error) {
	var shift Shift
	err := r.db.SQLWithContext(ctx).
		Preload("Mod").
		Preload("Editors").
		First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &shift, nil
}

// GetDetail loads a shift with every child collection for report rendering.
func (r *shiftRepository) GetDetail(ctx context.Context, id uuid.UUID) (*Shift, error) {
	var shift Shift
	err := r.db.SQLWithContext(ctx).
		Preload("Mod").
		Preload("Editors").
		Preload("Incidents", func(db *gorm.DB) *gorm.DB {
			return db.Order("incidents.incident_time asc")
		}).
		Preload("Downtimes", func(db *gorm.DB) *gorm.DB {
			return db.Order("downtimes.start_time asc")
		}).
		Preload("GuestOpportunities").
		Preload("RoomInspections").
		Preload("OutletInspections", func(db *gorm.DB) *gorm.DB {
			return db.Order("outlet_inspections.inspection_time asc")
		}).
		Preload("HighPaws").
		Preload("ModMeals").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("report_comments.created_at asc")
		}).
		Preload("Comments.Author").
		First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &shift, nil
}

func (r *shiftRepository) FindOpenByMod(ctx context.Context, modID uuid.UUID) (*Shift, error) {
	var shift Shift
	err := r.db.SQLWithContext(ctx).
		First(&shift, "mod_id = ? AND status = ?", modID, ShiftStatusOpen).Error
	if err != nil {
		return nil, err
	}

	return &shift, nil
}

func (r *shiftRepository) Create(ctx context.Context, shift *Shift) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(shift).Error; err != nil {
		return log.Err("failed to create shift", err, "modID", shift.ModID)
	}

	return nil
}

func (r *shiftRepository) Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	log := r.log.Function("Updates")

	err := r.db.SQLWithContext(ctx).
		Model(&Shift{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return log.Err("failed to update shift", err, "shiftID", id)
	}

	return nil
}

func (r *shiftRepository) ListClosed(ctx context.Context) ([]Shift, error) {
	log := r.log.Function("ListClosed")

	var shifts []Shift
	err := r.db.SQLWithContext(ctx).
		Preload("Mod").
		Where("status = ?", ShiftStatusClosed).
		Order("date desc").
		Order("created_at desc").
		Find(&shifts).Error
	if err != nil {
		return nil, log.Err("failed to list closed shifts", err)
	}

	return shifts, nil
}

func (r *shiftRepository) ReplaceEditors(ctx context.Context, shift *Shift, editors []User) error {
	log := r.log.Function("ReplaceEditors")

	err := r.db.SQLWithContext(ctx).
		Model(shift).
		Association("Editors").
		Replace(editors)
	if err != nil {
		return log.Err("failed to replace shift editors", err, "shiftID", shift.ID)
	}

	return nil
}

// DeleteCascade removes the shift, its child records, editor associations and
// comments inside the caller's transaction so no orphans survive.
func (r *shiftRepository) DeleteCascade(ctx context.Context, tx *gorm.DB, shift *Shift) error {
	log := r.log.Function("DeleteCascade")

	children := []any{
		&Incident{},
		&Downtime{},
		&GuestOpportunity{},
		&RoomInspection{},
		&OutletInspection{},
		&HighPaw{},
		&ModMeal{},
		&ReportComment{},
	}

	for _, child := range children {
		if err := tx.Where("shift_id = ?", shift.ID).Delete(child).Error; err != nil {
			return log.Err("failed to delete shift child records", err, "shiftID", shift.ID)
		}
	}

	if err := tx.Model(shift).Association("Editors").Clear(); err != nil {
		return log.Err("failed to clear shift editors", err, "shiftID", shift.ID)
	}

	if err := tx.Delete(shift).Error; err != nil {
		return log.Err("failed to delete shift", err, "shiftID", shift.ID)
	}

	return nil
}
