package repositories

import (
	"context"

	"modreport/internal/database"
	"modreport/internal/logger"
	. "modreport/internal/models"
)

// ShiftRecordRepository persists the child-record kinds that hang off a shift.
type ShiftRecordRepository interface {
	CreateIncident(ctx context.Context, incident *Incident) error
	CreateDowntime(ctx context.Context, downtime *Downtime) error
	CreateGuestOpportunity(ctx context.Context, opportunity *GuestOpportunity) error
	CreateRoomInspection(ctx context.Context, inspection *RoomInspection) error
	CreateOutletInspection(ctx context.Context, inspection *OutletInspection) error
	CreateHighPaw(ctx context.Context, highPaw *HighPaw) error
	CreateModMeal(ctx context.Context, meal *ModMeal) error
}

type shiftRecordRepository struct {
	db  database.DB
	log logger.Logger
}

func NewShiftRecordRepository(db database.DB) ShiftRecordRepository {
	return &shiftRecordRepository{
		db:  db,
		log: logger.New("shiftRecordRepository"),
	}
}

func (r *shiftRecordRepository) CreateIncident(ctx context.Context, incident *Incident) error {
	log := r.log.Function("CreateIncident")

	if err := r.db.SQLWithContext(ctx).Create(incident).Error; err != nil {
		return log.Err("failed to create incident", err, "shiftID", incident.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateDowntime(ctx context.Context, downtime *Downtime) error {
	log := r.log.Function("CreateDowntime")

	if err := r.db.SQLWithContext(ctx).Create(downtime).Error; err != nil {
		return log.Err("failed to create downtime", err, "shiftID", downtime.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateGuestOpportunity(
	ctx context.Context,
	opportunity *GuestOpportunity,
) error {
	log := r.log.Function("CreateGuestOpportunity")

	if err := r.db.SQLWithContext(ctx).Create(opportunity).Error; err != nil {
		return log.Err("failed to create guest opportunity", err, "shiftID", opportunity.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateRoomInspection(
	ctx context.Context,
	inspection *RoomInspection,
) error {
	log := r.log.Function("CreateRoomInspection")

	if err := r.db.SQLWithContext(ctx).Create(inspection).Error; err != nil {
		return log.Err("failed to create room inspection", err, "shiftID", inspection.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateOutletInspection(
	ctx context.Context,
	inspection *OutletInspection,
) error {
	log := r.log.Function("CreateOutletInspection")

	if err := r.db.SQLWithContext(ctx).Create(inspection).Error; err != nil {
		return log.Err("failed to create outlet inspection", err, "shiftID", inspection.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateHighPaw(ctx context.Context, highPaw *HighPaw) error {
	log := r.log.Function("CreateHighPaw")

	if err := r.db.SQLWithContext(ctx).Create(highPaw).Error; err != nil {
		return log.Err("failed to create high paw", err, "shiftID", highPaw.ShiftID)
	}

	return nil
}

func (r *shiftRecordRepository) CreateModMeal(ctx context.Context, meal *ModMeal) error {
	log := r.log.Function("CreateModMeal")

	if err := r.db.SQLWithContext(ctx).Create(meal).Error; err != nil {
		return log.Err("failed to create mod meal", err, "shiftID", meal.ShiftID)
	}

	return nil
}
