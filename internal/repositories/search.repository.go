package repositories

import (
	"context"
	"time"

	"modreport/internal/database"
	"modreport/internal/logger"
	. "modreport/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SearchFilters narrows a search across shifts and their child records. All
// fields are optional; date bounds are inclusive and apply to the shift date.
type SearchFilters struct {
	Query     string
	Status    string
	ModID     *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// IncidentHit is an incident row joined with its parent shift context.
type IncidentHit struct {
	ID           uuid.UUID      `json:"id"`
	ShiftID      uuid.UUID      `json:"shiftId"`
	Code         string         `json:"code"`
	IncidentTime datatypes.Time `json:"incidentTime"`
	Location     string         `json:"location"`
	Notes        string         `json:"notes"`
	ShiftDate    time.Time      `json:"shiftDate"`
	ShiftStatus  string         `json:"shiftStatus"`
	ModName      string         `json:"modName"`
}

type DowntimeHit struct {
	ID          uuid.UUID       `json:"id"`
	ShiftID     uuid.UUID       `json:"shiftId"`
	Outlet      string          `json:"outlet"`
	StartTime   datatypes.Time  `json:"startTime"`
	EndTime     *datatypes.Time `json:"endTime"`
	Reason      string          `json:"reason"`
	ShiftDate   time.Time       `json:"shiftDate"`
	ShiftStatus string          `json:"shiftStatus"`
	ModName     string          `json:"modName"`
}

type OpportunityHit struct {
	ID           uuid.UUID `json:"id"`
	ShiftID      uuid.UUID `json:"shiftId"`
	LastName     string    `json:"lastName"`
	Room         string    `json:"room"`
	Description  string    `json:"description"`
	Compensation string    `json:"compensation"`
	ShiftDate    time.Time `json:"shiftDate"`
	ShiftStatus  string    `json:"shiftStatus"`
	ModName      string    `json:"modName"`
}

type SearchRepository interface {
	SearchShifts(ctx context.Context, filters SearchFilters) ([]Shift, error)
	SearchIncidents(ctx context.Context, filters SearchFilters) ([]IncidentHit, error)
	SearchDowntimes(ctx context.Context, filters SearchFilters) ([]DowntimeHit, error)
	SearchOpportunities(ctx context.Context, filters SearchFilters) ([]OpportunityHit, error)
}

type searchRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSearchRepository(db database.DB) SearchRepository {
	return &searchRepository{
		db:  db,
		log: logger.New("searchRepository"),
	}
}

func applyShiftFilters(query *gorm.DB, filters SearchFilters) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("shifts.status = ?", filters.Status)
	}
	if filters.ModID != nil {
		query = query.Where("shifts.mod_id = ?", *filters.ModID)
	}
	if filters.StartDate != nil {
		query = query.Where("shifts.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("shifts.date <= ?", *filters.EndDate)
	}
	return query
}

func (r *searchRepository) SearchShifts(
	ctx context.Context,
	filters SearchFilters,
) ([]Shift, error) {
	log := r.log.Function("SearchShifts")

	query := r.db.SQLWithContext(ctx).
		Model(&Shift{}).
		Joins("JOIN users ON users.id = shifts.mod_id").
		Preload("Mod")
	query = applyShiftFilters(query, filters)

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(
			`shifts.schedule ILIKE ? OR shifts.shift_notes ILIKE ?
				OR shifts.quality_assurance ILIKE ? OR shifts.suggestions ILIKE ?
				OR users.name ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var shifts []Shift
	err := query.
		Order("shifts.date desc").
		Order("shifts.created_at desc").
		Find(&shifts).Error
	if err != nil {
		return nil, log.Err("failed to search shifts", err)
	}

	return shifts, nil
}

func (r *searchRepository) SearchIncidents(
	ctx context.Context,
	filters SearchFilters,
) ([]IncidentHit, error) {
	log := r.log.Function("SearchIncidents")

	query := r.db.SQLWithContext(ctx).
		Model(&Incident{}).
		Select(`incidents.id, incidents.shift_id, incidents.code,
			incidents.incident_time, incidents.location, incidents.notes,
			shifts.date AS shift_date, shifts.status AS shift_status,
			users.name AS mod_name`).
		Joins("JOIN shifts ON shifts.id = incidents.shift_id").
		Joins("JOIN users ON users.id = shifts.mod_id")
	query = applyShiftFilters(query, filters)

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(
			`incidents.code ILIKE ? OR incidents.location ILIKE ?
				OR incidents.notes ILIKE ? OR users.name ILIKE ?`,
			pattern, pattern, pattern, pattern,
		)
	}

	var hits []IncidentHit
	err := query.
		Order("shifts.date desc").
		Order("incidents.incident_time desc").
		Scan(&hits).Error
	if err != nil {
		return nil, log.Err("failed to search incidents", err)
	}

	return hits, nil
}

func (r *searchRepository) SearchDowntimes(
	ctx context.Context,
	filters SearchFilters,
) ([]DowntimeHit, error) {
	log := r.log.Function("SearchDowntimes")

	query := r.db.SQLWithContext(ctx).
		Model(&Downtime{}).
		Select(`downtimes.id, downtimes.shift_id, downtimes.outlet,
			downtimes.start_time, downtimes.end_time, downtimes.reason,
			shifts.date AS shift_date, shifts.status AS shift_status,
			users.name AS mod_name`).
		Joins("JOIN shifts ON shifts.id = downtimes.shift_id").
		Joins("JOIN users ON users.id = shifts.mod_id")
	query = applyShiftFilters(query, filters)

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(
			"downtimes.outlet ILIKE ? OR downtimes.reason ILIKE ? OR users.name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var hits []DowntimeHit
	err := query.
		Order("shifts.date desc").
		Order("downtimes.start_time desc").
		Scan(&hits).Error
	if err != nil {
		return nil, log.Err("failed to search downtimes", err)
	}

	return hits, nil
}

func (r *searchRepository) SearchOpportunities(
	ctx context.Context,
	filters SearchFilters,
) ([]OpportunityHit, error) {
	log := r.log.Function("SearchOpportunities")

	query := r.db.SQLWithContext(ctx).
		Model(&GuestOpportunity{}).
		Select(`guest_opportunities.id, guest_opportunities.shift_id,
			guest_opportunities.last_name, guest_opportunities.room,
			guest_opportunities.description, guest_opportunities.compensation,
			shifts.date AS shift_date, shifts.status AS shift_status,
			users.name AS mod_name`).
		Joins("JOIN shifts ON shifts.id = guest_opportunities.shift_id").
		Joins("JOIN users ON users.id = shifts.mod_id")
	query = applyShiftFilters(query, filters)

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(
			`guest_opportunities.last_name ILIKE ? OR guest_opportunities.room ILIKE ?
				OR guest_opportunities.description ILIKE ?
				OR guest_opportunities.compensation ILIKE ? OR users.name ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var hits []OpportunityHit
	err := query.
		Order("shifts.date desc").
		Order("guest_opportunities.created_at desc").
		Scan(&hits).Error
	if err != nil {
		return nil, log.Err("failed to search guest opportunities", err)
	}

	return hits, nil
}
