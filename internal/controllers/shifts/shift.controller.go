package shiftController

import (
	"context"
	"errors"
	"strconv"
	"time"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"
	"modreport/internal/services"
	"modreport/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

// Writable column sets for the sparse progress patch. Anything outside these
// sets is silently ignored, matching form submissions that post a subset.
var (
	textFields = map[string]bool{
		"schedule":           true,
		"gm_agm":             true,
		"housekeeping":       true,
		"food_beverage":      true,
		"sales":              true,
		"aquatics":           true,
		"retail_attractions": true,
		"kids_entertainment": true,
		"guest_services":     true,
		"hr":                 true,
		"finance":            true,
		"engineering":        true,
		"it":                 true,
		"quality_assurance":  true,
		"suggestions":        true,
		"shift_notes":        true,
		"pass_down_next_mod": true,
		"pass_down_notes":    true,
	}
	intFields = map[string]bool{
		"occupancy":  true,
		"arrivals":   true,
		"departures": true,
		"nps_score":  true,
		"nps_rank":   true,
	}
	timeFields = map[string]bool{
		"pass_down_time": true,
	}
	closingFields = map[string]bool{
		"nps_score":          true,
		"nps_rank":           true,
		"quality_assurance":  true,
		"suggestions":        true,
		"shift_notes":        true,
		"pass_down_time":     true,
		"pass_down_next_mod": true,
		"pass_down_notes":    true,
	}
)

type CreateShiftRequest struct {
	Date       string `json:"date"`
	Schedule   string `json:"schedule"`
	Occupancy  string `json:"occupancy,omitempty"`
	Arrivals   string `json:"arrivals,omitempty"`
	Departures string `json:"departures,omitempty"`

	// Department staffing can be captured on the opening form; anything left
	// blank stays editable through progress saves.
	GMAGM             string `json:"gmAgm,omitempty"`
	Housekeeping      string `json:"housekeeping,omitempty"`
	FoodBeverage      string `json:"foodBeverage,omitempty"`
	Sales             string `json:"sales,omitempty"`
	Aquatics          string `json:"aquatics,omitempty"`
	RetailAttractions string `json:"retailAttractions,omitempty"`
	KidsEntertainment string `json:"kidsEntertainment,omitempty"`
	GuestServices     string `json:"guestServices,omitempty"`
	HR                string `json:"hr,omitempty"`
	Finance           string `json:"finance,omitempty"`
	Engineering       string `json:"engineering,omitempty"`
	IT                string `json:"it,omitempty"`
}

type DashboardResponse struct {
	OpenShift    *Shift  `json:"openShift,omitempty"`
	ClosedShifts []Shift `json:"closedShifts"`
}

type ShiftController struct {
	shiftRepo          repositories.ShiftRepository
	userRepo           repositories.UserRepository
	transactionService services.Transactor
	log                logger.Logger
}

type ShiftControllerInterface interface {
	Dashboard(ctx context.Context, user *User) (*DashboardResponse, error)
	Create(ctx context.Context, user *User, request *CreateShiftRequest) (*Shift, bool, error)
	Get(ctx context.Context, user *User, shiftID uuid.UUID) (*Shift, error)
	SaveProgress(
		ctx context.Context,
		user *User,
		shiftID uuid.UUID,
		fields map[string]string,
	) (*Shift, error)
	Close(
		ctx context.Context,
		user *User,
		shiftID uuid.UUID,
		fields map[string]string,
	) (*Shift, error)
	Delete(ctx context.Context, user *User, shiftID uuid.UUID) error
	Reassign(ctx context.Context, user *User, shiftID, targetModID uuid.UUID) (*Shift, error)
	UpdateEditors(
		ctx context.Context,
		user *User,
		shiftID uuid.UUID,
		editorIDs []uuid.UUID,
	) (*Shift, error)
}

func New(repos repositories.Repository, services services.Service) ShiftControllerInterface {
	return &ShiftController{
		shiftRepo:          repos.Shift,
		userRepo:           repos.User,
		transactionService: services.Transaction,
		log:                logger.New("shiftController"),
	}
}

// CanEdit reports whether the user may modify the shift: admins, the primary
// MOD, and registered editors.
func CanEdit(user *User, shift *Shift) bool {
	return user.IsAdmin || shift.ModID == user.ID || shift.IsEditor(user.ID)
}

// CanView reports whether the user may see the shift. Closed shifts are
// visible to any authenticated user; open shifts only to their editors.
func CanView(user *User, shift *Shift) bool {
	if shift.IsClosed() {
		return true
	}
	return CanEdit(user, shift)
}

func isOwnerOrAdmin(user *User, shift *Shift) bool {
	return user.IsAdmin || shift.ModID == user.ID
}

func (c *ShiftController) Dashboard(ctx context.Context, user *User) (*DashboardResponse, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("Dashboard")

	response := &DashboardResponse{ClosedShifts: []Shift{}}

	open, err := c.shiftRepo.FindOpenByMod(ctx, user.ID)
	if err == nil {
		response.OpenShift = open
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to find open shift", err, "userID", user.ID)
	}

	closed, err := c.shiftRepo.ListClosed(ctx)
	if err != nil {
		return nil, log.Err("failed to list closed shifts", err)
	}
	response.ClosedShifts = closed

	return response, nil
}

// Create opens a shift for the acting MOD. If the MOD already has an open
// shift it is returned with existing=true instead of an error, so a double
// submit lands back on the same draft.
func (c *ShiftController) Create(
	ctx context.Context,
	user *User,
	request *CreateShiftRequest,
) (*Shift, bool, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("Create")

	if existing, err := c.shiftRepo.FindOpenByMod(ctx, user.ID); err == nil {
		return existing, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, log.Err("failed to check for open shift", err, "userID", user.ID)
	}

	if request.Schedule == "" {
		return nil, false, log.ErrorWithType(ErrValidation, "schedule is required")
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return nil, false, log.ErrorWithType(
			ErrValidation,
			"invalid date, expected YYYY-MM-DD",
			"date", request.Date,
		)
	}

	shift := &Shift{
		ModID:    user.ID,
		Date:     datatypes.Date(date),
		Schedule: request.Schedule,
		Status:   ShiftStatusOpen,

		GMAGM:             request.GMAGM,
		Housekeeping:      request.Housekeeping,
		FoodBeverage:      request.FoodBeverage,
		Sales:             request.Sales,
		Aquatics:          request.Aquatics,
		RetailAttractions: request.RetailAttractions,
		KidsEntertainment: request.KidsEntertainment,
		GuestServices:     request.GuestServices,
		HR:                request.HR,
		Finance:           request.Finance,
		Engineering:       request.Engineering,
		IT:                request.IT,
	}

	if shift.Occupancy, err = parseOptionalInt(request.Occupancy); err != nil {
		return nil, false, log.ErrorWithType(ErrValidation, "invalid occupancy", "value", request.Occupancy)
	}
	if shift.Arrivals, err = parseOptionalInt(request.Arrivals); err != nil {
		return nil, false, log.ErrorWithType(ErrValidation, "invalid arrivals", "value", request.Arrivals)
	}
	if shift.Departures, err = parseOptionalInt(request.Departures); err != nil {
		return nil, false, log.ErrorWithType(ErrValidation, "invalid departures", "value", request.Departures)
	}

	if err := c.shiftRepo.Create(ctx, shift); err != nil {
		return nil, false, log.Err("failed to create shift", err, "userID", user.ID)
	}

	log.Info("shift opened", "shiftID", shift.ID, "modID", user.ID)
	return shift, false, nil
}

func (c *ShiftController) Get(ctx context.Context, user *User, shiftID uuid.UUID) (*Shift, error) {
	shift, err := c.getShiftDetail(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if !CanView(user, shift) {
		return nil, ErrForbidden
	}

	return shift, nil
}

// SaveProgress applies a sparse field patch to an open shift. Empty values
// clear the column; numeric and time fields must parse or the whole patch is
// rejected with the record untouched.
func (c *ShiftController) SaveProgress(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	fields map[string]string,
) (*Shift, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("SaveProgress")

	shift, err := c.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if !CanEdit(user, shift) {
		return nil, ErrForbidden
	}

	if !shift.IsOpen() {
		return nil, log.ErrorWithType(ErrValidation, "shift is closed", "shiftID", shiftID)
	}

	updates, err := buildFieldUpdates(fields, nil)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error(), "shiftID", shiftID)
	}

	if len(updates) == 0 {
		return shift, nil
	}

	if err := c.shiftRepo.Updates(ctx, shiftID, updates); err != nil {
		return nil, log.Err("failed to save shift progress", err, "shiftID", shiftID)
	}

	return c.getShift(ctx, shiftID)
}

// Close finalizes an open shift with the closing field set. Closing is
// irreversible; closing an already-closed shift is a validation error.
func (c *ShiftController) Close(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	fields map[string]string,
) (*Shift, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("Close")

	shift, err := c.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if !isOwnerOrAdmin(user, shift) {
		return nil, ErrForbidden
	}

	if !shift.IsOpen() {
		return nil, log.ErrorWithType(ErrValidation, "shift is already closed", "shiftID", shiftID)
	}

	updates, err := buildFieldUpdates(fields, closingFields)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error(), "shiftID", shiftID)
	}
	updates["status"] = ShiftStatusClosed

	if err := c.shiftRepo.Updates(ctx, shiftID, updates); err != nil {
		return nil, log.Err("failed to close shift", err, "shiftID", shiftID)
	}

	log.Info("shift closed", "shiftID", shiftID, "closedBy", user.ID)
	return c.getShift(ctx, shiftID)
}

// Delete removes the shift and every dependent row in one transaction.
func (c *ShiftController) Delete(ctx context.Context, user *User, shiftID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "shiftController").Function("Delete")

	shift, err := c.getShift(ctx, shiftID)
	if err != nil {
		return err
	}

	if !isOwnerOrAdmin(user, shift) {
		return ErrForbidden
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return c.shiftRepo.DeleteCascade(ctx, tx, shift)
	})
	if err != nil {
		return log.Err("failed to delete shift", err, "shiftID", shiftID)
	}

	log.Info("shift deleted", "shiftID", shiftID, "deletedBy", user.ID)
	return nil
}

// Reassign hands an open shift to another MOD. The target must exist and must
// not already hold an open shift, preserving the one-open-shift invariant.
func (c *ShiftController) Reassign(
	ctx context.Context,
	user *User,
	shiftID, targetModID uuid.UUID,
) (*Shift, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("Reassign")

	if !user.IsAdmin {
		return nil, ErrForbidden
	}

	shift, err := c.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if !shift.IsOpen() {
		return nil, log.ErrorWithType(ErrValidation, "only open shifts can be reassigned", "shiftID", shiftID)
	}

	target, err := c.userRepo.GetByID(ctx, targetModID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to load target mod", err, "targetModID", targetModID)
	}

	if _, err := c.shiftRepo.FindOpenByMod(ctx, target.ID); err == nil {
		return nil, log.ErrorWithType(
			ErrConflict,
			"target mod already has an open shift",
			"targetModID", target.ID,
		)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to check target open shift", err, "targetModID", target.ID)
	}

	if err := c.shiftRepo.Updates(ctx, shiftID, map[string]any{"mod_id": target.ID}); err != nil {
		return nil, log.Err("failed to reassign shift", err, "shiftID", shiftID)
	}

	log.Info("shift reassigned", "shiftID", shiftID, "targetModID", target.ID)
	return c.getShift(ctx, shiftID)
}

// UpdateEditors replaces the secondary editor set. The primary MOD cannot be
// an editor of their own shift.
func (c *ShiftController) UpdateEditors(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	editorIDs []uuid.UUID,
) (*Shift, error) {
	log := logger.NewWithContext(ctx, "shiftController").Function("UpdateEditors")

	shift, err := c.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	if !isOwnerOrAdmin(user, shift) {
		return nil, ErrForbidden
	}

	editors := make([]User, 0, len(editorIDs))
	for _, editorID := range editorIDs {
		if editorID == shift.ModID {
			return nil, log.ErrorWithType(
				ErrValidation,
				"primary mod cannot be an editor",
				"shiftID", shiftID,
			)
		}

		editor, err := c.userRepo.GetByID(ctx, editorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, log.Err("failed to load editor", err, "editorID", editorID)
		}
		editors = append(editors, *editor)
	}

	if err := c.shiftRepo.ReplaceEditors(ctx, shift, editors); err != nil {
		return nil, log.Err("failed to update editors", err, "shiftID", shiftID)
	}

	return c.getShift(ctx, shiftID)
}

func (c *ShiftController) getShift(ctx context.Context, shiftID uuid.UUID) (*Shift, error) {
	shift, err := c.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shift, nil
}

func (c *ShiftController) getShiftDetail(ctx context.Context, shiftID uuid.UUID) (*Shift, error) {
	shift, err := c.shiftRepo.GetDetail(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shift, nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// buildFieldUpdates converts submitted form fields into a column update map.
// An optional allow set restricts which columns may be touched. Empty values
// clear: text columns to "", nullable columns to NULL.
func buildFieldUpdates(
	fields map[string]string,
	allow map[string]bool,
) (map[string]any, error) {
	updates := make(map[string]any, len(fields))

	for field, value := range fields {
		if allow != nil && !allow[field] {
			continue
		}

		switch {
		case textFields[field]:
			updates[field] = value

		case intFields[field]:
			if value == "" {
				updates[field] = nil
				continue
			}
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.New("invalid number for " + field)
			}
			updates[field] = parsed

		case timeFields[field]:
			if value == "" {
				updates[field] = nil
				continue
			}
			parsed, err := utils.ParseTimeOfDay(value)
			if err != nil {
				return nil, errors.New("invalid time for " + field + ", expected HH:MM")
			}
			updates[field] = parsed
		}
	}

	return updates, nil
}
