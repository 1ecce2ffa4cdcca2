package recordController

import (
	"context"
	"errors"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"
	"modreport/internal/utils"

	shiftController "modreport/internal/controllers/shifts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

type IncidentRequest struct {
	Code         string `json:"code"`
	IncidentTime string `json:"incidentTime"`
	Location     string `json:"location"`
	Notes        string `json:"notes,omitempty"`
}

type DowntimeRequest struct {
	Outlet    string `json:"outlet"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Reason    string `json:"reason"`
}

type GuestOpportunityRequest struct {
	LastName     string `json:"lastName"`
	Room         string `json:"room"`
	Description  string `json:"description"`
	Compensation string `json:"compensation,omitempty"`
}

type RoomInspectionRequest struct {
	RoomNumber    string `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	Successes     string `json:"successes,omitempty"`
	Opportunities string `json:"opportunities,omitempty"`
}

type OutletInspectionRequest struct {
	Outlet         string `json:"outlet"`
	InspectionTime string `json:"inspectionTime"`
	Successes      string `json:"successes,omitempty"`
	Opportunities  string `json:"opportunities,omitempty"`
}

type HighPawRequest struct {
	PackMembers string `json:"packMembers"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

type ModMealRequest struct {
	Outlet   string `json:"outlet"`
	MenuItem string `json:"menuItem"`
	Feedback string `json:"feedback,omitempty"`
}

type RecordController struct {
	shiftRepo  repositories.ShiftRepository
	recordRepo repositories.ShiftRecordRepository
	log        logger.Logger
}

type RecordControllerInterface interface {
	AddIncident(ctx context.Context, user *User, shiftID uuid.UUID, request *IncidentRequest) (*Incident, error)
	AddDowntime(ctx context.Context, user *User, shiftID uuid.UUID, request *DowntimeRequest) (*Downtime, error)
	AddGuestOpportunity(ctx context.Context, user *User, shiftID uuid.UUID, request *GuestOpportunityRequest) (*GuestOpportunity, error)
	AddRoomInspection(ctx context.Context, user *User, shiftID uuid.UUID, request *RoomInspectionRequest) (*RoomInspection, error)
	AddOutletInspection(ctx context.Context, user *User, shiftID uuid.UUID, request *OutletInspectionRequest) (*OutletInspection, error)
	AddHighPaw(ctx context.Context, user *User, shiftID uuid.UUID, request *HighPawRequest) (*HighPaw, error)
	AddModMeal(ctx context.Context, user *User, shiftID uuid.UUID, request *ModMealRequest) (*ModMeal, error)
}

func New(repos repositories.Repository) RecordControllerInterface {
	return &RecordController{
		shiftRepo:  repos.Shift,
		recordRepo: repos.Record,
		log:        logger.New("recordController"),
	}
}

// editableShift loads the parent shift and checks write access. Shift status
// is deliberately not checked so late corrections remain possible.
func (c *RecordController) editableShift(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
) (*Shift, error) {
	shift, err := c.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !shiftController.CanEdit(user, shift) {
		return nil, ErrForbidden
	}

	return shift, nil
}

func (c *RecordController) AddIncident(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *IncidentRequest,
) (*Incident, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddIncident")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.Code == "" || request.Location == "" {
		return nil, log.ErrorWithType(ErrValidation, "code and location are required")
	}

	incidentTime, err := utils.ParseTimeOfDay(request.IncidentTime)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid incident time", "value", request.IncidentTime)
	}

	incident := &Incident{
		ShiftID:      shift.ID,
		Code:         request.Code,
		IncidentTime: incidentTime,
		Location:     request.Location,
		Notes:        request.Notes,
	}

	if err := c.recordRepo.CreateIncident(ctx, incident); err != nil {
		return nil, log.Err("failed to add incident", err, "shiftID", shift.ID)
	}

	return incident, nil
}

func (c *RecordController) AddDowntime(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *DowntimeRequest,
) (*Downtime, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddDowntime")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.Outlet == "" || request.Reason == "" {
		return nil, log.ErrorWithType(ErrValidation, "outlet and reason are required")
	}

	startTime, err := utils.ParseTimeOfDay(request.StartTime)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid start time", "value", request.StartTime)
	}

	downtime := &Downtime{
		ShiftID:   shift.ID,
		Outlet:    request.Outlet,
		StartTime: startTime,
		Reason:    request.Reason,
	}

	if request.EndTime != "" {
		endTime, err := utils.ParseTimeOfDay(request.EndTime)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid end time", "value", request.EndTime)
		}
		downtime.EndTime = &endTime
	}

	if err := c.recordRepo.CreateDowntime(ctx, downtime); err != nil {
		return nil, log.Err("failed to add downtime", err, "shiftID", shift.ID)
	}

	return downtime, nil
}

func (c *RecordController) AddGuestOpportunity(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *GuestOpportunityRequest,
) (*GuestOpportunity, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddGuestOpportunity")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.LastName == "" || request.Room == "" || request.Description == "" {
		return nil, log.ErrorWithType(ErrValidation, "last name, room and description are required")
	}

	opportunity := &GuestOpportunity{
		ShiftID:      shift.ID,
		LastName:     request.LastName,
		Room:         request.Room,
		Description:  request.Description,
		Compensation: request.Compensation,
	}

	if err := c.recordRepo.CreateGuestOpportunity(ctx, opportunity); err != nil {
		return nil, log.Err("failed to add guest opportunity", err, "shiftID", shift.ID)
	}

	return opportunity, nil
}

func (c *RecordController) AddRoomInspection(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *RoomInspectionRequest,
) (*RoomInspection, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddRoomInspection")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.RoomNumber == "" || request.RoomType == "" {
		return nil, log.ErrorWithType(ErrValidation, "room number and room type are required")
	}

	inspection := &RoomInspection{
		ShiftID:       shift.ID,
		RoomNumber:    request.RoomNumber,
		RoomType:      request.RoomType,
		Successes:     request.Successes,
		Opportunities: request.Opportunities,
	}

	if err := c.recordRepo.CreateRoomInspection(ctx, inspection); err != nil {
		return nil, log.Err("failed to add room inspection", err, "shiftID", shift.ID)
	}

	return inspection, nil
}

func (c *RecordController) AddOutletInspection(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *OutletInspectionRequest,
) (*OutletInspection, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddOutletInspection")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.Outlet == "" {
		return nil, log.ErrorWithType(ErrValidation, "outlet is required")
	}

	inspectionTime, err := utils.ParseTimeOfDay(request.InspectionTime)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid inspection time", "value", request.InspectionTime)
	}

	inspection := &OutletInspection{
		ShiftID:        shift.ID,
		Outlet:         request.Outlet,
		InspectionTime: inspectionTime,
		Successes:      request.Successes,
		Opportunities:  request.Opportunities,
	}

	if err := c.recordRepo.CreateOutletInspection(ctx, inspection); err != nil {
		return nil, log.Err("failed to add outlet inspection", err, "shiftID", shift.ID)
	}

	return inspection, nil
}

func (c *RecordController) AddHighPaw(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *HighPawRequest,
) (*HighPaw, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddHighPaw")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.PackMembers == "" || request.Department == "" || request.Description == "" {
		return nil, log.ErrorWithType(ErrValidation, "pack members, department and description are required")
	}

	highPaw := &HighPaw{
		ShiftID:     shift.ID,
		PackMembers: request.PackMembers,
		Department:  request.Department,
		Description: request.Description,
	}

	if err := c.recordRepo.CreateHighPaw(ctx, highPaw); err != nil {
		return nil, log.Err("failed to add high paw", err, "shiftID", shift.ID)
	}

	return highPaw, nil
}

func (c *RecordController) AddModMeal(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	request *ModMealRequest,
) (*ModMeal, error) {
	log := logger.NewWithContext(ctx, "recordController").Function("AddModMeal")

	shift, err := c.editableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if request.Outlet == "" || request.MenuItem == "" {
		return nil, log.ErrorWithType(ErrValidation, "outlet and menu item are required")
	}

	meal := &ModMeal{
		ShiftID:  shift.ID,
		Outlet:   request.Outlet,
		MenuItem: request.MenuItem,
		Feedback: request.Feedback,
	}

	if err := c.recordRepo.CreateModMeal(ctx, meal); err != nil {
		return nil, log.Err("failed to add mod meal", err, "shiftID", shift.ID)
	}

	return meal, nil
}
