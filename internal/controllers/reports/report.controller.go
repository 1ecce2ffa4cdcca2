package reportController

import (
	"context"
	"errors"
	"fmt"
	"time"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"
	"modreport/internal/services"

	shiftController "modreport/internal/controllers/shifts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// ErrRendererUnavailable is re-exported so handlers can soft-fail PDF export
// without importing the services package.
var ErrRendererUnavailable = services.ErrRendererUnavailable

type ReportController struct {
	shiftRepo     repositories.ShiftRepository
	commentRepo   repositories.ReportCommentRepository
	reportService *services.ReportService
	pdfService    *services.PDFService
	log           logger.Logger
}

type ReportControllerInterface interface {
	View(ctx context.Context, user *User, shiftID uuid.UUID) (string, error)
	ExportPDF(ctx context.Context, user *User, shiftID uuid.UUID) ([]byte, string, error)
	AddComment(ctx context.Context, user *User, shiftID uuid.UUID, body string) (*ReportComment, error)
}

func New(repos repositories.Repository, services services.Service) ReportControllerInterface {
	return &ReportController{
		shiftRepo:     repos.Shift,
		commentRepo:   repos.Comment,
		reportService: services.Report,
		pdfService:    services.PDF,
		log:           logger.New("reportController"),
	}
}

func (c *ReportController) viewableShift(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
) (*Shift, error) {
	shift, err := c.shiftRepo.GetDetail(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !shiftController.CanView(user, shift) {
		return nil, ErrForbidden
	}

	return shift, nil
}

// View renders the report page. Commenting is offered on closed shifts only.
func (c *ReportController) View(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
) (string, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("View")

	shift, err := c.viewableShift(ctx, user, shiftID)
	if err != nil {
		return "", err
	}

	html, err := c.reportService.RenderWeb(shift, user, shift.IsClosed())
	if err != nil {
		return "", log.Err("failed to render report", err, "shiftID", shiftID)
	}

	return html, nil
}

// ExportPDF renders the static report and pipes it through the PDF engine.
// ErrRendererUnavailable passes through untouched for the handler's soft
// fallback.
func (c *ReportController) ExportPDF(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
) ([]byte, string, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("ExportPDF")

	shift, err := c.viewableShift(ctx, user, shiftID)
	if err != nil {
		return nil, "", err
	}

	html, err := c.reportService.RenderStatic(shift, user)
	if err != nil {
		return nil, "", log.Err("failed to render report for pdf", err, "shiftID", shiftID)
	}

	pdf, err := c.pdfService.Render(ctx, html)
	if err != nil {
		if errors.Is(err, services.ErrRendererUnavailable) {
			return nil, "", err
		}
		return nil, "", log.Err("failed to generate pdf", err, "shiftID", shiftID)
	}

	filename := fmt.Sprintf(
		"mod-report-%s.pdf",
		time.Time(shift.Date).Format("2006-01-02"),
	)
	return pdf, filename, nil
}

// AddComment appends an immutable comment to a closed shift report.
func (c *ReportController) AddComment(
	ctx context.Context,
	user *User,
	shiftID uuid.UUID,
	body string,
) (*ReportComment, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("AddComment")

	shift, err := c.viewableShift(ctx, user, shiftID)
	if err != nil {
		return nil, err
	}

	if !shift.IsClosed() {
		return nil, log.ErrorWithType(ErrValidation, "comments are only allowed on closed shifts", "shiftID", shiftID)
	}

	if body == "" {
		return nil, log.ErrorWithType(ErrValidation, "comment body is required")
	}

	comment := &ReportComment{
		ShiftID:  shift.ID,
		AuthorID: user.ID,
		Body:     body,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, log.Err("failed to add comment", err, "shiftID", shiftID)
	}

	comment.Author = *user
	return comment, nil
}
