package services

import (
	"context"
	"errors"
	"strings"

	"modreport/config"
	"modreport/internal/logger"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// ErrRendererUnavailable means the wkhtmltopdf binary could not be found.
// Callers are expected to degrade to the HTML view rather than fail hard.
var ErrRendererUnavailable = errors.New("pdf renderer unavailable")

type PDFService struct {
	log logger.Logger
}

func NewPDFService(config config.Config) *PDFService {
	if config.WkhtmltopdfPath != "" {
		wkhtmltopdf.SetPath(config.WkhtmltopdfPath)
	}

	return &PDFService{
		log: logger.New("pdfService"),
	}
}

// Render converts an HTML document to PDF bytes. The binary is probed on
// every call so installing wkhtmltopdf does not require a restart.
func (s *PDFService) Render(ctx context.Context, html string) ([]byte, error) {
	log := s.log.Function("Render")

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		log.Warn("wkhtmltopdf binary not found", "error", err)
		return nil, ErrRendererUnavailable
	}

	pdfg.Dpi.Set(96)
	pdfg.MarginTop.Set(12)
	pdfg.MarginBottom.Set(12)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.DisableExternalLinks.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, log.Err("failed to generate pdf", err)
	}

	return pdfg.Bytes(), nil
}
