package searchController

import (
	"context"
	"errors"
	"time"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/repositories"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation error")

const (
	KindShifts        = "shifts"
	KindIncidents     = "incidents"
	KindDowntimes     = "downtimes"
	KindOpportunities = "opportunities"
)

// SearchRequest carries the raw query-string filters.
type SearchRequest struct {
	Kind      string `json:"kind"`
	Query     string `json:"q"`
	Status    string `json:"status"`
	ModID     string `json:"modId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SearchResponse holds one kind's results; only the slice matching Kind is
// populated.
type SearchResponse struct {
	Kind          string                        `json:"kind"`
	Shifts        []Shift                       `json:"shifts,omitempty"`
	Incidents     []repositories.IncidentHit    `json:"incidents,omitempty"`
	Downtimes     []repositories.DowntimeHit    `json:"downtimes,omitempty"`
	Opportunities []repositories.OpportunityHit `json:"opportunities,omitempty"`
}

type SearchController struct {
	searchRepo repositories.SearchRepository
	log        logger.Logger
}

type SearchControllerInterface interface {
	Search(ctx context.Context, user *User, request *SearchRequest) (*SearchResponse, error)
}

func New(repos repositories.Repository) SearchControllerInterface {
	return &SearchController{
		searchRepo: repos.Search,
		log:        logger.New("searchController"),
	}
}

func (c *SearchController) Search(
	ctx context.Context,
	user *User,
	request *SearchRequest,
) (*SearchResponse, error) {
	log := logger.NewWithContext(ctx, "searchController").Function("Search")

	kind := request.Kind
	if kind == "" {
		kind = KindShifts
	}

	filters, err := buildFilters(user, request)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	response := &SearchResponse{Kind: kind}

	switch kind {
	case KindShifts:
		response.Shifts, err = c.searchRepo.SearchShifts(ctx, filters)
	case KindIncidents:
		response.Incidents, err = c.searchRepo.SearchIncidents(ctx, filters)
	case KindDowntimes:
		response.Downtimes, err = c.searchRepo.SearchDowntimes(ctx, filters)
	case KindOpportunities:
		response.Opportunities, err = c.searchRepo.SearchOpportunities(ctx, filters)
	default:
		return nil, log.ErrorWithType(ErrValidation, "unknown search kind", "kind", kind)
	}

	if err != nil {
		return nil, log.Err("search failed", err, "kind", kind)
	}

	return response, nil
}

// buildFilters parses the raw request and applies the visibility rule:
// non-admin callers only search closed shifts, whatever status they asked for.
func buildFilters(user *User, request *SearchRequest) (repositories.SearchFilters, error) {
	filters := repositories.SearchFilters{
		Query:  request.Query,
		Status: request.Status,
	}

	if !user.IsAdmin {
		filters.Status = ShiftStatusClosed
	} else if filters.Status != "" &&
		filters.Status != ShiftStatusOpen && filters.Status != ShiftStatusClosed {
		return filters, errors.New("invalid status filter")
	}

	if request.ModID != "" {
		modID, err := uuid.Parse(request.ModID)
		if err != nil {
			return filters, errors.New("invalid mod_id filter")
		}
		filters.ModID = &modID
	}

	if request.StartDate != "" {
		start, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			return filters, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		filters.StartDate = &start
	}

	if request.EndDate != "" {
		end, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return filters, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		filters.EndDate = &end
	}

	return filters, nil
}
