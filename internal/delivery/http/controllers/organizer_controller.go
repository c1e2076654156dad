package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"roomorganizer/internal/delivery/http/helpers"
	"roomorganizer/internal/domain"
)

// LookupOrganizerSuccessResponse is the success response envelope for GET /rooms/{roomID}/organizer (200).
type LookupOrganizerSuccessResponse struct {
	Data  *domain.OrganizerLookup `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListLookupsResponse is the response body for GET /lookups.
type ListLookupsResponse struct {
	Lookups    []*domain.LookupRecord `json:"lookups"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListLookupsSuccessResponse is the success response envelope for GET /lookups (200).
type ListLookupsSuccessResponse struct {
	Data  ListLookupsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// LookupOrganizer godoc
// @Summary Resolve the organizer of a room
// @Description Fetches the room profile and runs the organizer fallback chain. verdict is one of free, managed_roster, identified, unknown; organizer_name is set for managed_roster and identified.
// @Tags organizers
// @Produce json
// @Param roomID path string true "Room ID (digits only)"
// @Success 200 {object} controllers.LookupOrganizerSuccessResponse "data contains the verdict"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: profile_unavailable"
// @Router /rooms/{roomID}/organizer [get]
func (c *OrganizerController) LookupOrganizer(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	if err := domain.ValidateRoomID(roomID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "roomID must be a number")
		return
	}
	lookup, err := c.Service.LookupOrganizer(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRoomID):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "roomID must be a number")
		case errors.Is(err, domain.ErrProfileUnavailable):
			c.Logger.WarnContext(r.Context(), "profile unavailable", "room_id", roomID, "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeProfileUnavailable, "could not fetch room information")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, lookup)
}

// ListLookups godoc
// @Summary List recent organizer lookups
// @Description Returns recorded lookups, newest first. Requires an operator token and a configured database.
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListLookupsSuccessResponse "data contains lookups and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /lookups [get]
func (c *OrganizerController) ListLookups(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	lookups, total, err := c.Service.ListRecentLookups(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrLookupLogDisabled) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "lookup log is not enabled")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListLookupsResponse{
		Lookups:    lookups,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}
