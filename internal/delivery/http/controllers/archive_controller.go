package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"roomorganizer/internal/delivery/http/helpers"
	"roomorganizer/internal/domain"
)

// ListArchivesRequest is the request body for POST /archives. The account ID
// travels in the body so it stays out of URLs and access logs.
type ListArchivesRequest struct {
	AccountID string `json:"account_id"`
}

// Validate implements Validator.
func (req ListArchivesRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.AccountID) == "" {
		errs = append(errs, "account_id is required")
	}
	return errs
}

// ListArchivesSuccessResponse is the success response envelope for POST /archives (200).
type ListArchivesSuccessResponse struct {
	Data  *domain.ArchiveListing `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ArchiveController struct {
	Logger  *slog.Logger
	Service domain.ArchiveService
}

func NewArchiveController(logger *slog.Logger, svc domain.ArchiveService) *ArchiveController {
	return &ArchiveController{
		Logger:  logger,
		Service: svc,
	}
}

// ListArchives godoc
// @Summary List recent broadcast archives
// @Description Resolves the account ID to its room through the room list and returns the downloadable archives of roughly the last month. Requires an operator token.
// @Tags archives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ListArchivesRequest true "Account to list"
// @Success 200 {object} controllers.ListArchivesSuccessResponse "data contains the room and its archives"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: profile_unavailable, session_expired or upstream_failed"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /archives [post]
func (c *ArchiveController) ListArchives(w http.ResponseWriter, r *http.Request) {
	var req ListArchivesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	listing, err := c.Service.ListArchives(r.Context(), req.AccountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "account not found in room list")
		case errors.Is(err, domain.ErrArchiveDisabled):
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "archive listing is not configured")
		case errors.Is(err, domain.ErrArchiveAuthExpired):
			c.Logger.ErrorContext(r.Context(), "archive session expired", "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeSessionExpired, "archive session expired, contact the administrator")
		case errors.Is(err, domain.ErrProfileUnavailable):
			c.Logger.WarnContext(r.Context(), "profile unavailable", "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeProfileUnavailable, "could not fetch room information")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstreamFailed, "could not read archive page")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listing)
}
