package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"roomorganizer/internal/delivery/http/controllers"
	"roomorganizer/internal/delivery/http/middleware"
	"roomorganizer/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	organizerController *controllers.OrganizerController,
	archiveController *controllers.ArchiveController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Public
	mux.HandleFunc("GET /rooms/{roomID}/organizer", organizerController.LookupOrganizer)

	// Operator
	mux.HandleFunc("GET /lookups", requireAuth(organizerController.ListLookups))
	mux.HandleFunc("POST /archives", requireAuth(archiveController.ListArchives))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
