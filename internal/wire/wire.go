package wire

import (
	"abc-cinemas/internal/adaptor"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/usecase"
	"abc-cinemas/pkg/middleware"
	"abc-cinemas/pkg/telemetry"
	"abc-cinemas/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	if telemetry.Enabled(config.Telemetry) {
		r.Use(otelchi.Middleware(config.Telemetry.ServiceName, otelchi.WithChiRoutes(r)))
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	if config.RateLimit.Enabled {
		r.Use(middleware.RateLimit(config.RateLimit.RPS, config.RateLimit.Burst, logger))
	}
	if config.App.RequestTimeout > 0 {
		r.Use(chimw.Timeout(config.App.RequestTimeout))
	}

	// Apply routes
	wireStatus(r, handler.Status)
	wireBranch(r, handler.Branch)
	wireUser(r, handler.User, handler.Booking)
	wireMovie(r, handler.Movie)
	wireShowtime(r, handler.Showtime)
	wireBooking(r, handler.Booking)
	wireReview(r, handler.Review)

	return r
}
