package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/config"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	sweeper ledger.SweeperService,
	loc *time.Location,
	registrarHandler RegistrarHandler,
	reportHandler ReportHandler,
	streamHandler StreamHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "control-asistencia"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	// Every inbound request first gets a chance to force-close sessions
	// left open past the daily cutoff.
	r.Use(middleware.SweepBeforeRequest(sweeper, loc))

	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Post("/registrar", registrarHandler.Toggle)
	r.Get("/video_feed", streamHandler.VideoFeed)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", reportHandler.List)
		r.Post("/", reportHandler.Export)
		r.Get("/{name}", reportHandler.Download)
	})

	return r
}
