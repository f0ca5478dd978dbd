package routes

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/calaxer013-byte/LlaqtaShield/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// ReportStore is what the handlers need from the database layer,
// implemented by db.SharedDB.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) error
	ListReports(ctx context.Context, limit, offset int) ([]models.Report, error)
	ListAlerts(ctx context.Context, categoria models.Category) ([]models.AlertView, error)
	VerifyAdmin(ctx context.Context, username, passwd string) error
}

type Routes struct {
	envConfig *models.EnvConfig
	db        ReportStore
	tmpls     *render.Templates
	docs      *render.DocumentGenerator
	limiter   *rateLimiter
}

func NewRouter(
	envConfig *models.EnvConfig,
	database ReportStore,
	logger zerolog.Logger,
	tmpls *render.Templates,
	docs *render.DocumentGenerator,
	webFS fs.FS,
) chi.Router {
	routes := &Routes{
		envConfig: envConfig,
		db:        database,
		tmpls:     tmpls,
		docs:      docs,
		limiter:   newRateLimiter(envConfig.ReportsPerMinute, time.Minute),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", status).
			Dur("duration", duration).
			Msg("")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Static assets come from the embedded web FS; upload evidence lives
	// on disk and is served separately.
	staticFS, err := fs.Sub(webFS, "static")
	if err != nil {
		panic(err)
	}
	staticFileServer := http.FileServer(http.FS(staticFS))
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
		fs := http.StripPrefix("/static", staticFileServer)
		fs.ServeHTTP(w, r)
	})
	evidenceFileServer := http.FileServer(http.Dir(envConfig.UploadDir))
	r.Get("/evidencias/*", func(w http.ResponseWriter, r *http.Request) {
		fs := http.StripPrefix("/evidencias", evidenceFileServer)
		fs.ServeHTTP(w, r)
	})

	r.Get("/", routes.GetHome)
	r.Get("/reportar", routes.GetReportar)
	r.Get("/mapa", routes.GetMapa)

	r.With(routes.RateLimit).Post("/report", routes.AppHandler(routes.PostReport))
	r.Get("/api/alertas", routes.AppHandler(routes.GetAlertas))
	r.Get("/reporte/{filename}", routes.AppHandler(routes.GetDocument))

	r.With(routes.RequireAdmin).Get("/admin/reports", routes.AppHandler(routes.GetAdminReports))
	r.With(routes.RateLimit, routes.RequireAdmin).Get("/api/reports", routes.AppHandler(routes.GetReportsJSON))

	return r
}

type AppError interface {
	Status() int
	Message() string
	Unwrap() error
}

type ErrBadRequest struct {
	Cause error
	Msg   string
}

func (e *ErrBadRequest) Status() int { return http.StatusBadRequest }
func (e *ErrBadRequest) Message() string {
	if e.Msg == "" {
		return "Solicitud inválida"
	}
	return e.Msg
}
func (e *ErrBadRequest) Unwrap() error { return e.Cause }

type ErrNotFound struct {
	Cause error
	Thing string
}

func (e *ErrNotFound) Status() int     { return http.StatusNotFound }
func (e *ErrNotFound) Message() string { return "No encontrado: " + e.Thing }
func (e *ErrNotFound) Unwrap() error   { return e.Cause }

type ErrUnavailable struct {
	Cause error
}

func (e *ErrUnavailable) Status() int     { return http.StatusServiceUnavailable }
func (e *ErrUnavailable) Message() string { return "Servicio no disponible, intente más tarde" }
func (e *ErrUnavailable) Unwrap() error   { return e.Cause }

type ErrInternal struct {
	Cause error
	Msg   string
}

func (e *ErrInternal) Status() int { return http.StatusInternalServerError }
func (e *ErrInternal) Message() string {
	if e.Msg == "" {
		return "Internal server error"
	}
	return e.Msg
}
func (e *ErrInternal) Unwrap() error { return e.Cause }

// AppHandler adapts handlers returning AppError to http.HandlerFunc.
// Errors are logged with the request id and answered as JSON, which is
// what both the submission form and the map client expect.
func (routes *Routes) AppHandler(handler func(w http.ResponseWriter, r *http.Request) AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}
		ev := hlog.FromRequest(r).Warn()
		if err.Status() >= http.StatusInternalServerError {
			ev = hlog.FromRequest(r).Error()
		}
		ev.
			Str("request_id", middleware.GetReqID(r.Context())).
			Err(err.Unwrap()).
			Msg(err.Message())
		renderJSON(w, err.Status(), map[string]string{"error": err.Message()})
	}
}

func renderJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
