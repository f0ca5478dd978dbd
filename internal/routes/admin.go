package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/db"
	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/rs/zerolog/hlog"
)

// RequireAdmin guards the review surface with HTTP Basic Auth checked
// against usuarios_admin.
func (routes *Routes) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, passwd, ok := r.BasicAuth()
		if ok {
			err := routes.db.VerifyAdmin(r.Context(), username, passwd)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}
			if err != db.ErrBadCredentials {
				hlog.FromRequest(r).Error().Err(err).Msg("Error verifying admin credentials")
				http.Error(w, "Servicio no disponible", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="LlaqtaShield admin"`)
		http.Error(w, "Authentication required", http.StatusUnauthorized)
	})
}

// GetAdminReports renders the newest reports for review.
func (routes *Routes) GetAdminReports(w http.ResponseWriter, r *http.Request) AppError {
	reports, err := routes.db.ListReports(r.Context(), db.LimitAdminListing, 0)
	if err != nil {
		return &ErrInternal{Cause: err, Msg: "Error consultando reportes"}
	}
	routes.tmpls.RenderHTML(w, "adminReports", struct {
		Reports []models.Report
	}{
		Reports: reports,
	})
	return nil
}

// reportJSON is the export projection; optional columns become null.
type reportJSON struct {
	ID          int             `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Categoria   models.Category `json:"categoria"`
	Descripcion string          `json:"descripcion"`
	Direccion   string          `json:"direccion"`
	Lat         *float64        `json:"lat"`
	Lng         *float64        `json:"lng"`
	Telefono    string          `json:"telefono"`
	Anonimo     bool            `json:"anonimo"`
	ImagenPath  *string         `json:"imagen_path"`
}

// GetReportsJSON exports full report rows, newest first, with
// limit/offset paging.
func (routes *Routes) GetReportsJSON(w http.ResponseWriter, r *http.Request) AppError {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 200
	}

	reports, err := routes.db.ListReports(r.Context(), limit, offset)
	if err != nil {
		return &ErrInternal{Cause: err, Msg: "Error consultando reportes"}
	}

	out := make([]reportJSON, 0, len(reports))
	for _, rep := range reports {
		row := reportJSON{
			ID:          rep.ID,
			CreatedAt:   rep.CreatedAt,
			Categoria:   rep.Categoria,
			Descripcion: rep.Descripcion,
			Direccion:   rep.Direccion,
			Telefono:    rep.Telefono,
			Anonimo:     rep.Anonimo,
		}
		if rep.Lat.Valid {
			v := rep.Lat.Float64
			row.Lat = &v
		}
		if rep.Lng.Valid {
			v := rep.Lng.Float64
			row.Lng = &v
		}
		if rep.ImagenPath.Valid {
			v := rep.ImagenPath.String
			row.ImagenPath = &v
		}
		out = append(out, row)
	}

	renderJSON(w, http.StatusOK, out)
	return nil
}
