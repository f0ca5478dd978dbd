package routes

import (
	"net/http"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

// GetAlertas feeds the map client: reports with valid coordinates only,
// newest first. Read-only.
func (routes *Routes) GetAlertas(w http.ResponseWriter, r *http.Request) AppError {
	categoria := models.Category(r.URL.Query().Get("categoria"))
	if categoria != "" && !categoria.Valid() {
		return &ErrBadRequest{Msg: "La categoría no es válida"}
	}

	alerts, err := routes.db.ListAlerts(r.Context(), categoria)
	if err != nil {
		return &ErrInternal{Cause: err, Msg: "Error consultando alertas"}
	}

	renderJSON(w, http.StatusOK, alerts)
	return nil
}
