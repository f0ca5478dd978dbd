package routes

import (
	"net/http"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

func (routes *Routes) GetHome(w http.ResponseWriter, r *http.Request) {
	routes.tmpls.RenderHTML(w, "index", nil)
}

func (routes *Routes) GetReportar(w http.ResponseWriter, r *http.Request) {
	routes.tmpls.RenderHTML(w, "reportar", struct {
		Categories []models.Category
	}{
		Categories: models.AvailableCategories,
	})
}

func (routes *Routes) GetMapa(w http.ResponseWriter, r *http.Request) {
	routes.tmpls.RenderHTML(w, "mapa", nil)
}
