package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

func TestGetAlertas(t *testing.T) {
	store, router, _ := newTestRouter(t)
	store.alerts = []models.AlertView{
		{Categoria: "EMERGENCIA", Descripcion: "Incendio", Direccion: "Mercado", Lat: -9.93, Lng: -76.24},
		{Categoria: "CLIMA", Descripcion: "Huaico", Lat: -9.94, Lng: -76.25},
	}

	req := httptest.NewRequest("GET", "/api/alertas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/alertas = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %s", ct)
	}

	var alerts []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	first := alerts[0]
	for _, k := range []string{"categoria", "descripcion", "direccion", "lat", "lng"} {
		if _, ok := first[k]; !ok {
			t.Errorf("alert missing field %q", k)
		}
	}
	if first["categoria"] != "EMERGENCIA" || first["lat"] != -9.93 || first["lng"] != -76.24 {
		t.Fatalf("unexpected first alert: %v", first)
	}
}

func TestGetAlertasFiltered(t *testing.T) {
	store, router, _ := newTestRouter(t)
	store.alerts = []models.AlertView{
		{Categoria: "EMERGENCIA", Descripcion: "Incendio", Lat: -9.93, Lng: -76.24},
		{Categoria: "CLIMA", Descripcion: "Huaico", Lat: -9.94, Lng: -76.25},
	}

	req := httptest.NewRequest("GET", "/api/alertas?categoria=CLIMA", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	var alerts []models.AlertView
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 1 || alerts[0].Categoria != "CLIMA" {
		t.Fatalf("filtered alerts: %+v", alerts)
	}
}

func TestGetAlertasBadCategory(t *testing.T) {
	_, router, _ := newTestRouter(t)
	req := httptest.NewRequest("GET", "/api/alertas?categoria=INVALIDO", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid filter = %d, want 400", w.Code)
	}
}

func TestGetAlertasEmpty(t *testing.T) {
	_, router, _ := newTestRouter(t)
	req := httptest.NewRequest("GET", "/api/alertas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	// Empty feed is an empty array, not null
	if body := w.Body.String(); body != "[]\n" {
		t.Fatalf("empty feed body = %q", body)
	}
}
