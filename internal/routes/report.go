package routes

import (
	"database/sql"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/db"
	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/calaxer013-byte/LlaqtaShield/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 6 << 20 // request size cap, matches the image limit

// PostReport is the single write path: sanitize the form, persist, then
// generate the reviewer document. Accepts urlencoded forms and multipart
// (when an evidence image is attached).
func (routes *Routes) PostReport(w http.ResponseWriter, r *http.Request) AppError {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	var parseErr error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		parseErr = r.ParseMultipartForm(maxUploadBytes)
	} else {
		parseErr = r.ParseForm()
	}
	if parseErr != nil {
		return &ErrBadRequest{Cause: parseErr, Msg: "Formulario inválido"}
	}

	report := &models.Report{
		Categoria:   models.Category(utils.SanitizeText(r.FormValue("categoria"), 64)),
		Descripcion: utils.SanitizeText(r.FormValue("descripcion"), db.LimitMaxDescripcionLen),
		Direccion:   utils.SanitizeText(r.FormValue("direccion"), db.LimitMaxDescripcionLen),
		Telefono:    utils.SanitizeText(r.FormValue("telefono"), 32),
		Anonimo:     parseAnonimo(r.FormValue("anonimo")),
	}
	report.Lat, report.Lng = parseCoords(r.FormValue("lat"), r.FormValue("lng"))

	imagenPath, appErr := routes.saveImage(r)
	if appErr != nil {
		return appErr
	}
	report.ImagenPath = imagenPath

	err := routes.db.CreateReport(r.Context(), report)
	if err == db.ErrInvalidCategory || err == db.ErrEmptyDescription {
		return &ErrBadRequest{Cause: err, Msg: err.Error()}
	}
	if err != nil {
		return &ErrUnavailable{Cause: err}
	}

	docName, err := routes.docs.Generate(report)
	if err != nil {
		return &ErrInternal{Cause: err, Msg: "Error generando el documento del reporte"}
	}

	renderJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "OK",
		"id":       report.ID,
		"document": "/reporte/" + docName,
	})
	return nil
}

// parseAnonimo normalizes the checkbox value; browsers send "on",
// scripted clients tend to send "true" or "1".
func parseAnonimo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	}
	return false
}

// parseCoords keeps the pair only when both values parse; a half-filled
// or broken pair is dropped and the submission still goes through.
func parseCoords(latStr, lngStr string) (lat, lng sql.NullFloat64) {
	if latStr == "" || lngStr == "" {
		return
	}
	latV, latErr := strconv.ParseFloat(latStr, 64)
	lngV, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return
	}
	lat = sql.NullFloat64{Float64: latV, Valid: true}
	lng = sql.NullFloat64{Float64: lngV, Valid: true}
	return
}

func (routes *Routes) saveImage(r *http.Request) (sql.NullString, AppError) {
	var none sql.NullString
	file, header, err := r.FormFile("imagen")
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return none, nil
	}
	if err != nil {
		return none, &ErrBadRequest{Cause: err, Msg: "Imagen inválida"}
	}
	defer file.Close()

	// Browsers submit an empty part when no file was chosen
	if header.Filename == "" {
		return none, nil
	}
	if !utils.AllowedImageFile(header.Filename) {
		return none, &ErrBadRequest{Msg: "Archivo no permitido"}
	}

	if err := os.MkdirAll(routes.envConfig.UploadDir, 0o755); err != nil {
		return none, &ErrInternal{Cause: err, Msg: "Error guardando imagen"}
	}
	name := utils.UploadFilename(time.Now(), header.Filename)
	dst, err := os.Create(filepath.Join(routes.envConfig.UploadDir, name))
	if err != nil {
		return none, &ErrInternal{Cause: err, Msg: "Error guardando imagen"}
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return none, &ErrInternal{Cause: err, Msg: "Error guardando imagen"}
	}

	return sql.NullString{String: "/evidencias/" + name, Valid: true}, nil
}

// GetDocument serves a previously generated report document.
func (routes *Routes) GetDocument(w http.ResponseWriter, r *http.Request) AppError {
	name := utils.SecureFilename(chi.URLParam(r, "filename"))
	if name == "" || !strings.HasSuffix(name, ".html") {
		return &ErrNotFound{Thing: "reporte"}
	}
	f, err := routes.docs.Open(name)
	if err != nil {
		return &ErrNotFound{Cause: err, Thing: "reporte"}
	}
	defer f.Close()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.Copy(w, f)
	return nil
}
