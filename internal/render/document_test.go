package render

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

func mockReport() *models.Report {
	return &models.Report{
		ID:          7,
		CreatedAt:   time.Date(2025, 3, 9, 15, 4, 0, 0, time.UTC),
		Categoria:   models.CategoryEmergencia,
		Descripcion: "Incendio en el mercado",
		Direccion:   "Jr. Dos de Mayo 123",
		Lat:         sql.NullFloat64{Float64: -9.93, Valid: true},
		Lng:         sql.NullFloat64{Float64: -76.24, Valid: true},
		Telefono:    "962000111",
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewDocumentGenerator(dir)
	if err != nil {
		t.Fatalf("NewDocumentGenerator(%s) = %v, want nil", dir, err)
	}

	report := mockReport()
	name, err := gen.Generate(report)
	if err != nil {
		t.Fatalf("Generate(%v) = %v, want nil", report, err)
	}
	if name != "reporte_7.html" {
		t.Fatalf("Generate() name = %s, want reporte_7.html", name)
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	html := string(content)
	for _, want := range []string{"EMERGENCIA", "Incendio en el mercado", "-9.93", "-76.24", "2025-03-09 15:04"} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestGenerateOverwrites(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewDocumentGenerator(dir)
	if err != nil {
		t.Fatal(err)
	}

	report := mockReport()
	if _, err := gen.Generate(report); err != nil {
		t.Fatal(err)
	}
	report.Descripcion = "Descripción corregida"
	name, err := gen.Generate(report)
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "Descripción corregida") {
		t.Fatal("regenerating should overwrite the existing document")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one document per report id, found %d files", len(entries))
	}
}

func TestGenerateEscapes(t *testing.T) {
	gen, err := NewDocumentGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	report := mockReport()
	report.Descripcion = `<script>alert("x")</script>`
	name, err := gen.Generate(report)
	if err != nil {
		t.Fatal(err)
	}
	f, err := gen.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf := make([]byte, 8192)
	n, _ := f.Read(buf)
	if strings.Contains(string(buf[:n]), "<script>alert") {
		t.Fatal("description must be HTML-escaped in the document")
	}
}
