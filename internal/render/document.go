package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

// documentTmpl is the printable record handed to reviewers, one file per
// report. Kept self-contained on purpose: the output must stay readable
// when copied out of the reports directory.
const documentTmpl = `<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte {{.ID}} — LlaqtaShield</title>
<style>
body{font-family:Arial;margin:28px;background:#fbfdfb;color:#07392f}
h1{color:#0b6b55;border-bottom:4px solid #dfe9e3;padding-bottom:8px}
.box{background:#fff;padding:16px;border-radius:8px;box-shadow:0 6px 18px rgba(3,19,14,.06)}
.lab{font-weight:700;color:#0b5f49}
</style>
</head>
<body>
<h1>Reporte #{{.ID}} — Sistema LlaqtaShield</h1>
<div class="box">
<p><span class="lab">Fecha:</span> {{fecha .CreatedAt}}</p>
<p><span class="lab">Categoría:</span> {{.Categoria}}</p>
<p><span class="lab">Descripción:</span> {{.Descripcion}}</p>
<p><span class="lab">Dirección:</span> {{.Direccion}}</p>
{{if .Lat.Valid}}<p><span class="lab">Latitud:</span> {{.Lat.Float64}}</p>{{end}}
{{if .Lng.Valid}}<p><span class="lab">Longitud:</span> {{.Lng.Float64}}</p>{{end}}
<p><span class="lab">Teléfono:</span> {{.Telefono}}</p>
<p><span class="lab">Anónimo:</span> {{siNo .Anonimo}}</p>
{{if .ImagenPath.Valid}}<p><span class="lab">Imagen:</span> {{.ImagenPath.String}}</p>{{end}}
</div>
</body>
</html>
`

// DocumentGenerator writes one static HTML record per persisted report.
type DocumentGenerator struct {
	dir  string
	tmpl *template.Template
}

func NewDocumentGenerator(dir string) (*DocumentGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("Creating reports dir: %w", err)
	}
	tmpl := template.Must(template.New("document").Funcs(template.FuncMap{
		"fecha": fecha,
		"siNo":  siNo,
	}).Parse(documentTmpl))
	return &DocumentGenerator{dir: dir, tmpl: tmpl}, nil
}

// DocumentName is deterministic per report id, so regenerating a report
// overwrites its previous document.
func DocumentName(id int) string {
	return fmt.Sprintf("reporte_%d.html", id)
}

// Generate renders the document for a persisted report and returns its
// filename.
func (g *DocumentGenerator) Generate(report *models.Report) (string, error) {
	buff := bytes.NewBuffer([]byte{})
	if err := g.tmpl.Execute(buff, report); err != nil {
		return "", err
	}
	name := DocumentName(report.ID)
	if err := os.WriteFile(filepath.Join(g.dir, name), buff.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("Writing report document: %w", err)
	}
	return name, nil
}

// Open returns the document file for serving, or an error when it does
// not exist.
func (g *DocumentGenerator) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(g.dir, filepath.Base(name)))
}
