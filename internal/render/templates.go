package render

import (
	"bytes"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
)

type Templates struct {
	templates *template.Template
	envConfig *models.EnvConfig
	fs        fs.FS
}

func (tmpls *Templates) RenderHTML(w http.ResponseWriter, tmplName string, data interface{}) {
	// Reload templates every time when developing locally.
	if tmpls.envConfig.Debug {
		tmpls.load()
	}
	buff := bytes.NewBuffer([]byte{})
	err := tmpls.templates.ExecuteTemplate(buff, tmplName, data)
	if err != nil && tmplName != "404" {
		tmpls.RenderHTML(w, "404", nil)
		log.Println(err)
		return
	}
	w.Header().Add("Content-Type", "text/html")
	w.Write(buff.Bytes())
}

func fecha(args ...interface{}) string {
	t, ok := args[0].(time.Time)
	if !ok {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func siNo(args ...interface{}) string {
	if b, ok := args[0].(bool); ok && b {
		return "Sí"
	}
	return "No"
}

func (tmpls *Templates) load() {
	tmpls.templates = template.Must(template.New("").Funcs(template.FuncMap{
		"fecha": fecha,
		"siNo":  siNo,
	}).ParseFS(tmpls.fs, "templates/*.html"),
	)
}

func (tmpls *Templates) SetFS(fsys fs.FS) {
	tmpls.fs = fsys
	tmpls.load()
}

func GetTemplates(envConfig *models.EnvConfig) Templates {
	return Templates{envConfig: envConfig}
}
