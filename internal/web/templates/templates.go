package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

// New parses the embedded page templates into a single set, keyed by
// the names each file defines.
func New() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))
}
