package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

// PageTemplate is the name the page handler renders.
const PageTemplate = "page.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates with Funcs installed.
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html"),
	)
}

// Static serves the embedded stylesheet and script.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"fieldError":  fieldError,
		"branchTitle": clinic.BranchCardTitle,
	}
}

// fieldError looks a message up by wire name; templates cannot index a
// ValidationResult with a plain string.
func fieldError(errs appointment.ValidationResult, name string) string {
	f, ok := appointment.ParseField(name)
	if !ok {
		return ""
	}
	return errs[f]
}
