package plan

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("plan").ParseFS(templateFS, "templates/*.tmpl"))

// render executes an embedded template. The templates ship with the binary
// and are covered by tests, so a failure here is a programming error.
func render(name string, data interface{}) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		panic(fmt.Sprintf("rendering template %s: %v", name, err))
	}
	return buf.String()
}
