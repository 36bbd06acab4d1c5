package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

// Template names an HTML file under templates/, without the extension.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("emails").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html"),
)

// Render executes the named template with data.
func Render(name Template, data map[string]any) (string, error) {
	tmpl := templates.Lookup(string(name) + ".html")
	if tmpl == nil {
		return "", errors.Errorf("email template %q not found", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}
