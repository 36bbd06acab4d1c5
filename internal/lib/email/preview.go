package email

// PreviewData holds sample template variables for rendering previews,
// keyed by template.
var PreviewData = map[Template]map[string]any{
	TemplateWelcome: {
		"Username": "aung",
		"Email":    "Aung@EduVerse.dev",
	},
}

// Preview renders name with its sample data.
func Preview(name Template) (string, error) {
	return Render(name, PreviewData[name])
}
