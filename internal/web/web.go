// Package web holds the HTML templates rendered by the catalog routes.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names rendered by the handlers
const (
	TemplateIndex        = "index"
	TemplateCategory     = "category"
	TemplateRecipe       = "recipe"
	TemplateAddRecipe    = "addRecipe"
	TemplateAddCategory  = "addCategory"
	TemplateEditRecipe   = "editRecipe"
	TemplateEditCategory = "editCategory"
	TemplateRoulette     = "roulette"
)

// Templates parses every embedded template. The result is handed to
// gin's SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"imageURL": ImageURL,
	}).ParseFS(templateFS, "templates/*.html")
}

// ImageURL returns the public path of a stored image, or "" when none
func ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return "/images/" + key
}
