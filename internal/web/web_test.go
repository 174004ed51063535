package web

import (
	"bytes"
	"testing"

	"reciplette/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	recipe := domain.Recipe{RecipeID: 7, RecipeName: "Kaya Toast", CategoryID: 2, Image: "abc.png"}
	detail := &domain.RecipeDetail{Recipe: recipe, CategoryName: "Breakfast"}
	categories := []domain.Category{{CategoryID: 2, CategoryName: "Breakfast"}}

	pages := map[string]map[string]any{
		TemplateIndex:        {"recipe": []domain.Recipe{recipe}},
		TemplateCategory:     {"category": categories},
		TemplateRecipe:       {"recipe": detail},
		TemplateAddRecipe:    {"categories": categories},
		TemplateAddCategory:  {"category": domain.Category{}},
		TemplateEditRecipe:   {"recipe": detail, "categories": categories},
		TemplateEditCategory: {"category": &categories[0]},
		TemplateRoulette:     {"queue": []domain.QueuedRecipe{{RecipeID: 7, RecipeName: "Kaya Toast"}}},
	}

	for name, data := range pages {
		var out bytes.Buffer
		require.NoError(t, tmpl.ExecuteTemplate(&out, name, data), name)
		assert.Contains(t, out.String(), "<html", name)
	}
}

func TestEditRecipe_SelectsCurrentCategory(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	detail := &domain.RecipeDetail{Recipe: domain.Recipe{RecipeID: 1, CategoryID: 3, Image: "k.png"}}
	categories := []domain.Category{{CategoryID: 2, CategoryName: "A"}, {CategoryID: 3, CategoryName: "B"}}

	var out bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&out, TemplateEditRecipe, map[string]any{"recipe": detail, "categories": categories}))
	assert.Contains(t, out.String(), `<option value="3" selected>B</option>`)
	assert.Contains(t, out.String(), `name="currentImage" value="k.png"`)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "", ImageURL(""))
	assert.Equal(t, "/images/x.png", ImageURL("x.png"))
}
