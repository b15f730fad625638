package recipe

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"

	"recipe-box/domain"
	"recipe-box/internal/utils"
)

var shareTemplate = template.Must(template.New("share").Funcs(template.FuncMap{
	"amount": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
}).Parse(`<h1>{{.Recipe.Title}}</h1>
{{with .Recipe.Description}}<p>{{.}}</p>{{end}}
<p>Serves {{.Recipe.Servings}} &middot; Prep {{.Recipe.Preptime}} min &middot; Cook {{.Recipe.Cooktime}} min</p>
<h2>Ingredients</h2>
<ul>
{{range .Ingredients}}<li>{{amount .Amount}} {{.Unit}} {{.Name}}</li>
{{end}}</ul>
<h2>Instructions</h2>
<ol>
{{range .Instructions}}<li>{{.Content}}</li>
{{end}}</ol>
{{with .Recipe.Notes}}<h2>Notes</h2><p>{{.}}</p>{{end}}`))

func (s *recipeService) ShareRecipe(ctx context.Context, id uint, req domain.ShareRecipeRequest) error {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return err
	}

	detail, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	body, err := RenderRecipeHTML(detail)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Recipe: %s", detail.Recipe.Title)
	return s.mailer.SendMail(req.Email, subject, body)
}

func RenderRecipeHTML(detail domain.RecipeDetail) (string, error) {
	var buf bytes.Buffer
	if err := shareTemplate.Execute(&buf, detail); err != nil {
		return "", err
	}
	return buf.String(), nil
}
