package steal

import (
	"bytes"
	"strings"
	"text/template"

	"recipe-box/domain"
)

// JSONSchema describes the payload the model must produce. It matches
// domain.DigestRequest field for field.
const JSONSchema = `{
  "title": "string (required) - the name of the recipe",
  "description": "string | null (optional) - one or two sentences describing the dish",
  "servings": "number (required) - how many servings the recipe makes",
  "preptime": "number (required) - preparation time in minutes",
  "cooktime": "number (required) - cooking time in minutes",
  "notes": "string | null (optional) - tips, storage advice or variations",
  "ingredients": [
    {
      "name": "string (required) - descriptive ingredient name",
      "amount": "number (required) - decimal quantity",
      "unit": "string (required) - unit of measurement"
    }
  ],
  "instructions": [
    {
      "order": "number (required) - step number starting at 1",
      "content": "string (required) - the text of this step"
    }
  ]
}`

const promptTemplate = `You are an expert recipe extraction assistant. Read the recipe published at the URL below and return it as structured JSON.

# URL
{{.URL}}
{{if .Content}}
# Page content
The readable text of the page follows between the markers.
<<<PAGE
{{.Content}}
PAGE>>>
{{end}}
# Task
Recipe pages bury the recipe under blog posts, life stories, advertising and comment threads. Ignore all of it and extract only the recipe itself.

# Extraction rules

## Recipe
- Use the exact recipe title without decorative punctuation.
- Write a one or two sentence description only if the page provides one.
- Record the number of servings or the yield.
- Give prep time and cook time in minutes.
- Keep useful notes such as tips, storage instructions and variations.

## Ingredients
- Split every ingredient into amount, unit and name.
- Convert fractions to decimals: "1/2" becomes 0.5 and "1 1/4" becomes 1.25.
- Use these unit abbreviations: {{.Units}}.
- Counted items use the unit "whole", so "2 eggs" becomes amount 2 and unit "whole".
- Keep names descriptive ("all-purpose flour", not "flour") and move preparation notes out of the name.

## Instructions
- Number the steps sequentially starting at 1 with no gaps or repeats.
- Keep the original wording but remove markup left over from the page.
- Every step must be a complete action and must keep temperatures, durations and techniques.

## Defaults, only when the page does not say
- servings: 4
- preptime: 30
- cooktime: 30
- description: null
- notes: null

## Times
- For a range such as "30-40 minutes" use the midpoint (35) or the lower bound (30).
- Convert everything to minutes, so "1 hour 30 minutes" becomes 90.
- When only a total time is given, split it into prep and cook if the steps make that possible.

# Failures
If the page contains no recipe, answer with {"error": {"type": "no_recipe_found", "message": "<why>"}}.
If the recipe is cut off or missing ingredients or steps, answer with {"error": {"type": "partial_data", "message": "<what is missing>"}}.
If the page holds several recipes and none is clearly the main one, answer with {"error": {"type": "ambiguous_data", "message": "<which recipes>"}}.

# Output format
Answer with exactly one markdown code block tagged json and nothing else:
` + "```json" + `
{
  "title": "...",
  ...
}
` + "```" + `

Do not write any text before or after the code block, do not emit more than one code block and do not put comments inside the JSON.

The JSON must follow this schema:

{{.Schema}}

Extract the recipe now and answer with the single JSON code block.`

var compiledPrompt = template.Must(template.New("steal").Parse(promptTemplate))

// CraftPrompt builds the extraction prompt for pageURL. With empty content the
// prompt asks the model to visit the URL itself, which is what a user pasting
// the prompt into a chat assistant needs.
func CraftPrompt(pageURL, content string) string {
	var buf bytes.Buffer
	_ = compiledPrompt.Execute(&buf, struct {
		URL     string
		Content string
		Units   string
		Schema  string
	}{
		URL:     pageURL,
		Content: content,
		Units:   strings.Join(domain.CommonUnits, ", "),
		Schema:  JSONSchema,
	})
	return buf.String()
}
