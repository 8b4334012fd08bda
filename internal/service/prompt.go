package service

import (
	"strings"
	"text/template"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// ContextSeparator joins retrieved chunk texts in the prompt context.
const ContextSeparator = "\n\n-------------\n\n"

const promptTemplate = `Query:
{{.Question}}

----

Answer based on the chunks that best match the query:
{{.Context}}`

var prompt = template.Must(template.New("prompt").Parse(promptTemplate))

type promptData struct {
	Question string
	Context  string
}

// BuildContext joins the result texts in rank order.
func BuildContext(results []domain.SearchResult) string {
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Chunk.Text
	}
	return strings.Join(texts, ContextSeparator)
}

// RenderPrompt fills the answer prompt with the question and context.
func RenderPrompt(question, context string) (string, error) {
	var b strings.Builder
	if err := prompt.Execute(&b, promptData{Question: question, Context: context}); err != nil {
		return "", err
	}
	return b.String(), nil
}
