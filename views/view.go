package views

//go:generate templ generate

import (
	"net/http"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Page is the full HTML document around the bracket view.
func Page(b *bracket.Bracket, tr Translator) templ.Component {
	return layout(translate(tr, pageTitleKey), Project(b, tr))
}

// Fragment is the #app root alone, used to answer htmx requests.
func Fragment(b *bracket.Bracket, tr Translator) templ.Component {
	return nodeView(Project(b, tr))
}
