package render

import (
	"html/template"
	"strings"
)

// Renderer executes named HTML fragments into strings. The map view and
// the notification presenter embed their fragments as sources rather than
// loading files from disk.
type Renderer struct {
	t *template.Template
}

func NewRenderer(fragments map[string]string) (*Renderer, error) {
	root := template.New("fragments")
	for name, src := range fragments {
		if _, err := root.New(name).Parse(src); err != nil {
			return nil, err
		}
	}
	return &Renderer{t: root}, nil
}

func (r *Renderer) Render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.t.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
