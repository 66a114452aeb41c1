package pages

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed content/*.md
var content embed.FS

var ErrPageNotFound = errors.New("page not found")

// Raw HTML in the markdown sources is escaped (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var layout = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// Page is a static content page rendered once at startup.
type Page struct {
	Slug  string
	Title string
	Body  template.HTML
}

// Registry holds the rendered pages by slug.
type Registry struct {
	pages map[string]Page
}

// Load renders every embedded markdown page. The first "# " heading becomes the title.
func Load() (*Registry, error) {
	entries, err := content.ReadDir("content")
	if err != nil {
		return nil, err
	}
	r := &Registry{pages: make(map[string]Page, len(entries))}
	for _, entry := range entries {
		src, err := content.ReadFile("content/" + entry.Name())
		if err != nil {
			return nil, err
		}
		page, err := Render(strings.TrimSuffix(entry.Name(), ".md"), src)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", entry.Name(), err)
		}
		r.pages[page.Slug] = page
	}
	return r, nil
}

func Render(slug string, markdown []byte) (Page, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(markdown, &buf); err != nil {
		return Page{}, err
	}
	return Page{Slug: slug, Title: titleOf(markdown, slug), Body: template.HTML(buf.String())}, nil
}

func titleOf(markdown []byte, fallback string) string {
	for _, line := range strings.Split(string(markdown), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

func (r *Registry) Get(slug string) (Page, error) {
	p, ok := r.pages[slug]
	if !ok {
		return Page{}, ErrPageNotFound
	}
	return p, nil
}

// WriteHTML renders the page inside the standalone HTML layout.
func (p Page) WriteHTML(buf *bytes.Buffer) error {
	return layout.Execute(buf, p)
}
