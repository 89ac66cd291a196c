package view

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"regexp"
	"strings"

	"playlist-grid/domain/model"
)

//go:embed templates/*.gohtml templates/style.css
var templateFS embed.FS

var styleCloseTag = regexp.MustCompile(`(?i)</style`)

// Renderer turns playlists, errors and pages into HTML
type Renderer struct {
	templates  *template.Template
	stylesheet string
}

type card struct {
	model.VideoItem
	LineClamp int
}

type playlistView struct {
	Cards []card
}

type pageView struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// SettingsFormView feeds the admin settings form
type SettingsFormView struct {
	Settings model.Settings
	Notice   string
	Error    string
	Min      int
	Max      int
	Layouts  []model.Layout
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &Renderer{templates: tmpl, stylesheet: string(css)}, nil
}

// RenderPlaylist renders the items with the given layout; unknown layouts fall back to the grid.
func (r *Renderer) RenderPlaylist(layout model.Layout, items []model.VideoItem) (string, error) {
	name := string(model.LayoutGrid)
	if layout == model.LayoutMasonry {
		name = string(model.LayoutMasonry)
	}

	cards := make([]card, 0, len(items))
	for _, item := range items {
		c := card{VideoItem: item}
		c.Description = strings.TrimSpace(StripTags(item.Description))
		if name == string(model.LayoutMasonry) {
			c.Description = TrimWords(item.Description, masonryDescriptionWords, trimMore)
			c.LineClamp = lineClamp(item.VideoID)
		}
		cards = append(cards, c)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, playlistView{Cards: cards}); err != nil {
		return "", fmt.Errorf("render %s layout: %w", name, err)
	}
	return buf.String(), nil
}

// RenderError renders the inline error block. It cannot fail.
func (r *Renderer) RenderError(message string) string {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "error", message); err != nil {
		return `<div class="ytpg-error">` + html.EscapeString(message) + `</div>`
	}
	return buf.String()
}

// Stylesheet is the default stylesheet followed by the configured custom CSS
func (r *Renderer) Stylesheet(customCSS string) template.CSS {
	css := r.stylesheet
	if customCSS != "" {
		css += "\n" + styleCloseTag.ReplaceAllString(customCSS, "")
	}
	return template.CSS(css)
}

// RenderPage writes a full document around an already rendered body
func (r *Renderer) RenderPage(w io.Writer, title string, body string, customCSS string) error {
	return r.templates.ExecuteTemplate(w, "page", pageView{
		Title: title,
		CSS:   r.Stylesheet(customCSS),
		Body:  template.HTML(body),
	})
}

func (r *Renderer) RenderSettings(w io.Writer, data SettingsFormView) error {
	if data.Min == 0 {
		data.Min = model.MinMaxResults
	}
	if data.Max == 0 {
		data.Max = model.MaxMaxResults
	}
	if len(data.Layouts) == 0 {
		data.Layouts = []model.Layout{model.LayoutGrid, model.LayoutMasonry}
	}
	return r.templates.ExecuteTemplate(w, "settings", data)
}
