package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	pageHome     = "home"
	pageCourses  = "courses"
	pageCourse   = "course"
	pageLegal    = "legal"
	pageNotFound = "notfound"
)

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
}

// renderer holds one template set per page, each sharing the layout
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFiles, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{pageHome, pageCourses, pageCourse, pageLegal, pageNotFound} {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFiles, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &renderer{pages: pages}, nil
}

// render executes the page into a buffer first so that a template error still yields a clean 500
func (h *PagesHandler) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := h.renderer.pages[page]
	if !ok {
		h.logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", zap.String("page", page), zap.Error(err))
	}
}
