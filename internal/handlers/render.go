package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"vortex-api/internal/contextutil"
	"vortex-api/internal/service"
)

// RenderHandler serves a stored note as an HTML page, treating its content
// as markdown. Raw HTML in the note is not passed through.
type RenderHandler struct {
	svc      service.VortexService
	parser   goldmark.Markdown
	template *template.Template
}

// notePageData holds template data for rendered note pages.
type notePageData struct {
	ID      int
	Content template.HTML
}

// NewRenderHandler creates a new handler for rendering notes.
func NewRenderHandler(svc service.VortexService) *RenderHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Memory node #{{.ID}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    pre {
      background: #0f172a;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 10px;
    }
    a {
      color: #60a5fa;
    }
  </style>
</head>
<body>
  <header><h1>Memory node #{{.ID}}</h1></header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &RenderHandler{
		svc: svc,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP handles GET /api/memory/{id}/render.
func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := noteIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidNoteID)
		return
	}

	entry, err := h.svc.GetNote(ctx, id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get note")
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(entry.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "note_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render note")
		return
	}

	var page bytes.Buffer
	if err := h.template.Execute(&page, notePageData{ID: entry.ID, Content: template.HTML(htmlContent)}); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "note_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render note")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}

func (h *RenderHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
