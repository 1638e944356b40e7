package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/system-sage/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageProfiles        = "profiles.html"
	pageProfileForm     = "profile_form.html"
	pageProfileDetail   = "profile_detail.html"
	pageDevEnvAudit     = "devenv_audit.html"
	pageSystemInventory = "system_inventory.html"
	pageError           = "error.html"
)

// pages holds one template set per page, each one sharing layout.html.
type pages struct {
	byName map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("2006-01-02 15:04:05")
	},
	"statusText": http.StatusText,
}

func parsePages() (*pages, error) {
	names := []string{
		pageProfiles,
		pageProfileForm,
		pageProfileDetail,
		pageDevEnvAudit,
		pageSystemInventory,
		pageError,
	}

	p := &pages{byName: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		p.byName[name] = t
	}

	return p, nil
}

// render executes the page into a buffer first so a template error still
// produces a clean 500 instead of a half written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	log := logger.FromRequest(r)

	t, ok := h.pages.byName[page]
	if !ok {
		log.Error().Str("func", "*Handler.render").Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type errorPage struct {
	Status  int
	Message string
}

// renderError logs err and shows the error page with the mapped status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Error()
	if resp.status < http.StatusInternalServerError {
		event = logger.FromRequest(r).Warn()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg(msg)

	h.render(w, r, resp.status, pageError, errorPage{Status: resp.status, Message: resp.message})
}
