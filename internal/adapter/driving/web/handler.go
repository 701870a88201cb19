// Package web implements the HTML page driving adapter using templ components.
package web

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates/components"
	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/metrics"
)

const (
	sessionCookieName = "certpanel_session"

	// fragmentHeader marks requests from certpanel.js that want an HTML
	// fragment instead of a redirect back to the page.
	fragmentHeader = "X-Certpanel-Fragment"
)

// Handler is the web driving adapter that serves HTML via templ components.
// Each browser gets its own application.Session, keyed by a cookie.
type Handler struct {
	registry  *application.SessionRegistry
	store     *application.RecordStore
	meta      vm.PageMetaViewModel
	tagline   string
	introHTML string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. The page intro
// is rendered from markdown once, here.
func NewHandler(
	registry *application.SessionRegistry,
	store *application.RecordStore,
	page model.PageMeta,
	siteURL string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registry:  registry,
		store:     store,
		meta:      toPageMetaViewModel(page, siteURL),
		tagline:   page.Tagline,
		introHTML: RenderMarkdown(page.Intro),
		metrics:   m,
		logger:    logger,
	}
}

// Page renders the full certifications page. A q parameter, when present,
// is applied as a query change before rendering.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	csrf := csrfToken(w, r)

	var page vm.PageViewModel
	h.withSession(w, r, func(s *application.Session) {
		if r.URL.Query().Has("q") {
			h.applyQuery(s, r.URL.Query().Get("q"))
		}
		page = vm.PageViewModel{
			Meta:      h.meta,
			Tagline:   h.tagline,
			IntroHTML: h.introHTML,
			Grid:      toGridViewModel(s.Query(), s.AnimationPlan(), csrf),
			Detail:    toDetailViewModel(s.SelectionState(), csrf),
		}
	})

	h.render(w, r, templates.Layout(h.meta, pages.Credentials(page)), "page")
}

// Grid applies the q parameter as a query change and renders the grid
// fragment with a fresh animation plan.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	csrf := csrfToken(w, r)

	var grid vm.GridViewModel
	h.withSession(w, r, func(s *application.Session) {
		h.applyQuery(s, r.URL.Query().Get("q"))
		grid = toGridViewModel(s.Query(), s.AnimationPlan(), csrf)
	})

	h.render(w, r, components.CredentialGrid(grid), "grid")
}

// Select opens the detail view for the credential named by the name form field.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	name := r.FormValue("name")
	record, ok := h.store.ByName(name)
	if !ok {
		http.Error(w, "credential not found", http.StatusNotFound)
		return
	}

	csrf := csrfToken(w, r)

	var detail *vm.DetailViewModel
	h.withSession(w, r, func(s *application.Session) {
		s.OnRecordClick(record)
		detail = toDetailViewModel(s.SelectionState(), csrf)
	})
	h.metrics.ObserveDetailOpened(string(record.Status))

	h.respondDetail(w, r, detail)
}

// CloseDetail closes the detail view. Closing an already closed view is a no-op.
func (h *Handler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	h.withSession(w, r, func(s *application.Session) {
		s.OnDetailClose()
	})
	h.metrics.ObserveDetailClosed()

	h.respondDetail(w, r, nil)
}

func (h *Handler) respondDetail(w http.ResponseWriter, r *http.Request, detail *vm.DetailViewModel) {
	if r.Header.Get(fragmentHeader) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, components.DetailOverlay(detail), "detail overlay")
}

func (h *Handler) applyQuery(s *application.Session, query string) {
	s.OnQueryChange(query)
	h.metrics.ObserveQuery(len(s.FilteredRecords()))
}

// withSession runs fn against the caller's session, starting a new one when
// the cookie is missing or names a session that has been evicted.
func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, fn func(s *application.Session)) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if h.registry.Do(cookie.Value, fn) {
			return
		}
	}

	id := h.registry.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.metrics.SetActiveSessions(h.registry.Len())

	if !h.registry.Do(id, fn) {
		h.logger.Warn("session evicted before first use", "session", id)
	}
}

// render buffers the component so a render failure can still produce a clean
// 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component, what string) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render "+what, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write response", "error", err)
	}
}
