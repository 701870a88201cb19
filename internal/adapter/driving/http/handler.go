package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/certpanel/internal/application"
)

// Handler is the HTTP driving adapter that serves the JSON API. It is
// stateless: every request filters the store with the query it carries.
type Handler struct {
	store     *application.RecordStore
	sequencer *application.PresentationSequencer
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	store *application.RecordStore,
	sequencer *application.PresentationSequencer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:     store,
		sequencer: sequencer,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/credentials", h.ListCredentials)
	mux.HandleFunc("GET /api/v1/credentials/plan", h.GetAnimationPlan)
	mux.HandleFunc("GET /api/v1/credentials/{name}", h.GetCredential)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ApplyMiddleware wraps handler with recovery and request logging.
func ApplyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// ListCredentials returns the credentials matching the q query parameter,
// in catalog order. An absent or empty q returns every credential.
func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	filtered := application.Filter(h.store.All(), r.URL.Query().Get("q"))

	resp := make([]CredentialResponse, 0, len(filtered))
	for _, rec := range filtered {
		resp = append(resp, toCredentialResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetAnimationPlan returns the staggered entrance plan for the credentials
// matching the q query parameter.
func (h *Handler) GetAnimationPlan(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	steps := h.sequencer.Plan(application.Filter(h.store.All(), query))

	resp := PlanResponse{
		Query: query,
		Count: len(steps),
		Steps: make([]AnimationStepResponse, 0, len(steps)),
	}
	for _, s := range steps {
		resp.Steps = append(resp.Steps, toAnimationStepResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetCredential returns a single credential by its exact name.
func (h *Handler) GetCredential(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rec, ok := h.store.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "credential not found")
		return
	}

	writeJSON(w, http.StatusOK, toCredentialResponse(rec))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Time:        time.Now().UTC().Format(time.RFC3339),
		Credentials: h.store.Len(),
	})
}
