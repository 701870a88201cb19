package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// CredentialResponse is the JSON representation of a credential record.
// Optional fields are null when absent.
type CredentialResponse struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Issuer        string   `json:"issuer"`
	Status        string   `json:"status"`
	StatusLabel   string   `json:"status_label"`
	Tags          []string `json:"tags"`
	Location      string   `json:"location"`
	AchievedOn    *string  `json:"achieved_on"`
	CredentialURL *string  `json:"credential_url"`
	ProofURL      *string  `json:"proof_url"`
}

// AnimationStepResponse is the JSON representation of one entrance animation
// step. Times are in seconds.
type AnimationStepResponse struct {
	Name      string  `json:"name"`
	Index     int     `json:"index"`
	Delay     float64 `json:"delay"`
	Duration  float64 `json:"duration"`
	Stiffness float64 `json:"stiffness"`
	OffsetY   float64 `json:"offset_y"`
	Easing    string  `json:"easing"`
}

// PlanResponse is the entrance animation plan for one query.
type PlanResponse struct {
	Query string                  `json:"query"`
	Count int                     `json:"count"`
	Steps []AnimationStepResponse `json:"steps"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	Credentials int    `json:"credentials"`
}

// toCredentialResponse converts a domain CredentialRecord to its JSON representation.
func toCredentialResponse(r model.CredentialRecord) CredentialResponse {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := CredentialResponse{
		Name:          r.Name,
		Category:      r.Category,
		Issuer:        r.Issuer,
		Status:        string(r.Status),
		StatusLabel:   r.Status.Label(),
		Tags:          tags,
		Location:      r.Location,
		CredentialURL: optionalString(r.CredentialURL),
		ProofURL:      optionalString(r.ProofURL),
	}

	if r.AchievedOn != nil {
		d := r.AchievedOn.Format("2006-01-02")
		resp.AchievedOn = &d
	}

	return resp
}

// toAnimationStepResponse converts a domain AnimationStep to its JSON representation.
func toAnimationStepResponse(s model.AnimationStep) AnimationStepResponse {
	return AnimationStepResponse{
		Name:      s.Record.Name,
		Index:     s.Index,
		Delay:     s.Delay.Seconds(),
		Duration:  s.Duration.Seconds(),
		Stiffness: s.Stiffness,
		OffsetY:   s.OffsetY,
		Easing:    s.Easing,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
