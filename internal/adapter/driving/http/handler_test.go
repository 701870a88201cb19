package httphandler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/certpanel/internal/adapter/driving/http"
	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// --- Test helpers ---

var testAchievedOn = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func testRecords() []model.CredentialRecord {
	return []model.CredentialRecord{
		{
			Name:          "Microsoft Certified: Data Analyst Associate",
			Category:      "Data Analytics",
			Issuer:        "Microsoft",
			Status:        model.StatusAchieved,
			Tags:          []string{"Power BI", "DAX"},
			Location:      "Online",
			AchievedOn:    &testAchievedOn,
			CredentialURL: "https://learn.microsoft.com/en-us/certifications/data-analyst-associate/",
			ProofURL:      "https://www.linkedin.com/feed/update/your-cert-post",
		},
		{
			Name:     "AWS Certified Data Analytics",
			Category: "Cloud Data Analytics",
			Issuer:   "Amazon Web Services",
			Status:   model.StatusDesired,
			Location: "Online",
		},
	}
}

func setupMux(records []model.CredentialRecord) http.Handler {
	store := application.NewRecordStore(records)
	sequencer := application.NewPresentationSequencer(model.DefaultAnimationConfig())
	h := httphandler.NewHandler(store, sequencer, slog.Default())

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h)
	return httphandler.ApplyMiddleware(mux, slog.Default())
}

func doGet(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestListCredentials_All(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp []httphandler.CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	ms := resp[0]
	assert.Equal(t, "achieved", ms.Status)
	assert.Equal(t, "Met", ms.StatusLabel)
	require.NotNil(t, ms.AchievedOn)
	assert.Equal(t, "2024-01-15", *ms.AchievedOn)
	require.NotNil(t, ms.ProofURL)

	aws := resp[1]
	assert.Equal(t, "Want to Meet", aws.StatusLabel)
	assert.Nil(t, aws.AchievedOn)
	assert.Nil(t, aws.CredentialURL)
	assert.Nil(t, aws.ProofURL)
	assert.Equal(t, []string{}, aws.Tags)
}

func TestListCredentials_NullOptionalFields(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials?q=amazon")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"achieved_on":null`)
	assert.Contains(t, rec.Body.String(), `"proof_url":null`)
}

func TestListCredentials_Query(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches both", query: "data", want: []string{
			"Microsoft Certified: Data Analyst Associate", "AWS Certified Data Analytics",
		}},
		{name: "issuer only", query: "AMAZON", want: []string{"AWS Certified Data Analytics"}},
		{name: "tag is not searched", query: "DAX", want: []string{}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials?q="+url.QueryEscape(tt.query))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp []httphandler.CredentialResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			got := make([]string, 0, len(resp))
			for _, c := range resp {
				got = append(got, c.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCredentials_EmptyIsArray(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials?q=zzz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetAnimationPlan(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials/plan?q=data")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "data", resp.Query)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Steps, 2)
	assert.InDelta(t, 0.0, resp.Steps[0].Delay, 0.0001)
	assert.InDelta(t, 0.08, resp.Steps[1].Delay, 0.0001)
	assert.InDelta(t, 0.5, resp.Steps[1].Duration, 0.0001)
	assert.InDelta(t, 60.0, resp.Steps[1].Stiffness, 0.0001)
	assert.Equal(t, "spring", resp.Steps[1].Easing)
}

func TestGetAnimationPlan_IndicesFollowFilteredSequence(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials/plan?q=amazon")

	var resp httphandler.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Steps, 1)
	assert.Equal(t, 0, resp.Steps[0].Index)
	assert.Equal(t, "AWS Certified Data Analytics", resp.Steps[0].Name)
}

func TestGetCredential(t *testing.T) {
	target := "/api/v1/credentials/" + url.PathEscape("AWS Certified Data Analytics")
	rec := doGet(t, setupMux(testRecords()), target)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Amazon Web Services", resp.Issuer)
}

func TestGetCredential_NotFound(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/credentials/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"credential not found"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := doGet(t, setupMux(testRecords()), "/api/v1/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Credentials)
	assert.NotEmpty(t, resp.Time)
}

func TestApplyMiddleware_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := doGet(t, httphandler.ApplyMiddleware(mux, logger), "/boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "status=500")
}
