package catalogfile

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

func TestSource_LoadEmbeddedCatalog(t *testing.T) {
	src := New("", "https://nirmitkhurana.com", slog.Default())

	catalog, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Records, 4)
	first := catalog.Records[0]
	assert.Equal(t, "Microsoft Certified: Data Analyst Associate", first.Name)
	assert.Equal(t, "Data Analytics", first.Category)
	assert.Equal(t, "Microsoft", first.Issuer)
	assert.Equal(t, model.StatusAchieved, first.Status)
	assert.Equal(t, []string{"Power BI", "DAX", "Data Modeling"}, first.Tags)
	require.NotNil(t, first.AchievedOn)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *first.AchievedOn)

	aws := catalog.Records[2]
	assert.Equal(t, model.StatusDesired, aws.Status)
	assert.Nil(t, aws.AchievedOn)
	assert.Equal(t, "", aws.ProofURL)

	assert.Equal(t, "Certifications // Nirmit Khurana", catalog.Page.Title)
	assert.Equal(t, "https://nirmitkhurana.com/certifications", catalog.Page.CanonicalURL)
	assert.Contains(t, catalog.Page.Intro, "**Data Analytics**")
}

func TestSource_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
credentials:
  - name: "Certified Kubernetes Administrator"
    category: "Cloud Native"
    issuer: "CNCF"
    status: "desired"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	catalog, err := New(path, "https://example.com/", slog.Default()).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Records, 1)
	assert.Equal(t, "CNCF", catalog.Records[0].Issuer)
	assert.Equal(t, []string{}, catalog.Records[0].Tags)
	assert.Equal(t, "https://example.com/", catalog.Page.CanonicalURL)
}

func TestSource_LoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"), "", slog.Default()).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestSource_WarnsOnInconsistentStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
credentials:
  - name: "Tableau Desktop Specialist"
    issuer: "Tableau"
    status: "Want to Meet"
    achieved_on: "2024-05-01"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	catalog, err := New(path, "", logger).Load(context.Background())

	require.NoError(t, err, "inconsistent records are trusted input, not errors")
	require.Len(t, catalog.Records, 1)
	assert.NotNil(t, catalog.Records[0].AchievedOn)
	assert.Contains(t, buf.String(), "Tableau Desktop Specialist")
}

func TestParse_UnknownStatus(t *testing.T) {
	doc := []byte(`
credentials:
  - name: "Tableau Desktop Specialist"
    status: "pending"
`)

	_, err := Parse(doc, "")

	require.ErrorIs(t, err, driven.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "pending")
}

func TestParse_InvalidDate(t *testing.T) {
	doc := []byte(`
credentials:
  - name: "Microsoft Certified: Data Analyst Associate"
    status: "Met"
    achieved_on: "15/01/2024"
`)

	_, err := Parse(doc, "")

	require.ErrorIs(t, err, driven.ErrInvalidCatalog)
}

func TestParse_DuplicateName(t *testing.T) {
	doc := []byte(`
credentials:
  - name: "Tableau Desktop Specialist"
    status: "desired"
  - name: "Tableau Desktop Specialist"
    status: "achieved"
`)

	_, err := Parse(doc, "")

	require.ErrorIs(t, err, driven.ErrDuplicateName)
}

func TestParse_MissingName(t *testing.T) {
	doc := []byte(`
credentials:
  - issuer: "Tableau"
    status: "desired"
`)

	_, err := Parse(doc, "")

	require.ErrorIs(t, err, driven.ErrInvalidCatalog)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("credentials: [unclosed"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
}
