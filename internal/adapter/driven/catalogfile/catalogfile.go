// Package catalogfile loads the certification catalog from a YAML document,
// either a file on disk or the catalog embedded in the binary.
package catalogfile

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

// DateLayout is the calendar-date format used for achieved_on.
const DateLayout = "2006-01-02"

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Compile-time interface satisfaction check.
var _ driven.CatalogSource = (*Source)(nil)

// Source is the YAML implementation of the CatalogSource port.
type Source struct {
	path    string
	siteURL string
	logger  *slog.Logger
}

// New creates a Source reading path. An empty path selects the embedded
// default catalog. siteURL is joined with the catalog's canonical path to
// build the page's canonical URL.
func New(path, siteURL string, logger *slog.Logger) *Source {
	return &Source{path: path, siteURL: siteURL, logger: logger}
}

// Load reads and parses the catalog. Records violating the status/achievement
// convention are logged but still returned.
func (s *Source) Load(_ context.Context) (model.Catalog, error) {
	data := defaultCatalog
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("read catalog %s: %w", s.path, err)
		}
	}

	catalog, err := Parse(data, s.siteURL)
	if err != nil {
		return model.Catalog{}, err
	}

	for _, r := range catalog.Records {
		if !r.HasConsistentStatus() {
			s.logger.Warn("credential has achievement data but is not achieved",
				"name", r.Name,
				"status", string(r.Status),
			)
		}
	}

	return catalog, nil
}

type document struct {
	Page        pageDoc      `yaml:"page"`
	Credentials []credential `yaml:"credentials"`
}

type pageDoc struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Tagline       string `yaml:"tagline"`
	Image         string `yaml:"image"`
	CanonicalPath string `yaml:"canonical_path"`
	Intro         string `yaml:"intro"`
}

type credential struct {
	Name          string   `yaml:"name"`
	Category      string   `yaml:"category"`
	Issuer        string   `yaml:"issuer"`
	Status        string   `yaml:"status"`
	Tags          []string `yaml:"tags"`
	Location      string   `yaml:"location"`
	AchievedOn    string   `yaml:"achieved_on"`
	CredentialURL string   `yaml:"credential_url"`
	ProofURL      string   `yaml:"proof_url"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte, siteURL string) (model.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	records := make([]model.CredentialRecord, 0, len(doc.Credentials))
	for i, c := range doc.Credentials {
		record, err := c.toRecord()
		if err != nil {
			return model.Catalog{}, fmt.Errorf("credential %d: %w", i, err)
		}
		records = append(records, record)
	}

	if err := driven.CheckCatalog(records); err != nil {
		return model.Catalog{}, err
	}

	return model.Catalog{
		Page: model.PageMeta{
			Title:        doc.Page.Title,
			Description:  doc.Page.Description,
			Tagline:      doc.Page.Tagline,
			Image:        doc.Page.Image,
			CanonicalURL: joinURL(siteURL, doc.Page.CanonicalPath),
			Intro:        doc.Page.Intro,
		},
		Records: records,
	}, nil
}

func (c credential) toRecord() (model.CredentialRecord, error) {
	status, ok := model.ParseCredentialStatus(c.Status)
	if !ok {
		return model.CredentialRecord{}, fmt.Errorf("%q has unknown status %q: %w", c.Name, c.Status, driven.ErrInvalidCatalog)
	}

	var achievedOn *time.Time
	if c.AchievedOn != "" {
		d, err := time.Parse(DateLayout, c.AchievedOn)
		if err != nil {
			return model.CredentialRecord{}, fmt.Errorf("%q has invalid achieved_on %q: %w", c.Name, c.AchievedOn, driven.ErrInvalidCatalog)
		}
		achievedOn = &d
	}

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.CredentialRecord{
		Name:          c.Name,
		Category:      c.Category,
		Issuer:        c.Issuer,
		Status:        status,
		Tags:          tags,
		Location:      c.Location,
		AchievedOn:    achievedOn,
		CredentialURL: c.CredentialURL,
		ProofURL:      c.ProofURL,
	}, nil
}

func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
