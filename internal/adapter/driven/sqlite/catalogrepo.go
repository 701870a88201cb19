package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

const dateLayout = "2006-01-02"

// Compile-time interface satisfaction check.
var _ driven.CatalogSource = (*CatalogRepo)(nil)

// CatalogRepo is the SQLite implementation of the CatalogSource port interface.
// It only reads; the catalog content is authored through migrations or
// external tooling.
type CatalogRepo struct {
	db      *DB
	siteURL string
	logger  *slog.Logger
}

// NewCatalogRepo creates a new CatalogRepo backed by the given DB.
func NewCatalogRepo(db *DB, siteURL string, logger *slog.Logger) *CatalogRepo {
	return &CatalogRepo{db: db, siteURL: siteURL, logger: logger}
}

// Load returns the page copy and every credential ordered by position.
func (r *CatalogRepo) Load(ctx context.Context) (model.Catalog, error) {
	page, err := r.loadPage(ctx)
	if err != nil {
		return model.Catalog{}, err
	}

	records, ids, err := r.loadRecords(ctx)
	if err != nil {
		return model.Catalog{}, err
	}

	tags, err := r.loadTags(ctx)
	if err != nil {
		return model.Catalog{}, err
	}

	for i := range records {
		records[i].Tags = tags[ids[i]]
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
		if !records[i].HasConsistentStatus() {
			r.logger.Warn("credential has achievement data but is not achieved",
				"name", records[i].Name,
				"status", string(records[i].Status),
			)
		}
	}

	if err := driven.CheckCatalog(records); err != nil {
		return model.Catalog{}, err
	}

	return model.Catalog{Page: page, Records: records}, nil
}

func (r *CatalogRepo) loadPage(ctx context.Context) (model.PageMeta, error) {
	const query = `SELECT title, description, tagline, image, canonical_path, intro FROM page_meta WHERE id = 1`

	var page model.PageMeta
	var canonicalPath string
	err := r.db.Reader.QueryRowContext(ctx, query).Scan(
		&page.Title, &page.Description, &page.Tagline, &page.Image, &canonicalPath, &page.Intro,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PageMeta{CanonicalURL: r.siteURL}, nil
	}
	if err != nil {
		return model.PageMeta{}, fmt.Errorf("load page meta: %w", err)
	}

	page.CanonicalURL = r.siteURL
	if canonicalPath != "" {
		page.CanonicalURL = strings.TrimRight(r.siteURL, "/") + "/" + strings.TrimLeft(canonicalPath, "/")
	}
	return page, nil
}

func (r *CatalogRepo) loadRecords(ctx context.Context) ([]model.CredentialRecord, []int64, error) {
	const query = `SELECT id, name, category, issuer, status, location, achieved_on, credential_url, proof_url
		FROM credentials ORDER BY position, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var records []model.CredentialRecord
	var ids []int64
	for rows.Next() {
		record, id, err := scanCredential(rows)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate credentials: %w", err)
	}

	if records == nil {
		records = []model.CredentialRecord{}
	}
	return records, ids, nil
}

func (r *CatalogRepo) loadTags(ctx context.Context) (map[int64][]string, error) {
	const query = `SELECT credential_id, tag FROM credential_tags ORDER BY credential_id, position`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credential tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scan credential tag: %w", err)
		}
		tags[id] = append(tags[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credential tags: %w", err)
	}

	return tags, nil
}

// scanCredential scans one credentials row. Nullable columns map to the
// record's optional fields.
func scanCredential(rows *sql.Rows) (model.CredentialRecord, int64, error) {
	var (
		id            int64
		record        model.CredentialRecord
		status        string
		achievedOn    sql.NullString
		credentialURL sql.NullString
		proofURL      sql.NullString
	)

	if err := rows.Scan(&id, &record.Name, &record.Category, &record.Issuer, &status,
		&record.Location, &achievedOn, &credentialURL, &proofURL); err != nil {
		return model.CredentialRecord{}, 0, fmt.Errorf("scan credential: %w", err)
	}

	parsed, ok := model.ParseCredentialStatus(status)
	if !ok {
		return model.CredentialRecord{}, 0, fmt.Errorf("%q has unknown status %q: %w", record.Name, status, driven.ErrInvalidCatalog)
	}
	record.Status = parsed

	if achievedOn.Valid && achievedOn.String != "" {
		d, err := time.Parse(dateLayout, achievedOn.String)
		if err != nil {
			return model.CredentialRecord{}, 0, fmt.Errorf("%q has invalid achieved_on %q: %w", record.Name, achievedOn.String, driven.ErrInvalidCatalog)
		}
		record.AchievedOn = &d
	}

	record.CredentialURL = credentialURL.String
	record.ProofURL = proofURL.String

	return record, id, nil
}
