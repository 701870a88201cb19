package driven

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// Sentinel errors returned by CatalogSource implementations.
var (
	// ErrInvalidCatalog indicates a catalog entry could not be interpreted
	// (unknown status, unparsable date, missing name).
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrDuplicateName indicates two catalog entries share the same name.
	ErrDuplicateName = errors.New("duplicate credential name")
)

// CatalogSource defines the driven port for the one-time load of the static
// certification catalog. Implementations are read-only.
type CatalogSource interface {
	// Load returns the page copy and every credential record in authored order.
	Load(ctx context.Context) (model.Catalog, error)
}

// CheckCatalog verifies the structural rules every CatalogSource must uphold:
// each record has a name and names are unique. It does not check the
// status/achievement relationship, which is trusted input.
func CheckCatalog(records []model.CredentialRecord) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.Name == "" {
			return fmt.Errorf("record %d has no name: %w", i, ErrInvalidCatalog)
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("%q: %w", r.Name, ErrDuplicateName)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}
