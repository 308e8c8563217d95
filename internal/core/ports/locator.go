package ports

import (
	"context"

	"github.com/monday-consulting/modres/internal/core/domain"
)

// Locator is a single resolution tier. The resolution engine consults an
// ordered list of locators; the order is the resolution policy.
type Locator interface {
	// Locate attempts to supply a project for the coordinate. It returns
	// (nil, nil) when the tier cannot supply it and the next tier should be
	// consulted. A non-nil error aborts the whole resolution.
	Locate(ctx context.Context, coord domain.Coordinate) (*domain.Project, error)
}
