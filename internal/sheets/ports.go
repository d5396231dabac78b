package sheets

import (
	"context"

	"revlens/internal/core"
)

// Ports for inbound table sources.
type (
	// TableReader fetches one tab of the configured spreadsheet as
	// header-keyed records, one per data row. Implementations must not
	// partially succeed: an error means no usable rows.
	TableReader interface {
		ReadTable(ctx context.Context, tab string) ([]core.Record, error)
	}
)
