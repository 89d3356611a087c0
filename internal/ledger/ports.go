package ledger

import (
	"context"

	"gamjatokki/internal/core"
)

// Ports for outbound adapters.
type (
	// EntryLister returns the ledger entries of one month, ordered by day.
	EntryLister interface {
		ListEntries(ctx context.Context, year int, month int) ([]core.Entry, error)
	}
)
