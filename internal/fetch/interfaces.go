package fetch

import (
	"context"

	"github.com/ytget/item-list/internal/model"
)

// Fetcher defines the interface for the record source.
type Fetcher interface {
	// Fetch returns the records published at url, or an empty slice on any failure.
	Fetch(ctx context.Context, url string) []model.Record
}

var _ Fetcher = (*Service)(nil)
