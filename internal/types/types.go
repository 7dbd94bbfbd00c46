package types

import (
	"context"

	"github.com/xhad/headlines/internal/models"
)

// Core interfaces
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*models.Page, error)
}

type Extractor interface {
	Extract(html string) []string
}

type Reporter interface {
	Report(headlines []string) error
}
