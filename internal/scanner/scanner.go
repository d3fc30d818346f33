package scanner

import (
	"context"

	"github.com/lumipallolabs/weightmap/internal/model"
)

// Progress is a snapshot of scanning progress
type Progress struct {
	FilesScanned int64
	DirsScanned  int64
	BytesFound   int64
}

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan walks the given root path and returns a weighted tree whose
	// leaves are files (weight = size on disk) and whose internal nodes
	// are directories
	Scan(ctx context.Context, root string) (*model.Tree, error)

	// Progress returns the current progress counters; safe to call
	// while Scan is running
	Progress() Progress
}
