package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/listing"
)

// TreeBuilder renders directory trees using configured filtering options.
type TreeBuilder struct {
	Exclude         []string
	Include         []string
	DirectoriesOnly bool
	// MaxDepth limits recursion; nil means unlimited and 1 lists only the root's children.
	MaxDepth *int
	Ignore   listing.IgnoreMatcher
	Logger   *zap.Logger
}

func (treeBuilder *TreeBuilder) listingOptions() listing.Options {
	return listing.Options{
		Exclude:         treeBuilder.Exclude,
		Include:         treeBuilder.Include,
		DirectoriesOnly: treeBuilder.DirectoriesOnly,
		Ignore:          treeBuilder.Ignore,
	}
}

func (treeBuilder *TreeBuilder) logger() *zap.Logger {
	if treeBuilder.Logger == nil {
		return zap.NewNop()
	}
	return treeBuilder.Logger
}
