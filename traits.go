package gngt

import (
	"github.com/vq3go/gngt/epoch"
	"github.com/vq3go/gngt/vecspace"
)

// Traits extends epoch.ModelTraits with the one closure the driver needs
// that the processors don't: how to build a brand new vertex value around
// a raw prototype, used only when an epoch finds the graph empty and seeds
// it from the first sample.
type Traits[V any, E any, S any, T vecspace.Space[T]] struct {
	epoch.ModelTraits[V, E, S, T]

	// SeedVertex builds a vertex value from a prototype, used when the
	// driver seeds an empty graph with the first sample of the epoch.
	SeedVertex func(T) V
}
