package graph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vq3go/gngt/graph"
)

// TestConcurrentConnect: many goroutines connecting into the same hub
// vertex concurrently must all succeed and all be visible afterward.
func TestConcurrentConnect(t *testing.T) {
	g := graph.New[string, int]()
	hub := g.AddVertex("hub")

	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			leaf := g.AddVertex(fmt.Sprintf("leaf-%d", id))
			_, err := g.Connect(hub, leaf, id)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert := require.New(t)
	assert.Equal(num+1, g.VertexCount())
	assert.Equal(num, g.EdgeCount())
}

// TestConcurrentVertexValueReads verifies concurrent VertexValue reads do
// not race against each other (no structural mutation is concurrent here,
// matching FindEdge's documented thread-safety contract).
func TestConcurrentVertexValueReads(t *testing.T) {
	g := graph.New[int, struct{}]()
	refs := make([]graph.VertexRef, 100)
	for i := range refs {
		refs[i] = g.AddVertex(i)
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i, ref := range refs {
				val, ok := g.VertexValue(ref)
				require.True(t, ok)
				require.Equal(t, i, *val)
			}
		}()
	}
	wg.Wait()
}
