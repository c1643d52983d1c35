package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vq3go/gngt/stats"
)

func TestOnlineMeanStdSeedsOnFirstUpdate(t *testing.T) {
	var f stats.OnlineMeanStd
	assert.False(t, f.Valid())

	f.Update(1, 2, 0.5)
	mean, std, valid := f.Current()
	assert.True(t, valid)
	assert.Equal(t, 1.0, mean)
	assert.Equal(t, 2.0, std)
}

func TestOnlineMeanStdSmooths(t *testing.T) {
	var f stats.OnlineMeanStd
	f.Update(0, 0, 0.5)
	f.Update(10, 10, 0.5)

	mean, std, _ := f.Current()
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 5.0, std)
}
