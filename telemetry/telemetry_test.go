package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vq3go/gngt/telemetry"
)

func TestRecorderObserveGraph(t *testing.T) {
	r := telemetry.NewRecorder()
	r.ObserveGraph(3, 2)
	r.ObserveEvolution(1, 1)
	r.ObserveEpochDuration(5 * time.Millisecond)

	families, err := r.Registry().Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := telemetry.NopLogger()
	assert.NotPanics(t, func() { logger.Info("test") })
}
