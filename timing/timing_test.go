package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTiming(t *testing.T) {

	Init()
	assert.Zero(t, GetAvgFPS())

	for i := 0; i < 3; i++ {
		FrameStarted()
		time.Sleep(5 * time.Millisecond)
		FrameEnded()
	}

	assert.GreaterOrEqual(t, DT(), float32(0.005))
	assert.Greater(t, GetAvgFPS(), float32(0))
	assert.Less(t, GetAvgFPS(), float32(201))
	assert.GreaterOrEqual(t, ElapsedTime(), 15*time.Millisecond)
}
