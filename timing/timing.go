package timing

import "time"

const fpsSampleCount = 60

var (
	startTime     time.Time
	frameStart    time.Time
	dt            float32 = 0.01
	frameTimes    [fpsSampleCount]float32
	frameTimesIdx int
	frameTimesLen int
)

func Init() {
	startTime = time.Now()
	frameStart = startTime
	frameTimesIdx = 0
	frameTimesLen = 0
}

func FrameStarted() {
	frameStart = time.Now()
}

func FrameEnded() {

	dt = float32(time.Since(frameStart).Seconds())

	frameTimes[frameTimesIdx] = dt
	frameTimesIdx = (frameTimesIdx + 1) % fpsSampleCount
	if frameTimesLen < fpsSampleCount {
		frameTimesLen++
	}
}

// DT is the time taken by the last frame in seconds
func DT() float32 {
	return dt
}

// GetAvgFPS returns the average frames per second over the last few frames
func GetAvgFPS() float32 {

	if frameTimesLen == 0 {
		return 0
	}

	var total float32
	for i := 0; i < frameTimesLen; i++ {
		total += frameTimes[i]
	}

	if total == 0 {
		return 0
	}

	return float32(frameTimesLen) / total
}

// ElapsedTime returns the time since Init was called
func ElapsedTime() time.Duration {
	return time.Since(startTime)
}
