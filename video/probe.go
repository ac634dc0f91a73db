package video

import (
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// RateDetection is the outcome of frame-rate auto-detection. When the probe
// fails, Rate holds DefaultFrameRate and Reason records why detection failed.
type RateDetection struct {
	Rate     int
	Detected bool
	Reason   string
}

// DetectFrameRate queries the first video stream's frame rate using ffprobe.
// Detection failures are not errors; the result falls back to DefaultFrameRate.
func DetectFrameRate(videoFile string) RateDetection {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return RateDetection{Rate: DefaultFrameRate, Reason: fmt.Sprintf("ffprobe failed: %v", err)}
	}

	rate, err := ParseFrameRate(string(output))
	if err != nil {
		return RateDetection{Rate: DefaultFrameRate, Reason: err.Error()}
	}

	return RateDetection{Rate: rate, Detected: true}
}

// ParseFrameRate parses an ffprobe frame-rate fraction such as "24000/1001"
// and rounds it to the nearest whole frame rate. Exact halves round away
// from zero; no real stream fraction lands on one, so the choice only
// matters for synthetic input.
func ParseFrameRate(fraction string) (int, error) {
	// Some containers report one fraction per stream, use the first line
	fraction = strings.TrimSpace(strings.SplitN(strings.TrimSpace(fraction), "\n", 2)[0])

	parts := strings.Split(fraction, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid frame rate fraction: %q", fraction)
	}

	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate numerator: %q", fraction)
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate denominator: %q", fraction)
	}
	if den == 0 {
		return 0, fmt.Errorf("zero denominator in frame rate fraction: %q", fraction)
	}

	rate := int(math.Round(float64(num) / float64(den)))
	if rate <= 0 {
		return 0, fmt.Errorf("non-positive frame rate: %q", fraction)
	}

	return rate, nil
}

// GetVideoDuration extracts the video duration in seconds using ffprobe
func GetVideoDuration(videoFile string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries",
		"format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}
