package video

import (
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ExtractVideo decodes inputVideo into grayscale frames in outputDir and
// pulls out the audio track when one exists. A frameRate <= 0 means
// auto-detect. Returns the frame rate actually used, which the combine step
// must reuse to keep audio and frame timing aligned.
func ExtractVideo(inputVideo, outputDir string, frameRate int) (int, error) {
	rate := frameRate
	if rate <= 0 {
		detection := DetectFrameRate(inputVideo)
		rate = detection.Rate
		if !detection.Detected {
			fmt.Printf("%s\n", warnStyle.Render(fmt.Sprintf(
				"⚠️  Could not detect frame rate (%s), defaulting to %d fps", detection.Reason, rate)))
		}
	}

	monitor := newExtractProgress(outputDir, expectedFrameCount(inputVideo, rate))
	go monitor.render()

	cmd := exec.Command("ffmpeg", extractArgs(inputVideo, outputDir, rate)...)
	output, err := cmd.CombinedOutput()
	monitor.stop(err == nil)
	if err != nil {
		return 0, fmt.Errorf("failed to decode frames: %w\nffmpeg output: %s", err, extractFirstLine(string(output)))
	}

	extractAudio(inputVideo, outputDir)

	return rate, nil
}

// extractArgs builds the ffmpeg invocation that decodes the video into the
// grayscale sequential-index frame files. Logging is restricted to errors so
// a failed decode surfaces the diagnostic, not the version banner.
func extractArgs(inputVideo, outputDir string, rate int) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-i", inputVideo,
		"-r", strconv.Itoa(rate),
		"-vf", "format=gray",
		filepath.Join(outputDir, FramePattern),
	}
}

// extractAudio pulls the audio track out as AAC, best-effort. Sources
// without an audio stream make ffmpeg exit nonzero; that is a normal
// outcome here, so the error and all tool output are discarded.
func extractAudio(inputVideo, outputDir string) {
	cmd := exec.Command("ffmpeg",
		"-i", inputVideo,
		"-vn",
		"-c:a", "aac",
		"-b:a", "192k",
		"-y",
		filepath.Join(outputDir, AudioFileName),
	)
	_ = cmd.Run()
}

// expectedFrameCount estimates how many frames the decode will produce, for
// progress rendering only. Returns 0 when the duration cannot be probed.
func expectedFrameCount(inputVideo string, rate int) int {
	duration, err := GetVideoDuration(inputVideo)
	if err != nil || duration <= 0 {
		return 0
	}
	return int(math.Ceil(duration * float64(rate)))
}
