package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// CombineImages encodes the frame sequence in framesDir into outputVideo at
// frameRate, muxing in the extracted audio track when present. With audio
// the output duration is trimmed to the shorter stream so the result never
// trails off into silence or a frozen frame.
func CombineImages(framesDir, outputVideo string, frameRate int) error {
	hasAudio := false
	if _, err := os.Stat(filepath.Join(framesDir, AudioFileName)); err == nil {
		hasAudio = true
	}

	cmd := exec.Command("ffmpeg", combineArgs(framesDir, outputVideo, frameRate, hasAudio)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to encode video: %w\nffmpeg output: %s", err, extractFirstLine(string(output)))
	}

	return nil
}

// combineArgs builds the ffmpeg invocation that encodes the frame sequence
// with libx264/yuv420p, always overwriting the output. Logging is restricted
// to errors so a failed encode surfaces the diagnostic, not the version
// banner.
func combineArgs(framesDir, outputVideo string, frameRate int, hasAudio bool) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-r", strconv.Itoa(frameRate),
		"-i", filepath.Join(framesDir, FramePattern),
	}

	if hasAudio {
		args = append(args, "-i", filepath.Join(framesDir, AudioFileName), "-c:a", "aac", "-shortest")
	}

	args = append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-y",
		outputVideo,
	)

	return args
}
