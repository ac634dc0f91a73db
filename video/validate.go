package video

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ValidateOutputVideo checks that an encoded output file is readable and not
// obviously corrupted. Returns an error when the file is missing, empty, or
// ffprobe cannot read its container.
func ValidateOutputVideo(filePath string) error {
	fi, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("output file not accessible: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("output file is empty")
	}

	// A minimal probe validates the container structure without decoding
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", "--", filePath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := string(output)
		if strings.Contains(outputStr, "moov atom not found") {
			return fmt.Errorf("output file is corrupted (missing metadata): %s", extractFirstLine(outputStr))
		}
		if strings.Contains(outputStr, "Invalid data found") ||
			strings.Contains(outputStr, "corrupt") ||
			strings.Contains(outputStr, "truncated") {
			return fmt.Errorf("output file is corrupted or invalid: %s", extractFirstLine(outputStr))
		}
		return fmt.Errorf("ffprobe error: %w\nOutput: %s", err, extractFirstLine(outputStr))
	}

	return nil
}

// extractFirstLine extracts just the first line from a multi-line string
func extractFirstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		return strings.TrimSpace(lines[0])
	}
	return "no additional information available"
}
