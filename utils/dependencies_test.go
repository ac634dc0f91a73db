package utils

import (
	"os/exec"
	"strings"
	"testing"
)

func TestValidateFFmpegDependencies(t *testing.T) {
	_, ffmpegErr := exec.LookPath("ffmpeg")
	_, ffprobeErr := exec.LookPath("ffprobe")

	err := ValidateFFmpegDependencies()

	if ffmpegErr == nil && ffprobeErr == nil {
		if err != nil {
			t.Errorf("Expected validation to pass when both ffmpeg and ffprobe are available, got error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatal("Expected validation to fail when ffmpeg or ffprobe is missing")
	}

	// The error must carry installation instructions for the platform
	if !strings.Contains(err.Error(), "Install with:") && !strings.Contains(err.Error(), "Download from") {
		t.Errorf("Expected error message to contain installation instructions, got: %v", err)
	}
}

func TestGetInstallationInstructions(t *testing.T) {
	instructions := getInstallationInstructions()
	if instructions == "" {
		t.Error("Installation instructions should never be empty")
	}
	if !strings.Contains(instructions, "Install with:") && !strings.Contains(instructions, "Download from") {
		t.Errorf("Unexpected instruction format: %q", instructions)
	}
}
