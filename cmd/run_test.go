package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRunCmd_WorkerCount(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		input    string
		expected int
	}{
		{"Explicit count wins", 3, "video.mp4", 3},
		{"Explicit count on network path", 8, "/mnt/share/video.mp4", 8},
		{"Network path defaults to one", 0, "/mnt/share/video.mp4", 1},
		{"UNC path defaults to one", 0, "//server/share/video.mp4", 1},
		{"Local path defaults to CPU count", 0, "/home/user/video.mp4", runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RunCmd{InputVideo: tt.input, Workers: tt.workers}
			if got := cmd.workerCount(); got != tt.expected {
				t.Errorf("workerCount() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestRunCmd_ResolveOverlays_SynthesizesDefaults(t *testing.T) {
	workDir := t.TempDir()
	cmd := &RunCmd{}

	black, white, err := cmd.resolveOverlays(workDir)
	if err != nil {
		t.Fatalf("resolveOverlays() error: %v", err)
	}

	if filepath.Dir(black) != workDir {
		t.Errorf("Synthesized black overlay %s not inside working directory", black)
	}
	if filepath.Dir(white) != workDir {
		t.Errorf("Synthesized white overlay %s not inside working directory", white)
	}

	for _, path := range []string{black, white} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Errorf("Synthesized overlay %s not written: %v", path, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("Synthesized overlay %s is empty", path)
		}
	}
}

func TestRunCmd_ResolveOverlays_KeepsSuppliedPaths(t *testing.T) {
	workDir := t.TempDir()
	cmd := &RunCmd{
		BlackImage: "/images/dark.png",
		WhiteImage: "/images/light.jpg",
	}

	black, white, err := cmd.resolveOverlays(workDir)
	if err != nil {
		t.Fatalf("resolveOverlays() error: %v", err)
	}

	if black != "/images/dark.png" {
		t.Errorf("Black overlay = %s, expected supplied path", black)
	}
	if white != "/images/light.jpg" {
		t.Errorf("White overlay = %s, expected supplied path", white)
	}

	// Nothing may be synthesized when both overlays are supplied
	entries, err := os.ReadDir(workDir)
	if err != nil {
		t.Fatalf("Failed to read working directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("resolveOverlays() wrote %d files despite supplied overlays", len(entries))
	}
}

func TestRunCmd_ResolveOverlays_MixedDefaults(t *testing.T) {
	workDir := t.TempDir()
	cmd := &RunCmd{BlackImage: "/images/dark.png"}

	black, white, err := cmd.resolveOverlays(workDir)
	if err != nil {
		t.Fatalf("resolveOverlays() error: %v", err)
	}

	if black != "/images/dark.png" {
		t.Errorf("Black overlay = %s, expected supplied path", black)
	}
	if _, err := os.Stat(white); err != nil {
		t.Errorf("White overlay should have been synthesized: %v", err)
	}
}
