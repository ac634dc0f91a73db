package video

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CountFrames counts the frame files written to dir so far
func CountFrames(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), "frame_") && strings.HasSuffix(entry.Name(), ".png") {
			count++
		}
	}

	return count
}

// ListFrames returns the frame files in dir sorted by filename, which for
// the zero-padded index pattern is sequence order.
func ListFrames(dir string) ([]string, error) {
	frames, err := filepath.Glob(filepath.Join(dir, FrameGlob))
	if err != nil {
		return nil, err
	}
	sort.Strings(frames)
	return frames, nil
}
