package video

// Frame files are written and consumed with the same sequential-index
// pattern so the decode and encode stages always agree on ordering.
const (
	FramePattern = "frame_%05d.png"
	FrameGlob    = "frame_*.png"

	// AudioFileName is the fixed name the extractor writes the audio
	// track to inside the working directory.
	AudioFileName = "audio.aac"

	// DefaultFrameRate is used when frame-rate auto-detection fails.
	DefaultFrameRate = 30
)
