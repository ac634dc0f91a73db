package cmd

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lepinkainen/maskblend/compositor"
	"github.com/lepinkainen/maskblend/types"
	"github.com/lepinkainen/maskblend/ui"
	"github.com/lepinkainen/maskblend/utils"
	"github.com/lepinkainen/maskblend/video"
)

// RunCmd drives the whole pipeline: extract frames, composite them against
// the overlays, re-encode with the original audio.
type RunCmd struct {
	InputVideo  string `name:"input_video" required:"" type:"path" help:"Path to the input video file."`
	OutputVideo string `name:"output_video" required:"" type:"path" help:"Path for the final output video."`
	BlackImage  string `name:"black_image" type:"path" help:"Image for black parts. Defaults to a solid black image."`
	WhiteImage  string `name:"white_image" type:"path" help:"Image for white parts. Defaults to a solid white image."`
	FPS         int    `name:"fps" default:"0" help:"Frames per second for the video. Default is auto-detected."`
	Workers     int    `help:"Number of parallel compositing workers" default:"0"`
}

func (cmd *RunCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if err := utils.ValidateFFmpegDependencies(); err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Maskblend %s", version)))

	// The working directory holds frames, audio, and synthesized overlays
	// for exactly one run and is removed on every exit path.
	workDir, err := os.MkdirTemp("", "maskblend-")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	blackImage, whiteImage, err := cmd.resolveOverlays(workDir)
	if err != nil {
		return err
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎞️  Extracting frames from %s", filepath.Base(cmd.InputVideo))))
	rate, err := video.ExtractVideo(cmd.InputVideo, workDir, cmd.FPS)
	if err != nil {
		return fmt.Errorf("failed to extract frames: %w", err)
	}

	result, err := compositor.ProcessFrames(workDir, blackImage, whiteImage, cmd.workerCount())
	if err != nil {
		return fmt.Errorf("failed to composite frames: %w", err)
	}
	if result.Total > 0 {
		fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Composited %d of %d frames", result.Succeeded, result.Total)))
	}
	if len(result.Failures) > 0 {
		// Failed frames stay grayscale and are still encoded below, so the
		// run completes with the failures surfaced rather than aborted.
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %d of %d frames failed to composite:", len(result.Failures), result.Total)))
		for _, failure := range result.Failures {
			fmt.Printf("  - %s: %v\n", filepath.Base(failure.Path), failure.Err)
		}
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎬 Encoding output at %d fps", rate)))
	if err := video.CombineImages(workDir, cmd.OutputVideo, rate); err != nil {
		return fmt.Errorf("failed to combine frames: %w", err)
	}

	if err := video.ValidateOutputVideo(cmd.OutputVideo); err != nil {
		return fmt.Errorf("output validation failed: %w", err)
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Successfully created %s", cmd.OutputVideo)))
	return nil
}

// resolveOverlays returns the overlay paths to composite with, synthesizing
// 1x1 solid defaults inside the working directory for any that were not
// supplied. The compositor stretches those to frame size, which yields a
// pure black/white threshold effect.
func (cmd *RunCmd) resolveOverlays(workDir string) (blackImage, whiteImage string, err error) {
	blackImage = cmd.BlackImage
	if blackImage == "" {
		blackImage = filepath.Join(workDir, "black.png")
		if err := compositor.WriteSolidPNG(blackImage, color.RGBA{A: 255}); err != nil {
			return "", "", fmt.Errorf("failed to synthesize black overlay: %w", err)
		}
	}

	whiteImage = cmd.WhiteImage
	if whiteImage == "" {
		whiteImage = filepath.Join(workDir, "white.png")
		if err := compositor.WriteSolidPNG(whiteImage, color.RGBA{R: 255, G: 255, B: 255, A: 255}); err != nil {
			return "", "", fmt.Errorf("failed to synthesize white overlay: %w", err)
		}
	}

	return blackImage, whiteImage, nil
}

// workerCount resolves the compositing pool size. Network-mounted input
// gets a single worker, local input one worker per CPU.
func (cmd *RunCmd) workerCount() int {
	if cmd.Workers > 0 {
		return cmd.Workers
	}

	if utils.IsNetworkDrive(cmd.InputVideo) {
		fmt.Println(ui.WarnStyle.Render("⚠️  Network drive detected, using 1 worker for optimal performance"))
		return 1
	}

	return runtime.NumCPU()
}
