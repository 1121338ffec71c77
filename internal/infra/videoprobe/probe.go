package videoprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// streamInfo is the subset of ffprobe output the analyzer needs.
type streamInfo struct {
	Width  int
	Height int
}

type ffprobeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

// probe asks ffprobe for the geometry of the first video stream.
func (a *Analyzer) probe(ctx context.Context, path string) (streamInfo, error) {
	out, err := a.exec.run(ctx, a.ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "json",
		path,
	)
	if err != nil {
		return streamInfo{}, err
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return streamInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(parsed.Streams) == 0 {
		return streamInfo{}, errors.New("no video stream")
	}

	s := parsed.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return streamInfo{}, fmt.Errorf("bad stream geometry %dx%d", s.Width, s.Height)
	}
	return streamInfo{Width: s.Width, Height: s.Height}, nil
}

// sampleFrames decodes every frame_stride-th frame as 8-bit grayscale,
// capped at sample_frames, via a single ffmpeg invocation.
func (a *Analyzer) sampleFrames(ctx context.Context, path string, info streamInfo) ([][]byte, error) {
	sel := fmt.Sprintf("select='not(mod(n\\,%d))'", a.quality.FrameStride)

	out, err := a.exec.run(ctx, a.ffmpeg,
		"-v", "error",
		"-i", path,
		"-vf", sel+",format=gray",
		"-fps_mode", "vfr",
		"-frames:v", fmt.Sprintf("%d", a.quality.SampleFrames),
		"-f", "rawvideo",
		"pipe:1",
	)
	if err != nil {
		return nil, err
	}

	frameSize := info.Width * info.Height
	if frameSize == 0 {
		return nil, errors.New("zero frame size")
	}

	n := len(out) / frameSize // trailing partial frame, if any, is dropped
	frames := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, out[i*frameSize:(i+1)*frameSize])
	}
	return frames, nil
}
