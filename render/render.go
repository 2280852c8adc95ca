// Package render hands frames of shapes to whatever is drawing them. The
// simulator doesn't draw anything itself; a renderer might be a window, or a
// file which something else plays back.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/pose"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "render",
})

// Frame is everything needed to draw one tick of the simulation.
type Frame struct {

	// Sequence number, starting at zero.
	Index int

	// Simulated time (in seconds) since the start of the run, and since the
	// previous frame.
	Time float64
	DT   float64

	Shapes []pose.Shape

	View       math3d.Matrix44
	Projection math3d.Matrix44
}

type Renderer interface {
	Draw(f Frame) error
	Close() error
}

const (
	FormatJSON = "json"
	FormatLog  = "log"

	// Output path which means stdout.
	Stdout = "-"
)

// Open returns a renderer of the given format, writing to the given path.
func Open(format, path string) (Renderer, error) {
	switch format {
	case FormatJSON:
		w, err := openOutput(path)
		if err != nil {
			return nil, err
		}
		return NewJSON(w), nil

	case FormatLog:
		return NewLog(log), nil

	default:
		return nil, fmt.Errorf("unknown render format: %q", format)
	}
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error opening render output: %w", err)
	}

	return f, nil
}

// nopCloser stops stdout from being closed along with the renderer.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
