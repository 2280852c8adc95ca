package render

import (
	"bufio"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonShape is the wire form of a pose.Shape. Matrices are flattened in the
// column-major order which OpenGL expects.
type jsonShape struct {
	Dimensions [3]float64  `json:"dimensions"`
	Transform  [16]float64 `json:"transform"`
	Color      [3]float64  `json:"color"`
}

type jsonFrame struct {
	Index      int         `json:"index"`
	Time       float64     `json:"time"`
	DT         float64     `json:"dt"`
	View       [16]float64 `json:"view"`
	Projection [16]float64 `json:"projection"`
	Shapes     []jsonShape `json:"shapes"`
}

// JSON writes each frame as a single line of JSON, which any external viewer
// can read from a pipe.
type JSON struct {
	w   io.WriteCloser
	buf *bufio.Writer
	enc *jsoniter.Encoder
}

func NewJSON(w io.WriteCloser) *JSON {
	buf := bufio.NewWriter(w)
	return &JSON{
		w:   w,
		buf: buf,
		enc: json.NewEncoder(buf),
	}
}

func (j *JSON) Draw(f Frame) error {
	jf := jsonFrame{
		Index:      f.Index,
		Time:       f.Time,
		DT:         f.DT,
		View:       f.View.Array(),
		Projection: f.Projection.Array(),
		Shapes:     make([]jsonShape, len(f.Shapes)),
	}

	for i, s := range f.Shapes {
		jf.Shapes[i] = jsonShape{
			Dimensions: s.Dimensions.Array(),
			Transform:  s.Transform.Array(),
			Color:      s.Color.Array(),
		}
	}

	// Encode appends a newline, so each frame is one line.
	err := j.enc.Encode(jf)
	if err != nil {
		return fmt.Errorf("error encoding frame %d: %w", f.Index, err)
	}

	// Flush every frame, so a viewer on the other end of a pipe isn't left
	// waiting for a full buffer.
	err = j.buf.Flush()
	if err != nil {
		return fmt.Errorf("error writing frame %d: %w", f.Index, err)
	}

	return nil
}

func (j *JSON) Close() error {
	err := j.buf.Flush()
	if err != nil {
		j.w.Close()
		return err
	}

	return j.w.Close()
}
