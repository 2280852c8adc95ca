package render

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adammck/legsim/legs"
	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/pose"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(i int) Frame {
	return Frame{
		Index:      i,
		Time:       float64(i) * 0.5,
		DT:         0.5,
		Shapes:     pose.Builder{}.Shapes(legs.NewSingleLegRobot()),
		View:       math3d.MakeTranslationMatrix(math3d.Vector3{Z: -3}),
		Projection: math3d.IdentityMatrix44,
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(nopCloser{&buf})

	require.NoError(t, r.Draw(testFrame(0)))
	require.NoError(t, r.Draw(testFrame(1)))
	require.NoError(t, r.Close())

	var frames []jsonFrame
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var f jsonFrame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		frames = append(frames, f)
	}

	require.Len(t, frames, 2)
	assert.Equal(t, 1, frames[1].Index)
	assert.Equal(t, 0.5, frames[1].Time)
	require.Len(t, frames[1].Shapes, 3)

	// Translation is in elements 12-14, where OpenGL expects it.
	s := frames[0].Shapes[1]
	assert.Equal(t, [3]float64{3, 1, 1}, s.Dimensions)
	assert.Equal(t, [3]float64{0.5, 1, 1}, s.Color)
	assert.Equal(t, []float64{2.5, 0, 0, 1}, s.Transform[12:16])
	assert.Equal(t, -3.0, frames[0].View[14])
}

func TestLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := NewLog(logrus.NewEntry(logger))
	require.NoError(t, r.Draw(testFrame(7)))
	require.NoError(t, r.Close())

	// One summary, plus one line per shape.
	require.Len(t, hook.AllEntries(), 4)
	assert.Equal(t, 7, hook.AllEntries()[0].Data["frame"])
	assert.Equal(t, logrus.InfoLevel, hook.AllEntries()[0].Level)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.jsonl")

	r, err := Open(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, r.Draw(testFrame(0)))
	require.NoError(t, r.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"index":0`)

	r, err = Open(FormatLog, "")
	require.NoError(t, err)
	assert.IsType(t, &Log{}, r)

	_, err = Open("gl", "")
	assert.Error(t, err)

	_, err = Open(FormatJSON, filepath.Join(t.TempDir(), "missing", "frames.jsonl"))
	assert.Error(t, err)
}
