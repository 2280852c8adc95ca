package render

import (
	"github.com/sirupsen/logrus"
)

// Log is a renderer which draws nothing, but logs a summary of every frame at
// info level and every shape at debug level. Handy for watching a headless run.
type Log struct {
	entry *logrus.Entry
}

func NewLog(entry *logrus.Entry) *Log {
	return &Log{entry}
}

func (l *Log) Draw(f Frame) error {
	e := l.entry.WithFields(logrus.Fields{
		"frame": f.Index,
		"t":     f.Time,
	})

	e.Infof("frame with %d shapes, dt=%.4f", len(f.Shapes), f.DT)

	if e.Logger.IsLevelEnabled(logrus.DebugLevel) {
		for i, s := range f.Shapes {
			e.Debugf("shape %d: %s color=%v", i, s, s.Color.Array())
		}
	}

	return nil
}

func (l *Log) Close() error {
	return nil
}
