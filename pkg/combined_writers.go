package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all writers; used to log to a file and stdout at once.
// A failing writer does not stop the others, all errors are returned combined.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return len(p), err
}
