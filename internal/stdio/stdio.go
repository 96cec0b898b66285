package stdio

import (
	"fmt"
	"io"
	"sync"
)

type lockedWriter struct {
	mu sync.Mutex
	io.Writer
}

// Lock returns a writer that serializes the calls to Write of w. Locking an
// already locked writer returns it unchanged; a nil writer discards.
func Lock(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	if _, ok := w.(*lockedWriter); ok {
		return w
	}
	return &lockedWriter{
		Writer: w,
	}
}

func (w *lockedWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Writer.Write(b)
}

// Linef formats a whole line and hands it to w with a single Write so that
// lines written concurrently on a locked writer never interleave.
func Linef(w io.Writer, format string, args ...interface{}) error {
	line := fmt.Sprintf(format, args...)
	_, err := io.WriteString(w, line+"\n")
	return err
}
