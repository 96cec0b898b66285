package stdio

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
)

func TestLock(t *testing.T) {
	var buf bytes.Buffer
	w := Lock(&buf)
	if Lock(w) != w {
		t.Fatalf("locking twice should return the same writer")
	}
	if Lock(nil) != io.Discard {
		t.Fatalf("nil writer should discard")
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Linef(w, "worker-%d line-%d", i, j)
			}
		}(i)
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 400 {
		t.Fatalf("expected 400 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "worker-") || strings.Count(line, "line-") != 1 {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}
