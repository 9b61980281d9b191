// Package log provides the buffered debug logger used across lazycommit.
// Messages are buffered in memory until a log file is chosen, then flushed
// there; with no sink configured everything is discarded so the TUI never
// writes to stdout/stderr while the terminal is in raw mode.
package log

import (
	"log"
	"os"
	"sync"
)

type debugSink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	sink = &debugSink{}
	// stdLogger adds timestamps in the standard log format on top of the sink.
	stdLogger = log.New(sink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer. Output goes to the file when one is set,
// otherwise accumulates in the buffer until SetFile decides its fate.
func (l *debugSink) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}

	if l.file != nil {
		n, err = l.file.Write(p)
		// Flush eagerly so a crash still leaves the trace on disk.
		_ = l.file.Sync()
		return n, err
	}

	b := make([]byte, len(p))
	copy(b, p)
	l.buffer = append(l.buffer, b...)
	return len(p), nil
}

// SetFile routes debug output to path, creating the file if needed and
// flushing anything buffered so far. An empty path discards buffered and
// future messages.
func SetFile(path string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		_ = sink.file.Close()
		sink.file = nil
	}

	if path == "" {
		sink.discard = true
		sink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		sink.discard = true
		sink.buffer = nil
		return err
	}

	sink.file = f
	sink.discard = false

	if len(sink.buffer) > 0 {
		_, _ = f.Write(sink.buffer)
		_ = f.Sync()
		sink.buffer = nil
	}

	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file == nil {
		return nil
	}

	err := sink.file.Close()
	sink.file = nil
	return err
}
