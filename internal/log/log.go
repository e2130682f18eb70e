// Package log is the debug log shared by every lazystay package. Each package
// asks For a Logger tagged with its component, so a line reads
//
//	2026/01/02 15:04:05.000000 INFO  catalog: loaded 6 listings from stays.yaml
//
// Lines written before a destination is chosen are held in memory, so
// messages emitted while the configuration is still loading are not lost.
package log

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// maxHeld caps the lines held before SetFile is called. Older lines are
// dropped first.
const maxHeld = 4096

// Level labels the severity of a line.
type Level int

// Severities, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// destination receives finished lines from the standard logger.
type destination struct {
	mu      sync.Mutex
	file    *os.File
	held    [][]byte
	dropped int
	muted   bool
}

var (
	dest = &destination{}
	std  = log.New(dest, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer. The standard logger calls it once per line.
func (d *destination) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.muted {
		return len(p), nil
	}
	if d.file != nil {
		n, err := d.file.Write(p)
		_ = d.file.Sync()
		return n, err
	}

	if len(d.held) == maxHeld {
		d.held[0] = nil
		d.held = d.held[1:]
		d.dropped++
	}
	d.held = append(d.held, append([]byte(nil), p...))
	return len(p), nil
}

// flush writes the held lines to the open file. Callers hold mu.
func (d *destination) flush() {
	if d.dropped > 0 {
		fmt.Fprintf(d.file, "%d earlier lines were dropped\n", d.dropped)
	}
	for _, line := range d.held {
		_, _ = d.file.Write(line)
	}
	_ = d.file.Sync()
	d.held, d.dropped = nil, 0
}

// SetFile appends the log to path, writing out the held lines first. An
// empty path, or one that cannot be opened, mutes the log for good.
func SetFile(path string) error {
	dest.mu.Lock()
	defer dest.mu.Unlock()

	if dest.file != nil {
		_ = dest.file.Close()
		dest.file = nil
	}

	var err error
	if path != "" {
		dest.file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	}
	if dest.file == nil {
		dest.muted = true
		dest.held, dest.dropped = nil, 0
		return err
	}

	dest.muted = false
	dest.flush()
	return nil
}

// Close closes the log file, if any.
func Close() error {
	dest.mu.Lock()
	defer dest.mu.Unlock()

	if dest.file == nil {
		return nil
	}
	err := dest.file.Close()
	dest.file = nil
	return err
}

// Logger writes lines tagged with one component.
type Logger struct {
	component string
}

// For returns the logger for component.
func For(component string) *Logger {
	return &Logger{component: component}
}

// Debugf logs a trace of routine activity.
func (l *Logger) Debugf(format string, args ...any) {
	l.output(LevelDebug, format, args...)
}

// Infof logs a state change worth reading later.
func (l *Logger) Infof(format string, args ...any) {
	l.output(LevelInfo, format, args...)
}

// Errorf logs a failure that did not stop the program.
func (l *Logger) Errorf(format string, args ...any) {
	l.output(LevelError, format, args...)
}

func (l *Logger) output(level Level, format string, args ...any) {
	std.Printf("%-5s %s: %s", level, l.component, fmt.Sprintf(format, args...))
}
