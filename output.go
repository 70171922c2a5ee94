package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ImageSink stores encoded images.
type ImageSink interface {
	// Write stores the bytes src produces at path. It fails when the
	// parent directory is missing and cannot be created.
	Write(path string, src io.WriterTo) error
}

// FileSink writes images to the local filesystem, creating parent
// directories as needed.
type FileSink struct{}

var _ ImageSink = FileSink{}

// Write implements ImageSink. A partially written file is removed.
func (FileSink) Write(path string, src io.WriterTo) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Scheduler deletes files after a delay.
type Scheduler interface {
	// ScheduleAfter removes path once delay has elapsed. It does not
	// block. The returned cancel func stops the deletion if it has not
	// run yet and reports whether it did so.
	ScheduleAfter(path string, delay time.Duration) (cancel func() bool)
}

// TimerScheduler deletes files from detached timers. Deletions that fail
// are logged at Warn; files already gone are not an error. Pending timers
// do not keep the process alive.
type TimerScheduler struct {
	// Remove deletes a file. Nil means os.Remove.
	Remove func(path string) error
}

var _ Scheduler = TimerScheduler{}

// ScheduleAfter implements Scheduler.
func (s TimerScheduler) ScheduleAfter(path string, delay time.Duration) func() bool {
	remove := s.Remove
	if remove == nil {
		remove = os.Remove
	}
	t := time.AfterFunc(delay, func() {
		if err := remove(path); err != nil && !os.IsNotExist(err) {
			Logger().Warn("scheduled delete failed", "path", path, "err", err)
			return
		}
		Logger().Debug("scheduled delete done", "path", path)
	})
	return t.Stop
}
