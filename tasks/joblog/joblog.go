// Append-only run logs for scheduled tasks. Every run writes a deterministic
// line whether it succeeded or failed, so the log never silently skips a run.
package joblog

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const TimeFormat = "2006-01-02 15:04:05"

type Writer struct {
	path string
	// overridable in tests
	Now func() time.Time
}

func New(path string) *Writer {
	return &Writer{path: path, Now: time.Now}
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Timestamp() string {
	return w.Now().Format(TimeFormat)
}

// Append writes the given lines at the end of the run log file.
func (w *Writer) Append(lines ...string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening run log")
	}
	defer f.Close()

	_, err = f.WriteString(strings.Join(lines, "\n") + "\n")
	return errors.Wrap(err, "writing run log")
}
