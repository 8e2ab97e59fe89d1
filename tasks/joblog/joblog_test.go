package joblog

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppendLines(t *testing.T) {
	logPath := path.Join(t.TempDir(), "run_log.txt")
	writer := New(logPath)

	assert.Nil(t, writer.Append("first line"))
	assert.Nil(t, writer.Append("second line", "third line"))

	content, err := os.ReadFile(logPath)
	assert.Nil(t, err)
	assert.Equal(t, "first line\nsecond line\nthird line\n", string(content))
}

func TestTimestampFormat(t *testing.T) {
	writer := New(path.Join(t.TempDir(), "run_log.txt"))
	writer.Now = func() time.Time {
		return time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	}
	assert.Equal(t, "2024-01-15 03:00:00", writer.Timestamp())
}
