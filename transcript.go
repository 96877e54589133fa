package quizai

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Transcript records every prompt and reply of one generation run to a file,
// so runs that produced garbage can be replayed by hand. The model is
// non-deterministic; the transcript is usually the only way to see what it
// actually said.
type Transcript struct {
	file *os.File
	mu   sync.Mutex
}

// NewTranscript creates a transcript file for the given run under dir.
func NewTranscript(dir, runID string) (*Transcript, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, runID+".log"))
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript file: %w", err)
	}

	t := &Transcript{file: file}
	t.logf("=== Generation Transcript ===\n")
	t.logf("Run ID: %s\n", runID)
	t.logf("Started: %s\n\n", time.Now().Format(time.RFC3339))
	return t, nil
}

func (t *Transcript) logf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(t.file, "[%s] %s", timestamp, fmt.Sprintf(format, args...))
	t.file.Sync()
}

// LogRequest records the prompt sent to the model for a stage.
func (t *Transcript) LogRequest(stage, prompt string) {
	t.logf("=== REQUEST (%s) ===\n%s\n====================\n\n", stage, prompt)
}

// LogResponse records the raw reply for a stage.
func (t *Transcript) LogResponse(stage, reply string) {
	t.logf("=== RESPONSE (%s) ===\n%s\n=====================\n\n", stage, reply)
}

// Close finalizes and closes the transcript file.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.file == nil {
		return nil
	}
	fmt.Fprintf(t.file, "Completed: %s\n", time.Now().Format(time.RFC3339))
	return t.file.Close()
}
