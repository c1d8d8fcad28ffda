package json

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/load-profiles/internal/storage"
)

const (
	filename = "%s.events.log"
)

// Logger appends values as json lines, one file per key.
type Logger struct {
	root   string
	folder string
}

func NewLogger(folder string) *Logger {
	return &Logger{
		root:   filepath.Join(storage.DefaultDir, storage.ReportDir),
		folder: folder,
	}
}

// WithRoot moves the logger under the given root dir.
func (l *Logger) WithRoot(root string) *Logger {
	l.root = root
	return l
}

func (l *Logger) fileName(k storage.Key) string {
	return filepath.Join(l.root, l.folder, k.Set, fmt.Sprintf(filename, k.Label))
}

// Store appends the value to the log of the key.
func (l *Logger) Store(k storage.Key, value interface{}) error {
	fileName := l.fileName(k)
	if err := ensureDir(filepath.Dir(fileName)); err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value '%+v': %w", value, err)
	}
	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write log file for '%+v': %w", k, err)
	}
	return nil
}

// Load loads the last value of the log of the key.
func (l *Logger) Load(k storage.Key, value interface{}) error {
	lines, err := l.Lines(k)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("empty log for '%+v': %w", k, storage.NotFoundErr)
	}
	if err := json.Unmarshal(lines[len(lines)-1], value); err != nil {
		return fmt.Errorf("could not decode value for '%+v': %s: %w", k, err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}

// Lines returns all values of the log of the key in insertion order.
func (l *Logger) Lines(k storage.Key) ([]json.RawMessage, error) {
	fileName := l.fileName(k)
	f, err := os.Open(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no log at '%s': %w", fileName, storage.NotFoundErr)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open log file '%s': %w", fileName, err)
	}
	defer f.Close()

	lines := make([]json.RawMessage, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read log file '%s': %w", fileName, err)
	}
	return lines, nil
}
