package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/drakos74/load-profiles/internal/storage"
)

// HistoryKey is the storage key of the run history of the dataset.
func HistoryKey(name string) storage.Key {
	return storage.Key{Set: name, Label: "runs"}
}

// Journal gives access to all values appended under a key.
type Journal interface {
	Lines(k storage.Key) ([]json.RawMessage, error)
}

// History returns the summaries of all past runs over the dataset, oldest first.
func History(j Journal, name string) ([]RunSummary, error) {
	lines, err := j.Lines(HistoryKey(name))
	if err != nil {
		return nil, fmt.Errorf("could not read history of '%s': %w", name, err)
	}
	runs := make([]RunSummary, 0, len(lines))
	for i, line := range lines {
		var s RunSummary
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("could not decode run %d of '%s': %s: %w", i, name, err.Error(), storage.CouldNotLoadErr)
		}
		runs = append(runs, s)
	}
	return runs, nil
}
