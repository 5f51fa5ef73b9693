package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists training records under a timestamped run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a run directory under dir, named by the current UTC
// timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the run directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteEpisodeRecords stores the episode records as episode_records.csv.
func (w *Writer) WriteEpisodeRecords(records []EpisodeRecord) error {
	path := filepath.Join(w.baseDir, "episode_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create episode records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "score", "max_cell", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write episode records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.MaxCell),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write episode record row: %w", err)
		}
	}

	return nil
}
