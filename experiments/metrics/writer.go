package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Record is the result of classifying one experiment board.
type Record struct {
	ID      int
	Rows    int
	Cols    int
	Left    int // Left tokens
	Right   int // Right tokens
	Outcome string
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for the named experiment under
// root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRecords(records []Record) error {
	path := filepath.Join(w.baseDir, "records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "rows", "cols", "left", "right", "outcome", "duration", "nodes", "children", "pruned", "max_depth"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Rows),
			strconv.Itoa(record.Cols),
			strconv.Itoa(record.Left),
			strconv.Itoa(record.Right),
			record.Outcome,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Children),
			strconv.Itoa(record.Pruned),
			strconv.Itoa(record.MaxDepth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}
