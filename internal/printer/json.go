package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hostkit/hostkit/internal/model"
)

// JSONPrinter prints run information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// runItem represents a run in the JSON output.
type runItem struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Version   string     `json:"version"`
	Error     string     `json:"error,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	StoppedAt *time.Time `json:"stopped_at"`
}

// PrintRuns prints runs as a JSON array.
func (j *JSONPrinter) PrintRuns(runs []model.Run) error {
	items := make([]runItem, 0, len(runs))
	for _, r := range runs {
		items = append(items, runItem{
			ID:        r.ID,
			Status:    string(r.Status),
			Version:   r.Version,
			Error:     r.Err,
			StartedAt: r.StartedAt,
			StoppedAt: r.StoppedAt,
		})
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintMessage prints a simple message as JSON.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return json.NewEncoder(j.writer).Encode(map[string]string{"message": msg})
}
