package printer

import "github.com/hostkit/hostkit/internal/model"

// Printer knows how to print run history information in different formats.
type Printer interface {
	PrintRuns(runs []model.Run) error
	PrintMessage(msg string) error
}
