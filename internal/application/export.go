package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

// ExportHeader is the fixed column header of the export artifact.
var ExportHeader = []string{"ID", "Date", "Maintenance Type", "Price", "Location", "Remarks", "Total Mileage"}

type Exporter struct {
	store ports.RecordStore
}

func NewExporter(store ports.RecordStore) *Exporter {
	return &Exporter{store: store}
}

// Export writes every record as CSV, newest date first, and returns the row count.
// Nothing is written to w when the store is empty or the listing fails part way.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	return e.ExportWithProgress(ctx, w, nil)
}

// ExportWithProgress is Export that also reports the running row count after each
// record is read. progress may be nil.
func (e *Exporter) ExportWithProgress(ctx context.Context, w io.Writer, progress func(rows int)) (int, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	rows := 0
	for record, err := range e.store.ListAll(ctx) {
		if err != nil {
			return 0, fmt.Errorf("list records: %w", err)
		}
		if rows == 0 {
			if err := writer.Write(ExportHeader); err != nil {
				return 0, fmt.Errorf("write export header: %w", err)
			}
		}
		if err := writer.Write(exportRow(record)); err != nil {
			return 0, fmt.Errorf("write export row %s: %w", record.ID, err)
		}
		rows++
		if progress != nil {
			progress(rows)
		}
	}

	if rows == 0 {
		return 0, domain.ErrNothingToExport
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}

	return rows, nil
}

func ExportFileName(now time.Time) string {
	return fmt.Sprintf("maintenance_log_%s.csv", now.Format(domain.DateLayout))
}

func exportRow(record domain.Record) []string {
	return append([]string{string(record.ID)}, record.Values()...)
}
