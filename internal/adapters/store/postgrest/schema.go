package postgrest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

type recordRow struct {
	ID              cell `json:"id"`
	Date            cell `json:"date"`
	MaintenanceType cell `json:"maintenance_type"`
	Price           cell `json:"price"`
	Location        cell `json:"location"`
	Remarks         cell `json:"remarks"`
	TotalMileage    cell `json:"total_mileage"`
}

type insertRow struct {
	Date            string `json:"date"`
	MaintenanceType string `json:"maintenance_type"`
	Price           string `json:"price"`
	Location        string `json:"location"`
	Remarks         string `json:"remarks"`
	TotalMileage    string `json:"total_mileage"`
}

// cell reads a column as text whether the table stores it as text, number or null.
type cell string

func (c *cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*c = cell(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode column value %s: %w", data, err)
	}
	*c = cell(number.String())
	return nil
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (r recordRow) toDomain() domain.Record {
	return domain.Record{
		ID:              domain.RecordID(r.ID),
		Date:            string(r.Date),
		MaintenanceType: string(r.MaintenanceType),
		Price:           string(r.Price),
		Location:        string(r.Location),
		Remarks:         string(r.Remarks),
		TotalMileage:    string(r.TotalMileage),
	}
}

func toInsertRow(record domain.Record) insertRow {
	return insertRow{
		Date:            record.Date,
		MaintenanceType: record.MaintenanceType,
		Price:           record.Price,
		Location:        record.Location,
		Remarks:         record.Remarks,
		TotalMileage:    record.TotalMileage,
	}
}

func decodeRemoteError(resp *http.Response) string {
	var remote remoteError
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&remote); err != nil || remote.Message == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if remote.Code != "" {
		return fmt.Sprintf("status %d: %s (%s)", resp.StatusCode, remote.Message, remote.Code)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, remote.Message)
}
