package domain

import (
	"fmt"
	"strings"
)

type RecordID string

const maxRecordIDLen = 64

// ParseRecordID accepts the id formats the store hands out: integers, uuids and
// other short tokens made of letters, digits, '-' and '_'.
func ParseRecordID(raw string) (RecordID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > maxRecordIDLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecordID, raw)
	}

	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidRecordID, raw)
		}
	}

	return RecordID(trimmed), nil
}

type Record struct {
	ID              RecordID
	Date            string
	MaintenanceType string
	Price           string
	Location        string
	Remarks         string
	TotalMileage    string
}

func (r Record) Value(field Field) string {
	switch field {
	case FieldDate:
		return r.Date
	case FieldMaintenanceType:
		return r.MaintenanceType
	case FieldPrice:
		return r.Price
	case FieldLocation:
		return r.Location
	case FieldRemarks:
		return r.Remarks
	case FieldTotalMileage:
		return r.TotalMileage
	default:
		return ""
	}
}

// With returns a copy of r with field set to value. Unknown fields leave r unchanged.
func (r Record) With(field Field, value string) Record {
	switch field {
	case FieldDate:
		r.Date = value
	case FieldMaintenanceType:
		r.MaintenanceType = value
	case FieldPrice:
		r.Price = value
	case FieldLocation:
		r.Location = value
	case FieldRemarks:
		r.Remarks = value
	case FieldTotalMileage:
		r.TotalMileage = value
	}
	return r
}

// Values lists the six domain fields in Fields order.
func (r Record) Values() []string {
	values := make([]string, 0, len(Fields))
	for _, field := range Fields {
		values = append(values, r.Value(field))
	}
	return values
}
