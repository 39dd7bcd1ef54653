package domain

import (
	"fmt"
	"strings"
)

type Field string

const (
	FieldDate            Field = "date"
	FieldMaintenanceType Field = "maintenance_type"
	FieldPrice           Field = "price"
	FieldLocation        Field = "location"
	FieldRemarks         Field = "remarks"
	FieldTotalMileage    Field = "total_mileage"
)

// Fields is the closed set of updatable record fields, in entry order.
var Fields = []Field{
	FieldDate,
	FieldMaintenanceType,
	FieldPrice,
	FieldLocation,
	FieldRemarks,
	FieldTotalMileage,
}

var fieldAliases = map[string]Field{
	"type":    FieldMaintenanceType,
	"mileage": FieldTotalMileage,
}

func ParseField(raw string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, field := range Fields {
		if string(field) == name {
			return field, nil
		}
	}
	if field, ok := fieldAliases[name]; ok {
		return field, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

func (f Field) Label() string {
	switch f {
	case FieldDate:
		return "Date"
	case FieldMaintenanceType:
		return "Maintenance Type"
	case FieldPrice:
		return "Price"
	case FieldLocation:
		return "Location"
	case FieldRemarks:
		return "Remarks"
	case FieldTotalMileage:
		return "Total Mileage"
	default:
		return string(f)
	}
}

func FieldNames() []string {
	names := make([]string, 0, len(Fields))
	for _, field := range Fields {
		names = append(names, string(field))
	}
	return names
}
