package application

import (
	"fmt"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// ParseQuickEntry maps "date, type, price, location, remarks, mileage" onto a record.
func ParseQuickEntry(payload string) (domain.Record, error) {
	parts := strings.Split(payload, ",")
	if len(parts) != len(domain.Fields) {
		return domain.Record{}, fmt.Errorf("%w: expected %d comma-separated values, got %d", domain.ErrFormat, len(domain.Fields), len(parts))
	}

	var record domain.Record
	for i, field := range domain.Fields {
		record = record.With(field, strings.TrimSpace(parts[i]))
	}
	return record, nil
}
