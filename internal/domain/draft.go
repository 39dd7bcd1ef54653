package domain

import "fmt"

// Draft is a record under construction. It is only turned into a Record once every
// field has been supplied.
type Draft struct {
	values map[Field]string
}

func (d *Draft) Set(field Field, value string) {
	if d.values == nil {
		d.values = make(map[Field]string, len(Fields))
	}
	d.values[field] = value
}

func (d Draft) Get(field Field) (string, bool) {
	value, ok := d.values[field]
	return value, ok
}

func (d Draft) Missing() []Field {
	missing := make([]Field, 0, len(Fields))
	for _, field := range Fields {
		if _, ok := d.values[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

func (d Draft) Complete() bool {
	return len(d.Missing()) == 0
}

func (d Draft) Record() (Record, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return Record{}, fmt.Errorf("%w: missing %v", ErrIncompleteRecord, missing)
	}

	var record Record
	for _, field := range Fields {
		record = record.With(field, d.values[field])
	}
	return record, nil
}

func (d Draft) Clone() Draft {
	if d.values == nil {
		return Draft{}
	}

	values := make(map[Field]string, len(d.values))
	for field, value := range d.values {
		values[field] = value
	}
	return Draft{values: values}
}
