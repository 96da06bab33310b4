package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelFields maps a struct type to the indexes and column names of its db-tagged fields.
var modelFields sync.Map

type field struct {
	index  []int
	column string
}

// InsertModel builds an INSERT over every exported db-tagged field of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	fields := fieldsOf(value.Type())
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", value.Type())
	}
	cols := make([]string, len(fields))
	vals := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		vals[i] = value.FieldByIndex(f.index).Interface()
	}
	return cols, vals, nil
}

func fieldsOf(typ reflect.Type) []field {
	if cached, ok := modelFields.Load(typ); ok {
		return cached.([]field)
	}

	var fields []field
	for _, sf := range reflect.VisibleFields(typ) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		col, _, _ := strings.Cut(sf.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		fields = append(fields, field{index: sf.Index, column: col})
	}
	modelFields.Store(typ, fields)
	return fields
}
