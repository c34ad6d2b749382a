// Package mapper populates Go values from parsed header keys and data
// rows using reflection.
package mapper

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Map fills the slice pointed to by v with one element per row,
// matching header keys to struct fields by dsv tag or field name,
// case-insensitively. Columns without a matching field are ignored;
// fields without a matching column keep their zero value.
func Map(headers []string, rows [][]string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("dsv: Unmarshal(non-pointer %T or nil)", v)
	}

	slice := rv.Elem()
	if slice.Kind() != reflect.Slice {
		return fmt.Errorf("dsv: cannot unmarshal rows into Go value of type %s", slice.Type())
	}
	elemType := slice.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("dsv: cannot unmarshal rows into slice of %s", elemType)
	}

	fields := cachedFields(elemType)
	cols := make([]*field, len(headers))
	for i, h := range headers {
		if f, ok := fields[strings.ToLower(h)]; ok {
			f := f
			cols[i] = &f
		}
	}

	out := reflect.MakeSlice(slice.Type(), len(rows), len(rows))
	for ri, row := range rows {
		elem := out.Index(ri)
		for ci, f := range cols {
			if f == nil || ci >= len(row) {
				continue
			}
			if err := setField(elem.FieldByIndex(f.idx), row[ci]); err != nil {
				return fmt.Errorf("dsv: row %d, column %q: %w", ri+1, headers[ci], err)
			}
		}
	}
	slice.Set(out)
	return nil
}

// setField assigns a cell's text to a struct field, converting it to
// the field's kind. An empty cell leaves the field at its zero value.
func setField(rv reflect.Value, cell string) error {
	if cell == "" {
		return nil
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(cell)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as integer: %w", cell, err)
		}
		if rv.OverflowInt(n) {
			return fmt.Errorf("integer value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as unsigned integer: %w", cell, err)
		}
		if rv.OverflowUint(n) {
			return fmt.Errorf("unsigned value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as float: %w", cell, err)
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return fmt.Errorf("cannot parse %q as bool: %w", cell, err)
		}
		rv.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", rv.Type())
	}
	return nil
}
