package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// BindQuery fills fields tagged `query:"name"` from the URL query string.
// Supported kinds are string, bool, signed integers and pointers to them.
// Missing parameters leave the field untouched.
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidQuery)
		}
		rv = rv.Elem()
		rt := rv.Type()
		values := r.URL.Query()

		for i := range rt.NumField() {
			sf := rt.Field(i)
			name, _, _ := strings.Cut(sf.Tag.Get("query"), ",")
			if name == "" || name == "-" || !sf.IsExported() {
				continue
			}
			if !values.Has(name) {
				continue
			}
			if err := setField(rv.Field(i), values.Get(name)); err != nil {
				return FieldErrors{name: {err.Error()}}
			}
		}
		return nil
	}
}

func setField(f reflect.Value, raw string) error {
	if f.Kind() == reflect.Pointer {
		ptr := reflect.New(f.Type().Elem())
		if err := setField(ptr.Elem(), raw); err != nil {
			return err
		}
		f.Set(ptr)
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("value could not be parsed to a boolean")
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("value is not a valid integer")
		}
		f.SetInt(n)
	default:
		return fmt.Errorf("unsupported field type %s", f.Type())
	}
	return nil
}
