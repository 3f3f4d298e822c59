package store

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

// TimeLayout is fixed width so stored times compare and sort lexically.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Parse(time.RFC3339Nano, s)
	}
	return t, nil
}

type Record struct {
	Type   string         `json:"type"`
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

func NewRecord(recordType, id string) Record {
	return Record{Type: recordType, ID: id, Fields: map[string]any{}}
}

// Set stores v under key. Nil pointers remove the key.
func (r Record) Set(key string, v any) {
	v = normalize(v)
	if v == nil {
		delete(r.Fields, key)
		return
	}
	r.Fields[key] = v
}

func (r Record) clone() Record {
	out := NewRecord(r.Type, r.ID)
	for k, v := range r.Fields {
		if list, ok := v.([]any); ok {
			v = append([]any(nil), list...)
		}
		out.Fields[k] = v
	}
	return out
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return FormatTime(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return FormatTime(*x)
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		return f
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

func (r Record) String(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r Record) Float(key string) (float64, bool) {
	switch x := r.Fields[key].(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}

// Bool accepts numeric flags as well, since older rows store 0/1.
func (r Record) Bool(key string) (bool, bool) {
	switch x := r.Fields[key].(type) {
	case bool:
		return x, true
	case float64:
		return x != 0, true
	case int:
		return x != 0, true
	case int64:
		return x != 0, true
	}
	return false, false
}

func (r Record) Time(key string) (time.Time, bool) {
	switch x := r.Fields[key].(type) {
	case time.Time:
		return x.UTC(), true
	case string:
		t, err := ParseTime(x)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}

func (r Record) Strings(key string) []string {
	switch x := r.Fields[key].(type) {
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, v := range x {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Decoder reads typed fields from a record and remembers the first
// required field that was absent.
type Decoder struct {
	rec Record
	err error
}

func NewDecoder(rec Record) *Decoder {
	return &Decoder{rec: rec}
}

func (d *Decoder) missing(field string) {
	if d.err == nil {
		d.err = &DecodeError{RecordType: d.rec.Type, Field: field}
	}
}

func (d *Decoder) String(field string) string {
	s, ok := d.rec.String(field)
	if !ok {
		d.missing(field)
	}
	return s
}

func (d *Decoder) OptString(field string) *string {
	s, ok := d.rec.String(field)
	if !ok {
		return nil
	}
	return &s
}

func (d *Decoder) StringOr(field, fallback string) string {
	if s, ok := d.rec.String(field); ok {
		return s
	}
	return fallback
}

func (d *Decoder) Float(field string) float64 {
	f, ok := d.rec.Float(field)
	if !ok {
		d.missing(field)
	}
	return f
}

func (d *Decoder) FloatOr(field string, fallback float64) float64 {
	if f, ok := d.rec.Float(field); ok {
		return f
	}
	return fallback
}

func (d *Decoder) Bool(field string) bool {
	b, ok := d.rec.Bool(field)
	if !ok {
		d.missing(field)
	}
	return b
}

func (d *Decoder) BoolOr(field string, fallback bool) bool {
	if b, ok := d.rec.Bool(field); ok {
		return b
	}
	return fallback
}

func (d *Decoder) Time(field string) time.Time {
	t, ok := d.rec.Time(field)
	if !ok {
		d.missing(field)
	}
	return t
}

func (d *Decoder) OptTime(field string) *time.Time {
	t, ok := d.rec.Time(field)
	if !ok {
		return nil
	}
	return &t
}

func (d *Decoder) Strings(field string) []string {
	return d.rec.Strings(field)
}

func (d *Decoder) Err() error {
	return d.err
}
