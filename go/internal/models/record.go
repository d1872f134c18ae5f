package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Record is the plain mapping form of an entity, keyed by field name.
// Values are strings, ints, nil, nested Records or slices of Records.
type Record map[string]any

// requireString returns the string stored under key or a MissingFieldError
func (r Record) requireString(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidField, key, v)
	}
	return s, nil
}

func (r Record) requireInt(key string) (int, error) {
	v, ok := r[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	return toInt(key, v)
}

// intOr returns the int under key, or fallback when the key is absent or nil
func (r Record) intOr(key string, fallback int) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback, nil
	}
	return toInt(key, v)
}

func (r Record) stringOr(key, fallback string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidField, key, v)
	}
	return s, nil
}

// optionalString returns nil when the key is absent or holds nil
func (r Record) optionalString(key string) (*string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidField, key, v)
	}
	return &s, nil
}

func (r Record) optionalInt(key string) (*int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	i, err := toInt(key, v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// records returns the nested records under key. Both []Record and the
// []any produced by encoding/json are accepted.
func (r Record) records(key string) ([]Record, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch items := v.(type) {
	case []Record:
		return items, nil
	case []map[string]any:
		out := make([]Record, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, nil
	case []any:
		out := make([]Record, len(items))
		for i, item := range items {
			rec, ok := asRecord(item)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] must be a mapping, got %T", ErrInvalidField, key, i, item)
			}
			out[i] = rec
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidField, key, v)
	}
}

func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

func toInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %q must be a whole number, got %v", ErrInvalidField, key, n)
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		// whole numbers written as 3.0 or 1e1
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidField, key, err)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %q must be a whole number, got %v", ErrInvalidField, key, n)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidField, key, v)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

// decodeRecord unmarshals a JSON object keeping numbers as json.Number
func decodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidField)
	}
	return rec, nil
}
