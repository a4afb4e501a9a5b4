package schema

import (
	"fmt"
	"math"
	"time"
)

// Decode converts loosely typed data, as produced by YAML or JSON decoders,
// into native values keyed by attribute name. Dates, times and UUIDs given as
// strings are parsed; integral floats become integers. Keys without a field
// are dropped. All conversion problems are reported together.
func (s *Schema) Decode(data map[string]any) (map[string]any, error) {
	res := make(map[string]any, len(s.Fields))

	var errs []string

	for _, f := range s.Fields {
		raw, ok := data[f.KeyName()]
		if !ok {
			continue
		}

		v, err := f.decode(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.%s: %v", s.Name, f.Name, err))
			continue
		}

		res[f.Name] = v
	}

	if len(errs) > 0 {
		return nil, &InvalidTypeError{Errors: errs}
	}

	return res, nil
}

func (f *Field) decode(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch f.Kind {
	case KindDate:
		switch v := raw.(type) {
		case string:
			return ParseDate(v)
		case time.Time:
			return DateOf(v), nil
		}

	case KindDateTime:
		if v, ok := raw.(string); ok {
			return time.Parse(time.RFC3339Nano, v)
		}

	case KindTime:
		if v, ok := raw.(string); ok {
			return ParseTimeOfDay(v)
		}

	case KindUUID:
		if v, ok := raw.(string); ok {
			return ToUUID(v)
		}

	case KindInteger:
		if v, ok := raw.(float64); ok && v == math.Trunc(v) {
			return int64(v), nil
		}

	case KindFloat:
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}

	case KindObject:
		if m, ok := raw.(map[string]any); ok && f.Schema != nil {
			return f.Schema.Decode(m)
		}

	case KindList:
		items, ok := raw.([]any)
		if !ok || len(f.Items) != 1 {
			break
		}

		res := make([]any, 0, len(items))
		for i, item := range items {
			v, err := f.Items[0].decode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			res = append(res, v)
		}

		return res, nil
	}

	return raw, nil
}
