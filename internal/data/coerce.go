package data

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// optionalInt reads an integer field. A missing or null field reports ok=false.
func optionalInt(fields map[string]any, key string) (value int, ok bool, err error) {
	v, present := fields[key]
	if !present || v == nil {
		return 0, false, nil
	}
	i, err := toInt(v)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// toInt follows integer conversion rules: integral numbers as-is, fractions truncated
// toward zero, decimal strings parsed, booleans as 1/0.
func toInt(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			if i > math.MaxInt || i < math.MinInt {
				return 0, fmt.Errorf("value %d overflows int", i)
			}
			return int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", t.String())
		}
		return floatToInt(f)
	case float64:
		return floatToInt(t)
	case int:
		return t, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("value is empty")
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value is not a finite number")
	}
	f = math.Trunc(f)
	if f > float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("value %v overflows int", f)
	}
	return int(f), nil
}

// textOf renders a scalar field as text. Null and missing fields are "".
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

// stringList reads a roles-style field. A bare string counts as a one-item list.
func stringList(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			switch item.(type) {
			case string, json.Number, bool:
				out = append(out, textOf(item))
			default:
				return nil, fmt.Errorf("item %d: unsupported type %T", i, item)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}
