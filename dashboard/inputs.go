package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"spacex-dashboard/models"
)

// Inputs holds widget values keyed by widget id. Values arrive either from
// decoded JSON (strings, []any of float64) or from query strings.
type Inputs map[string]any

// String returns the string value of widget id.
func (in Inputs) String(id string) (string, error) {
	v, ok := in[id]
	if !ok {
		return "", fmt.Errorf("%w: %s missing", ErrInvalidInput, id)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: want string, got %T", ErrInvalidInput, id, v)
	}
	return s, nil
}

// Range returns the two-element numeric value of widget id. It accepts a
// JSON array, a []float64, a PayloadRange or a "lo,hi" string.
func (in Inputs) Range(id string) (models.PayloadRange, error) {
	v, ok := in[id]
	if !ok {
		return models.PayloadRange{}, fmt.Errorf("%w: %s missing", ErrInvalidInput, id)
	}

	switch t := v.(type) {
	case models.PayloadRange:
		return t, nil
	case []float64:
		if len(t) == 2 {
			return models.PayloadRange{Low: t[0], High: t[1]}, nil
		}
	case []any:
		if len(t) == 2 {
			lo, okLo := t[0].(float64)
			hi, okHi := t[1].(float64)
			if okLo && okHi {
				return models.PayloadRange{Low: lo, High: hi}, nil
			}
		}
	case string:
		r, err := ParseRange(t)
		if err != nil {
			return models.PayloadRange{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, id, err)
		}
		return r, nil
	}
	return models.PayloadRange{}, fmt.Errorf("%w: %s: want two numbers, got %v", ErrInvalidInput, id, v)
}

// ParseRange parses "lo,hi".
func ParseRange(s string) (models.PayloadRange, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return models.PayloadRange{}, fmt.Errorf("range %q: want lo,hi", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return models.PayloadRange{}, fmt.Errorf("range %q: %w", s, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return models.PayloadRange{}, fmt.Errorf("range %q: %w", s, err)
	}
	return models.PayloadRange{Low: low, High: high}, nil
}

// FormatRange is the inverse of ParseRange.
func FormatRange(r models.PayloadRange) string {
	return strconv.FormatFloat(r.Low, 'f', -1, 64) + "," + strconv.FormatFloat(r.High, 'f', -1, 64)
}

// only returns the subset of in named by ids.
func (in Inputs) only(ids []string) (Inputs, error) {
	out := make(Inputs, len(ids))
	for _, id := range ids {
		v, ok := in[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s missing", ErrInvalidInput, id)
		}
		out[id] = v
	}
	return out, nil
}
