// Package codec converts between JSON documents and shrinkable values.
//
// Decoded values use the shapes the built-in rules understand: integral
// numbers become int64, other numbers float64, arrays []any, and strings
// matching the configured time layout time.Time. Objects decode to
// map[string]any, which no built-in rule shrinks.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/gnolang/shrink/types"
)

var (
	ErrTrailingData = errors.New("codec: trailing data after JSON value")
	ErrNumberRange  = errors.New("codec: number out of range")
)

// Codec decodes and encodes values. The zero value handles plain JSON.
type Codec struct {
	// TimeLayout, when set, turns strings that parse with it into time.Time
	// on decode and formats time.Time with it on encode.
	TimeLayout string
}

// Decode parses a single JSON document.
func (c Codec) Decode(data []byte) (types.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding JSON value: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return c.fromJSON(raw)
}

// Encode renders v as compact JSON.
func (c Codec) Encode(v types.Value) ([]byte, error) {
	out, err := json.Marshal(c.toJSON(v))
	if err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}
	return out, nil
}

func (c Codec) fromJSON(v any) (types.Value, error) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNumberRange, x.String())
		}
		return f, nil
	case string:
		if c.TimeLayout != "" {
			if t, err := time.Parse(c.TimeLayout, x); err == nil {
				return t, nil
			}
		}
		return x, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			d, err := c.fromJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			d, err := c.fromJSON(e)
			if err != nil {
				return nil, err
			}
			out[k] = d
		}
		return out, nil
	default:
		return v, nil
	}
}

func (c Codec) toJSON(v types.Value) any {
	switch x := v.(type) {
	case time.Time:
		if c.TimeLayout != "" {
			return x.Format(c.TimeLayout)
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = c.toJSON(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = c.toJSON(e)
		}
		return out
	default:
		return v
	}
}
