package graphql

import (
	"fmt"
	"math"
	"time"

	"github.com/tournevent/shipstation/pkg/shipstation"
	"github.com/vektah/gqlparser/v2/ast"
)

// args reads field arguments, resolving variables. The first conversion
// error is kept in err and later reads return zero values.
type args struct {
	field *ast.Field
	vars  map[string]any
	err   error
}

func newArgs(field *ast.Field, vars map[string]any) *args {
	return &args{field: field, vars: vars}
}

func (a *args) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *args) value(name string) any {
	if a.err != nil {
		return nil
	}
	arg := a.field.Arguments.ForName(name)
	if arg == nil {
		return nil
	}
	v, err := arg.Value.Value(a.vars)
	if err != nil {
		a.fail(fmt.Errorf("argument %q: %w", name, err))
		return nil
	}
	return v
}

func (a *args) String(name string) string {
	switch v := a.value(name).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		a.fail(fmt.Errorf("argument %q must be a string, got %T", name, v))
		return ""
	}
}

func (a *args) RequiredString(name string) string {
	s := a.String(name)
	if s == "" {
		a.fail(fmt.Errorf("argument %q is required", name))
	}
	return s
}

func (a *args) Strings(name string) []string {
	switch v := a.value(name).(type) {
	case nil:
		return nil
	case string:
		// GraphQL input coercion: a single value for a list argument.
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				a.fail(fmt.Errorf("argument %q must be a list of strings", name))
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		a.fail(fmt.Errorf("argument %q must be a list of strings, got %T", name, v))
		return nil
	}
}

func (a *args) Float(name string) float64 {
	return a.number(name, a.value(name))
}

func (a *args) number(name string, v any) float64 {
	switch v := v.(type) {
	case nil:
		return 0
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case float64:
		return v
	default:
		a.fail(fmt.Errorf("argument %q must be a number, got %T", name, v))
		return 0
	}
}

func (a *args) Int(name string) int {
	f := a.Float(name)
	if f != math.Trunc(f) {
		a.fail(fmt.Errorf("argument %q must be an integer", name))
		return 0
	}
	if f < math.MinInt || f >= -math.MinInt {
		a.fail(fmt.Errorf("argument %q is out of range", name))
		return 0
	}
	return int(f)
}

// Dimensions reads an input object {length, width, height, unit}. A missing
// argument yields nil.
func (a *args) Dimensions(name string) *shipstation.Dimensions {
	var obj map[string]any
	switch v := a.value(name).(type) {
	case nil:
		return nil
	case map[string]any:
		obj = v
	default:
		a.fail(fmt.Errorf("argument %q must be an object, got %T", name, v))
		return nil
	}

	d := &shipstation.Dimensions{
		Length: a.number(name+".length", obj["length"]),
		Width:  a.number(name+".width", obj["width"]),
		Height: a.number(name+".height", obj["height"]),
	}
	unit, _ := obj["unit"].(string)
	var err error
	if d.Unit, err = shipstation.ParseDimensionUnit(unit); err != nil {
		a.fail(fmt.Errorf("argument %q: %w", name+".unit", err))
	}
	if d.Unit == "" {
		d.Unit = shipstation.DimensionInch
	}
	return d
}

func (a *args) Time(name string) *time.Time {
	t, err := shipstation.ParseTime(a.String(name))
	if err != nil {
		a.fail(fmt.Errorf("argument %q: %w", name, err))
		return nil
	}
	return t
}

// enum parses a string argument with one of the shipstation Parse* functions.
func enum[T ~string](a *args, name string, parse func(string) (T, error)) T {
	v, err := parse(a.String(name))
	if err != nil {
		a.fail(fmt.Errorf("argument %q: %w", name, err))
	}
	return v
}
