package param

import (
	"github.com/justyntemme/flpgo/pkg/flp"
)

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder for the given index.
func New(index int, name string) *Builder {
	return &Builder{
		param: &Parameter{
			Index:     index,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
		},
	}
}

// ShortName sets the short name.
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max plain values.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value (plain range, not normalized).
func (b *Builder) Default(value float64) *Builder {
	if b.param.Max > b.param.Min {
		b.param.DefaultValue = (value - b.param.Min) / (b.param.Max - b.param.Min)
	}
	return b
}

// Unit sets the unit string.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Float marks the parameter as a normalized float level (smooth knob)
// rather than a stepped integer.
func (b *Builder) Float() *Builder {
	b.param.Flags |= flp.ParamFloat
	return b
}

// Centered makes event editors draw the parameter centered.
func (b *Builder) Centered() *Builder {
	b.param.Flags |= flp.ParamCentered
	return b
}

// NoInterpolation marks values as states rather than levels, so the host
// won't interpolate automation between them.
func (b *Builder) NoInterpolation() *Builder {
	b.param.Flags |= flp.ParamCantInterpolate
	return b
}

// Toggle creates an on/off parameter.
func (b *Builder) Toggle() *Builder {
	b.param.Min = 0
	b.param.Max = 1
	b.param.DefaultValue = 0
	return b.NoInterpolation()
}

// Formatter sets custom value formatting and parsing.
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter, set to its default value.
func (b *Builder) Build() *Parameter {
	b.param.SetValue(b.param.DefaultValue)
	return b.param
}
