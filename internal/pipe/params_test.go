package pipe

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params rejected: %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"one length point", func(p *Params) { p.LengthPoints = 1 }},
		{"one radius point", func(p *Params) { p.RadiusPoints = 1 }},
		{"zero length", func(p *Params) { p.Length = 0 }},
		{"negative radius", func(p *Params) { p.Radius = -2 }},
		{"NaN radius", func(p *Params) { p.Radius = math.NaN() }},
		{"infinite inlet", func(p *Params) { p.PressureInlet = math.Inf(1) }},
		{"NaN bend", func(p *Params) { p.BendAngle = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
			if _, err := Synthesize(p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Synthesize() = %v, want ErrInvalidParams", err)
			}
		})
	}
}
