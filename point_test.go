package waycolor

import (
	"math"
	"testing"
)

func TestPoint_AddSub(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		sum, dif Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(1, 2), Pt(3, 4), Pt(4, 6), Pt(-2, -2)},
		{"mixed", Pt(5, -2), Pt(-3, 4), Pt(2, 2), Pt(8, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.q); got != tt.sum {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.p, tt.q, got, tt.sum)
			}
			if got := tt.p.Sub(tt.q); got != tt.dif {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.p, tt.q, got, tt.dif)
			}
		})
	}
}

func TestPoint_Mul(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		s      float64
		expect Point
	}{
		{"zero scalar", Pt(1, 2), 0, Pt(0, 0)},
		{"scale up", Pt(1, 2), 3, Pt(3, 6)},
		{"negate", Pt(1, 2), -1, Pt(-1, -2)},
		{"halve", Pt(4, 6), 0.5, Pt(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Mul(tt.s); got != tt.expect {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.p, tt.s, got, tt.expect)
			}
		})
	}
}

func TestPoint_Length(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect float64
	}{
		{"zero", Pt(0, 0), 0},
		{"unit x", Pt(1, 0), 1},
		{"3-4-5", Pt(3, 4), 5},
		{"negative", Pt(-3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Length(); math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("%v.Length() = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect float64
	}{
		{"same point", Pt(2, 3), Pt(2, 3), 0},
		{"horizontal", Pt(0, 0), Pt(5, 0), 5},
		{"diagonal", Pt(1, 1), Pt(4, 5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("%v.Distance(%v) = %v, want %v", tt.p, tt.q, got, tt.expect)
			}
		})
	}
}
