package app

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bft-labs/fastaslice/internal/domain"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		requested int
		want      domain.SplitPlan
	}{
		{"ten into three", 10, 3, domain.SplitPlan{4, 3, 3}},
		{"fewer records than pieces", 2, 100, domain.SplitPlan{1, 1}},
		{"no records", 0, 100, domain.SplitPlan{}},
		{"exact", 6, 3, domain.SplitPlan{2, 2, 2}},
		{"one piece", 5, 1, domain.SplitPlan{5}},
		{"default size", 250, 100, append(repeat(3, 50), repeat(2, 50)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.total, tt.requested)
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan(%d, %d) = %v, want %v", tt.total, tt.requested, got, tt.want)
			}
		})
	}
}

func repeat(v, n int) domain.SplitPlan {
	p := make(domain.SplitPlan, n)
	for i := range p {
		p[i] = v
	}
	return p
}

func TestPlanRejectsBadInput(t *testing.T) {
	for _, tc := range [][2]int{{10, 0}, {10, -3}, {-1, 5}} {
		if _, err := Plan(tc[0], tc[1]); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("Plan(%d, %d) err = %v, want ErrInvalidConfig", tc[0], tc[1], err)
		}
	}
}

func TestPlanInvariants(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for requested := 1; requested <= 20; requested++ {
			plan, err := Plan(total, requested)
			if err != nil {
				t.Fatalf("Plan(%d, %d): %v", total, requested, err)
			}
			if plan.Total() != total {
				t.Fatalf("Plan(%d, %d) sums to %d", total, requested, plan.Total())
			}
			if plan.Pieces() != min(total, requested) {
				t.Fatalf("Plan(%d, %d) has %d pieces", total, requested, plan.Pieces())
			}
			for i, n := range plan {
				if n < 1 {
					t.Fatalf("Plan(%d, %d) has empty piece %d", total, requested, i)
				}
				if i > 0 && (n > plan[i-1] || plan[0]-n > 1) {
					t.Fatalf("Plan(%d, %d) = %v is unbalanced", total, requested, plan)
				}
			}
		}
	}
}
