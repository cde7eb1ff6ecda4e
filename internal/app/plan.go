package app

import (
	"fmt"

	"github.com/bft-labs/fastaslice/internal/domain"
)

// Plan distributes total records over at most requested pieces.
//
// The piece count shrinks to total when there are fewer records than pieces.
// With base = total/pieces and rem = total%pieces, the first rem pieces get
// base+1 records and the rest get base. Zero records give an empty plan.
func Plan(total, requested int) (domain.SplitPlan, error) {
	if requested <= 0 {
		return nil, fmt.Errorf("%w: piece count must be positive, got %d", domain.ErrInvalidConfig, requested)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: record count must not be negative, got %d", domain.ErrInvalidConfig, total)
	}
	if total == 0 {
		return domain.SplitPlan{}, nil
	}

	pieces := min(requested, total)
	base, rem := total/pieces, total%pieces
	plan := make(domain.SplitPlan, pieces)
	for i := range plan {
		plan[i] = base
		if i < rem {
			plan[i]++
		}
	}
	return plan, nil
}
