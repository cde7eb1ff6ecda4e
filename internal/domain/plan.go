package domain

// SplitPlan lists the number of records each output piece receives, in piece
// order. Sizes differ by at most one and larger pieces come first.
type SplitPlan []int

// Pieces returns the number of output files the plan produces.
func (p SplitPlan) Pieces() int {
	return len(p)
}

// Total returns the number of records the plan covers.
func (p SplitPlan) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Empty returns true if the plan writes no files.
func (p SplitPlan) Empty() bool {
	return len(p) == 0
}
