package manual

import (
	"cmp"
	"slices"
)

// SortByName stably orders every sequence of p by name. Parameters keep
// their declaration order.
func (p *Program) SortByName() {
	slices.SortStableFunc(p.Functions, func(a, b Function) int { return cmp.Compare(a.Name, b.Name) })
	slices.SortStableFunc(p.Variables, func(a, b Variable) int { return cmp.Compare(a.Name, b.Name) })
	slices.SortStableFunc(p.Constants, func(a, b Constant) int { return cmp.Compare(a.Name, b.Name) })
}

// Counts returns the number of functions, variables and constants.
func (p *Program) Counts() (functions, variables, constants int) {
	return len(p.Functions), len(p.Variables), len(p.Constants)
}
