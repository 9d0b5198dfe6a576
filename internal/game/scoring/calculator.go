package scoring

import (
	"fmt"
	"sort"
)

// Combination is one named scoring group found in a set of dice values.
type Combination struct {
	// Name identifies the combination, e.g. "straight", "three_5s",
	// "2_single_1s".
	Name string
	// Score is the point value of this combination.
	Score int
}

// Calculator detects scoring combinations in dice value lists.
//
// Calculator is pure and stateless apart from its immutable Rules: every
// method is a function of its input multiset only, independent of order and
// of any caller identity. Kept-versus-available bookkeeping belongs to the
// caller; the calculator only ever sees the values it is handed.
type Calculator struct {
	rules Rules
}

// NewCalculator creates a Calculator for the given rules.
func NewCalculator(rules Rules) *Calculator {
	return &Calculator{rules: rules}
}

// Combinations returns every scoring combination found in values, in rule
// priority order. A straight or three pairs is exclusive: when either
// matches it is the only combination returned.
//
// Postcondition: empty input yields nil.
func (c *Calculator) Combinations(values []int) []Combination {
	if len(values) == 0 {
		return nil
	}

	counts := countFaces(values)

	if isStraight(counts, len(values)) {
		return []Combination{{Name: "straight", Score: c.rules.Straight}}
	}
	if isThreePairs(counts, len(values)) {
		return []Combination{{Name: "three_pairs", Score: c.rules.ThreePairs}}
	}

	var combos []Combination

	// Of-a-kind groups consume every die of their face value.
	consumed := make(map[int]bool)
	for _, face := range sortedFaces(counts) {
		count := counts[face]
		if count < 3 {
			continue
		}
		consumed[face] = true
		base := c.rules.tripleScore(face)
		combos = append(combos, Combination{
			Name:  fmt.Sprintf("%s_%ds", countWord(count), face),
			Score: base * c.rules.multiplier(count),
		})
	}

	// Leftover 1s and 5s score individually.
	if n := counts[1]; n > 0 && !consumed[1] {
		combos = append(combos, Combination{
			Name:  fmt.Sprintf("%d_single_1s", n),
			Score: n * c.rules.SingleOne,
		})
	}
	if n := counts[5]; n > 0 && !consumed[5] {
		combos = append(combos, Combination{
			Name:  fmt.Sprintf("%d_single_5s", n),
			Score: n * c.rules.SingleFive,
		})
	}

	return combos
}

// Calculate returns the total score for values: the sum over every
// combination found by Combinations.
//
// Postcondition: empty input scores 0; the result is order-independent.
func (c *Calculator) Calculate(values []int) int {
	total := 0
	for _, combo := range c.Combinations(values) {
		total += combo.Score
	}
	return total
}

// HasScoringDice reports whether values contain at least one scoring
// combination, including lone 1s and 5s.
func (c *Calculator) HasScoringDice(values []int) bool {
	return len(c.Combinations(values)) > 0
}

// ScorableIndices returns the positions within values that belong to some
// scoring combination. When a straight or three pairs applies, every
// position is scorable. Otherwise a position is scorable iff its value
// occurs three or more times, or its value is 1 or 5.
//
// Postcondition: the result depends only on the contents of values.
func (c *Calculator) ScorableIndices(values []int) map[int]bool {
	scorable := make(map[int]bool)
	if len(values) == 0 {
		return scorable
	}

	counts := countFaces(values)

	if isStraight(counts, len(values)) || isThreePairs(counts, len(values)) {
		for i := range values {
			scorable[i] = true
		}
		return scorable
	}

	for i, v := range values {
		if counts[v] >= 3 || v == 1 || v == 5 {
			scorable[i] = true
		}
	}
	return scorable
}

// countFaces tallies how many dice show each face value.
func countFaces(values []int) map[int]int {
	counts := make(map[int]int, 6)
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// isStraight reports whether the values are a permutation of 1..6:
// exactly six dice with six distinct faces.
func isStraight(counts map[int]int, total int) bool {
	if total != 6 || len(counts) != 6 {
		return false
	}
	for _, n := range counts {
		if n != 1 {
			return false
		}
	}
	return true
}

// isThreePairs reports whether the values form exactly three distinct
// faces, each appearing exactly twice.
func isThreePairs(counts map[int]int, total int) bool {
	if total != 6 || len(counts) != 3 {
		return false
	}
	for _, n := range counts {
		if n != 2 {
			return false
		}
	}
	return true
}

// sortedFaces returns the face values present in counts, ascending, so
// combination order is deterministic.
func sortedFaces(counts map[int]int) []int {
	faces := make([]int, 0, len(counts))
	for f := range counts {
		faces = append(faces, f)
	}
	sort.Ints(faces)
	return faces
}

// countWord names an of-a-kind count for combination labels.
func countWord(count int) string {
	switch {
	case count >= 6:
		return "six"
	case count == 5:
		return "five"
	case count == 4:
		return "four"
	default:
		return "three"
	}
}
