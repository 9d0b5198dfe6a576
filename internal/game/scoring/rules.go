// Package scoring implements the pure combination-detection and scoring
// rules of the Farkle dice game.
package scoring

// Default point values for the KCD rule set.
const (
	DefaultStraight   = 1500
	DefaultThreePairs = 1000
	DefaultSingleOne  = 100
	DefaultSingleFive = 50
)

// defaultTriples maps each face value to its three-of-a-kind base score.
var defaultTriples = map[int]int{
	1: 1000,
	2: 200,
	3: 300,
	4: 400,
	5: 500,
	6: 600,
}

// defaultMultipliers maps an of-a-kind count tier to its score multiplier.
var defaultMultipliers = map[int]int{
	4: 2,
	5: 3,
	6: 4,
}

// Rules holds the immutable point values for every scoring combination.
// A Rules value is built once from configuration and shared by reference;
// it is never mutated after construction.
type Rules struct {
	// Straight is the flat score for a 1-2-3-4-5-6 run.
	Straight int
	// ThreePairs is the flat score for three distinct values, each twice.
	ThreePairs int
	// SingleOne is the score for each lone 1 outside an of-a-kind group.
	SingleOne int
	// SingleFive is the score for each lone 5 outside an of-a-kind group.
	SingleFive int
	// Triples maps a face value to its three-of-a-kind base score.
	Triples map[int]int
	// Multipliers maps an of-a-kind count tier (4, 5, or 6) to the factor
	// applied to the triple base score.
	Multipliers map[int]int
}

// DefaultRules returns the standard KCD rule set.
//
// Postcondition: every face 1-6 has a triple score and tiers 4-6 have
// multipliers.
func DefaultRules() Rules {
	return Rules{
		Straight:    DefaultStraight,
		ThreePairs:  DefaultThreePairs,
		SingleOne:   DefaultSingleOne,
		SingleFive:  DefaultSingleFive,
		Triples:     copyIntMap(defaultTriples),
		Multipliers: copyIntMap(defaultMultipliers),
	}
}

// tripleScore returns the three-of-a-kind base score for a face value,
// falling back to the default table for missing entries.
func (r Rules) tripleScore(face int) int {
	if v, ok := r.Triples[face]; ok {
		return v
	}
	return defaultTriples[face]
}

// multiplier returns the score factor for an of-a-kind count.
//
// Counts above 6 are not physically possible with six dice, but the lookup
// clamps to the 6 tier regardless. Counts below 4 have factor 1.
func (r Rules) multiplier(count int) int {
	if count < 4 {
		return 1
	}
	if count > 6 {
		count = 6
	}
	if v, ok := r.Multipliers[count]; ok {
		return v
	}
	return defaultMultipliers[count]
}

func copyIntMap(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
