package rating

import "sort"

// Table tracks one rating per seat across a series of games, which shows
// whether turn order favors any seat under a given ruleset.
//
// A Table is not safe for concurrent use.
type Table struct {
	ratings map[int]Rating
	games   int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{ratings: make(map[int]Rating)}
}

// Get returns the rating for seat, or the starting rating if it has not played.
func (t *Table) Get(seat int) Rating {
	if r, ok := t.ratings[seat]; ok {
		return r
	}
	return NewRating()
}

// Ratings returns a copy of every rated seat.
func (t *Table) Ratings() map[int]Rating {
	out := make(map[int]Rating, len(t.ratings))
	for seat, r := range t.ratings {
		out[seat] = r
	}
	return out
}

// Games is the number of games recorded.
func (t *Table) Games() int {
	return t.games
}

// RecordGame rates one game from the number of cards each seat still held at
// the end (fewer is better, so the winner holds zero). Each seat is scored
// against the average of the others, as in a single Glicko-2 rating period.
// Games with fewer than two seats are ignored.
func (t *Table) RecordGame(handSizes []int) {
	n := len(handSizes)
	if n < 2 {
		return
	}
	scores := PlacementScores(handSizes)

	current := make([]glicko, n)
	var total float64
	for seat := range handSizes {
		current[seat] = t.Get(seat).glicko()
		total += current[seat].mu
	}

	for seat, s := range current {
		opp := glicko{
			mu:    (total - s.mu) / float64(n-1),
			phi:   DefaultPhi / GlickoScale,
			sigma: DefaultSigma,
		}
		t.ratings[seat] = update(s, opp, scores[seat]).rating()
	}
	t.games++
}

// PlacementScores maps final hand sizes onto scores in [0, 1]: the fewest
// cards scores 1, the most scores 0, and tied seats share the mean of the
// places they span.
func PlacementScores(handSizes []int) []float64 {
	n := len(handSizes)
	scores := make([]float64, n)
	if n < 2 {
		for i := range scores {
			scores[i] = 1
		}
		return scores
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return handSizes[order[i]] < handSizes[order[j]]
	})

	for i := 0; i < n; {
		j := i + 1
		for j < n && handSizes[order[j]] == handSizes[order[i]] {
			j++
		}
		// places i..j-1 are tied
		avgPlace := float64(i+j-1) / 2
		score := 1.0 - avgPlace/float64(n-1)
		for k := i; k < j; k++ {
			scores[order[k]] = score
		}
		i = j
	}
	return scores
}
