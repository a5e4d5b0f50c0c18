package domain

import "math/rand"

// TallyVotes counts ballots by target id
func TallyVotes(votes map[string]string) map[string]int {
	tally := make(map[string]int, len(votes))
	for _, target := range votes {
		tally[target]++
	}
	return tally
}

// MostVoted returns the target with the strictly highest vote count. Ties are
// broken uniformly at random among the tied targets. Returns false when no
// ballots were cast.
func MostVoted(tally map[string]int, rnd *rand.Rand) (string, bool) {
	maxVotes := 0
	tied := make([]string, 0, len(tally))

	for target, count := range tally {
		switch {
		case count > maxVotes:
			maxVotes = count
			tied = tied[:0]
			tied = append(tied, target)
		case count == maxVotes:
			tied = append(tied, target)
		}
	}

	if len(tied) == 0 {
		return "", false
	}
	return tied[rnd.Intn(len(tied))], true
}
