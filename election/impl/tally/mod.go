package tally

import "github.com/UnnaturalLog5/ballotbox/types"

// MaxVotes returns the highest count among candidates, 0 if there are none.
func MaxVotes(candidates []types.Candidate) uint {
	highestCount := uint(0)

	for _, c := range candidates {
		if c.Votes > highestCount {
			highestCount = c.Votes
		}
	}

	return highestCount
}

// Winners returns every candidate reaching the highest count, in the order
// they were given, along with that count. There is no tie-break.
func Winners(candidates []types.Candidate) ([]string, uint) {
	highestCount := MaxVotes(candidates)

	winners := make([]string, 0)
	for _, c := range candidates {
		if c.Votes == highestCount {
			winners = append(winners, c.Name)
		}
	}

	return winners, highestCount
}

// Compute builds the results for the given candidates, ballots cast and
// number of registered voters.
func Compute(candidates []types.Candidate, ballotsCast, voters int) types.Results {
	winners, highestCount := Winners(candidates)

	return types.Results{
		Candidates:  candidates,
		MaxVotes:    highestCount,
		Winners:     winners,
		BallotsCast: ballotsCast,
		Voters:      voters,
	}
}
