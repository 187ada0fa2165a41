package shell

import (
	"github.com/UnnaturalLog5/ballotbox/types"
)

func (s *Shell) showVoters() {
	voters := s.engine.AllVoters()

	s.printf("\nRegistered voters\n-----------------\n")
	if len(voters) == 0 {
		s.printf("No voters registered.\n")
		return
	}

	for i, v := range voters {
		status := "not voted yet"
		if v.Status == types.StatusVoted {
			status = "has voted"
		}
		s.printf("%d. %s (%s)\n", i+1, types.DisplayName(v.Name), status)
	}
}

func (s *Shell) showCandidates() {
	candidates := s.engine.AllCandidates()

	s.printf("\nCandidates\n----------\n")
	if len(candidates) == 0 {
		s.printf("No candidates registered.\n")
		return
	}

	for i, c := range candidates {
		s.printf("%d. %s\n", i+1, types.DisplayName(c.Name))
	}
}

// showResults prints the tally and the winner, or the tie
func (s *Shell) showResults() {
	results := s.engine.Results()

	s.printf("\nResults\n-------\n")
	for _, c := range results.Candidates {
		s.printf("%s\n", c)
	}

	switch {
	case results.NoVotes():
		s.printf("\nNo votes have been cast.\n")
	case results.IsTie():
		s.printf("\nIt's a tie between the following candidates with %d votes each:\n", results.MaxVotes)
		for _, w := range results.Winners {
			s.printf("- %s\n", types.DisplayName(w))
		}
	default:
		s.printf("\nWinner: %s with %d votes\n", types.DisplayName(results.Winners[0]), results.MaxVotes)
	}
}

func (s *Shell) showHistory() {
	ballots := s.engine.LedgerEntries()

	s.printf("\nVoting history\n--------------\n")
	if len(ballots) == 0 {
		s.printf("No votes have been cast.\n")
		return
	}

	for _, b := range ballots {
		s.printf("%s\n", b)
	}
}
