package registry

import (
	"testing"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, voters []string, candidates []string) election.Registry {
	r := New()

	for _, v := range voters {
		_, err := r.RegisterVoter(v, "cred-"+v)
		require.NoError(t, err)
	}

	for _, c := range candidates {
		_, err := r.RegisterCandidate(c)
		require.NoError(t, err)
	}

	return r
}

func Test_Registry_RegisterVoter(t *testing.T) {
	r := New()

	voter, err := r.RegisterVoter("  Hindol Majumdar ", " ehinmaj ")
	require.NoError(t, err)
	require.Equal(t, types.Voter{Name: "hindol majumdar", Credential: " ehinmaj "}, voter)

	stored, ok := r.Voter("HINDOL MAJUMDAR")
	require.True(t, ok)
	require.Equal(t, voter, stored)

	require.True(t, r.IsEligible("hindol majumdar"))
	require.False(t, r.HasVoted("hindol majumdar"))

	_, err = r.RegisterVoter("hindol majumdar", "other")
	require.ErrorIs(t, err, election.ErrDuplicateVoter)

	_, err = r.RegisterVoter("", "x")
	require.ErrorIs(t, err, election.ErrInvalidInput)

	_, err = r.RegisterVoter("x", "")
	require.ErrorIs(t, err, election.ErrInvalidInput)

	require.Len(t, r.Voters(), 1)
}

func Test_Registry_Order(t *testing.T) {
	r := seed(t, []string{"c", "a", "b"}, []string{"java", "dup", "python"})

	names := func(voters []types.Voter) []string {
		out := make([]string, 0, len(voters))
		for _, v := range voters {
			out = append(out, v.Name)
		}
		return out
	}

	require.Equal(t, []string{"c", "a", "b"}, names(r.Voters()))
	require.Equal(t, []string{"c", "a", "b"}, r.Eligible())
	require.Equal(t, []types.Candidate{{Name: "java"}, {Name: "dup"}, {Name: "python"}}, r.Candidates())
}

func Test_Registry_RecordBallot(t *testing.T) {
	r := seed(t, []string{"a", "b"}, []string{"p"})

	remaining, err := r.RecordBallot(types.Ballot{ID: "1", Voter: "A", Candidate: "P"})
	require.NoError(t, err)
	require.Equal(t, 1, remaining)

	require.False(t, r.IsEligible("a"))
	require.True(t, r.HasVoted("a"))
	require.Equal(t, []types.Ballot{{ID: "1", Voter: "a", Candidate: "p"}}, r.Ledger())

	c, ok := r.Candidate("p")
	require.True(t, ok)
	require.Equal(t, uint(1), c.Votes)

	// no double vote
	_, err = r.RecordBallot(types.Ballot{ID: "2", Voter: "a", Candidate: "p"})
	require.ErrorIs(t, err, election.ErrNotEligible)

	// nothing happens for an unknown candidate
	_, err = r.RecordBallot(types.Ballot{ID: "3", Voter: "b", Candidate: "q"})
	require.ErrorIs(t, err, election.ErrUnknownCandidate)
	require.True(t, r.IsEligible("b"))
	require.Len(t, r.Ledger(), 1)
}

func Test_Registry_LedgerIsACopy(t *testing.T) {
	r := seed(t, []string{"a"}, []string{"p"})

	_, err := r.RecordBallot(types.Ballot{ID: "1", Voter: "a", Candidate: "p"})
	require.NoError(t, err)

	ledger := r.Ledger()
	ledger[0].Candidate = "tampered"

	require.Equal(t, "p", r.Ledger()[0].Candidate)
}

func Test_Registry_RemoveVoterWithBallot(t *testing.T) {
	r := seed(t, []string{"a", "b"}, []string{"p"})

	_, err := r.RecordBallot(types.Ballot{ID: "1", Voter: "a", Candidate: "p"})
	require.NoError(t, err)
	_, err = r.RecordBallot(types.Ballot{ID: "2", Voter: "b", Candidate: "p"})
	require.NoError(t, err)

	_, err = r.RemoveVoter("a", false)
	require.ErrorIs(t, err, election.ErrDestructiveChangeDeclined)
	require.Len(t, r.Ledger(), 2)

	removal, err := r.RemoveVoter("a", true)
	require.NoError(t, err)
	require.Equal(t, "1", removal.RevokedBallot.ID)

	c, _ := r.Candidate("p")
	require.Equal(t, uint(1), c.Votes)
	require.Equal(t, []types.Ballot{{ID: "2", Voter: "b", Candidate: "p"}}, r.Ledger())

	_, ok := r.Voter("a")
	require.False(t, ok)
	require.False(t, r.HasVoted("a"))
	require.False(t, r.IsEligible("a"))

	_, err = r.RemoveVoter("a", true)
	require.ErrorIs(t, err, election.ErrUnknownVoter)

	_, err = r.RemoveVoter(" ", true)
	require.ErrorIs(t, err, election.ErrInvalidInput)
}

func Test_Registry_RemoveCandidateReinstates(t *testing.T) {
	r := seed(t, []string{"a", "b", "c", "d"}, []string{"p", "q"})

	for i, v := range []string{"c", "a", "b"} {
		candidate := "p"
		if v == "b" {
			candidate = "q"
		}
		_, err := r.RecordBallot(types.Ballot{ID: string(rune('1' + i)), Voter: v, Candidate: candidate})
		require.NoError(t, err)
	}

	_, err := r.RemoveCandidate("p", false)
	require.ErrorIs(t, err, election.ErrDestructiveChangeDeclined)

	removal, err := r.RemoveCandidate(" P ", true)
	require.NoError(t, err)
	require.Equal(t, "p", removal.Name)
	// ledger order
	require.Equal(t, []string{"c", "a"}, removal.Reinstated)

	// directory order
	require.Equal(t, []string{"a", "c", "d"}, r.Eligible())
	require.True(t, r.HasVoted("b"))
	require.Equal(t, []types.Candidate{{Name: "q", Votes: 1}}, r.Candidates())

	// credentials are kept
	v, ok := r.Voter("c")
	require.True(t, ok)
	require.Equal(t, "cred-c", v.Credential)

	_, err = r.RemoveCandidate("p", true)
	require.ErrorIs(t, err, election.ErrUnknownCandidate)

	_, err = r.RegisterCandidate("p")
	require.NoError(t, err)
	c, _ := r.Candidate("p")
	require.Equal(t, uint(0), c.Votes)
}

func Test_Registry_Reset(t *testing.T) {
	r := seed(t, []string{"a"}, []string{"p"})

	_, err := r.RecordBallot(types.Ballot{ID: "1", Voter: "a", Candidate: "p"})
	require.NoError(t, err)

	r.Reset()

	require.Empty(t, r.Voters())
	require.Empty(t, r.Candidates())
	require.Empty(t, r.Ledger())
	require.Empty(t, r.Eligible())
}
