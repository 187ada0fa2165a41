package election

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	ErrInvalidInput              = xerrors.New("invalid input")
	ErrDuplicateVoter            = xerrors.New("voter already registered")
	ErrDuplicateCandidate        = xerrors.New("candidate already registered")
	ErrUnknownVoter              = xerrors.New("voter is not registered")
	ErrUnknownCandidate          = xerrors.New("candidate is not registered")
	ErrAuthenticationFailed      = xerrors.New("authentication failed")
	ErrNotEligible               = xerrors.New("voter is not eligible to vote")
	ErrDestructiveChangeDeclined = xerrors.New("destructive change was not confirmed")
	ErrVoteDeclined              = xerrors.New("vote was not confirmed")
	ErrLockedOut                 = xerrors.New("too many failed authentication attempts")
	ErrAccessDenied              = xerrors.New("admin authentication required")
	ErrNoVoters                  = xerrors.New("no voters registered")
	ErrNoCandidates              = xerrors.New("no candidates registered")
)

// Reason is a stable code for a failed operation. The shell decides how to
// render it.
type Reason string

// Reason codes
const (
	ReasonNone                      Reason = ""
	ReasonInvalidInput              Reason = "InvalidInput"
	ReasonDuplicateVoter            Reason = "DuplicateVoter"
	ReasonDuplicateCandidate        Reason = "DuplicateCandidate"
	ReasonUnknownVoter              Reason = "UnknownVoter"
	ReasonUnknownCandidate          Reason = "UnknownCandidate"
	ReasonAuthenticationFailed      Reason = "AuthenticationFailed"
	ReasonNotEligible               Reason = "NotEligible"
	ReasonDestructiveChangeDeclined Reason = "DestructiveChangeDeclined"
	ReasonVoteDeclined              Reason = "VoteDeclined"
	ReasonLockedOut                 Reason = "LockedOut"
	ReasonAccessDenied              Reason = "AccessDenied"
	ReasonNoVoters                  Reason = "NoVoters"
	ReasonNoCandidates              Reason = "NoCandidates"
	ReasonInternal                  Reason = "Internal"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrInvalidInput, ReasonInvalidInput},
	{ErrDuplicateVoter, ReasonDuplicateVoter},
	{ErrDuplicateCandidate, ReasonDuplicateCandidate},
	{ErrUnknownVoter, ReasonUnknownVoter},
	{ErrUnknownCandidate, ReasonUnknownCandidate},
	{ErrAuthenticationFailed, ReasonAuthenticationFailed},
	{ErrNotEligible, ReasonNotEligible},
	{ErrDestructiveChangeDeclined, ReasonDestructiveChangeDeclined},
	{ErrVoteDeclined, ReasonVoteDeclined},
	{ErrLockedOut, ReasonLockedOut},
	{ErrAccessDenied, ReasonAccessDenied},
	{ErrNoVoters, ReasonNoVoters},
	{ErrNoCandidates, ReasonNoCandidates},
}

// ReasonOf returns the reason code carried by err. Errors that don't wrap one
// of the sentinels above are reported as ReasonInternal.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}

	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}

	return ReasonInternal
}
