package testing

import (
	"testing"
	"time"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl"
	"github.com/UnnaturalLog5/ballotbox/election/impl/registry"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/stretchr/testify/require"
)

// Option is a functional option for NewTestEngine
type Option func(*configTemplate)

type configTemplate struct {
	voters          [][2]string
	candidates      []string
	maxAuthAttempts int
	lockout         time.Duration
	clock           election.Clock
	registry        election.Registry
}

// WithVoter registers a voter with its credential
func WithVoter(name, credential string) Option {
	return func(ct *configTemplate) {
		ct.voters = append(ct.voters, [2]string{name, credential})
	}
}

// WithCandidates registers candidates, in order
func WithCandidates(names ...string) Option {
	return func(ct *configTemplate) {
		ct.candidates = append(ct.candidates, names...)
	}
}

// WithMaxAuthAttempts sets the lockout threshold and duration
func WithMaxAuthAttempts(max int, lockout time.Duration) Option {
	return func(ct *configTemplate) {
		ct.maxAuthAttempts = max
		ct.lockout = lockout
	}
}

// WithClock sets the engine clock
func WithClock(clock election.Clock) Option {
	return func(ct *configTemplate) {
		ct.clock = clock
	}
}

// WithRegistry uses the given registry instead of a new one
func WithRegistry(r election.Registry) Option {
	return func(ct *configTemplate) {
		ct.registry = r
	}
}

// TestEngine is an engine along with the registry it writes to
type TestEngine struct {
	election.Engine
	Registry election.Registry
}

// NewTestEngine returns a seeded engine. It fails the test if seeding fails.
func NewTestEngine(t *testing.T, opts ...Option) TestEngine {
	template := configTemplate{}
	for _, opt := range opts {
		opt(&template)
	}

	if template.registry == nil {
		template.registry = registry.New()
	}

	engine := impl.NewEngine(election.Configuration{
		Registry:        template.registry,
		MaxAuthAttempts: template.maxAuthAttempts,
		LockoutDuration: template.lockout,
		Clock:           template.clock,
	})

	for _, v := range template.voters {
		_, err := engine.RegisterVoter(v[0], v[1])
		require.NoError(t, err)
	}

	for _, c := range template.candidates {
		_, err := engine.RegisterCandidate(c)
		require.NoError(t, err)
	}

	return TestEngine{
		Engine:   engine,
		Registry: template.registry,
	}
}

// FakeClock is a settable clock
type FakeClock struct {
	T time.Time
}

// Now implements election.Clock
func (c *FakeClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward
func (c *FakeClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// Counts returns the candidate counts keyed by name
func Counts(candidates []types.Candidate) map[string]uint {
	counts := make(map[string]uint, len(candidates))
	for _, c := range candidates {
		counts[c.Name] = c.Votes
	}
	return counts
}

// RequireConsistent checks the registry invariants: the counts add up to the
// ledger size, and every registered voter is either eligible or has voted.
func RequireConsistent(t *testing.T, e election.Engine) {
	total := uint(0)
	for _, c := range e.AllCandidates() {
		total += c.Votes
	}
	require.Equal(t, uint(len(e.LedgerEntries())), total)

	for _, v := range e.AllVoters() {
		eligible := e.IsEligible(v.Name)
		voted := e.HasVoted(v.Name)
		require.True(t, eligible != voted, "voter %s eligible=%v voted=%v", v.Name, eligible, voted)
	}

	for _, b := range e.LedgerEntries() {
		require.False(t, e.IsEligible(b.Voter))
	}
}
