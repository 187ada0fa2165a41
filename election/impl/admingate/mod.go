package admingate

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/xerrors"
)

// Gate checks the fixed admin username/password pair. The password is only
// kept as a bcrypt hash.
type Gate struct {
	username string
	hash     []byte
}

// New returns a gate for a bcrypt password hash. An empty username or hash
// gives a gate that denies everything.
func New(username, passwordHash string) (*Gate, error) {
	if passwordHash != "" {
		_, err := bcrypt.Cost([]byte(passwordHash))
		if err != nil {
			return nil, xerrors.Errorf("invalid admin password hash: %w", err)
		}
	}

	return &Gate{
		username: username,
		hash:     []byte(passwordHash),
	}, nil
}

// NewFromPassword hashes a plain password and returns the matching gate.
func NewFromPassword(username, password string, cost int) (*Gate, error) {
	if password == "" {
		return New(username, "")
	}

	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}

	return New(username, hash)
}

// HashPassword returns the bcrypt hash of password. A cost of 0 uses
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", xerrors.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Enabled tells whether an admin credential was configured at all
func (g *Gate) Enabled() bool {
	return g.username != "" && len(g.hash) > 0
}

// Check returns election.ErrAccessDenied unless username and password match.
func (g *Gate) Check(username, password string) error {
	if !g.Enabled() {
		log.Warn().Msg("admin credential is not configured, denying access")
		return xerrors.Errorf("admin gate disabled: %w", election.ErrAccessDenied)
	}

	if username != g.username {
		log.Warn().Str("username", username).Msg("admin authentication failed")
		return xerrors.Errorf("unknown admin %q: %w", username, election.ErrAccessDenied)
	}

	err := bcrypt.CompareHashAndPassword(g.hash, []byte(password))
	if err != nil {
		log.Warn().Str("username", username).Msg("admin authentication failed")
		return xerrors.Errorf("wrong admin password: %w", election.ErrAccessDenied)
	}

	log.Info().Str("username", username).Msg("admin authenticated")
	return nil
}
