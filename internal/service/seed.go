package service

import (
	"github.com/dramaseed/dramaseed-server/internal/domain"
	domainerrors "github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/seeding"
)

// SeedService builds submission form payloads and credit exports from
// finished sessions.
type SeedService struct {
	sessions   *SessionService
	catalogURL string
	version    string
}

// NewSeedService creates the seed building service. catalogURL is the base
// URL of the external catalog the form posts to.
func NewSeedService(sessions *SessionService, catalogURL, version string) *SeedService {
	return &SeedService{
		sessions:   sessions,
		catalogURL: catalogURL,
		version:    version,
	}
}

// BuildForm builds the release seed from the session's current state and
// wraps it in the submission form payload. Sessions stay open afterwards so
// the user can adjust and rebuild. Get hands out a snapshot, so the seed is
// built from a consistent state without holding the session lock.
func (s *SeedService) BuildForm(sessionID string, tracksPerMedium []int) (seeding.FormPayload, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return seeding.FormPayload{}, err
	}

	seed := seeding.BuildSeed(session, seeding.Options{
		TracksPerMedium: tracksPerMedium,
		Version:         s.version,
	})

	return seeding.BuildForm(s.catalogURL, seed)
}

// CreditsText renders the session's cast list as copyable text lines.
func (s *SeedService) CreditsText(sessionID string) (string, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	if len(session.Actors) == 0 {
		return "", domainerrors.NotFound("session has no cast credits")
	}
	return seeding.CreditsText(session.Actors), nil
}

// CreditsJSON renders all of the session's credits as the machine-readable
// export.
func (s *SeedService) CreditsJSON(sessionID string) ([]byte, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return seeding.CreditsJSON(session.Crew, session.Actors, session.Release.ReleaseURL)
}

// Seed builds just the release seed, without the form wrapper.
func (s *SeedService) Seed(sessionID string, tracksPerMedium []int) (domain.ReleaseSeed, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return domain.ReleaseSeed{}, err
	}

	return seeding.BuildSeed(session, seeding.Options{
		TracksPerMedium: tracksPerMedium,
		Version:         s.version,
	}), nil
}
