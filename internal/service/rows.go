package service

import (
	"context"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	domainerrors "github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
)

// RowUpdate carries the user's edit of a single row. Nil fields stay
// untouched.
type RowUpdate struct {
	Value         *string
	Included      *bool
	Position      *int
	CatalogNumber *string
}

// UpdateRow applies a row edit and returns the updated session.
func (s *SessionService) UpdateRow(sessionID, rowID string, update RowUpdate) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.NotFoundf("session %s not found", sessionID)
	}
	row, err := findRow(session, rowID)
	if err != nil {
		return nil, err
	}

	if update.Value != nil {
		row.Value = *update.Value
		// The edited name may differ from what the identifier was
		// resolved for.
		row.MBID = ""
	}
	if update.Included != nil {
		row.Included = *update.Included
	}
	if update.Position != nil {
		row.Position = *update.Position
	}
	if update.CatalogNumber != nil {
		row.CatalogNumber = *update.CatalogNumber
	}
	return session.Clone(), nil
}

// AssignIdentifier resolves a pasted identifier or catalog URL against the
// row's allowed entity type, stores it on the row and remembers the
// name-to-identifier mapping for future sessions. The resolution carries
// the resolved display name and tooltip for the caller.
func (s *SessionService) AssignIdentifier(ctx context.Context, sessionID, rowID, raw string) (*domain.Session, *musicbrainz.Resolution, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, domainerrors.NotFoundf("session %s not found", sessionID)
	}
	row, err := findRow(session, rowID)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}
	entityType, name := row.EntityType, row.Value
	s.mu.Unlock()

	if entityType == "" {
		return nil, nil, domainerrors.Validation("row does not take an identifier")
	}

	// Resolution hits the network; the session lock is not held here.
	resolution, err := s.resolver.ResolveEntity(ctx, raw, []string{entityType})
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok = s.sessions[sessionID]
	if !ok {
		return nil, nil, domainerrors.NotFoundf("session %s not found", sessionID)
	}
	row, err = findRow(session, rowID)
	if err != nil {
		return nil, nil, err
	}
	row.MBID = resolution.MBID

	if name != "" {
		s.cache.Set(resolution.Type, name, resolution.MBID)
		if err := s.cache.Store(); err != nil {
			s.logger.Warn("persisting lookup cache failed", "error", err)
		}
	}
	return session.Clone(), resolution, nil
}

func findRow(session *domain.Session, rowID string) (*domain.Row, error) {
	for _, rows := range [][]domain.Row{session.Artists, session.Labels, session.Additions} {
		for i := range rows {
			if rows[i].ID == rowID {
				return &rows[i], nil
			}
		}
	}
	return nil, domainerrors.NotFoundf("row %s not found", rowID)
}
