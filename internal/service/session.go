// Package service wires the extraction pipeline together: scraping, credit
// parsing, release assembly, the editable mapping session and seed
// building.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dramaseed/dramaseed-server/internal/credits"
	"github.com/dramaseed/dramaseed-server/internal/domain"
	domainerrors "github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/id"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
	"github.com/dramaseed/dramaseed-server/internal/release"
	"github.com/dramaseed/dramaseed-server/internal/sites"
)

// SessionService manages extraction sessions: one per scraped page, held in
// memory until the seed is built or the session expires.
type SessionService struct {
	scraper  *sites.Scraper
	resolver *musicbrainz.Resolver
	cache    *mbcache.Cache
	logger   *slog.Logger
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*domain.Session

	stopOnce sync.Once
	stop     chan struct{}
}

// NewSessionService creates the session service and starts the expiry
// sweeper.
func NewSessionService(
	scraper *sites.Scraper,
	resolver *musicbrainz.Resolver,
	cache *mbcache.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionService {
	s := &SessionService{
		scraper:  scraper,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
		ttl:      ttl,
		sessions: make(map[string]*domain.Session),
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Shutdown stops the expiry sweeper.
func (s *SessionService) Shutdown() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *SessionService) sweep() {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.expire(time.Now())
		}
	}
}

func (s *SessionService) expire(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sessionID, session := range s.sessions {
		if now.Sub(session.CreatedAt) > s.ttl {
			delete(s.sessions, sessionID)
			s.logger.Debug("session expired", "session_id", sessionID)
		}
	}
}

// Extract scrapes the given page, runs the parsing pipeline and opens a new
// mapping session over the result. Known identifiers from the lookup cache
// are pre-filled into the rows.
func (s *SessionService) Extract(ctx context.Context, rawURL string) (*domain.Session, error) {
	page, templateName, err := s.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.openSession(page, templateName, rawURL)
}

// ExtractHTML runs the pipeline over page markup supplied by the caller,
// for offline use. The template is picked by name when given, otherwise by
// the page URL.
func (s *SessionService) ExtractHTML(html, templateName, pageURL string) (*domain.Session, error) {
	page, resolvedName, err := s.scraper.ParseHTML(html, templateName, pageURL)
	if err != nil {
		return nil, err
	}
	return s.openSession(page, resolvedName, pageURL)
}

func (s *SessionService) openSession(page domain.PageData, templateName, rawURL string) (*domain.Session, error) {
	crew := credits.ParseCrew(page.CrewBlocks)
	actors := credits.ParseActors(page.CastRows)
	info := release.Assemble(page)

	sessionID, err := id.Generate("ses")
	if err != nil {
		return nil, fmt.Errorf("generate session ID: %w", err)
	}

	session := &domain.Session{
		ID:        sessionID,
		Template:  templateName,
		Release:   info,
		Crew:      crew,
		Actors:    actors,
		Artists:   s.finishRows(release.ArtistRows(info, crew)),
		Labels:    s.finishRows(release.LabelRows(info)),
		Additions: s.finishRows(release.AdditionalRows(info)),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	s.logger.Info("session opened",
		"session_id", sessionID,
		"template", templateName,
		"url", rawURL,
		"crew", len(crew.Members),
		"actors", len(actors))
	return session.Clone(), nil
}

// finishRows assigns row IDs and pre-fills identifiers the cache already
// knows for the row's entity type and value.
func (s *SessionService) finishRows(rows []domain.Row) []domain.Row {
	for i := range rows {
		rows[i].ID = id.MustGenerate("row")
		if rows[i].EntityType == "" || rows[i].Value == "" {
			continue
		}
		if mbid, ok := s.cache.Lookup(rows[i].EntityType, rows[i].Value); ok {
			rows[i].MBID = mbid
		}
	}
	return rows
}

// Get returns a copy of the session with the given ID. Callers get a
// snapshot they can read without racing concurrent edits.
func (s *SessionService) Get(sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.NotFoundf("session %s not found", sessionID)
	}
	return session.Clone(), nil
}

// Delete discards a session.
func (s *SessionService) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domainerrors.NotFoundf("session %s not found", sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}

// ConfirmDate marks the session's estimated release date as user-confirmed
// so it becomes part of the seed.
func (s *SessionService) ConfirmDate(sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.NotFoundf("session %s not found", sessionID)
	}
	release.ConfirmDate(&session.Release)
	return session.Clone(), nil
}
