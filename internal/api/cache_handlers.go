package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/mbcache"
)

func (s *Server) registerCacheRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getLookupCache",
		Method:      http.MethodGet,
		Path:        "/api/v1/cache",
		Summary:     "Get lookup cache",
		Description: "Returns the name-to-identifier lookup cache",
		Tags:        []string{"Cache"},
	}, s.handleGetCache)

	huma.Register(s.api, huma.Operation{
		OperationID: "getLookupCacheEntry",
		Method:      http.MethodGet,
		Path:        "/api/v1/cache/{type}/{name}",
		Summary:     "Get cached identifier",
		Description: "Returns the cached identifier for one entity name",
		Tags:        []string{"Cache"},
	}, s.handleGetCacheEntry)

	huma.Register(s.api, huma.Operation{
		OperationID: "putLookupCacheEntry",
		Method:      http.MethodPut,
		Path:        "/api/v1/cache/{type}/{name}",
		Summary:     "Set cached identifier",
		Description: "Stores a manual name-to-identifier correction",
		Tags:        []string{"Cache"},
	}, s.handlePutCacheEntry)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearLookupCache",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cache",
		Summary:     "Clear lookup cache",
		Description: "Empties the lookup cache, in memory and in storage",
		Tags:        []string{"Cache"},
	}, s.handleClearCache)
}

// CacheResponse contains the lookup cache contents.
type CacheResponse struct {
	Entries mbcache.Entries `json:"entries" doc:"Cached identifiers by entity type and name"`
}

// CacheOutput wraps the cache response for Huma.
type CacheOutput struct {
	Body CacheResponse
}

func (s *Server) handleGetCache(_ context.Context, _ *struct{}) (*CacheOutput, error) {
	return &CacheOutput{Body: CacheResponse{Entries: s.services.Cache.Snapshot()}}, nil
}

// CacheEntryInput identifies one cache entry.
type CacheEntryInput struct {
	Type string `path:"type" doc:"Entity type"`
	Name string `path:"name" doc:"Entity name"`
}

// CacheEntryResponse contains one cached mapping.
type CacheEntryResponse struct {
	Type string `json:"type" doc:"Entity type"`
	Name string `json:"name" doc:"Entity name"`
	MBID string `json:"mbid" doc:"Cached identifier"`
}

// CacheEntryOutput wraps a cache entry for Huma.
type CacheEntryOutput struct {
	Body CacheEntryResponse
}

func (s *Server) handleGetCacheEntry(_ context.Context, input *CacheEntryInput) (*CacheEntryOutput, error) {
	mbid, ok := s.services.Cache.Lookup(input.Type, input.Name)
	if !ok {
		return nil, domainerrors.NotFoundf("no cached identifier for %s %q", input.Type, input.Name)
	}
	return &CacheEntryOutput{Body: CacheEntryResponse{Type: input.Type, Name: input.Name, MBID: mbid}}, nil
}

// PutCacheEntryRequest carries a manual cache correction.
type PutCacheEntryRequest struct {
	MBID string `json:"mbid" validate:"required,uuid" doc:"Identifier to store"`
}

// PutCacheEntryInput wraps the correction for Huma.
type PutCacheEntryInput struct {
	Type string `path:"type" doc:"Entity type"`
	Name string `path:"name" doc:"Entity name"`
	Body PutCacheEntryRequest
}

func (s *Server) handlePutCacheEntry(_ context.Context, input *PutCacheEntryInput) (*CacheEntryOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	s.services.Cache.Set(input.Type, input.Name, input.Body.MBID)
	if err := s.services.Cache.Store(); err != nil {
		return nil, err
	}
	return &CacheEntryOutput{Body: CacheEntryResponse{Type: input.Type, Name: input.Name, MBID: input.Body.MBID}}, nil
}

func (s *Server) handleClearCache(_ context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.services.Cache.Clear(); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
