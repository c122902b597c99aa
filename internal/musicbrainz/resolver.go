package musicbrainz

import (
	"context"
	"fmt"
	"slices"

	"github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/normalize"
)

// EntityLookup is the remote lookup the resolver depends on. *Client
// implements it; tests substitute their own.
type EntityLookup interface {
	LookupEntity(ctx context.Context, entityType, mbid string) (*Entity, error)
}

// Resolution is a successfully resolved identifier with the display data
// the mapping UI shows next to the input.
type Resolution struct {
	Type    string `json:"type"`
	MBID    string `json:"mbid"`
	Name    string `json:"name"`
	Tooltip string `json:"tooltip"`
}

// Resolver turns pasted identifiers or catalog URLs into resolved entities.
type Resolver struct {
	lookup EntityLookup
}

// NewResolver creates a resolver over the given lookup.
func NewResolver(lookup EntityLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// ResolveEntity extracts the identifier from raw, fetches the entity and
// checks it against the allowed types. With a bare identifier and exactly
// one allowed type, that type is assumed. Failures are recoverable per
// field; nothing here aborts a session.
func (r *Resolver) ResolveEntity(ctx context.Context, raw string, allowedTypes []string) (*Resolution, error) {
	entityType, mbid, ok := ExtractEntity(raw)
	if !ok {
		return nil, errors.Validationf("no entity identifier found in %q", raw)
	}

	if entityType == "mbid" {
		if len(allowedTypes) != 1 {
			return nil, errors.Validation("bare identifier needs a single expected entity type")
		}
		entityType = allowedTypes[0]
	}
	if len(allowedTypes) > 0 && !slices.Contains(allowedTypes, entityType) {
		return nil, errors.DisallowedTypef("entity type %q not allowed here, expected one of %v", entityType, allowedTypes)
	}

	entity, err := r.lookup.LookupEntity(ctx, entityType, mbid)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Type:    entityType,
		MBID:    entity.ID,
		Name:    entity.DisplayName(),
		Tooltip: tooltip(entityType, entity),
	}, nil
}

// tooltip renders "Type: sort-name-or-title (disambiguation)". The entity's
// own type wins over the URL segment when the record carries one.
func tooltip(entityType string, entity *Entity) string {
	displayType := entity.Type
	if displayType == "" {
		displayType = normalize.KebabToTitle(entityType)
	}
	s := fmt.Sprintf("%s: %s", displayType, entity.SortNameOrTitle())
	if entity.Disambiguation != "" {
		s += fmt.Sprintf(" (%s)", entity.Disambiguation)
	}
	return s
}
