package seeding

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/taxonomy"
)

// CreditAttribute qualifies an exported credit; for voice actors the credit
// field carries the character name.
type CreditAttribute struct {
	Type   string `json:"type"`
	GID    string `json:"gid,omitempty"`
	Credit string `json:"credit,omitempty"`
}

// CreditEntry is one crew or cast credit in the machine-readable export,
// carrying the numeric recording-level link type for relationship editing.
type CreditEntry struct {
	Name       string            `json:"name"`
	CreditedAs string            `json:"credited_as,omitempty"`
	TargetType string            `json:"target_type"`
	LinkType   domain.LinkType   `json:"link_type"`
	LinkTypeID int               `json:"link_type_id,omitempty"`
	Attributes []CreditAttribute `json:"attributes,omitempty"`
}

// CreditsText renders the cast list as plain "role - person" lines, the
// shape pasted into a recording comment or tracklist annotation.
func CreditsText(actors []domain.Actor) string {
	lines := make([]string, 0, len(actors))
	for _, actor := range actors {
		lines = append(lines, fmt.Sprintf("%s - %s", actor.RoleName, actor.Name))
	}
	return strings.Join(lines, "\n")
}

// CreditsJSON serializes all crew and cast credits plus the source page URL
// for consumption by a relationship editing tool.
func CreditsJSON(crew domain.Crew, actors []domain.Actor, importURL string) ([]byte, error) {
	entries := make([]any, 0, len(crew.Members)+len(actors)+1)
	for _, member := range crew.Members {
		entries = append(entries, crewEntry(member))
	}
	for _, actor := range actors {
		entries = append(entries, actorEntry(actor))
	}
	entries = append(entries, struct {
		ImportURL string `json:"import_url"`
	}{ImportURL: importURL})

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshaling credits: %w", err)
	}
	return data, nil
}

func crewEntry(member domain.CrewMember) CreditEntry {
	entry := CreditEntry{
		Name:       member.Name,
		CreditedAs: member.CreditedAs,
		TargetType: "artist",
		LinkType:   member.LinkType,
		Attributes: exportAttributes(member.Attributes),
	}
	if id, ok := taxonomy.LinkTypeID("recording", "artist", member.LinkType); ok {
		entry.LinkTypeID = id
	}
	return entry
}

func actorEntry(actor domain.Actor) CreditEntry {
	mapping := taxonomy.SpokenVocals()
	entry := CreditEntry{
		Name:       actor.Name,
		CreditedAs: actor.CreditedAs,
		TargetType: mapping.TargetType,
		LinkType:   mapping.LinkType,
		Attributes: exportAttributes(mapping.Attributes),
	}
	if id, ok := taxonomy.LinkTypeID("recording", "artist", mapping.LinkType); ok {
		entry.LinkTypeID = id
	}
	if len(entry.Attributes) > 0 {
		entry.Attributes[0].Credit = actor.RoleName
	}
	return entry
}

func exportAttributes(attrs []domain.Attribute) []CreditAttribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]CreditAttribute, 0, len(attrs))
	for _, attr := range attrs {
		exported := CreditAttribute{Type: attr.Type, Credit: attr.Credit}
		if gid, ok := taxonomy.AttributeGID(attr.Type); ok {
			exported.GID = gid
		}
		out = append(out, exported)
	}
	return out
}
