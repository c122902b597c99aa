// Package domain contains the core business entities for the DramaSeed importer.
package domain

// LinkType is the canonical relationship type a site-specific job label is
// normalized into. LinkNothing marks a credited but intentionally unmapped job.
type LinkType string

// Canonical relationship types supported by the role taxonomy.
const (
	LinkMix           LinkType = "Mix"
	LinkEditor        LinkType = "Editor"
	LinkProducer      LinkType = "Producer"
	LinkWriter        LinkType = "Writer"
	LinkVocal         LinkType = "Vocal"
	LinkIllustration  LinkType = "Illustration"
	LinkAudioDirector LinkType = "Audio_director"
	LinkSoundEffects  LinkType = "Sound_effects"
	LinkNothing       LinkType = "Nothing"
)

// Attribute qualifies a relationship, e.g. "assistant", "executive" or
// "Spoken_vocals" with the character name as free-text credit.
type Attribute struct {
	Type   string `json:"type"`
	Credit string `json:"credit,omitempty"`
}

// RoleMapping describes how a site job label translates into the catalog's
// relationship model. Every taxonomy entry resolves to exactly one LinkType.
type RoleMapping struct {
	TargetType string      `json:"target_type"` // target entity type, "artist" for all crew roles
	LinkType   LinkType    `json:"link_type"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// CrewMember is one parsed (role, person) credit. Values are never mutated
// after creation; corrections produce a fresh value.
type CrewMember struct {
	Name       string      `json:"name"`
	CreditedAs string      `json:"credited_as,omitempty"`
	SourceJob  string      `json:"source_job"`
	LinkType   LinkType    `json:"link_type"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Crew is the parser output, split into contributors of the audio production
// itself and credits that belong to the underlying written work (novel
// template, idea) rather than the recording.
type Crew struct {
	Members     []CrewMember `json:"members,omitempty"`
	NotForAudio []CrewMember `json:"not_for_audio,omitempty"`
}

// Actor is a performer credited against a character. Unlike crew it comes
// from a structured cast table, so the character name is always present.
type Actor struct {
	Name       string `json:"name"`
	RoleName   string `json:"role_name"`
	CreditedAs string `json:"credited_as,omitempty"`
}
