package domain

import "time"

// RowKind distinguishes the editable row groups of a mapping session.
type RowKind string

// Row kinds.
const (
	RowArtist     RowKind = "artist"
	RowLabel      RowKind = "label"
	RowAdditional RowKind = "additional"
)

// Row is one editable entry of a mapping session. Rows are what the user
// reorders, includes/excludes and assigns identifiers to before seeding.
type Row struct {
	ID            string  `json:"id"`
	Kind          RowKind `json:"kind"`
	Label         string  `json:"label"`                    // the site job or info label
	Value         string  `json:"value"`                    // display value, user editable
	EntityType    string  `json:"entity_type,omitempty"`    // allowed entity type for identifier input
	MBID          string  `json:"mbid,omitempty"`           // resolved identifier, if any
	CatalogNumber string  `json:"catalog_number,omitempty"` // label rows only
	Included      bool    `json:"included"`
	Position      int     `json:"position"`
}

// Session is one request-scoped extraction cycle: everything parsed from a
// single page plus the user's edits, kept until the seed is built. There is
// no module-level page state; all pipeline stages receive the session.
type Session struct {
	ID        string      `json:"id"`
	Template  string      `json:"template"`
	Release   ReleaseInfo `json:"release"`
	Crew      Crew        `json:"crew"`
	Actors    []Actor     `json:"actors,omitempty"`
	Artists   []Row       `json:"artists,omitempty"`
	Labels    []Row       `json:"labels,omitempty"`
	Additions []Row       `json:"additions,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Clone returns a deep copy. The session service hands out copies so
// handlers can serialize them without holding the session lock.
func (s *Session) Clone() *Session {
	c := *s
	c.Actors = append([]Actor(nil), s.Actors...)
	c.Artists = append([]Row(nil), s.Artists...)
	c.Labels = append([]Row(nil), s.Labels...)
	c.Additions = append([]Row(nil), s.Additions...)
	c.Crew.Members = cloneMembers(s.Crew.Members)
	c.Crew.NotForAudio = cloneMembers(s.Crew.NotForAudio)
	c.Release.Labels = append([]LabelCredit(nil), s.Release.Labels...)
	c.Release.Runtimes = append([]string(nil), s.Release.Runtimes...)
	return &c
}

func cloneMembers(members []CrewMember) []CrewMember {
	if members == nil {
		return nil
	}
	out := make([]CrewMember, len(members))
	for i, m := range members {
		out[i] = m
		out[i].Attributes = append([]Attribute(nil), m.Attributes...)
	}
	return out
}
