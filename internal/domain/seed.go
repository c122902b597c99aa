package domain

// The seed types mirror the external catalog's release seeding schema; the
// JSON tags are the key paths the submission form expects after flattening.

// ArtistCreditName is one entry of an artist credit, optionally joined to the
// next entry by a join phrase.
type ArtistCreditName struct {
	Name       string      `json:"name,omitempty"`
	MBID       string      `json:"mbid,omitempty"`
	Artist     *SeedArtist `json:"artist,omitempty"`
	JoinPhrase string      `json:"join_phrase,omitempty"`
}

// SeedArtist carries the artist name as it should be created when no
// identifier is given.
type SeedArtist struct {
	Name string `json:"name"`
}

// ArtistCredit is an ordered list of credited artists.
type ArtistCredit struct {
	Names []ArtistCreditName `json:"names"`
}

// SeedLabel is a label credit in the seed payload.
type SeedLabel struct {
	Name          string `json:"name,omitempty"`
	MBID          string `json:"mbid,omitempty"`
	CatalogNumber string `json:"catalog_number,omitempty"`
}

// SeedTrack is one track of a medium. Length is the duration in minutes as
// written on the page; it is only set when the requested track count matches
// the number of known runtimes.
type SeedTrack struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Length string `json:"length,omitempty"`
}

// SeedMedium is one medium with its ordered track list.
type SeedMedium struct {
	Format string      `json:"format,omitempty"`
	Track  []SeedTrack `json:"track"`
}

// SeedURL relates the release to an external URL via a numeric link type.
type SeedURL struct {
	URL      string `json:"url"`
	LinkType int    `json:"link_type"`
}

// ReleaseSeed is the final record handed to the external submission form.
// Built once per submission action; a new one is built if the user edits
// again.
type ReleaseSeed struct {
	Name         string         `json:"name"`
	ArtistCredit ArtistCredit   `json:"artist_credit"`
	Type         []string       `json:"type,omitempty"`
	Events       []ReleaseEvent `json:"events,omitempty"`
	Labels       []SeedLabel    `json:"labels,omitempty"`
	Language     string         `json:"language,omitempty"`
	Script       string         `json:"script,omitempty"`
	Status       string         `json:"status,omitempty"`
	Barcode      string         `json:"barcode,omitempty"`
	Packaging    string         `json:"packaging,omitempty"`
	Mediums      []SeedMedium   `json:"mediums,omitempty"`
	URLs         []SeedURL      `json:"urls,omitempty"`
	EditNote     string         `json:"edit_note,omitempty"`
}
