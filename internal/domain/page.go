package domain

// CastRow is one row of a structured cast table: a character and the person
// who voiced it. Unknown marks placeholder rows ("unbekannt") that must not
// produce an actor credit.
type CastRow struct {
	RoleName   string `json:"role_name"`
	Name       string `json:"name"`
	CreditedAs string `json:"credited_as,omitempty"`
	Unknown    bool   `json:"unknown,omitempty"`
}

// PageData is the neutral result of scraping one release page. Site
// templates fill whatever their markup exposes; absent fields stay zero and
// downstream stages treat that as a parse miss, not an error.
type PageData struct {
	URL          string            `json:"url"`
	Title        string            `json:"title,omitempty"`         // raw heading title
	ArtistName   string            `json:"artist_name,omitempty"`   // heading artist, fan-site template
	SeriesName   string            `json:"series_name,omitempty"`   // shop template series heading
	EpisodeNr    string            `json:"episode_nr,omitempty"`    // shop template subtitle number
	EpisodeTitle string            `json:"episode_title,omitempty"` // shop template subtitle text
	Labels       []LabelCredit     `json:"labels,omitempty"`
	MediumLabel  string            `json:"medium_label,omitempty"` // free-text medium type ("CD", "Doppel-LP", ...)
	CrewBlocks   []string          `json:"crew_blocks,omitempty"`  // unstructured credit text blocks
	CastRows     []CastRow         `json:"cast_rows,omitempty"`
	InfoFields   map[string]string `json:"info_fields,omitempty"`   // labeled info lines, e.g. "Veröffentlichung"
	CatalogLinks []string          `json:"catalog_links,omitempty"` // linked catalog numbers (barcode candidates)
	RuntimeText  string            `json:"runtime_text,omitempty"`  // raw "Spielzeit" value
	Discs        int               `json:"discs,omitempty"`         // declared medium count, shop template
}
