package domain

// PartialDate is a release date with optional components. Fields hold the
// digits as written on the page ("3", "5", "2024"); empty means unknown.
type PartialDate struct {
	Day   string `json:"day,omitempty"`
	Month string `json:"month,omitempty"`
	Year  string `json:"year,omitempty"`
}

// IsZero reports whether no date component is known.
func (d PartialDate) IsZero() bool {
	return d.Day == "" && d.Month == "" && d.Year == ""
}

// ReleaseEvent couples a partial date with the release country.
type ReleaseEvent struct {
	Date    PartialDate `json:"date"`
	Country string      `json:"country,omitempty"`
}

// DateState tracks whether a release date still needs user confirmation.
// Dates the source marked as approximate start out Estimated and are only
// included in a seed after an explicit confirmation.
type DateState string

// Release date confirmation states.
const (
	DateEstimated DateState = "estimated"
	DateConfirmed DateState = "confirmed"
)

// LabelCredit is a label with its catalog number and, once resolved, its
// catalog identifier.
type LabelCredit struct {
	Name          string `json:"name"`
	CatalogNumber string `json:"catalog_number,omitempty"`
	MBID          string `json:"mbid,omitempty"`
}

// MediumInfo describes the physical layout of a release medium as classified
// from the site's free-text format label. A zero value means the label was
// not recognized.
type MediumInfo struct {
	Sides     int    `json:"sides,omitempty"`     // playable sides per medium (1 for CD, 2 for LP/MC)
	Format    string `json:"format,omitempty"`    // catalog medium format, e.g. "CD", "12\" Vinyl"
	Packaging string `json:"packaging,omitempty"` // catalog packaging, e.g. "Jewel case"
}

// IsZero reports whether the medium label was not classified.
func (m MediumInfo) IsZero() bool {
	return m.Sides == 0 && m.Format == "" && m.Packaging == ""
}

// ReleaseInfo aggregates everything the assembler extracted about one
// release page.
type ReleaseInfo struct {
	Title        string        `json:"title"`
	SeriesName   string        `json:"series_name,omitempty"`
	EpisodeNr    string        `json:"episode_nr,omitempty"`
	EpisodeTitle string        `json:"episode_title"`
	ArtistName   string        `json:"artist_name,omitempty"`
	ReleaseURL   string        `json:"release_url"`
	Labels       []LabelCredit `json:"labels,omitempty"`
	Runtimes     []string      `json:"runtimes,omitempty"` // per-track minutes, in page order
	Medium       MediumInfo    `json:"medium"`
	Discs        int           `json:"discs,omitempty"` // declared medium count, shop template only
	Barcode      string        `json:"barcode,omitempty"`
	Event        ReleaseEvent  `json:"event"`
	DateState    DateState     `json:"date_state"`
}

// MediumCount derives how many mediums the runtimes fill. Zero when sides or
// runtimes are unknown.
func (r ReleaseInfo) MediumCount() int {
	if r.Medium.Sides == 0 || len(r.Runtimes) == 0 {
		return 0
	}
	return len(r.Runtimes) / r.Medium.Sides
}
