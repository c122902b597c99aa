package taxonomy

import "github.com/dramaseed/dramaseed-server/internal/domain"

// mediumTypes maps the sites' free-text medium labels to the catalog's
// medium format and packaging. Sides is the number of playable sides per
// medium, which drives the default tracks-per-medium distribution.
var mediumTypes = map[string]domain.MediumInfo{
	"LP":                {Sides: 2, Format: `12" Vinyl`, Packaging: "Cardboard/Paper Sleeve"},
	"Promo-LP":          {Sides: 2, Format: `12" Vinyl`, Packaging: "Cardboard/Paper Sleeve"},
	"Doppel-LP":         {Sides: 2, Format: `12" Vinyl`, Packaging: "Cardboard/Paper Sleeve"},
	"3-LP":              {Sides: 2, Format: `12" Vinyl`, Packaging: "Cardboard/Paper Sleeve"},
	"3-Bild-LP-Schuber": {Sides: 2, Format: `12" Vinyl`, Packaging: "Box"},
	"5-LP-Box":          {Sides: 2, Format: `12" Vinyl`, Packaging: "Box"},
	"6-LP-Box":          {Sides: 2, Format: `12" Vinyl`, Packaging: "Box"},

	"MC":                {Sides: 2, Format: "Cassette", Packaging: "Cassette Case"},
	"Promo-MC":          {Sides: 2, Format: "Cassette", Packaging: "Cassette Case"},
	"Doppel-MC":         {Sides: 2, Format: "Cassette", Packaging: "Cassette Case"},
	"Doppel-MC-Schuber": {Sides: 2, Format: "Cassette", Packaging: "Box"},
	"3-MC-Schuber":      {Sides: 2, Format: "Cassette", Packaging: "Box"},
	"4-MC-Box":          {Sides: 2, Format: "Cassette", Packaging: "Box"},

	"CD":                 {Sides: 1, Format: "CD", Packaging: "Jewel case"},
	"Audio-CD":           {Sides: 1, Format: "CD", Packaging: "Jewel case"},
	"Digipak-CD":         {Sides: 1, Format: "CD", Packaging: "Digipak"},
	"Digipak-Doppel-CD":  {Sides: 1, Format: "CD", Packaging: "Digipak"},
	"Doppel-CD":          {Sides: 1, Format: "CD", Packaging: "Jewel case"},
	"Doppel-CD-Schuber":  {Sides: 1, Format: "CD", Packaging: "Box"},
	"Doppel-CD-Box":      {Sides: 1, Format: "CD", Packaging: "Box"},
	"3-CD":               {Sides: 1, Format: "CD", Packaging: "Jewel case"},
	"3-CD-Schuber":       {Sides: 1, Format: "CD", Packaging: "Box"},

	"Audio-Dateien": {Sides: 1, Format: "Digital Media", Packaging: "None"},
	"Stream":        {Sides: 1, Format: "Digital Media", Packaging: "None"},
}

// ClassifyMedium resolves a site medium label. Unknown labels return a zero
// MediumInfo and false; the assembler leaves medium info empty in that case
// rather than failing.
func ClassifyMedium(label string) (domain.MediumInfo, bool) {
	m, ok := mediumTypes[label]
	return m, ok
}
