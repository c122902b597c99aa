package release

import (
	"strconv"
	"strings"

	"github.com/dramaseed/dramaseed-server/internal/domain"
)

// Labels of the additional-info rows. The date row is special: it carries
// the confirmation state and is what a confirm-date action targets.
const (
	RowLabelReleaseName  = "Veröffentlichungsname"
	RowLabelReleaseGroup = "Veröffentlichungsgruppe"
	RowLabelSeries       = "Serienname"
	RowLabelEpisodeNr    = "Folgennummer"
	RowLabelDate         = "Veröffentlichungsdatum"
	RowLabelBarcode      = "Barcode"
	RowLabelPackaging    = "Verpackung"
	RowLabelMediumType   = "Medium-Art"
	RowLabelMediumCount  = "Medium-Anzahl"
)

// ArtistRows builds the editable artist rows: the heading artist, every
// writer credit (including literary template credits) and the series name.
// A single row is included for seeding right away; multiple rows start out
// excluded and the user picks.
func ArtistRows(info domain.ReleaseInfo, crew domain.Crew) []domain.Row {
	var rows []domain.Row

	if info.ArtistName != "" {
		rows = append(rows, domain.Row{
			Kind:       domain.RowArtist,
			Label:      "Künstler",
			Value:      info.ArtistName,
			EntityType: "artist",
		})
	}
	for _, m := range append(append([]domain.CrewMember(nil), crew.Members...), crew.NotForAudio...) {
		if m.LinkType != domain.LinkWriter {
			continue
		}
		rows = append(rows, domain.Row{
			Kind:       domain.RowArtist,
			Label:      m.SourceJob,
			Value:      m.Name,
			EntityType: "artist",
		})
	}
	if info.SeriesName != "" {
		rows = append(rows, domain.Row{
			Kind:       domain.RowArtist,
			Label:      RowLabelSeries,
			Value:      info.SeriesName,
			EntityType: "artist",
		})
	}

	return finishRows(rows, len(rows) == 1)
}

// LabelRows builds the editable label rows.
func LabelRows(info domain.ReleaseInfo) []domain.Row {
	var rows []domain.Row
	for _, l := range info.Labels {
		rows = append(rows, domain.Row{
			Kind:          domain.RowLabel,
			Label:         "Label",
			Value:         l.Name,
			EntityType:    "label",
			MBID:          l.MBID,
			CatalogNumber: l.CatalogNumber,
		})
	}
	return finishRows(rows, len(rows) == 1)
}

// AdditionalRows surfaces select release fields as a uniform row list,
// each entry present only when its source field is. Additional rows are
// always included; they feed the seed directly.
func AdditionalRows(info domain.ReleaseInfo) []domain.Row {
	var rows []domain.Row
	add := func(label, value, entityType string) {
		if value == "" {
			return
		}
		rows = append(rows, domain.Row{
			Kind:       domain.RowAdditional,
			Label:      label,
			Value:      value,
			EntityType: entityType,
		})
	}

	add(RowLabelReleaseName, info.Title, "")
	if info.Title != "" {
		// The release group shares the release name; the value stays empty
		// until the user maps an existing group.
		rows = append(rows, domain.Row{
			Kind:       domain.RowAdditional,
			Label:      RowLabelReleaseGroup,
			EntityType: "release-group",
		})
	}
	add(RowLabelSeries, info.SeriesName, "series")
	if info.SeriesName != "" {
		add(RowLabelEpisodeNr, info.EpisodeNr, "")
	}
	add(RowLabelDate, FormatDate(info.Event.Date), "")
	add(RowLabelBarcode, info.Barcode, "")
	add(RowLabelPackaging, info.Medium.Packaging, "")
	add(RowLabelMediumType, info.Medium.Format, "")
	if n := info.MediumCount(); n > 0 {
		add(RowLabelMediumCount, strconv.Itoa(n), "")
	}

	return finishRows(rows, true)
}

func finishRows(rows []domain.Row, included bool) []domain.Row {
	for i := range rows {
		rows[i].Included = included
		rows[i].Position = i
	}
	return rows
}

// FormatDate renders a partial date for display, most specific component
// first: "03.05.2024", "05.2024" or "2024". Day and month are zero-padded
// to two digits.
func FormatDate(d domain.PartialDate) string {
	var parts []string
	if d.Day != "" {
		parts = append(parts, pad2(d.Day))
	}
	if d.Month != "" {
		parts = append(parts, pad2(d.Month))
	}
	if d.Year != "" {
		parts = append(parts, d.Year)
	}
	return strings.Join(parts, ".")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
