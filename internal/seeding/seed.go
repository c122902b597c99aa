// Package seeding builds the final release seed from a session and
// serializes it into the submission form payload the catalog's release
// editor accepts.
package seeding

import (
	"fmt"
	"sort"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/release"
	"github.com/dramaseed/dramaseed-server/internal/taxonomy"
)

// Fixed seed values: both sites catalog official German-language audio
// dramas.
const (
	seedLanguage = "deu"
	seedScript   = "Latn"
	seedStatus   = "Official"
)

// Options tweak how a seed is built.
type Options struct {
	// TracksPerMedium overrides the default one-track-per-side layout.
	TracksPerMedium []int
	// Version tags the edit note footer.
	Version string
}

// BuildSeed assembles the release seed from the session's release data and
// the user's row edits. Estimated dates are left out; only a confirmed date
// becomes a release event.
func BuildSeed(session *domain.Session, opts Options) domain.ReleaseSeed {
	info := session.Release

	seed := domain.ReleaseSeed{
		Name:         seedName(session),
		ArtistCredit: artistCredit(session.Artists),
		Type:         []string{"Other", "Audio drama"},
		Labels:       seedLabels(session.Labels),
		Language:     seedLanguage,
		Script:       seedScript,
		Status:       seedStatus,
		Barcode:      info.Barcode,
		Packaging:    packaging(info),
		Mediums:      release.GenerateMediums(info, opts.TracksPerMedium),
		URLs:         seedURLs(session),
		EditNote: BuildEditNote(opts.Version,
			fmt.Sprintf("Imported audio drama from %s", info.ReleaseURL)),
	}

	if info.DateState == domain.DateConfirmed && !info.Event.Date.IsZero() {
		seed.Events = []domain.ReleaseEvent{info.Event}
	}

	return seed
}

// seedName prefers the user-edited release name row over the extracted
// title.
func seedName(session *domain.Session) string {
	for _, row := range session.Additions {
		if row.Label == release.RowLabelReleaseName && row.Included && row.Value != "" {
			return row.Value
		}
	}
	return session.Release.Title
}

// artistCredit turns the included artist rows, in their user-set order,
// into the seed's artist credit. All entries but the last are joined with
// ", ".
func artistCredit(rows []domain.Row) domain.ArtistCredit {
	included := includedByPosition(rows)

	names := make([]domain.ArtistCreditName, 0, len(included))
	for i, row := range included {
		name := domain.ArtistCreditName{
			Name:   row.Value,
			MBID:   row.MBID,
			Artist: &domain.SeedArtist{Name: row.Value},
		}
		if i < len(included)-1 {
			name.JoinPhrase = ", "
		}
		names = append(names, name)
	}
	return domain.ArtistCredit{Names: names}
}

func seedLabels(rows []domain.Row) []domain.SeedLabel {
	var labels []domain.SeedLabel
	for _, row := range includedByPosition(rows) {
		if row.Value == "" && row.CatalogNumber == "" {
			continue
		}
		labels = append(labels, domain.SeedLabel{
			Name:          row.Value,
			MBID:          row.MBID,
			CatalogNumber: row.CatalogNumber,
		})
	}
	return labels
}

func packaging(info domain.ReleaseInfo) string {
	if info.Medium.Packaging != "" {
		return info.Medium.Packaging
	}
	if info.Discs > 0 {
		// download releases
		return "None"
	}
	return ""
}

// seedURLs relates the release back to its source page. Card index pages
// are discography entries; shop pages are purchase links, physical or
// download depending on the medium.
func seedURLs(session *domain.Session) []domain.SeedURL {
	linkName := "discography entry"
	if session.Template == "shop" {
		linkName = "purchase for download"
		if session.Release.Medium.Format == "CD" {
			linkName = "purchase for mail-order"
		}
	}
	id, ok := taxonomy.URLLinkTypeID(linkName)
	if !ok {
		return nil
	}
	return []domain.SeedURL{{URL: session.Release.ReleaseURL, LinkType: id}}
}

func includedByPosition(rows []domain.Row) []domain.Row {
	var included []domain.Row
	for _, row := range rows {
		if row.Included {
			included = append(included, row)
		}
	}
	sort.SliceStable(included, func(i, j int) bool {
		return included[i].Position < included[j].Position
	})
	return included
}
