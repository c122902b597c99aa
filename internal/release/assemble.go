// Package release assembles scraped page data into a coherent release
// record: title splitting, medium classification, runtime and barcode
// extraction, and the medium/track layout for seeding.
package release

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/normalize"
	"github.com/dramaseed/dramaseed-server/internal/taxonomy"
)

// InfoFields keys the site templates normalize their labeled info lines to.
const (
	InfoKeyDate = "Veröffentlichung"
)

var (
	// "Serie (12): Titel" is written as "Serie 12: Titel" before splitting.
	numberParens = regexp.MustCompile(`\((\d+)\)`)

	seriesNumberTitle = regexp.MustCompile(`^(.+) (\d+): (.+)$`)
	prefixTitle       = regexp.MustCompile(`^(.+): (.+)$`)

	parenGroup  = regexp.MustCompile(`\((.*?)\)`)
	barcodeJunk = regexp.MustCompile(`[\W+-]`)
)

// SplitTitle splits a heading title into optional series name, optional
// episode number and the episode title. The three shapes are tried in
// order; the first match wins.
func SplitTitle(title string) (seriesName, episodeNr, episodeTitle string) {
	title = strings.TrimSpace(numberParens.ReplaceAllString(title, "$1:"))

	if m := seriesNumberTitle.FindStringSubmatch(title); m != nil {
		return m[1], m[2], m[3]
	}
	if m := prefixTitle.FindStringSubmatch(title); m != nil {
		return m[1], "", m[2]
	}
	return "", "", title
}

// ParseRuntimes extracts the ordered per-track minute counts from a raw
// "Spielzeit" value. A parenthesized breakdown ("(45 min. • 42 min.)")
// takes precedence over the total in front of it.
func ParseRuntimes(text string) []string {
	s := strings.ReplaceAll(text, " ", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if m := parenGroup.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	var runtimes []string
	for _, part := range strings.Split(s, "•") {
		part = strings.TrimSuffix(strings.TrimSpace(part), "min.")
		part = strings.TrimSpace(part)
		if part != "" {
			runtimes = append(runtimes, part)
		}
	}
	return runtimes
}

// ResolveBarcode scans label catalog numbers and linked catalog number
// candidates for a valid barcode. The first valid one wins; later valid
// candidates never overwrite it.
func ResolveBarcode(labels []domain.LabelCredit, candidates []string) string {
	for _, label := range labels {
		if code := cleanBarcode(label.CatalogNumber); normalize.ValidateBarcode(code) {
			return code
		}
	}
	for _, c := range candidates {
		if code := cleanBarcode(c); normalize.ValidateBarcode(code) {
			return code
		}
	}
	return ""
}

func cleanBarcode(s string) string {
	return barcodeJunk.ReplaceAllString(strings.TrimSpace(s), "")
}

// Assemble builds the release record from scraped page data. Missing page
// fields leave the corresponding record fields empty; nothing here fails.
func Assemble(page domain.PageData) domain.ReleaseInfo {
	info := domain.ReleaseInfo{
		ReleaseURL: page.URL,
		ArtistName: strings.TrimSpace(page.ArtistName),
		Labels:     append([]domain.LabelCredit(nil), page.Labels...),
		Discs:      page.Discs,
		DateState:  domain.DateConfirmed,
	}

	if page.Title != "" {
		info.Title = strings.TrimSpace(numberParens.ReplaceAllString(page.Title, "$1:"))
		info.SeriesName, info.EpisodeNr, info.EpisodeTitle = SplitTitle(page.Title)
	}
	// Shop pages carry the split parts directly and win over the heading.
	if page.SeriesName != "" {
		info.SeriesName = strings.TrimSpace(page.SeriesName)
	}
	if page.EpisodeNr != "" {
		info.EpisodeNr = strings.TrimSpace(page.EpisodeNr)
	}
	if page.EpisodeTitle != "" {
		info.EpisodeTitle = strings.TrimSpace(page.EpisodeTitle)
	}
	if info.Title == "" {
		info.Title = joinTitle(info.SeriesName, info.EpisodeNr, info.EpisodeTitle)
	}

	if m, ok := taxonomy.ClassifyMedium(page.MediumLabel); ok {
		info.Medium = m
	}
	info.Runtimes = ParseRuntimes(page.RuntimeText)
	info.Barcode = ResolveBarcode(info.Labels, page.CatalogLinks)

	if text, ok := page.InfoFields[InfoKeyDate]; ok {
		event, estimated := normalize.ParseReleaseDate(text)
		info.Event = event
		if estimated {
			info.DateState = domain.DateEstimated
		}
	}

	return info
}

func joinTitle(seriesName, episodeNr, episodeTitle string) string {
	switch {
	case seriesName != "" && episodeNr != "":
		return fmt.Sprintf("%s %s: %s", seriesName, episodeNr, episodeTitle)
	case seriesName != "":
		return fmt.Sprintf("%s: %s", seriesName, episodeTitle)
	default:
		return episodeTitle
	}
}

// ConfirmDate transitions an estimated release date to confirmed. Only
// confirmed dates end up in a seed.
func ConfirmDate(info *domain.ReleaseInfo) {
	info.DateState = domain.DateConfirmed
}
