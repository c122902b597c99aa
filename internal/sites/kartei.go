package sites

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/normalize"
)

// Kartei is the fan-maintained card index of German audio dramas. One page
// per release, with a heading block, free-text credit lines and a cast
// table.
type Kartei struct{}

// Name implements Template.
func (Kartei) Name() string { return "kartei" }

// Match implements Template.
func (Kartei) Match(u *url.URL) bool {
	return strings.HasSuffix(u.Hostname(), "hoerspielforscher.de")
}

// catalogNumber digs the catalog number out of the heading's catalog line,
// e.g. "MC Europa 115 545 (1982)".
var catalogNumber = regexp.MustCompile(`.*?(Box|MC|LP|CD|Stream) (.*?) \(.*`)

// Parse implements Template.
func (Kartei) Parse(doc *goquery.Document, pageURL string) domain.PageData {
	page := domain.PageData{URL: pageURL, InfoFields: map[string]string{}}

	heading := doc.Find("#heading-details").First()
	page.Title = strings.TrimSpace(heading.Find(".title").First().Text())
	page.ArtistName = strings.TrimSpace(heading.Find(".artist").First().Text())

	if catalog := heading.Find(".catalog").First(); catalog.Length() > 0 {
		label := domain.LabelCredit{
			Name: strings.TrimSpace(catalog.Find(".label").First().Text()),
		}
		if m := catalogNumber.FindStringSubmatch(strings.TrimSpace(catalog.Text())); m != nil {
			label.CatalogNumber = m[2]
		}
		if label.Name != "" || label.CatalogNumber != "" {
			page.Labels = append(page.Labels, label)
		}
		// The medium type is the first token of the catalog line once the
		// linked label name is gone.
		if fields := strings.Fields(textWithoutAnchors(catalog)); len(fields) > 0 {
			page.MediumLabel = fields[0]
		}
	}

	doc.Find(".info-line-container > .info-line:not(.tabled), .crew-set").Each(func(_ int, s *goquery.Selection) {
		if html, err := goquery.OuterHtml(s); err == nil {
			if block := normalize.StripHTML(html); block != "" {
				page.CrewBlocks = append(page.CrewBlocks, block)
			}
		}
	})

	doc.Find("table.release-cast-list tr").Each(func(_ int, tr *goquery.Selection) {
		row := parseCastRow(tr)
		if row.RoleName == "" && row.Name == "" {
			return
		}
		page.CastRows = append(page.CastRows, row)
	})

	doc.Find(".info-line.tabled").Each(func(_ int, s *goquery.Selection) {
		cells := s.Children()
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		value := cells.Eq(1)
		switch {
		case strings.Contains(key, "Spielzeit"):
			page.RuntimeText = strings.TrimSpace(value.Text())
		case strings.Contains(key, "Katalognummer"):
			value.Find("a").Each(func(_ int, a *goquery.Selection) {
				if c := strings.TrimSpace(a.Text()); c != "" {
					page.CatalogLinks = append(page.CatalogLinks, c)
				}
			})
		}
	})

	doc.Find(".nonbreak").Each(func(_ int, s *goquery.Selection) {
		key, value, found := strings.Cut(strings.TrimSpace(s.Text()), ": ")
		if !found {
			return
		}
		page.InfoFields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	})

	return page
}

func parseCastRow(tr *goquery.Selection) domain.CastRow {
	row := domain.CastRow{
		RoleName: strings.TrimSpace(tr.Find(".role").First().Text()),
	}

	name := tr.Find(".name").First()
	if name.Length() == 0 {
		return row
	}
	// Italic name cells are placeholders for unknown performers.
	if name.ChildrenFiltered("i").Length() > 0 {
		row.Unknown = true
		return row
	}

	name.Find(".footnote-number").Remove()
	if literal := name.Find(".literal").First(); literal.Length() > 0 {
		row.CreditedAs = normalize.CleanText(strings.TrimSpace(literal.Find("span").First().Text()))
		literal.Remove()
	}
	row.Name = strings.TrimSpace(name.Text())
	return row
}

// textWithoutAnchors collects the selection's text skipping linked parts.
func textWithoutAnchors(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) != "a" {
			b.WriteString(c.Text())
		}
	})
	return strings.TrimSpace(b.String())
}
