package sites

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/release"
)

// Shop is the publisher's web shop. Pages are structured: the series name
// and a "number:title" subtitle in the heading, key/value detail
// paragraphs, and contributor paragraphs split into crew (left) and cast
// (right).
type Shop struct{}

// Name implements Template.
func (Shop) Name() string { return "shop" }

// Match implements Template.
func (Shop) Match(u *url.URL) bool {
	return strings.HasSuffix(u.Hostname(), "shop.holysoft.de")
}

var subtitlePattern = regexp.MustCompile(`^(\d+):(.+)$`)

// Parse implements Template.
func (Shop) Parse(doc *goquery.Document, pageURL string) domain.PageData {
	page := domain.PageData{URL: pageURL, InfoFields: map[string]string{}}

	page.SeriesName = strings.TrimSpace(doc.Find("h2.product_grid_full_title > a").First().Text())
	subtitle := strings.TrimSpace(doc.Find("h3.product_grid_full_subtitle").First().Text())
	if m := subtitlePattern.FindStringSubmatch(subtitle); m != nil {
		page.EpisodeNr = m[1]
		page.EpisodeTitle = strings.TrimSpace(m[2])
	} else if subtitle != "" {
		page.EpisodeTitle = subtitle
	}

	doc.Find("#product_details > .product_full_extrainfo_left > p").Each(func(_ int, p *goquery.Selection) {
		key := strings.TrimSpace(p.Find("b").First().Text())
		value := strings.TrimSpace(textWithoutBold(p))
		if key == "" || value == "" {
			return
		}
		switch key {
		case "ANZAHL DATENTRÄGER":
			if n, err := strconv.Atoi(value); err == nil {
				page.Discs = n
			}
		case "ERSTERSCHEINUNG", "IM HOLYSHOP ERHÄLTLICH AB":
			page.InfoFields[release.InfoKeyDate] = value
		case "FORMAT":
			page.MediumLabel = value
		case "ISBN":
			page.CatalogLinks = append(page.CatalogLinks, strings.ReplaceAll(value, "-", ""))
		case "GENRE", "IM STREAMING ABO ENTHALTEN AB":
			// not release data
		default:
			page.InfoFields[key] = value
		}
	})

	// Crew paragraphs carry the job in bold and the people as links. Render
	// them as credit lines so the same parser handles both sites.
	doc.Find("#product_mitwirkende > .product_full_extrainfo_left > p").Each(func(_ int, p *goquery.Selection) {
		job := strings.TrimSpace(p.Find("b").First().Text())
		var names []string
		p.Find("a").Each(func(_ int, a *goquery.Selection) {
			if name := strings.TrimSpace(a.Text()); name != "" {
				names = append(names, name)
			}
		})
		if job == "" || len(names) == 0 {
			return
		}
		page.CrewBlocks = append(page.CrewBlocks, job+": "+strings.Join(names, ", "))
	})

	doc.Find("#product_mitwirkende > .product_full_extrainfo_right > p").Each(func(_ int, p *goquery.Selection) {
		links := p.Find("a")
		if links.Length() < 2 {
			return
		}
		page.CastRows = append(page.CastRows, domain.CastRow{
			RoleName: strings.TrimSpace(links.Eq(0).Text()),
			Name:     strings.TrimSpace(links.Eq(1).Text()),
		})
	})

	return page
}

// textWithoutBold collects the paragraph's text skipping the bold key.
func textWithoutBold(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) != "b" {
			b.WriteString(c.Text())
		}
	})
	return strings.TrimSpace(b.String())
}
