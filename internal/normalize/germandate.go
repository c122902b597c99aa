package normalize

import (
	"regexp"
	"strings"

	"github.com/dramaseed/dramaseed-server/internal/domain"
)

// releaseCountry is fixed: both supported sites catalog German releases.
const releaseCountry = "DE"

// germanMonths maps written-out German month names to their number.
var germanMonths = map[string]string{
	"Januar":    "1",
	"Februar":   "2",
	"März":      "3",
	"April":     "4",
	"Mai":       "5",
	"Juni":      "6",
	"Juli":      "7",
	"August":    "8",
	"September": "9",
	"Oktober":   "10",
	"November":  "11",
	"Dezember":  "12",
}

var (
	dayMonthYearRegex = regexp.MustCompile(`^(\d{1,2})\. (\p{Latin}+) (\d{4})$`)
	dottedDateRegex   = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	monthYearRegex    = regexp.MustCompile(`^(\p{Latin}+) (\d{4})$`)
	yearRegex         = regexp.MustCompile(`^(\d{4})$`)
)

// ParseGermanDate recognizes the date shapes the sites use, "3. Mai 2024",
// "17.03.2023", "Mai 2024" and "2024", and returns a release event with the
// matched components. The variants are tried in order; the first match wins.
// Text matching none of them yields an event with the country set but no
// date, which callers treat as a parse miss.
func ParseGermanDate(text string) domain.ReleaseEvent {
	text = CollapseWhitespace(text)

	if m := dayMonthYearRegex.FindStringSubmatch(text); m != nil {
		return domain.ReleaseEvent{
			Date:    domain.PartialDate{Day: m[1], Month: germanMonths[m[2]], Year: m[3]},
			Country: releaseCountry,
		}
	}
	if m := dottedDateRegex.FindStringSubmatch(text); m != nil {
		return domain.ReleaseEvent{
			Date:    domain.PartialDate{Day: stripLeadingZero(m[1]), Month: stripLeadingZero(m[2]), Year: m[3]},
			Country: releaseCountry,
		}
	}
	if m := monthYearRegex.FindStringSubmatch(text); m != nil {
		return domain.ReleaseEvent{
			Date:    domain.PartialDate{Month: germanMonths[m[1]], Year: m[2]},
			Country: releaseCountry,
		}
	}
	if m := yearRegex.FindStringSubmatch(text); m != nil {
		return domain.ReleaseEvent{
			Date:    domain.PartialDate{Year: m[1]},
			Country: releaseCountry,
		}
	}
	return domain.ReleaseEvent{Country: releaseCountry}
}

func stripLeadingZero(s string) string {
	return strings.TrimLeft(s, "0")
}

// ParseReleaseDate handles the site's approximation marker on top of
// ParseGermanDate: "ca. Mai 2024" parses like "Mai 2024" but is reported as
// estimated.
func ParseReleaseDate(text string) (event domain.ReleaseEvent, estimated bool) {
	estimated = strings.Contains(text, "ca.")
	if estimated {
		text = strings.ReplaceAll(text, "ca. ", "")
		text = strings.ReplaceAll(text, "ca.", "")
	}
	return ParseGermanDate(text), estimated
}
