// Package credits turns loosely formatted credit lines and structured cast
// rows into typed crew and actor records.
package credits

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/normalize"
	"github.com/dramaseed/dramaseed-server/internal/taxonomy"
)

var (
	lineSplitter  = regexp.MustCompile(`[\n•]`)
	parenAside    = regexp.MustCompile(`\(.*?\)`)
	nameSeparator = regexp.MustCompile(`\s*,\s*|\s+und\s+`)
	segmentJunk   = strings.NewReplacer(":", "", "•", "")
)

// roleMatchers pairs each taxonomy role with a compiled keyword pattern.
// The keyword must be followed by a non-word character so that e.g.
// "Regie" does not fire inside "Regieassistenz".
var roleMatchers = func() []roleMatcher {
	rs := taxonomy.Roles()
	ms := make([]roleMatcher, 0, len(rs))
	for _, r := range rs {
		ms = append(ms, roleMatcher{
			role:    r,
			pattern: regexp.MustCompile(regexp.QuoteMeta(r.Label) + `\W`),
		})
	}
	return ms
}()

type roleMatcher struct {
	role    taxonomy.Role
	pattern *regexp.Regexp
}

// matchSpan is one role keyword occurrence within a line.
type matchSpan struct {
	start, end int
	role       taxonomy.Role
}

// group accumulates roles that share one name segment, e.g.
// "Regie und Produktion: Hans Müller".
type group struct {
	roles   []taxonomy.Role
	segment string
}

// ParseCrew scans raw text blocks for role keywords and emits one crew
// member per (role, person) pair. Lines without any role keyword are
// skipped. Members whose source job credits the written template rather
// than the audio production end up in NotForAudio.
func ParseCrew(blocks []string) domain.Crew {
	var members []domain.CrewMember
	for _, block := range blocks {
		for _, line := range lineSplitter.Split(block, -1) {
			members = append(members, parseLine(strings.TrimSpace(line))...)
		}
	}

	members = dropNothing(members)
	members = dedup(members)

	var crew domain.Crew
	for _, m := range members {
		if taxonomy.IsNotAudioWork(m.SourceJob) {
			crew.NotForAudio = append(crew.NotForAudio, m)
		} else {
			crew.Members = append(crew.Members, m)
		}
	}
	return crew
}

func parseLine(line string) []domain.CrewMember {
	spans := matchRoles(line)
	if len(spans) == 0 {
		return nil
	}

	var groups []group
	cur := group{}
	for i, sp := range spans {
		cur.roles = append(cur.roles, sp.role)
		if i+1 < len(spans) {
			if spans[i+1].start < sp.end {
				// Overlapping keyword matches leave no name segment
				// between them.
				continue
			}
			between := strings.TrimSpace(line[sp.end:spans[i+1].start])
			if isConjunction(between) {
				continue
			}
			cur.segment = between
		} else {
			cur.segment = strings.TrimSpace(line[sp.end:])
		}
		groups = append(groups, cur)
		cur = group{}
	}

	var members []domain.CrewMember
	for _, g := range groups {
		names := splitNames(g.segment)
		for _, r := range g.roles {
			for _, name := range names {
				if taxonomy.IsBlacklisted(name) {
					continue
				}
				members = append(members, newMember(r, name))
			}
		}
	}
	return members
}

func matchRoles(line string) []matchSpan {
	var spans []matchSpan
	for _, m := range roleMatchers {
		// The match position matters: a label can occur as a prefix of a
		// longer label earlier in the line ("Regie" inside
		// "Regieassistenz"), so the span must come from the pattern, not
		// from a plain substring search.
		loc := m.pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		spans = append(spans, matchSpan{
			start: loc[0],
			end:   loc[0] + len(m.role.Label),
			role:  m.role,
		})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})
	return spans
}

func isConjunction(s string) bool {
	return s == "und" || s == "&" || s == ","
}

// splitNames cleans a name segment and splits it into individual person
// names. Parenthesized asides are discarded, leftover separators stripped.
func splitNames(segment string) []string {
	s := parenAside.ReplaceAllString(segment, "")
	s = strings.TrimSpace(segmentJunk.Replace(s))
	var names []string
	for _, part := range nameSeparator.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func newMember(r taxonomy.Role, name string) domain.CrewMember {
	m := domain.CrewMember{
		Name:      name,
		SourceJob: r.Label,
		LinkType:  r.Mapping.LinkType,
	}
	if len(r.Mapping.Attributes) > 0 {
		m.Attributes = append([]domain.Attribute(nil), r.Mapping.Attributes...)
	}
	return m
}

func dropNothing(members []domain.CrewMember) []domain.CrewMember {
	kept := members[:0]
	for _, m := range members {
		if m.LinkType != domain.LinkNothing {
			kept = append(kept, m)
		}
	}
	return kept
}

// dedup keeps the first occurrence per (link type, normalized name).
// Later mentions of the same person in the same capacity are dropped
// regardless of which source job produced them.
func dedup(members []domain.CrewMember) []domain.CrewMember {
	seen := make(map[string]struct{}, len(members))
	kept := members[:0]
	for _, m := range members {
		key := string(m.LinkType) + "\x00" + normalize.NameKey(m.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, m)
	}
	return kept
}

// ParseActors converts structured cast rows into actor records. Rows with
// an unknown performer are skipped.
func ParseActors(rows []domain.CastRow) []domain.Actor {
	var actors []domain.Actor
	for _, row := range rows {
		if row.Unknown {
			continue
		}
		name := strings.TrimSpace(row.Name)
		if name == "" || strings.EqualFold(name, "unbekannt") {
			continue
		}
		actors = append(actors, domain.Actor{
			Name:       name,
			RoleName:   strings.TrimSpace(row.RoleName),
			CreditedAs: normalize.CleanText(row.CreditedAs),
		})
	}
	return actors
}
