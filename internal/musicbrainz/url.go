// Package musicbrainz talks to the MusicBrainz web service: identifier
// extraction from pasted URLs, rate-limited entity lookups and name
// resolution.
package musicbrainz

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// entityURLPattern matches an entity type segment followed by a 36
// character identifier, as found in catalog URLs. "mbid" stands in when the
// user pasted a bare identifier with a type-less prefix.
var entityURLPattern = regexp.MustCompile(`(area|artist|event|genre|instrument|label|mbid|place|recording|release|release-group|series|url|work)/([0-9a-f-]{36})`)

// ExtractEntity pulls an entity type and identifier out of pasted text,
// either a catalog URL or a bare 36 character identifier. The identifier is
// validated as a UUID. A bare identifier yields the pseudo type "mbid"; the
// caller decides what types it accepts.
func ExtractEntity(raw string) (entityType, mbid string, ok bool) {
	raw = strings.TrimSpace(raw)

	if m := entityURLPattern.FindStringSubmatch(raw); m != nil {
		if uuid.Validate(m[2]) != nil {
			return "", "", false
		}
		return m[1], m[2], true
	}

	if len(raw) == 36 && uuid.Validate(raw) == nil {
		return "mbid", raw, true
	}
	return "", "", false
}
