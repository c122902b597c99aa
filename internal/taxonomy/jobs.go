// Package taxonomy holds the fixed lookup tables of the extraction pipeline:
// the role taxonomy mapping site job labels to catalog relationship types,
// the medium classification table, and the numeric link-type registries of
// the target catalog.
package taxonomy

import "github.com/dramaseed/dramaseed-server/internal/domain"

// Role couples a site job label with its catalog mapping.
type Role struct {
	Label   string
	Mapping domain.RoleMapping
}

// roles is ordered: the credit-line parser scans keywords in this sequence
// and relies on stable, first-seen tie-breaking for matches at equal
// positions.
var roles = []Role{
	{"Mischung", artist(domain.LinkMix)},
	{"Schnittassistenz", artistAttr(domain.LinkEditor, "assistant")},
	{"Schnitt", artist(domain.LinkEditor)},
	{"Produktion", artist(domain.LinkProducer)},
	{"Künstlerische Gesamtleitung", artistAttr(domain.LinkProducer, "executive")},
	{"Buch", artist(domain.LinkWriter)},
	{"Hörspielskript", artist(domain.LinkWriter)},
	{"Hörspielbearbeitung", artist(domain.LinkWriter)},
	{"Skript", artist(domain.LinkWriter)},
	{"Spoken_vocals", artistAttr(domain.LinkVocal, "Spoken_vocals")},
	{"Illustration", artist(domain.LinkIllustration)},
	{"Regieassistenz", artistAttr(domain.LinkAudioDirector, "assistant")},
	{"Regie", artist(domain.LinkAudioDirector)},
	{"Effekte", artist(domain.LinkSoundEffects)},
	{"Sounddesign", artist(domain.LinkSoundEffects)},
	{"Nach dem Roman von", artist(domain.LinkWriter)},
	{"Vorlage", artist(domain.LinkWriter)},
	{"Idee", artist(domain.LinkWriter)},
	{"nach dem Jugendbuch von", artist(domain.LinkWriter)},
	// Credited on the page but not a catalog relationship.
	{"Redaktion", artist(domain.LinkNothing)},
	{"Pressebetreuung", artist(domain.LinkNothing)},
}

var rolesByLabel = func() map[string]domain.RoleMapping {
	m := make(map[string]domain.RoleMapping, len(roles))
	for _, r := range roles {
		m[r.Label] = r.Mapping
	}
	return m
}()

func artist(lt domain.LinkType) domain.RoleMapping {
	return domain.RoleMapping{TargetType: "artist", LinkType: lt}
}

func artistAttr(lt domain.LinkType, attr string) domain.RoleMapping {
	return domain.RoleMapping{
		TargetType: "artist",
		LinkType:   lt,
		Attributes: []domain.Attribute{{Type: attr}},
	}
}

// Roles returns the ordered role taxonomy.
func Roles() []Role {
	return roles
}

// Lookup resolves a site job label to its catalog mapping.
func Lookup(label string) (domain.RoleMapping, bool) {
	m, ok := rolesByLabel[label]
	return m, ok
}

// SpokenVocals is the mapping used for cast-table performers.
func SpokenVocals() domain.RoleMapping {
	return rolesByLabel["Spoken_vocals"]
}

// blacklist holds known studio/publisher names that appear in credit lines
// but are not persons.
var blacklist = map[string]struct{}{
	"Studio EUROPA":   {},
	"Tonstudio Braun": {},
}

// IsBlacklisted reports whether name is a known non-person credit.
func IsBlacklisted(name string) bool {
	_, ok := blacklist[name]
	return ok
}

// notAudioWork lists jobs that credit the written source material rather
// than the audio production; the parser splits these into their own group.
var notAudioWork = map[string]struct{}{
	"Nach dem Roman von":      {},
	"Vorlage":                 {},
	"nach dem Jugendbuch von": {},
}

// IsNotAudioWork reports whether a job credits the underlying written work.
func IsNotAudioWork(job string) bool {
	_, ok := notAudioWork[job]
	return ok
}
