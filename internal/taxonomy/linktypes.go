package taxonomy

import "github.com/dramaseed/dramaseed-server/internal/domain"

// linkTypeIDs holds the catalog-internal numeric IDs of relationship link
// types, keyed target entity type -> source entity type -> relationship name.
// The table is intentionally incomplete and only covers what the importer
// emits.
var linkTypeIDs = map[string]map[string]map[domain.LinkType]int{
	"release": {
		"artist": {
			"©":                      709,
			"℗":                      710,
			domain.LinkMix:           26,
			domain.LinkEditor:        38,
			domain.LinkProducer:      30,
			domain.LinkWriter:        54,
			domain.LinkVocal:         60,
			domain.LinkIllustration:  927,
			domain.LinkAudioDirector: 1187,
			domain.LinkSoundEffects:  1235,
		},
		"label": {
			"©":               708,
			"℗":               711,
			"licensed from":   712,
			"licensed to":     833,
			"distributed by":  361,
			"manufactured by": 360,
			"marketed by":     848,
		},
	},
	"recording": {
		"artist": {
			"℗":                      869,
			domain.LinkMix:           143,
			domain.LinkEditor:        144,
			domain.LinkProducer:      141,
			domain.LinkVocal:         149,
			domain.LinkIllustration:  1244,
			domain.LinkAudioDirector: 1186,
			domain.LinkSoundEffects:  1236,
		},
		"label": {
			"℗": 867,
		},
	},
	"work": {
		"artist": {
			domain.LinkWriter: 167,
		},
	},
}

// attributeGIDs maps relationship attribute names to their catalog GIDs.
var attributeGIDs = map[string]string{
	"additional":    "0a5341f8-3b1d-4f99-a0c6-26b7f4e42c7f",
	"assistant":     "8c4196b1-7053-4b16-921a-f22b2898ed44",
	"associate":     "8d23d2dd-13df-43ea-85a0-d7eb38dc32ec",
	"co":            "ac6f6b4c-a4ec-4483-a04e-9f425a914573",
	"instrument":    "0abd7f04-5e28-425b-956f-94789d9bcbe2",
	"vocal":         "d92884b7-ee0c-46d5-96f3-918196ba8c5b",
	"executive":     "e0039285-6667-4f94-80d6-aa6520c6d359",
	"task":          "39867b3b-0f1e-40d5-b602-4f3936b7f486",
	"Spoken_vocals": "d3a36e62-a7c4-4eb9-839f-adfebe87ac12",
}

// urlLinkTypeIDs maps release-to-URL relationship names to their numeric IDs.
var urlLinkTypeIDs = map[string]int{
	"discography entry":      288,
	"license":                301,
	"get the music":          73,
	"purchase for mail-order": 79,
	"purchase for download":  74,
	"download for free":      75,
	"free streaming":         85,
	"streaming":              980,
	"crowdfunding page":      906,
	"show notes":             729,
	"other databases":        82,
}

// LinkTypeID returns the numeric relationship link type ID for a relationship
// from sourceType to targetType, or 0 and false when no mapping exists.
func LinkTypeID(targetType, sourceType string, rel domain.LinkType) (int, bool) {
	id, ok := linkTypeIDs[targetType][sourceType][rel]
	return id, ok
}

// AttributeGID returns the GID of a relationship attribute by name.
func AttributeGID(name string) (string, bool) {
	gid, ok := attributeGIDs[name]
	return gid, ok
}

// URLLinkTypeID returns the numeric ID of a release-to-URL relationship by
// its English name, e.g. "discography entry".
func URLLinkTypeID(name string) (int, bool) {
	id, ok := urlLinkTypeIDs[name]
	return id, ok
}
