package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/taxonomy"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label    string
		linkType domain.LinkType
		attr     string
	}{
		{"Regie", domain.LinkAudioDirector, ""},
		{"Regieassistenz", domain.LinkAudioDirector, "assistant"},
		{"Schnitt", domain.LinkEditor, ""},
		{"Schnittassistenz", domain.LinkEditor, "assistant"},
		{"Künstlerische Gesamtleitung", domain.LinkProducer, "executive"},
		{"Buch", domain.LinkWriter, ""},
		{"Nach dem Roman von", domain.LinkWriter, ""},
		{"Sounddesign", domain.LinkSoundEffects, ""},
		{"Redaktion", domain.LinkNothing, ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			m, ok := taxonomy.Lookup(tt.label)
			require.True(t, ok)
			assert.Equal(t, "artist", m.TargetType)
			assert.Equal(t, tt.linkType, m.LinkType)
			if tt.attr == "" {
				assert.Empty(t, m.Attributes)
			} else {
				require.Len(t, m.Attributes, 1)
				assert.Equal(t, tt.attr, m.Attributes[0].Type)
			}
		})
	}

	_, ok := taxonomy.Lookup("Catering")
	assert.False(t, ok)
}

func TestRolesOrdering(t *testing.T) {
	// Compound labels must come before their prefix so the keyword scan
	// prefers the longer match at the same position.
	index := make(map[string]int)
	for i, r := range taxonomy.Roles() {
		index[r.Label] = i
	}
	assert.Less(t, index["Schnittassistenz"], index["Schnitt"])
	assert.Less(t, index["Regieassistenz"], index["Regie"])
}

func TestSpokenVocals(t *testing.T) {
	m := taxonomy.SpokenVocals()
	assert.Equal(t, domain.LinkVocal, m.LinkType)
	require.Len(t, m.Attributes, 1)
	assert.Equal(t, "Spoken_vocals", m.Attributes[0].Type)
}

func TestIsNotAudioWork(t *testing.T) {
	assert.True(t, taxonomy.IsNotAudioWork("Nach dem Roman von"))
	assert.True(t, taxonomy.IsNotAudioWork("Vorlage"))
	assert.False(t, taxonomy.IsNotAudioWork("Regie"))
}

func TestIsBlacklisted(t *testing.T) {
	assert.True(t, taxonomy.IsBlacklisted("Studio EUROPA"))
	assert.False(t, taxonomy.IsBlacklisted("Hans Müller"))
}

func TestClassifyMedium(t *testing.T) {
	tests := []struct {
		label string
		want  domain.MediumInfo
	}{
		{"LP", domain.MediumInfo{Sides: 2, Format: `12" Vinyl`, Packaging: "Cardboard/Paper Sleeve"}},
		{"5-LP-Box", domain.MediumInfo{Sides: 2, Format: `12" Vinyl`, Packaging: "Box"}},
		{"MC", domain.MediumInfo{Sides: 2, Format: "Cassette", Packaging: "Cassette Case"}},
		{"CD", domain.MediumInfo{Sides: 1, Format: "CD", Packaging: "Jewel case"}},
		{"Audio-CD", domain.MediumInfo{Sides: 1, Format: "CD", Packaging: "Jewel case"}},
		{"Audio-Dateien", domain.MediumInfo{Sides: 1, Format: "Digital Media", Packaging: "None"}},
		{"Stream", domain.MediumInfo{Sides: 1, Format: "Digital Media", Packaging: "None"}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := taxonomy.ClassifyMedium(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := taxonomy.ClassifyMedium("Betamax")
	assert.False(t, ok)
}

func TestLinkTypeID(t *testing.T) {
	id, ok := taxonomy.LinkTypeID("release", "artist", domain.LinkAudioDirector)
	require.True(t, ok)
	assert.Equal(t, 1187, id)

	id, ok = taxonomy.LinkTypeID("recording", "artist", domain.LinkVocal)
	require.True(t, ok)
	assert.Equal(t, 149, id)

	id, ok = taxonomy.LinkTypeID("work", "artist", domain.LinkWriter)
	require.True(t, ok)
	assert.Equal(t, 167, id)

	_, ok = taxonomy.LinkTypeID("work", "artist", domain.LinkMix)
	assert.False(t, ok)
}

func TestAttributeGID(t *testing.T) {
	gid, ok := taxonomy.AttributeGID("Spoken_vocals")
	require.True(t, ok)
	assert.Equal(t, "d3a36e62-a7c4-4eb9-839f-adfebe87ac12", gid)

	_, ok = taxonomy.AttributeGID("orchestrator")
	assert.False(t, ok)
}

func TestURLLinkTypeID(t *testing.T) {
	id, ok := taxonomy.URLLinkTypeID("discography entry")
	require.True(t, ok)
	assert.Equal(t, 288, id)

	id, ok = taxonomy.URLLinkTypeID("purchase for download")
	require.True(t, ok)
	assert.Equal(t, 74, id)
}
