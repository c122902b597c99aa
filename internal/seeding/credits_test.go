package seeding_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/seeding"
)

func TestCreditsText(t *testing.T) {
	actors := []domain.Actor{
		{Name: "Oliver Rohrbeck", RoleName: "Justus Jonas"},
		{Name: "Jens Wawrczeck", RoleName: "Peter Shaw"},
	}
	assert.Equal(t, "Justus Jonas - Oliver Rohrbeck\nPeter Shaw - Jens Wawrczeck",
		seeding.CreditsText(actors))
}

func TestCreditsJSON(t *testing.T) {
	crew := domain.Crew{Members: []domain.CrewMember{
		{Name: "Heikedine Körting", SourceJob: "Regie", LinkType: domain.LinkAudioDirector},
		{Name: "André Minninger", SourceJob: "Schnittassistenz", LinkType: domain.LinkEditor,
			Attributes: []domain.Attribute{{Type: "assistant"}}},
	}}
	actors := []domain.Actor{{Name: "Oliver Rohrbeck", RoleName: "Justus Jonas"}}

	data, err := seeding.CreditsJSON(crew, actors, "https://hoerspielforscher.de/kartei/europa/115545")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 4)

	assert.Equal(t, "Heikedine Körting", entries[0]["name"])
	assert.Equal(t, "artist", entries[0]["target_type"])
	assert.Equal(t, "Audio_director", entries[0]["link_type"])
	assert.Equal(t, float64(1186), entries[0]["link_type_id"])

	attrs := entries[1]["attributes"].([]any)
	require.Len(t, attrs, 1)
	attr := attrs[0].(map[string]any)
	assert.Equal(t, "assistant", attr["type"])
	assert.NotEmpty(t, attr["gid"])

	assert.Equal(t, "Oliver Rohrbeck", entries[2]["name"])
	assert.Equal(t, "Vocal", entries[2]["link_type"])
	assert.Equal(t, float64(149), entries[2]["link_type_id"])
	actorAttrs := entries[2]["attributes"].([]any)
	require.Len(t, actorAttrs, 1)
	actorAttr := actorAttrs[0].(map[string]any)
	assert.Equal(t, "Spoken_vocals", actorAttr["type"])
	assert.Equal(t, "Justus Jonas", actorAttr["credit"])

	assert.Equal(t, "https://hoerspielforscher.de/kartei/europa/115545", entries[3]["import_url"])
}
