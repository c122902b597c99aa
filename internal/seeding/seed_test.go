package seeding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/release"
	"github.com/dramaseed/dramaseed-server/internal/seeding"
)

func karteiSession() *domain.Session {
	return &domain.Session{
		ID:       "ses-test",
		Template: "kartei",
		Release: domain.ReleaseInfo{
			Title:        "Die drei ??? 2: Der Phantomsee",
			SeriesName:   "Die drei ???",
			EpisodeNr:    "2",
			EpisodeTitle: "Der Phantomsee",
			ReleaseURL:   "https://hoerspielforscher.de/kartei/europa/115545",
			Runtimes:     []string{"45", "42"},
			Medium:       domain.MediumInfo{Sides: 2, Format: "Cassette", Packaging: "Cassette Case"},
			Barcode:      "4006381333931",
			Event:        domain.ReleaseEvent{Date: domain.PartialDate{Day: "3", Month: "5", Year: "1982"}, Country: "DE"},
			DateState:    domain.DateConfirmed,
		},
		Artists: []domain.Row{
			{ID: "row-1", Kind: domain.RowArtist, Value: "Die drei ???", MBID: "mbid-series", Included: true, Position: 2},
			{ID: "row-2", Kind: domain.RowArtist, Value: "H. G. Francis", Included: true, Position: 1},
			{ID: "row-3", Kind: domain.RowArtist, Value: "Excluded Person", Included: false, Position: 3},
		},
		Labels: []domain.Row{
			{ID: "row-4", Kind: domain.RowLabel, Value: "Europa", CatalogNumber: "115 545", Included: true, Position: 1},
		},
		Additions: []domain.Row{
			{ID: "row-5", Kind: domain.RowAdditional, Label: release.RowLabelReleaseName, Value: "Die drei ??? 2: Der Phantomsee", Included: true, Position: 1},
		},
	}
}

func TestBuildSeed(t *testing.T) {
	seed := seeding.BuildSeed(karteiSession(), seeding.Options{Version: "1.0.0"})

	assert.Equal(t, "Die drei ??? 2: Der Phantomsee", seed.Name)
	assert.Equal(t, []string{"Other", "Audio drama"}, seed.Type)
	assert.Equal(t, "deu", seed.Language)
	assert.Equal(t, "Latn", seed.Script)
	assert.Equal(t, "Official", seed.Status)
	assert.Equal(t, "4006381333931", seed.Barcode)
	assert.Equal(t, "Cassette Case", seed.Packaging)

	require.Len(t, seed.Events, 1)
	assert.Equal(t, domain.PartialDate{Day: "3", Month: "5", Year: "1982"}, seed.Events[0].Date)

	require.Len(t, seed.Labels, 1)
	assert.Equal(t, "Europa", seed.Labels[0].Name)
	assert.Equal(t, "115 545", seed.Labels[0].CatalogNumber)

	require.Len(t, seed.Mediums, 1)
	require.Len(t, seed.Mediums[0].Track, 2)
	assert.Equal(t, "Der Phantomsee, Seite 1", seed.Mediums[0].Track[0].Name)
	assert.Equal(t, "45", seed.Mediums[0].Track[0].Length)

	require.Len(t, seed.URLs, 1)
	assert.Equal(t, "https://hoerspielforscher.de/kartei/europa/115545", seed.URLs[0].URL)
	assert.Equal(t, 288, seed.URLs[0].LinkType)

	assert.Equal(t,
		"Imported audio drama from https://hoerspielforscher.de/kartei/europa/115545\n—\nDramaSeed/1.0.0",
		seed.EditNote)
}

func TestBuildSeedArtistCreditOrderAndJoin(t *testing.T) {
	seed := seeding.BuildSeed(karteiSession(), seeding.Options{})

	names := seed.ArtistCredit.Names
	require.Len(t, names, 2)
	assert.Equal(t, "H. G. Francis", names[0].Name)
	assert.Equal(t, ", ", names[0].JoinPhrase)
	assert.Equal(t, "Die drei ???", names[1].Name)
	assert.Equal(t, "mbid-series", names[1].MBID)
	assert.Empty(t, names[1].JoinPhrase)
}

func TestBuildSeedEstimatedDateExcluded(t *testing.T) {
	session := karteiSession()
	session.Release.DateState = domain.DateEstimated

	seed := seeding.BuildSeed(session, seeding.Options{})
	assert.Empty(t, seed.Events)
}

func TestBuildSeedFallsBackToExtractedTitle(t *testing.T) {
	session := karteiSession()
	session.Additions = nil

	seed := seeding.BuildSeed(session, seeding.Options{})
	assert.Equal(t, "Die drei ??? 2: Der Phantomsee", seed.Name)
}

func TestBuildSeedShopURLs(t *testing.T) {
	tests := []struct {
		name     string
		medium   domain.MediumInfo
		discs    int
		linkType int
	}{
		{
			name:     "download release",
			discs:    2,
			linkType: 74,
		},
		{
			name:     "physical cd",
			medium:   domain.MediumInfo{Sides: 1, Format: "CD", Packaging: "Jewel case"},
			linkType: 79,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := karteiSession()
			session.Template = "shop"
			session.Release.Medium = tt.medium
			session.Release.Discs = tt.discs
			session.Release.Runtimes = nil

			seed := seeding.BuildSeed(session, seeding.Options{})
			require.Len(t, seed.URLs, 1)
			assert.Equal(t, tt.linkType, seed.URLs[0].LinkType)
		})
	}
}

func TestBuildSeedDigitalPackaging(t *testing.T) {
	session := karteiSession()
	session.Template = "shop"
	session.Release.Medium = domain.MediumInfo{}
	session.Release.Discs = 2
	session.Release.Runtimes = nil

	seed := seeding.BuildSeed(session, seeding.Options{})
	assert.Equal(t, "None", seed.Packaging)
	require.Len(t, seed.Mediums, 2)
	assert.Equal(t, "Digital Media", seed.Mediums[0].Format)
}
