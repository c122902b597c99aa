package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/normalize"
)

func TestParseGermanDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.PartialDate
	}{
		{"full date", "3. Mai 2024", domain.PartialDate{Day: "3", Month: "5", Year: "2024"}},
		{"month and year", "Mai 2024", domain.PartialDate{Month: "5", Year: "2024"}},
		{"year only", "2024", domain.PartialDate{Year: "2024"}},
		{"dotted numeric", "17.03.2023", domain.PartialDate{Day: "17", Month: "3", Year: "2023"}},
		{"dotted without zeros", "3.5.2024", domain.PartialDate{Day: "3", Month: "5", Year: "2024"}},
		{"umlaut month", "1. März 1999", domain.PartialDate{Day: "1", Month: "3", Year: "1999"}},
		{"december", "24. Dezember 2001", domain.PartialDate{Day: "24", Month: "12", Year: "2001"}},
		{"not a date", "not a date", domain.PartialDate{}},
		{"empty", "", domain.PartialDate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := normalize.ParseGermanDate(tt.input)
			assert.Equal(t, tt.want, event.Date)
			assert.Equal(t, "DE", event.Country, "country is always set")
		})
	}
}

func TestParseReleaseDate_Estimated(t *testing.T) {
	event, estimated := normalize.ParseReleaseDate("ca. Mai 2024")
	assert.True(t, estimated)
	assert.Equal(t, domain.PartialDate{Month: "5", Year: "2024"}, event.Date)

	event, estimated = normalize.ParseReleaseDate("3. Mai 2024")
	assert.False(t, estimated)
	assert.Equal(t, domain.PartialDate{Day: "3", Month: "5", Year: "2024"}, event.Date)
}
