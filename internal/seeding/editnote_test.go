package seeding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dramaseed/dramaseed-server/internal/seeding"
)

func TestBuildEditNote(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		sections []string
		want     string
	}{
		{
			name:     "joins sections with separator",
			sections: []string{"Imported audio drama from https://example.com/x", "manually verified"},
			want:     "Imported audio drama from https://example.com/x\n—\nmanually verified",
		},
		{
			name:     "drops empty and whitespace sections",
			sections: []string{"", "  first  ", "\n", "second"},
			want:     "first\n—\nsecond",
		},
		{
			name:     "keeps only the last duplicate occurrence",
			sections: []string{"dupe", "middle", "dupe"},
			want:     "middle\n—\ndupe",
		},
		{
			name:     "appends version footer",
			version:  "1.4.0",
			sections: []string{"note"},
			want:     "note\n—\nDramaSeed/1.4.0",
		},
		{
			name: "empty input yields empty note",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seeding.BuildEditNote(tt.version, tt.sections...))
		})
	}
}
