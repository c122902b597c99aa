package seeding

import "strings"

// editNoteSeparator visually separates the sections of a multi-part edit
// note.
const editNoteSeparator = "\n—\n"

// BuildEditNote joins the given sections into one edit note. Sections are
// trimmed, empty sections are dropped and of duplicate sections only the
// last occurrence is kept. A version footer is appended when version is
// set.
func BuildEditNote(version string, sections ...string) string {
	trimmed := make([]string, 0, len(sections))
	for _, section := range sections {
		if s := strings.TrimSpace(section); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	kept := make([]string, 0, len(trimmed))
	for i, section := range trimmed {
		last := true
		for _, later := range trimmed[i+1:] {
			if later == section {
				last = false
				break
			}
		}
		if last {
			kept = append(kept, section)
		}
	}

	if version != "" {
		kept = append(kept, "DramaSeed/"+version)
	}
	return strings.Join(kept, editNoteSeparator)
}
