package release

import (
	"fmt"

	"github.com/dramaseed/dramaseed-server/internal/domain"
)

// GenerateMediums lays the known runtimes out over mediums. With an empty
// tracksPerMedium the default distribution is one track per side, i.e.
// len(runtimes)/sides mediums. Per-track lengths are attached only when the
// requested track total exactly matches the number of known runtimes.
// Track names count sequentially across all mediums; single-sided formats
// count chapters, double-sided ones count sides.
// Shop pages declare a disc count but no medium label; those releases are
// downloads and default to one-track digital mediums.
func GenerateMediums(info domain.ReleaseInfo, tracksPerMedium []int) []domain.SeedMedium {
	medium := info.Medium
	digital := false
	if medium.IsZero() {
		if info.Discs == 0 {
			return nil
		}
		digital = true
		medium = domain.MediumInfo{Sides: 1, Format: "Digital Media", Packaging: "None"}
		if len(tracksPerMedium) == 0 {
			for n := 0; n < info.Discs; n++ {
				tracksPerMedium = append(tracksPerMedium, 1)
			}
		}
	}
	if len(tracksPerMedium) == 0 {
		for i := 0; i < len(info.Runtimes)/medium.Sides; i++ {
			tracksPerMedium = append(tracksPerMedium, medium.Sides)
		}
	}

	given := 0
	for _, n := range tracksPerMedium {
		given += n
	}
	withLengths := given == len(info.Runtimes)

	unit := "Seite"
	if medium.Sides == 1 {
		unit = "Kapitel"
	}
	// Shop downloads zero-pad their chapter numbers; physical formats count
	// plainly ("Seite 1").
	numberFormat := "%s, %s %d"
	if digital {
		numberFormat = "%s, %s %02d"
	}

	total := 0
	mediums := make([]domain.SeedMedium, 0, len(tracksPerMedium))
	for _, count := range tracksPerMedium {
		tracks := make([]domain.SeedTrack, 0, count)
		for i := 0; i < count; i++ {
			name := fmt.Sprintf(numberFormat, info.EpisodeTitle, unit, total+1)
			if digital && info.Discs == 1 && count == 1 {
				// A one-disc download is the whole episode in a single
				// track, so the track carries the release title itself.
				name = fmt.Sprintf("%s: %s", info.EpisodeNr, info.EpisodeTitle)
			}
			track := domain.SeedTrack{
				Name:   name,
				Number: i + 1,
			}
			if withLengths {
				track.Length = info.Runtimes[total]
			}
			total++
			tracks = append(tracks, track)
		}
		mediums = append(mediums, domain.SeedMedium{Format: medium.Format, Track: tracks})
	}
	return mediums
}
