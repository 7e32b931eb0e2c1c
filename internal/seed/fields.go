package seed

import "fmt"

// Release-level field names of the release editor.
// See https://musicbrainz.org/doc/Development/Release_Editor_Seeding.
const (
	FieldReleaseArtist = "artist_credit.names.0.artist.name"
	FieldReleaseName   = "name"
)

// Track field names, relative to "mediums.{m}.track.{i}.".
const (
	TrackFieldName   = "name"
	TrackFieldArtist = "artist_credit.names.0.name"
	TrackFieldLength = "length"
)

// Standalone recording field names (recording/create form).
const (
	FieldRecordingName   = "edit-recording.name"
	FieldRecordingArtist = "edit-recording.artist_credit.names.0.artist.name"
	FieldRecordingLength = "edit-recording.length"
)

// TrackField returns the field name for field of track i on medium m.
//
// Example:
//
//	TrackField(1, 4, TrackFieldName) // "mediums.1.track.4.name"
func TrackField(medium, track int, field string) string {
	return fmt.Sprintf("mediums.%d.track.%d.%s", medium, track, field)
}
