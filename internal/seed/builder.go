package seed

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/handiism/mb-seeder/internal/model"
)

// FormBuilder fills FormValues for the seeding forms.
//
// FormBuilder reports recoverable problems (such as a discnumber tag that is
// not a number) on its logger and never fails.
type FormBuilder struct {
	log zerolog.Logger
}

// NewFormBuilder creates a FormBuilder that writes diagnostics to logger.
func NewFormBuilder(logger zerolog.Logger) *FormBuilder {
	return &FormBuilder{log: logger}
}

// DefaultFormBuilder creates a FormBuilder that uses the global logger.
func DefaultFormBuilder() *FormBuilder {
	return NewFormBuilder(log.Logger)
}

// ClusterRelease adds the release editor fields for a cluster to values.
//
// Release-level fields come first, followed by the fields of each file in
// cluster order. For each file:
//   - the medium index comes from its discnumber tag (see NormalizeDisc),
//     folded over the files in order starting from a fresh DiscState
//   - the track index is its tracknumber tag minus one, or its position in
//     the cluster if tracknumber is not a number
//   - the track artist credit is only added if it differs from the
//     cluster's album artist, so the track inherits the release artist
//
// Example:
//
//	values := NewFormValues()
//	NewFormBuilder(logger).ClusterRelease(cluster, values)
//	// values: artist_credit.names.0.artist.name, name,
//	//         mediums.0.track.0.name, mediums.0.track.0.length, ...
func (b *FormBuilder) ClusterRelease(cluster *model.Cluster, values *FormValues) {
	albumArtist := cluster.Metadata.Get(model.TagAlbumArtist)

	values.Set(FieldReleaseArtist, albumArtist)
	values.Set(FieldReleaseName, cluster.Metadata.Get(model.TagAlbum))

	state := NewDiscState()
	for pos, file := range cluster.Files {
		md := file.Metadata

		track := pos
		if n, err := parseInt(md.Get(model.TagTrackNumber)); err == nil {
			track = n - 1
		}

		var medium int
		medium, state = b.mediumIndex(md, state)

		values.Set(TrackField(medium, track, TrackFieldName), md.Get(model.TagTitle))
		if artist := md.Get(model.TagArtist); artist != albumArtist {
			values.Set(TrackField(medium, track, TrackFieldArtist), artist)
		}
		values.Set(TrackField(medium, track, TrackFieldLength), FormatMillis(file.Length))
	}
}

// FileRecording adds the standalone recording fields for a file to values.
//
// The length is the file's "~length" display value (e.g. "4:19").
func (b *FormBuilder) FileRecording(file *model.File, values *FormValues) {
	md := file.Metadata

	values.Set(FieldRecordingName, md.Get(model.TagTitle))
	values.Set(FieldRecordingArtist, md.Get(model.TagArtist))
	values.Set(FieldRecordingLength, md.Get(model.TagLength))
}

// FileRelease adds the release editor fields for a single-track release made
// from one file to values.
//
// The release artist is the file's albumartist, or its artist if albumartist
// is empty. The release name is the album, or the title if album is empty.
// The only track is mediums.0.track.0 and always carries an artist credit.
func (b *FormBuilder) FileRelease(file *model.File, values *FormValues) {
	md := file.Metadata

	if artist := md.Get(model.TagAlbumArtist); artist != "" {
		values.Set(FieldReleaseArtist, artist)
	} else {
		values.Set(FieldReleaseArtist, md.Get(model.TagArtist))
	}
	if album := md.Get(model.TagAlbum); album != "" {
		values.Set(FieldReleaseName, album)
	} else {
		values.Set(FieldReleaseName, md.Get(model.TagTitle))
	}

	values.Set(TrackField(0, 0, TrackFieldName), md.Get(model.TagTitle))
	values.Set(TrackField(0, 0, TrackFieldArtist), md.Get(model.TagArtist))
	values.Set(TrackField(0, 0, TrackFieldLength), FormatMillis(file.Length))
}

// mediumIndex normalizes the discnumber of md, logging and absorbing parse
// failures.
func (b *FormBuilder) mediumIndex(md model.Metadata, state DiscState) (int, DiscState) {
	raw := DiscNumber(md)

	medium, next, err := NormalizeDisc(raw, state)
	if err != nil {
		b.log.Info().
			Str("file", md.Get(model.TagFilename)).
			Str("discnumber", raw).
			Err(err).
			Msg("could not get disc number, assuming 0")
		return 0, state
	}

	return medium, next
}
