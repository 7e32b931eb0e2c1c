// Package seed builds the data used to seed MusicBrainz web forms from
// tagged files.
//
// # Disc Numbers
//
// The release editor numbers media from 0. NormalizeDisc turns raw
// discnumber tags ("1", "2/2", "0", "-1/4", "boop") into medium indices by
// folding a DiscState over the files of a cluster:
//
//	state := seed.NewDiscState()
//	for _, raw := range raws {
//	    medium, state, err = seed.NormalizeDisc(raw, state)
//	}
//
// # Form Values
//
// FormValues is an ordered field name to value mapping. FormBuilder fills it
// for a cluster or a single file, using field names such as
// "mediums.0.track.3.name" (see TrackField).
//
// # Actions
//
// Action ties a menu entry to a form: it checks the selection, fills the
// values and names the server path to post to. Applications register the
// actions they offer:
//
//	registry := seed.NewRegistry()
//	if err := seed.RegisterDefaults(registry); err != nil {
//	    return err
//	}
//	for _, a := range registry.For(model.KindCluster) {
//	    fmt.Println(a.Name)
//	}
//
// # Pages
//
// Page renders the values as an HTML form that submits itself when opened in
// a browser.
package seed
