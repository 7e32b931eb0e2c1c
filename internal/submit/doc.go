// Package submit coordinates seeding: it loads tagged files, groups them
// into clusters and runs seeding actions on a selection.
//
// # Usage
//
//	settings, _ := config.Load(afero.NewOsFs(), config.DefaultPath())
//
//	mgr, err := submit.NewManager(settings, func(e submit.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err != nil {
//	    return err
//	}
//
//	lib, err := mgr.Load(ctx, []string{"/music/Abbey Road"})
//	if err != nil {
//	    return err
//	}
//
//	// Seeds the release editor and opens it in the browser
//	page, err := mgr.Run(ctx, seed.AddClusterAsRelease.ID, []model.Target{lib.Clusters[0]})
//
// # Progress Events
//
// The progress callback receives events with different levels:
//   - LevelInfo: General information
//   - LevelVerbose: Detailed progress (page paths, server URLs)
//   - LevelWarning: Files that could not be read
//   - LevelError: Actions that could not run
//   - LevelSuccess: Page opened in the browser
//
// # Concurrency
//
// Files are read concurrently, bounded by Settings.MaxConcurrentReads.
// Run calls are serialized: a Manager holds one set of form values, which is
// always cleared when a run ends.
package submit
