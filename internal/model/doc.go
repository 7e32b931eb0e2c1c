// Package model defines the core data structures used throughout
// mb-seeder.
//
// # File
//
// File represents one tagged audio file:
//
//	f := model.NewFile(path, model.Metadata{"title": "Song"}, 180*time.Second)
//	fmt.Println(f.Metadata.Get(model.TagFilename))
//
// # Cluster
//
// Cluster represents a group of files that look like one release:
//
//	clusters := model.Clusterize(files)
//	fmt.Println(clusters[0].Title()) // "Artist - Album"
//
// # Targets
//
// Seeding actions apply to a Target, which is either a *Cluster or a *File.
// Use Kind or a type switch to tell them apart.
package model
