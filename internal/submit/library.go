package submit

import (
	"errors"
	"fmt"

	"github.com/handiism/mb-seeder/internal/model"
)

// ErrNoSuchTarget is returned when a selection index is out of range.
var ErrNoSuchTarget = errors.New("no such cluster or file")

// Library is the result of Load: the files read and the clusters they form.
type Library struct {
	Files    []*model.File
	Clusters []*model.Cluster
}

// Target returns the cluster or file at index (counting from 0) among the
// targets of kind k.
func (l *Library) Target(k model.Kind, index int) (model.Target, error) {
	switch k {
	case model.KindCluster:
		if index >= 0 && index < len(l.Clusters) {
			return l.Clusters[index], nil
		}
		return nil, fmt.Errorf("%w: cluster %d of %d", ErrNoSuchTarget, index+1, len(l.Clusters))
	case model.KindFile:
		if index >= 0 && index < len(l.Files) {
			return l.Files[index], nil
		}
		return nil, fmt.Errorf("%w: file %d of %d", ErrNoSuchTarget, index+1, len(l.Files))
	}
	return nil, fmt.Errorf("%w: kind %s", ErrNoSuchTarget, k)
}

// Label returns a short human readable name for target: the cluster title,
// or the file name without extension.
func Label(target model.Target) string {
	switch t := target.(type) {
	case *model.Cluster:
		return t.Title()
	case *model.File:
		return t.Metadata.Get(model.TagFilename)
	}
	return "[unknown]"
}
