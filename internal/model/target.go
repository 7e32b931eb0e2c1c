package model

// Kind identifies what sort of object a Target is.
type Kind int

const (
	// KindCluster is a cluster of files (see Cluster).
	KindCluster Kind = iota

	// KindFile is a single file (see File).
	KindFile
)

// String returns "cluster" or "file".
func (k Kind) String() string {
	switch k {
	case KindCluster:
		return "cluster"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Target is an object a seeding action can be applied to.
//
// Target is a closed set: only *Cluster and *File implement it. Callers
// switch on the concrete type:
//
//	switch t := target.(type) {
//	case *Cluster:
//	    // t.Files ...
//	case *File:
//	    // t.Metadata ...
//	}
type Target interface {
	Kind() Kind
	isTarget()
}
