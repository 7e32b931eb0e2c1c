package seed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/handiism/mb-seeder/internal/model"
)

var (
	// ErrWrongArity is returned when an action is given anything other than
	// exactly one target.
	ErrWrongArity = errors.New("exactly one object must be selected")

	// ErrWrongKind is returned when an action is given a target of a kind it
	// does not handle.
	ErrWrongKind = errors.New("selected object has the wrong kind")

	// ErrDuplicateAction is returned when registering an action ID twice.
	ErrDuplicateAction = errors.New("action already registered")

	// ErrUnknownAction is returned when looking up an unregistered action ID.
	ErrUnknownAction = errors.New("unknown action")
)

// RejectionError explains why an action cannot run on a selection.
type RejectionError struct {
	// Action is the ID of the rejecting action.
	Action string

	// Reason is ErrWrongArity or ErrWrongKind.
	Reason error

	// Count is the number of selected objects.
	Count int

	// Got is the kind of the selected object, when Count is 1.
	Got model.Kind

	// Want is the kind the action handles.
	Want model.Kind
}

func (e *RejectionError) Error() string {
	if errors.Is(e.Reason, ErrWrongArity) {
		return fmt.Sprintf("%s: %v (got %d)", e.Action, e.Reason, e.Count)
	}
	return fmt.Sprintf("%s: %v (got %s, want %s)", e.Action, e.Reason, e.Got, e.Want)
}

func (e *RejectionError) Unwrap() error {
	return e.Reason
}

// Action is a seeding action offered in the context menu of a cluster or a
// file.
//
// Each action knows which kind of object it applies to, which form it seeds
// (SubmitPath on the MusicBrainz server) and how to fill that form.
type Action struct {
	// ID is a stable identifier, e.g. "add-cluster-as-release".
	ID string

	// Name is the menu entry text. It is also used as the page title and the
	// submit button label.
	Name string

	// SubmitPath is the server path the form is posted to.
	SubmitPath string

	// Target is the kind of object the action applies to.
	Target model.Kind

	fill func(b *FormBuilder, target model.Target, values *FormValues)
}

// The actions known to mb-seeder. They are not available to any menu until
// registered, see RegisterDefaults.
var (
	AddClusterAsRelease = &Action{
		ID:         "add-cluster-as-release",
		Name:       "Add Cluster As Release...",
		SubmitPath: "/release/add",
		Target:     model.KindCluster,
		fill: func(b *FormBuilder, target model.Target, values *FormValues) {
			b.ClusterRelease(target.(*model.Cluster), values)
		},
	}

	AddFileAsRecording = &Action{
		ID:         "add-file-as-recording",
		Name:       "Add File As Standalone Recording...",
		SubmitPath: "/recording/create",
		Target:     model.KindFile,
		fill: func(b *FormBuilder, target model.Target, values *FormValues) {
			b.FileRecording(target.(*model.File), values)
		},
	}

	AddFileAsRelease = &Action{
		ID:         "add-file-as-release",
		Name:       "Add File As Release...",
		SubmitPath: "/release/add",
		Target:     model.KindFile,
		fill: func(b *FormBuilder, target model.Target, values *FormValues) {
			b.FileRelease(target.(*model.File), values)
		},
	}
)

// Check verifies that selection holds exactly one object of the kind the
// action handles, and returns it.
//
// Otherwise it returns a *RejectionError wrapping ErrWrongArity or
// ErrWrongKind.
func (a *Action) Check(selection []model.Target) (model.Target, error) {
	if len(selection) != 1 {
		return nil, &RejectionError{Action: a.ID, Reason: ErrWrongArity, Count: len(selection), Want: a.Target}
	}

	target := selection[0]
	if isNil(target) || target.Kind() != a.Target {
		got := model.Kind(-1)
		if target != nil {
			got = target.Kind()
		}
		return nil, &RejectionError{Action: a.ID, Reason: ErrWrongKind, Count: 1, Got: got, Want: a.Target}
	}

	return target, nil
}

// isNil reports whether t is nil or holds a nil pointer.
func isNil(t model.Target) bool {
	switch v := t.(type) {
	case *model.Cluster:
		return v == nil
	case *model.File:
		return v == nil
	}
	return t == nil
}

// FormValues checks selection and fills values with the action's form
// fields.
func (a *Action) FormValues(b *FormBuilder, selection []model.Target, values *FormValues) error {
	target, err := a.Check(selection)
	if err != nil {
		return err
	}

	a.fill(b, target, values)
	return nil
}

// Registry holds the actions offered for clusters and files, in registration
// order.
type Registry struct {
	actions []*Action
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an action.
//
// Returns ErrDuplicateAction if an action with the same ID is registered.
func (r *Registry) Register(a *Action) error {
	if _, err := r.Lookup(a.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.ID)
	}
	r.actions = append(r.actions, a)
	return nil
}

// Lookup returns the action with the given ID.
func (r *Registry) Lookup(id string) (*Action, error) {
	i := slices.IndexFunc(r.actions, func(a *Action) bool { return a.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}
	return r.actions[i], nil
}

// For returns the actions that apply to objects of kind k.
func (r *Registry) For(k model.Kind) []*Action {
	var out []*Action
	for _, a := range r.actions {
		if a.Target == k {
			out = append(out, a)
		}
	}
	return out
}

// All returns every registered action.
func (r *Registry) All() []*Action {
	return slices.Clone(r.actions)
}

// RegisterDefaults registers the cluster and file actions. Applications call
// it once while starting up.
func RegisterDefaults(r *Registry) error {
	for _, a := range []*Action{AddClusterAsRelease, AddFileAsRecording, AddFileAsRelease} {
		if err := r.Register(a); err != nil {
			return err
		}
	}
	return nil
}
