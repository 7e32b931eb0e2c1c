package seed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/mb-seeder/internal/model"
)

// ErrUnparseableNumber is returned (wrapped in a *NumberError) when a numeric
// tag such as discnumber or tracknumber is not a base-10 integer.
var ErrUnparseableNumber = errors.New("unparseable numeric tag")

// NumberError records a numeric tag value that could not be parsed.
type NumberError struct {
	// Tag is the tag name, e.g. "discnumber".
	Tag string

	// Value is the raw tag value.
	Value string

	// Err is the underlying strconv error.
	Err error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Tag, e.Value, e.Err)
}

// Unwrap lets errors.Is match ErrUnparseableNumber and the strconv error.
func (e *NumberError) Unwrap() []error {
	return []error{ErrUnparseableNumber, e.Err}
}

// DiscState carries the disc number shift through a sequence of files.
//
// Medium indices in the release editor start at 0, while disc numbers in
// tags usually start at 1. Some files are numbered from 0 or even negative
// numbers though, so the shift grows whenever such a disc number is seen.
//
// A DiscState is a plain value: NormalizeDisc returns the next state instead
// of mutating its argument, so a cluster is processed as a fold over its
// files. Shift never decreases along a fold.
type DiscState struct {
	Shift int
}

// NewDiscState returns the state to start a cluster with (shift -1, which
// maps disc 1 to medium 0).
func NewDiscState() DiscState {
	return DiscState{Shift: -1}
}

// DiscNumber returns the raw discnumber tag of md, or "1" if it is absent.
func DiscNumber(md model.Metadata) string {
	return md.GetDefault(model.TagDiscNumber, "1")
}

// NormalizeDisc maps a raw discnumber tag value to a zero-based medium index.
//
// Steps:
//  1. Anything after the first "/" (the total number of discs) is dropped
//  2. The rest is parsed as a 32-bit base-10 integer m
//  3. If m <= 0, the shift is raised to at least -m
//  4. The result is m plus the shift
//
// If the value cannot be parsed, NormalizeDisc returns 0, the unchanged state
// and a *NumberError. Callers are expected to log the error and carry on.
//
// Indices returned before the shift grows are not corrected afterwards:
// "1" followed by "0" yields 0 and then 0, so two discs share medium 0.
//
// Example:
//
//	s := NewDiscState()
//	m, s, _ := NormalizeDisc("-2/2", s) // m == 0, s.Shift == 2
//	m, s, _ = NormalizeDisc("-1/4", s)  // m == 1
//	m, s, _ = NormalizeDisc("1/4", s)   // m == 3
func NormalizeDisc(raw string, state DiscState) (int, DiscState, error) {
	number, _, _ := strings.Cut(raw, "/")

	m, err := parseInt(number)
	if err != nil {
		return 0, state, &NumberError{Tag: model.TagDiscNumber, Value: raw, Err: err}
	}

	if m <= 0 {
		state.Shift = max(state.Shift, -m)
	}

	return m + state.Shift, state, nil
}

// NormalizeDiscs folds NormalizeDisc over a sequence of raw values, starting
// from a fresh state. It returns the medium index for each value, the final
// state, and the errors for the values that could not be parsed (with nil
// entries for those that could).
func NormalizeDiscs(raws []string) ([]int, DiscState, []error) {
	state := NewDiscState()
	media := make([]int, len(raws))
	errs := make([]error, len(raws))

	for i, raw := range raws {
		media[i], state, errs[i] = NormalizeDisc(raw, state)
	}

	return media, state, errs
}

// parseInt parses a base-10 integer, ignoring surrounding whitespace.
//
// Values must fit in 32 bits, so that negating one and adding a shift to it
// cannot overflow.
func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
