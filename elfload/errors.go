// Package elfload drives the load of an ELF binary: it walks program
// headers, asks a caller-supplied Loader to reserve and fill memory for
// them, and replays the relocation table against whatever base address
// the loader chose. It never touches memory itself — that is the whole
// point, since the intended callers (kernels, hypervisors, unikernels)
// are the ones who get to decide what "memory" even means at load time.
package elfload

import (
	"errors"
	"fmt"
)

// Kind distinguishes the taxonomy of failures a caller might want to
// switch on, mirroring the small, closed error set most freestanding
// loaders need to report back to their own callers.
type Kind int

const (
	KindElfParser Kind = iota
	KindSymbolTableNotFound
	KindUnsupportedElfFormat
	KindUnsupportedElfVersion
	KindUnsupportedEndianness
	KindUnsupportedAbi
	KindUnsupportedElfType
	KindUnsupportedSectionData
	KindUnsupportedRelocationEntry
)

func (k Kind) String() string {
	switch k {
	case KindElfParser:
		return "elf parser error"
	case KindSymbolTableNotFound:
		return "no symbol table in the ELF file"
	case KindUnsupportedElfFormat:
		return "ELF format not supported"
	case KindUnsupportedElfVersion:
		return "ELF version not supported"
	case KindUnsupportedEndianness:
		return "ELF endianness not supported"
	case KindUnsupportedAbi:
		return "ELF ABI not supported"
	case KindUnsupportedElfType:
		return "ELF type not supported"
	case KindUnsupportedSectionData:
		return "can't handle this section data"
	case KindUnsupportedRelocationEntry:
		return "can't handle relocation entry"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error wraps a Kind with whatever detail is available, in the style of
// the rest of the repo: a stable sentinel for errors.Is, plus a wrapped
// message for humans.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, elfload.ErrUnsupportedRelocationEntry) style
// checks against the sentinels below.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func wrapError(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Sentinels for errors.Is comparisons against the Kind taxonomy, without
// needing to reach for the Kind field directly.
var (
	ErrElfParser                  = &Error{Kind: KindElfParser}
	ErrSymbolTableNotFound        = &Error{Kind: KindSymbolTableNotFound}
	ErrUnsupportedElfFormat       = &Error{Kind: KindUnsupportedElfFormat}
	ErrUnsupportedElfVersion      = &Error{Kind: KindUnsupportedElfVersion}
	ErrUnsupportedEndianness      = &Error{Kind: KindUnsupportedEndianness}
	ErrUnsupportedAbi             = &Error{Kind: KindUnsupportedAbi}
	ErrUnsupportedElfType         = &Error{Kind: KindUnsupportedElfType}
	ErrUnsupportedSectionData     = &Error{Kind: KindUnsupportedSectionData}
	ErrUnsupportedRelocationEntry = &Error{Kind: KindUnsupportedRelocationEntry}
)
