package elfload

import (
	"debug/elf"

	"github.com/n3kernel/elfloader/internal/math"
)

// LoadableHeaders is the set of a binary's PT_LOAD program headers,
// handed to Loader.Allocate so the caller can reserve address space for
// all of them before any single one is filled in. This stands in for
// the filtered iterator the original lazily produced: Go slices are
// already finite and safely re-walkable, so a thin named type over
// []elf.ProgHeader is all the generalization needs.
type LoadableHeaders struct {
	headers []elf.ProgHeader
}

// Headers returns the underlying program headers in file order.
func (l LoadableHeaders) Headers() []elf.ProgHeader {
	return l.headers
}

// Len reports how many loadable headers there are.
func (l LoadableHeaders) Len() int {
	return len(l.headers)
}

// Range calls fn for each loadable header, stopping early if fn returns
// false.
func (l LoadableHeaders) Range(fn func(elf.ProgHeader) bool) {
	for _, h := range l.headers {
		if !fn(h) {
			return
		}
	}
}

// RequiredAlignment returns the smallest address alignment that
// satisfies every loadable header at once: the least common multiple of
// their individual p_align values. A caller picking a load base for a
// PIE needs to satisfy all of them simultaneously, not just the largest.
func (l LoadableHeaders) RequiredAlignment() uint64 {
	align := uint64(1)
	for _, h := range l.headers {
		if h.Align == 0 {
			continue
		}
		align = uint64(math.LowestCommonMultiple(int(align), int(h.Align)))
	}
	return align
}

func loadableHeaders(f *elf.File) LoadableHeaders {
	var headers []elf.ProgHeader
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD {
			headers = append(headers, p.ProgHeader)
		}
	}
	return LoadableHeaders{headers: headers}
}
