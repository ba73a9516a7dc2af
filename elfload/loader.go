package elfload

import "debug/elf"

// Loader is implemented by callers to drive the actual memory operations
// an ELF load requires. Binary.Load calls Allocate once, up front, with
// every PT_LOAD header; then, walking the program headers in file order,
// Load once per PT_LOAD header to copy its bytes in and TLS once per
// PT_TLS segment; then Relocate once per relocation entry; and finally
// MakeReadOnly once per PT_GNU_RELRO segment.
//
// Implementations decide what "memory" means: a kernel might mean
// physical page frames it just allocated, a hypervisor might mean guest
// physical memory, a unikernel might mean a flat array. This package
// never allocates or writes memory itself.
type Loader interface {
	// Allocate reserves address space for every loadable header. It is
	// called exactly once, before any Load call.
	Allocate(headers LoadableHeaders) error

	// Load copies region into memory starting at base. The caller must
	// have already reserved this range via Allocate.
	Load(flags elf.ProgFlag, base uint64, region []byte) error

	// Relocate applies a single relocation entry.
	Relocate(entry RelocationEntry) error

	// TLS reports the location and shape of the initial TLS image, if
	// the binary has a PT_TLS segment.
	TLS(tdataStart, tdataLength, totalSize, align uint64) error

	// MakeReadOnly is called after all relocations are applied, once
	// per PT_GNU_RELRO segment, so the caller can seal that range.
	MakeReadOnly(base uint64, size int) error
}

// NopLoader supplies no-op TLS and MakeReadOnly implementations, mirroring
// the default trait methods the interface this is modeled on provides.
// Embed it in a Loader implementation that has no use for TLS or RELRO
// handling.
type NopLoader struct{}

func (NopLoader) TLS(_, _, _, _ uint64) error       { return nil }
func (NopLoader) MakeReadOnly(_ uint64, _ int) error { return nil }
