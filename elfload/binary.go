package elfload

import (
	"bytes"
	"debug/elf"
	"fmt"

	"github.com/n3kernel/elfloader/arch"
)

// Binary is a parsed, loadable ELF file. It wraps debug/elf's own parser
// (which already validates the file header and section/program header
// tables) and adds the pieces a freestanding loader needs on top: the
// decoded .dynamic segment, architecture-aware relocation decoding, and
// the five-phase Load driver.
type Binary struct {
	File    *elf.File
	Dynamic *DynamicInfo
	Arch    arch.Architecture
}

// New parses region as an ELF file and extracts its .dynamic segment, if
// it has one. It does not yet check whether the binary is loadable on
// any particular platform; call Load for that, since is-loadable
// checking and driving the load are one pass over the program headers
// in the original this is modeled on.
func New(region []byte) (*Binary, error) {
	f, err := elf.NewFile(bytes.NewReader(region))
	if err != nil {
		return nil, wrapError(KindElfParser, "failed to parse ELF file", err)
	}

	a, archErr := arch.FromMachine(f.Machine)
	if archErr != nil {
		return nil, wrapError(KindUnsupportedElfFormat, "unrecognized machine type", archErr)
	}

	var dynamic *DynamicInfo
	for _, p := range f.Progs {
		if p.Type == elf.PT_DYNAMIC {
			dynamic, err = parseDynamic(f, p)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	return &Binary{File: f, Dynamic: dynamic, Arch: a}, nil
}

// IsPIE reports whether the binary is a position-independent executable:
// it has a .dynamic segment with DF_1_PIE set in its DT_FLAGS_1/DT_FLAGS
// word.
func (b *Binary) IsPIE() bool {
	return b.Dynamic.IsPIE()
}

// EntryPoint returns the ELF entry point. This may be zero for a PIE,
// since the real entry point is base + EntryPoint once the loader has
// picked a base address.
func (b *Binary) EntryPoint() uint64 {
	return b.File.Entry
}

// ProgramHeaders returns every program header in file order.
func (b *Binary) ProgramHeaders() []elf.ProgHeader {
	headers := make([]elf.ProgHeader, len(b.File.Progs))
	for i, p := range b.File.Progs {
		headers[i] = p.ProgHeader
	}
	return headers
}

// LoadableHeaders returns the binary's PT_LOAD program headers, the same
// set a Load call hands to the Loader's Allocate method. Exposed so a
// caller can ask a binary's required base-address alignment (via
// LoadableHeaders.RequiredAlignment) before picking a load address,
// without needing to drive an actual Load first.
func (b *Binary) LoadableHeaders() LoadableHeaders {
	return loadableHeaders(b.File)
}

// Interpreter returns the dynamic loader path recorded in .interp, or
// ("", false) for a statically-linked binary.
func (b *Binary) Interpreter() (string, bool) {
	section := b.File.Section(".interp")
	if section == nil {
		return "", false
	}

	data, err := section.Data()
	if err != nil || len(data) < 2 {
		return "", false
	}

	// .interp is a NUL-terminated string; drop the trailing NUL.
	return string(bytes.TrimRight(data, "\x00")), true
}

// SymbolName returns sym's name, or "unknown" if it is empty.
func (b *Binary) SymbolName(sym elf.Symbol) string {
	if sym.Name == "" {
		return "unknown"
	}
	return sym.Name
}

// ForEachSymbol calls fn for every entry in the ELF symbol table.
func (b *Binary) ForEachSymbol(fn func(elf.Symbol)) error {
	symbols, err := b.File.Symbols()
	if err != nil {
		if err == elf.ErrNoSymbols {
			return newError(KindSymbolTableNotFound, "")
		}
		return wrapError(KindElfParser, "failed to read symbol table", err)
	}

	for _, s := range symbols {
		fn(s)
	}
	return nil
}

// isLoadable checks the handful of header fields this loader actually
// supports, matching the checks a freestanding loader needs before it
// can trust the rest of the file: known class, current version, little
// endian, a recognized OS ABI, and an executable or shared-object type.
func (b *Binary) isLoadable() error {
	h := b.File.FileHeader

	if h.Class != elf.ELFCLASS32 && h.Class != elf.ELFCLASS64 {
		return newError(KindUnsupportedElfFormat, h.Class.String())
	}
	if h.Version != elf.EV_CURRENT {
		return newError(KindUnsupportedElfVersion, h.Version.String())
	}
	if h.Data != elf.ELFDATA2LSB {
		return newError(KindUnsupportedEndianness, h.Data.String())
	}
	if h.OSABI != elf.ELFOSABI_NONE && h.OSABI != elf.ELFOSABI_LINUX {
		return newError(KindUnsupportedAbi, h.OSABI.String())
	}
	if h.Type != elf.ET_EXEC && h.Type != elf.ET_DYN {
		return newError(KindUnsupportedElfType, fmt.Sprintf("%s", h.Type))
	}

	return nil
}
