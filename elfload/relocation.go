package elfload

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"

	"github.com/n3kernel/elfloader/arch"
)

// RelocationEntry is a single decoded relocation record, whether it came
// from a REL or RELA section and regardless of word size: everything is
// normalized to 64-bit fields, matching how the driver and Loader
// implementations reason about addresses regardless of target class.
type RelocationEntry struct {
	Offset    uint64
	Type      arch.RelocationType
	Symbol    uint32
	Addend    int64
	HasAddend bool
}

// relocations decodes every entry in the section via decodeRelocations,
// which dispatches on both the section's REL/RELA shape and the file's
// word size, tagging every entry with the Architecture passed in rather
// than a hardcoded X86_64.
func relocations(f *elf.File, section *elf.Section, a arch.Architecture) ([]RelocationEntry, error) {
	if section.Entsize == 0 {
		return nil, newError(KindUnsupportedSectionData, fmt.Sprintf("section %q has zero entry size", section.Name))
	}

	numEntries := int(section.Size / section.Entsize)
	hasAddend := section.Type == elf.SHT_RELA

	return decodeRelocations(section.Open(), numEntries, hasAddend, f.Class, a, section.Name)
}

// relocationsFromDynamic decodes a relocation table reached through a
// DT_RELA/DT_REL virtual address rather than a section name, for
// binaries whose section header table is stripped and so cannot be
// found by name alone. vaddr/size/entsize come straight off the
// .dynamic segment's own tags.
func relocationsFromDynamic(f *elf.File, vaddr, size, entsize uint64, hasAddend bool, a arch.Architecture) ([]RelocationEntry, error) {
	if entsize == 0 {
		return nil, newError(KindUnsupportedSectionData, "dynamic relocation table has zero entry size")
	}

	data, err := segmentDataAt(f, vaddr, size)
	if err != nil {
		return nil, err
	}

	numEntries := int(size / entsize)
	return decodeRelocations(bytes.NewReader(data), numEntries, hasAddend, f.Class, a, "(dynamic)")
}

// segmentDataAt returns the size bytes of file content backing virtual
// address vaddr, found by locating the PT_LOAD segment that covers it.
// This is how a relocation table reached only via a DT_RELA/DT_REL
// virtual address (no section name available) gets turned into bytes.
func segmentDataAt(f *elf.File, vaddr, size uint64) ([]byte, error) {
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		if vaddr < p.Vaddr || vaddr+size > p.Vaddr+p.Filesz {
			continue
		}

		segOff := int64(vaddr - p.Vaddr)
		reader := io.NewSectionReader(p.Open().(io.ReaderAt), segOff, int64(size))
		data := make([]byte, size)
		if _, err := io.ReadFull(reader, data); err != nil {
			return nil, wrapError(KindElfParser, "failed to read dynamic relocation table", err)
		}
		return data, nil
	}

	return nil, newError(KindElfParser, fmt.Sprintf("no PT_LOAD segment covers address 0x%x", vaddr))
}

func decodeRelocations(reader io.Reader, numEntries int, hasAddend bool, class elf.Class, a arch.Architecture, label string) ([]RelocationEntry, error) {
	entries := make([]RelocationEntry, 0, numEntries)
	is32 := class == elf.ELFCLASS32

	for i := 0; i < numEntries; i++ {
		var (
			sym, typ uint32
			off      uint64
			addend   int64
			err      error
		)

		switch {
		case hasAddend && !is32:
			sym, typ, off, addend, err = readRela64(reader)
		case hasAddend && is32:
			sym, typ, off, addend, err = readRela32(reader)
		case !hasAddend && is32:
			sym, typ, off, err = readRel32(reader)
		default:
			sym, typ, off, err = readRel64(reader)
		}

		if err != nil {
			return nil, wrapError(KindElfParser, fmt.Sprintf("failed to read relocation entry %d in %s", i, label), err)
		}

		entries = append(entries, RelocationEntry{
			Offset:    off,
			Type:      arch.New(a, typ),
			Symbol:    sym,
			Addend:    addend,
			HasAddend: hasAddend,
		})
	}

	return entries, nil
}

func readRel64(r io.Reader) (sym, typ uint32, off uint64, err error) {
	var rel elf.Rel64
	if err := struc.UnpackWithOptions(r, &rel, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to unpack Rel64 entry: %w", err)
	}
	sym, typ = relInfo64(rel.Info)
	return sym, typ, rel.Off, nil
}

func readRela64(r io.Reader) (sym, typ uint32, off uint64, addend int64, err error) {
	var rel elf.Rela64
	if err := struc.UnpackWithOptions(r, &rel, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to unpack Rela64 entry: %w", err)
	}
	sym, typ = relInfo64(rel.Info)
	return sym, typ, rel.Off, rel.Addend, nil
}

func readRel32(r io.Reader) (sym, typ uint32, off uint64, err error) {
	var rel elf.Rel32
	if err := struc.UnpackWithOptions(r, &rel, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to unpack Rel32 entry: %w", err)
	}
	sym, typ = relInfo32(rel.Info)
	return sym, typ, uint64(rel.Off), nil
}

func readRela32(r io.Reader) (sym, typ uint32, off uint64, addend int64, err error) {
	var rel elf.Rela32
	if err := struc.UnpackWithOptions(r, &rel, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to unpack Rela32 entry: %w", err)
	}
	sym, typ = relInfo32(rel.Info)
	return sym, typ, uint64(rel.Off), int64(rel.Addend), nil
}

func relInfo64(info uint64) (sym, typ uint32) {
	return uint32(info >> 32), uint32(info & 0xffffffff)
}

func relInfo32(info uint32) (sym, typ uint32) {
	return info >> 8, info & 0xff
}
