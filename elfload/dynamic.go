package elfload

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/lunixbochs/struc"
)

// DynamicFlags1 mirrors the DT_FLAGS_1 word found in a .dynamic segment.
// It wraps debug/elf's own DynFlag1 bit values rather than redeclaring
// them, since debug/elf already carries the full, correctly-numbered
// table (including DF_1_PIE, which is the one bit this loader actually
// branches on).
type DynamicFlags1 uint64

// Has reports whether every bit in want is set.
func (f DynamicFlags1) Has(want elf.DynFlag1) bool {
	return uint64(f)&uint64(want) == uint64(want)
}

func (f DynamicFlags1) String() string {
	return elf.DynFlag1(f).String()
}

// DynamicInfo is the subset of a .dynamic segment this loader cares
// about: enough to know whether the binary is a PIE, and where its
// relocation table lives when it isn't reachable by section name alone
// (stripped binaries, for instance, may lack .rela.dyn).
type DynamicInfo struct {
	Flags1   DynamicFlags1
	Rela     uint64
	RelaSize uint64
	Rel      uint64
	RelSize  uint64
}

// IsPIE reports whether the dynamic segment marks this object as a
// position-independent executable.
func (d *DynamicInfo) IsPIE() bool {
	return d != nil && d.Flags1.Has(elf.DF_1_PIE)
}

// parseDynamic walks a PT_DYNAMIC segment's entries looking for the tags
// this loader understands (DT_RELA/DT_RELASZ/DT_REL/DT_RELSZ/DT_FLAGS_1),
// matching the teacher's struc-based record-at-a-time decode used for
// relocation entries. Anything else is logged and skipped, same as a
// real dynamic linker does for tags it doesn't implement.
func parseDynamic(f *elf.File, prog *elf.Prog) (*DynamicInfo, error) {
	reader := prog.Open()
	info := &DynamicInfo{}

	entrySize := 16
	if f.Class == elf.ELFCLASS32 {
		entrySize = 8
	}
	numEntries := int(prog.Filesz) / entrySize

	for i := 0; i < numEntries; i++ {
		tag, val, err := readDynEntry(reader, f.Class)
		if err != nil {
			return nil, wrapError(KindElfParser, "failed to read dynamic entry", err)
		}

		switch elf.DynTag(tag) {
		case elf.DT_NULL:
			return info, nil
		case elf.DT_RELA:
			info.Rela = val
		case elf.DT_RELASZ:
			info.RelaSize = val
		case elf.DT_REL:
			info.Rel = val
		case elf.DT_RELSZ:
			info.RelSize = val
		case elf.DT_FLAGS_1:
			info.Flags1 = DynamicFlags1(val)
		case elf.DT_FLAGS:
			if f.Class == elf.ELFCLASS32 {
				info.Flags1 = DynamicFlags1(val)
			}
		default:
			slog.Debug("unsupported dynamic tag", "tag", elf.DynTag(tag), "value", fmt.Sprintf("0x%x", val))
		}
	}

	return info, nil
}

func readDynEntry(r io.Reader, class elf.Class) (tag int64, val uint64, err error) {
	if class == elf.ELFCLASS32 {
		var d elf.Dyn32
		if err := struc.UnpackWithOptions(r, &d, &struc.Options{Order: binary.LittleEndian}); err != nil {
			return 0, 0, fmt.Errorf("failed to unpack Dyn32 entry: %w", err)
		}
		return int64(d.Tag), uint64(d.Val), nil
	}

	var d elf.Dyn64
	if err := struc.UnpackWithOptions(r, &d, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return 0, 0, fmt.Errorf("failed to unpack Dyn64 entry: %w", err)
	}
	return d.Tag, d.Val, nil
}
