// Package arch holds the per-architecture relocation type catalogs used by
// the ELF load driver's relocation dispatcher.
package arch

import (
	"debug/elf"
	"errors"
	"fmt"
)

// Architecture identifies which relocation-number table a RelocationType
// belongs to.
type Architecture int

const (
	X86 Architecture = iota
	X86_64
	AArch64
	ARM32
	RISCV
)

func (a Architecture) String() string {
	switch a {
	case X86:
		return "x86"
	case X86_64:
		return "x86_64"
	case AArch64:
		return "aarch64"
	case ARM32:
		return "arm32"
	case RISCV:
		return "riscv"
	default:
		return fmt.Sprintf("Architecture(%d)", int(a))
	}
}

var errUnsupportedMachine = errors.New("unsupported ELF machine type")

// FromMachine maps an elf.Machine field to the Architecture used to
// interpret that binary's relocation entries. Only the machines spec.md §6
// lists as in scope are recognized; everything else is an error rather
// than silently falling back to Unknown, since an unsupported machine
// means the whole relocation table would be nonsense.
func FromMachine(m elf.Machine) (Architecture, error) {
	switch m {
	case elf.EM_386:
		return X86, nil
	case elf.EM_X86_64:
		return X86_64, nil
	case elf.EM_AARCH64:
		return AArch64, nil
	case elf.EM_ARM:
		return ARM32, nil
	case elf.EM_RISCV:
		return RISCV, nil
	default:
		return 0, fmt.Errorf("machine %s: %w", m, errUnsupportedMachine)
	}
}

// RelocationType is the two-level tagged reference to a relocation kind
// described in spec.md §3: an outer Architecture selects which table Kind
// is drawn from. Kind is architecture-specific and should be converted to
// the matching per-architecture type (RelocationTypeX86,
// RelocationTypeX86_64, ...) before being compared against that
// architecture's named constants.
type RelocationType struct {
	Arch Architecture
	Kind uint32
}

func (r RelocationType) String() string {
	switch r.Arch {
	case X86:
		return RelocationTypeX86(r.Kind).String()
	case X86_64:
		return RelocationTypeX86_64(r.Kind).String()
	case AArch64:
		return RelocationTypeAArch64(r.Kind).String()
	case ARM32:
		return RelocationTypeARM32(r.Kind).String()
	case RISCV:
		return RelocationTypeRISCV(r.Kind).String()
	default:
		return fmt.Sprintf("%s:%d", r.Arch, r.Kind)
	}
}

// New builds a RelocationType for the given architecture and raw r_info
// type field. It is a total function: unrecognized numbers still produce
// a valid RelocationType whose String reports it as Unknown(raw).
func New(a Architecture, raw uint32) RelocationType {
	return RelocationType{Arch: a, Kind: raw}
}
