// Package simloader provides a recording implementation of
// elfload.Loader, used by package elfload's own tests and by the
// "elfload simulate" CLI command to show what a real Loader would be
// told to do without actually touching memory.
package simloader

import (
	"debug/elf"
	"fmt"

	"github.com/n3kernel/elfloader/arch"
	"github.com/n3kernel/elfloader/elfload"
)

// ActionKind distinguishes which Loader method produced an Action.
type ActionKind int

const (
	ActionAllocate ActionKind = iota
	ActionLoad
	ActionRelocate
	ActionTLS
	ActionReadOnly
)

func (k ActionKind) String() string {
	switch k {
	case ActionAllocate:
		return "Allocate"
	case ActionLoad:
		return "Load"
	case ActionRelocate:
		return "Relocate"
	case ActionTLS:
		return "Tls"
	case ActionReadOnly:
		return "ReadOnly"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a single call made against a Recorder, with only the fields
// relevant to its Kind populated.
type Action struct {
	Kind ActionKind

	// Allocate, Load (Flags: Allocate only)
	Base  uint64
	Size  int
	Flags elf.ProgFlag

	// Relocate: Base holds the address written, Value holds what was
	// written there.
	Value uint64

	// TLS
	TDataStart  uint64
	TDataLength uint64
	TotalSize   uint64
	Align       uint64
}

func (a Action) String() string {
	switch a.Kind {
	case ActionAllocate:
		return fmt.Sprintf("Allocate(0x%x, 0x%x, %s)", a.Base, a.Size, a.Flags)
	case ActionLoad:
		return fmt.Sprintf("Load(0x%x, 0x%x)", a.Base, a.Size)
	case ActionRelocate:
		return fmt.Sprintf("Relocate(0x%x, 0x%x)", a.Base, a.Value)
	case ActionTLS:
		return fmt.Sprintf("Tls(0x%x, 0x%x, 0x%x, 0x%x)", a.TDataStart, a.TDataLength, a.TotalSize, a.Align)
	case ActionReadOnly:
		return fmt.Sprintf("ReadOnly(0x%x, 0x%x)", a.Base, a.Size)
	default:
		return "unknown action"
	}
}

// Recorder implements elfload.Loader by appending an Action for every
// call instead of touching any memory. VBase is the address the
// simulated load is placed at, mirroring a real Loader's choice of base
// for a PIE.
type Recorder struct {
	VBase   uint64
	Actions []Action
}

// New returns a Recorder that will act as though the binary were placed
// at vbase.
func New(vbase uint64) *Recorder {
	return &Recorder{VBase: vbase, Actions: make([]Action, 0, 12)}
}

func (r *Recorder) Allocate(headers elfload.LoadableHeaders) error {
	headers.Range(func(h elf.ProgHeader) bool {
		r.Actions = append(r.Actions, Action{
			Kind:  ActionAllocate,
			Base:  h.Vaddr,
			Size:  int(h.Memsz),
			Flags: h.Flags,
		})
		return true
	})
	return nil
}

func (r *Recorder) Load(flags elf.ProgFlag, base uint64, region []byte) error {
	r.Actions = append(r.Actions, Action{
		Kind: ActionLoad,
		Base: base,
		Size: len(region),
	})
	return nil
}

// Relocate applies the small subset of relocation types a freestanding
// loader typically needs to understand for a statically-placed PIE:
// RELATIVE (add the load base to the addend) and NONE/GLOB_DAT (no-op,
// since there's no dynamic symbol resolution happening here). Anything
// else is reported as unsupported, the same way a loader that doesn't
// implement dynamic linking would refuse a relocation it can't satisfy.
func (r *Recorder) Relocate(entry elfload.RelocationEntry) error {
	addr := r.VBase + entry.Offset

	switch entry.Type.Arch {
	case arch.X86_64:
		switch arch.RelocationTypeX86_64(entry.Type.Kind) {
		case arch.R_AMD64_NONE, arch.R_AMD64_GLOB_DAT:
			return nil
		case arch.R_AMD64_RELATIVE:
			if !entry.HasAddend {
				return fmt.Errorf("R_AMD64_RELATIVE requires an addend: %w", elfload.ErrUnsupportedRelocationEntry)
			}
			value := uint64(int64(r.VBase) + entry.Addend)
			r.Actions = append(r.Actions, Action{Kind: ActionRelocate, Base: addr, Value: value})
			return nil
		}
	case arch.AArch64:
		switch arch.RelocationTypeAArch64(entry.Type.Kind) {
		case arch.R_AARCH64_NONE, arch.R_AARCH64_GLOB_DAT:
			return nil
		case arch.R_AARCH64_RELATIVE:
			if !entry.HasAddend {
				return fmt.Errorf("R_AARCH64_RELATIVE requires an addend: %w", elfload.ErrUnsupportedRelocationEntry)
			}
			value := uint64(int64(r.VBase) + entry.Addend)
			r.Actions = append(r.Actions, Action{Kind: ActionRelocate, Base: addr, Value: value})
			return nil
		}
	case arch.X86:
		switch arch.RelocationTypeX86(entry.Type.Kind) {
		case arch.R_386_NONE, arch.R_386_GLOB_DAT:
			return nil
		case arch.R_386_RELATIVE:
			// Unlike RISC-V/x86_64/AArch64, an x86 REL entry carries no
			// addend field at all; entry.Addend's zero value stands in
			// for it, so the result is just the load base.
			value := uint64(int64(r.VBase) + entry.Addend)
			r.Actions = append(r.Actions, Action{Kind: ActionRelocate, Base: addr, Value: value})
			return nil
		}
	case arch.RISCV:
		switch arch.RelocationTypeRISCV(entry.Type.Kind) {
		case arch.R_RISCV_NONE:
			return nil
		case arch.R_RISCV_RELATIVE:
			if !entry.HasAddend {
				return fmt.Errorf("R_RISCV_RELATIVE requires an addend: %w", elfload.ErrUnsupportedRelocationEntry)
			}
			value := uint64(int64(r.VBase) + entry.Addend)
			r.Actions = append(r.Actions, Action{Kind: ActionRelocate, Base: addr, Value: value})
			return nil
		}
	}

	return fmt.Errorf("%s relocation %s: %w", entry.Type.Arch, entry.Type, elfload.ErrUnsupportedRelocationEntry)
}

func (r *Recorder) TLS(tdataStart, tdataLength, totalSize, align uint64) error {
	r.Actions = append(r.Actions, Action{
		Kind:        ActionTLS,
		TDataStart:  tdataStart,
		TDataLength: tdataLength,
		TotalSize:   totalSize,
		Align:       align,
	})
	return nil
}

func (r *Recorder) MakeReadOnly(base uint64, size int) error {
	r.Actions = append(r.Actions, Action{Kind: ActionReadOnly, Base: base, Size: size})
	return nil
}

// Has reports whether an action matching want was recorded.
func (r *Recorder) Has(want Action) bool {
	for _, a := range r.Actions {
		if a == want {
			return true
		}
	}
	return false
}
