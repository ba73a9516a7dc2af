package elfload

import (
	"debug/elf"
	"fmt"
	"io"

	"github.com/n3kernel/elfloader/internal/align"
)

// relroPageSize is the page granularity RELRO sealing is rounded to.
// Segment boundaries from the ELF file rarely land on a page boundary,
// but a caller sealing memory read-only can only do so a whole page at
// a time.
const relroPageSize = 0x1000

// Load drives the load of the binary against loader: it checks that the
// binary's header fields are ones this package understands, asks loader
// to reserve space for every PT_LOAD header, copies each PT_LOAD
// segment's file contents in, reports any PT_TLS segment, replays the
// relocation table, and finally reports any PT_GNU_RELRO segment so the
// caller can seal it read-only. Phases run in that fixed order because
// later phases depend on earlier ones having placed bytes in memory.
func (b *Binary) Load(loader Loader) error {
	if err := b.isLoadable(); err != nil {
		return err
	}

	if err := loader.Allocate(loadableHeaders(b.File)); err != nil {
		return err
	}

	for _, p := range b.File.Progs {
		switch p.Type {
		case elf.PT_LOAD:
			data, err := io.ReadAll(p.Open())
			if err != nil {
				return wrapError(KindElfParser, "failed to read PT_LOAD segment contents", err)
			}
			if err := loader.Load(elf.ProgFlag(p.Flags), p.Vaddr, data); err != nil {
				return err
			}
		case elf.PT_TLS:
			if err := loader.TLS(p.Vaddr, p.Filesz, p.Memsz, p.Align); err != nil {
				return err
			}
		}
	}

	if err := b.maybeRelocate(loader); err != nil {
		return err
	}

	for _, p := range b.File.Progs {
		if p.Type == elf.PT_GNU_RELRO {
			start := align.Down(p.Vaddr, uint64(relroPageSize))
			end := align.Address(p.Vaddr+p.Memsz, uint64(relroPageSize))
			if err := loader.MakeReadOnly(start, int(end-start)); err != nil {
				return err
			}
		}
	}

	return nil
}

// maybeRelocate locates the relocation table, preferring a section-name
// lookup (.rela.dyn, falling back to .rel.dyn for targets that emit REL
// rather than RELA records) and falling back in turn to the virtual
// address recorded in the .dynamic segment itself (DT_RELA/DT_REL) for
// a binary whose section header table has been stripped, so .rela.dyn
// isn't there to look up by name even though the relocations still are.
// A binary with neither section nor dynamic tag has nothing to relocate.
func (b *Binary) maybeRelocate(loader Loader) error {
	entries, err := b.relocationEntries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := loader.Relocate(entry); err != nil {
			return fmt.Errorf("relocation at offset 0x%x: %w", entry.Offset, err)
		}
	}

	return nil
}

func (b *Binary) relocationEntries() ([]RelocationEntry, error) {
	if section := b.File.Section(".rela.dyn"); section != nil {
		return relocations(b.File, section, b.Arch)
	}
	if section := b.File.Section(".rel.dyn"); section != nil {
		return relocations(b.File, section, b.Arch)
	}

	if b.Dynamic == nil {
		return nil, nil
	}

	if b.Dynamic.Rela != 0 && b.Dynamic.RelaSize != 0 {
		entsize := uint64(24)
		if b.File.Class == elf.ELFCLASS32 {
			entsize = 12
		}
		return relocationsFromDynamic(b.File, b.Dynamic.Rela, b.Dynamic.RelaSize, entsize, true, b.Arch)
	}
	if b.Dynamic.Rel != 0 && b.Dynamic.RelSize != 0 {
		entsize := uint64(16)
		if b.File.Class == elf.ELFCLASS32 {
			entsize = 8
		}
		return relocationsFromDynamic(b.File, b.Dynamic.Rel, b.Dynamic.RelSize, entsize, false, b.Arch)
	}

	return nil, nil
}
