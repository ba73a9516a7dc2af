package elfload

import "encoding/binary"

// loadSpec describes one PT_LOAD segment for the generalized scenario
// builders below: vaddr/flags are reported to a Loader's
// Allocate/Load calls exactly as given, independent of file offset
// (the builder packs segment data back to back in file order, the way
// a real linker lays out a binary with vaddr != offset).
type loadSpec struct {
	vaddr, filesz, memsz uint64
	flags                uint32
	data                 []byte
}

// relaSpec describes one Elf64_Rela entry for buildELF64's .rela.dyn
// section.
type relaSpec struct {
	offset    uint64
	relocType uint32
	addend    int64
}

// relSpec describes one Elf32_Rel entry (no addend field) for
// buildELF32's .rel.dyn section.
type relSpec struct {
	offset    uint32
	relocType uint32
}

// tlsSpec describes an optional PT_TLS segment for buildELF64.
type tlsSpec struct {
	vaddr, align uint64
	tdata        []byte
	tbssSize     uint64
}

// buildELF64 assembles a minimal, valid little-endian ELF64 file: one
// PT_LOAD segment per entry in loads, an optional PIE PT_DYNAMIC
// segment carrying relas as a .rela.dyn section, and an optional
// PT_TLS segment. Used to reproduce the named end-to-end scenarios
// without a checked-in binary fixture.
func buildELF64(machine uint16, entry uint64, loads []loadSpec, relas []relaSpec, tls *tlsSpec) []byte {
	const (
		ehdrSize = 64
		phdrSize = 56
		shdrSize = 64
	)

	hasDynamic := len(relas) > 0
	numProgs := len(loads)
	if hasDynamic {
		numProgs++
	}
	if tls != nil {
		numProgs++
	}

	phoff := ehdrSize
	cursor := phoff + phdrSize*numProgs

	loadOffsets := make([]int, len(loads))
	for i, l := range loads {
		loadOffsets[i] = cursor
		cursor += int(l.filesz)
	}

	var dynOff, relaOff, dynSize, relaSize int
	if hasDynamic {
		dynOff = cursor
		dynSize = 16 * 4 // DT_FLAGS_1, DT_RELA, DT_RELASZ, DT_NULL
		cursor += dynSize
		relaOff = cursor
		relaSize = 24 * len(relas)
		cursor += relaSize
	}

	var tlsDataOff int
	if tls != nil {
		tlsDataOff = cursor
		cursor += len(tls.tdata)
	}

	shstrtab := []byte{0}
	var dynNameOff, relaNameOff int
	if hasDynamic {
		dynNameOff = len(shstrtab)
		shstrtab = append(shstrtab, []byte(".dynamic\x00")...)
		relaNameOff = len(shstrtab)
		shstrtab = append(shstrtab, []byte(".rela.dyn\x00")...)
	}
	shstrNameOff := len(shstrtab)
	shstrtab = append(shstrtab, []byte(".shstrtab\x00")...)

	shstrOff := cursor
	cursor += len(shstrtab)

	shoff := cursor
	numSections := 2 // NULL, .shstrtab
	if hasDynamic {
		numSections += 2 // .dynamic, .rela.dyn
	}
	fileSize := shoff + shdrSize*numSections

	buf := make([]byte, fileSize)
	le := binary.LittleEndian

	copy(buf[0:4], []byte{0x7f, 'E', 'L', 'F'})
	buf[4] = 2 // ELFCLASS64
	buf[5] = 1 // ELFDATA2LSB
	buf[6] = 1 // EV_CURRENT
	buf[7] = 0 // ELFOSABI_NONE

	elfType := uint16(2) // ET_EXEC
	if hasDynamic {
		elfType = 3 // ET_DYN
	}
	le.PutUint16(buf[16:], elfType)
	le.PutUint16(buf[18:], machine)
	le.PutUint32(buf[20:], 1) // e_version
	le.PutUint64(buf[24:], entry)
	le.PutUint64(buf[32:], uint64(phoff))
	le.PutUint64(buf[40:], uint64(shoff))
	le.PutUint16(buf[52:], ehdrSize)
	le.PutUint16(buf[54:], phdrSize)
	le.PutUint16(buf[56:], uint16(numProgs))
	le.PutUint16(buf[58:], shdrSize)
	le.PutUint16(buf[60:], uint16(numSections))
	le.PutUint16(buf[62:], uint16(numSections-1)) // .shstrtab is always last

	writePhdr := func(idx int, typ, flags uint32, offset, vaddr, filesz, memsz, align uint64) {
		o := phoff + idx*phdrSize
		le.PutUint32(buf[o:], typ)
		le.PutUint32(buf[o+4:], flags)
		le.PutUint64(buf[o+8:], offset)
		le.PutUint64(buf[o+16:], vaddr)
		le.PutUint64(buf[o+24:], vaddr) // paddr
		le.PutUint64(buf[o+32:], filesz)
		le.PutUint64(buf[o+40:], memsz)
		le.PutUint64(buf[o+48:], align)
	}

	idx := 0
	for i, l := range loads {
		writePhdr(idx, 1 /* PT_LOAD */, l.flags, uint64(loadOffsets[i]), l.vaddr, l.filesz, l.memsz, 0x1000)
		idx++
	}
	if hasDynamic {
		writePhdr(idx, 2 /* PT_DYNAMIC */, 6, uint64(dynOff), uint64(dynOff), uint64(dynSize), uint64(dynSize), 8)
		idx++
	}
	if tls != nil {
		writePhdr(idx, 7 /* PT_TLS */, 4, uint64(tlsDataOff), tls.vaddr, uint64(len(tls.tdata)), uint64(len(tls.tdata))+tls.tbssSize, tls.align)
		idx++
	}

	for i, l := range loads {
		copy(buf[loadOffsets[i]:], l.data)
	}

	if hasDynamic {
		writeDyn := func(i int, tag int64, val uint64) {
			o := dynOff + i*16
			le.PutUint64(buf[o:], uint64(tag))
			le.PutUint64(buf[o+8:], val)
		}
		const dtFlags1 = 0x6ffffffb
		const dfPIE = 0x08000000
		writeDyn(0, dtFlags1, dfPIE)
		writeDyn(1, 7, uint64(relaOff))  // DT_RELA
		writeDyn(2, 8, uint64(relaSize)) // DT_RELASZ
		writeDyn(3, 0, 0)                // DT_NULL

		for i, r := range relas {
			o := relaOff + i*24
			le.PutUint64(buf[o:], r.offset)
			le.PutUint64(buf[o+8:], uint64(r.relocType)) // sym=0
			le.PutUint64(buf[o+16:], uint64(r.addend))
		}
	}

	if tls != nil {
		copy(buf[tlsDataOff:], tls.tdata)
	}

	copy(buf[shstrOff:], shstrtab)

	writeShdr := func(idx int, name, typ uint32, flags, addr, offset, size uint64, link, info uint32, addralign, entsize uint64) {
		o := shoff + idx*shdrSize
		le.PutUint32(buf[o:], name)
		le.PutUint32(buf[o+4:], typ)
		le.PutUint64(buf[o+8:], flags)
		le.PutUint64(buf[o+16:], addr)
		le.PutUint64(buf[o+24:], offset)
		le.PutUint64(buf[o+32:], size)
		le.PutUint32(buf[o+40:], link)
		le.PutUint32(buf[o+44:], info)
		le.PutUint64(buf[o+48:], addralign)
		le.PutUint64(buf[o+56:], entsize)
	}

	sidx := 0
	writeShdr(sidx, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0) // SHT_NULL
	sidx++
	if hasDynamic {
		writeShdr(sidx, uint32(dynNameOff), 6, 3, 0, uint64(dynOff), uint64(dynSize), 0, 0, 8, 16)
		sidx++
		writeShdr(sidx, uint32(relaNameOff), 4, 2, 0, uint64(relaOff), uint64(relaSize), 0, 0, 8, 24)
		sidx++
	}
	writeShdr(sidx, uint32(shstrNameOff), 3, 0, 0, uint64(shstrOff), uint64(len(shstrtab)), 0, 0, 1, 0)

	return buf
}

// buildELF32 assembles a minimal, valid little-endian ELF32 file: one
// PT_LOAD segment per entry in loads and a PIE PT_DYNAMIC segment
// carrying rels as a .rel.dyn section (REL, not RELA: no addend field
// at all, matching a real 32-bit x86 binary).
func buildELF32(machine uint16, entry uint32, loads []loadSpec, rels []relSpec) []byte {
	const (
		ehdrSize = 52
		phdrSize = 32
		shdrSize = 40
	)

	numProgs := len(loads) + 1 // + PT_DYNAMIC

	phoff := ehdrSize
	cursor := phoff + phdrSize*numProgs

	loadOffsets := make([]int, len(loads))
	for i, l := range loads {
		loadOffsets[i] = cursor
		cursor += int(l.filesz)
	}

	dynOff := cursor
	dynSize := 8 * 4 // DT_FLAGS_1, DT_REL, DT_RELSZ, DT_NULL
	cursor += dynSize
	relOff := cursor
	relSize := 8 * len(rels)
	cursor += relSize

	shstrtab := []byte{0}
	dynNameOff := len(shstrtab)
	shstrtab = append(shstrtab, []byte(".dynamic\x00")...)
	relNameOff := len(shstrtab)
	shstrtab = append(shstrtab, []byte(".rel.dyn\x00")...)
	shstrNameOff := len(shstrtab)
	shstrtab = append(shstrtab, []byte(".shstrtab\x00")...)

	shstrOff := cursor
	cursor += len(shstrtab)

	shoff := cursor
	numSections := 4 // NULL, .dynamic, .rel.dyn, .shstrtab
	fileSize := shoff + shdrSize*numSections

	buf := make([]byte, fileSize)
	le := binary.LittleEndian

	copy(buf[0:4], []byte{0x7f, 'E', 'L', 'F'})
	buf[4] = 1 // ELFCLASS32
	buf[5] = 1 // ELFDATA2LSB
	buf[6] = 1 // EV_CURRENT
	buf[7] = 0 // ELFOSABI_NONE

	le.PutUint16(buf[16:], 3) // e_type = ET_DYN
	le.PutUint16(buf[18:], machine)
	le.PutUint32(buf[20:], 1) // e_version
	le.PutUint32(buf[24:], entry)
	le.PutUint32(buf[28:], uint32(phoff))
	le.PutUint32(buf[32:], uint32(shoff))
	le.PutUint16(buf[40:], ehdrSize)
	le.PutUint16(buf[42:], phdrSize)
	le.PutUint16(buf[44:], uint16(numProgs))
	le.PutUint16(buf[46:], shdrSize)
	le.PutUint16(buf[48:], uint16(numSections))
	le.PutUint16(buf[50:], uint16(numSections-1))

	writePhdr := func(idx int, typ, flags, offset, vaddr, filesz, memsz, align uint32) {
		o := phoff + idx*phdrSize
		le.PutUint32(buf[o:], typ)
		le.PutUint32(buf[o+4:], offset)
		le.PutUint32(buf[o+8:], vaddr)
		le.PutUint32(buf[o+12:], vaddr) // paddr
		le.PutUint32(buf[o+16:], filesz)
		le.PutUint32(buf[o+20:], memsz)
		le.PutUint32(buf[o+24:], flags)
		le.PutUint32(buf[o+28:], align)
	}

	idx := 0
	for i, l := range loads {
		writePhdr(idx, 1, l.flags, uint32(loadOffsets[i]), uint32(l.vaddr), uint32(l.filesz), uint32(l.memsz), 0x1000)
		idx++
	}
	writePhdr(idx, 2, 6, uint32(dynOff), uint32(dynOff), uint32(dynSize), uint32(dynSize), 4)

	for i, l := range loads {
		copy(buf[loadOffsets[i]:], l.data)
	}

	writeDyn := func(i int, tag, val uint32) {
		o := dynOff + i*8
		le.PutUint32(buf[o:], tag)
		le.PutUint32(buf[o+4:], val)
	}
	const dtFlags1 = 0x6ffffffb
	const dfPIE = 0x08000000
	writeDyn(0, dtFlags1, dfPIE)
	writeDyn(1, 17, uint32(relOff))  // DT_REL
	writeDyn(2, 18, uint32(relSize)) // DT_RELSZ
	writeDyn(3, 0, 0)                // DT_NULL

	for i, r := range rels {
		o := relOff + i*8
		le.PutUint32(buf[o:], r.offset)
		le.PutUint32(buf[o+4:], r.relocType) // sym=0, info = (sym<<8)|type
	}

	copy(buf[shstrOff:], shstrtab)

	writeShdr := func(idx int, name, typ, flags, addr, offset, size, link, info, addralign, entsize uint32) {
		o := shoff + idx*shdrSize
		le.PutUint32(buf[o:], name)
		le.PutUint32(buf[o+4:], typ)
		le.PutUint32(buf[o+8:], flags)
		le.PutUint32(buf[o+12:], addr)
		le.PutUint32(buf[o+16:], offset)
		le.PutUint32(buf[o+20:], size)
		le.PutUint32(buf[o+24:], link)
		le.PutUint32(buf[o+28:], info)
		le.PutUint32(buf[o+32:], addralign)
		le.PutUint32(buf[o+36:], entsize)
	}

	writeShdr(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	writeShdr(1, uint32(dynNameOff), 6, 3, 0, uint32(dynOff), uint32(dynSize), 0, 0, 4, 8)
	writeShdr(2, uint32(relNameOff), 9, 2, 0, uint32(relOff), uint32(relSize), 0, 0, 4, 8)
	writeShdr(3, uint32(shstrNameOff), 3, 0, 0, uint32(shstrOff), uint32(len(shstrtab)), 0, 0, 1, 0)

	return buf
}

const (
	emX8664   = 62
	emAArch64 = 183
	emRISCV   = 243
	em386     = 3
)

// scenarioX8664PIE reproduces the x86_64 PIE scenario: two PT_LOAD
// segments and two R_X86_64_RELATIVE entries.
func scenarioX8664PIE() []byte {
	return buildELF64(emX8664, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x888, memsz: 0x888, flags: 5, data: make([]byte, 0x888)},
			{vaddr: 0x200db8, filesz: 0x258, memsz: 0x260, flags: 6, data: make([]byte, 0x258)},
		},
		[]relaSpec{
			{offset: 0x200db8, relocType: 8, addend: 0x640},
			{offset: 0x200dc0, relocType: 8, addend: 0x600},
		},
		nil,
	)
}

// scenarioAArch64PIE reproduces the AArch64 PIE scenario: two PT_LOAD
// segments, four R_AARCH64_RELATIVE entries, and one R_AARCH64_GLOB_DAT
// entry that a Loader ignores.
func scenarioAArch64PIE() []byte {
	return buildELF64(emAArch64, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x8cc, memsz: 0x8cc, flags: 5, data: make([]byte, 0x8cc)},
			{vaddr: 0x10d90, filesz: 0x280, memsz: 0x288, flags: 6, data: make([]byte, 0x280)},
		},
		[]relaSpec{
			{offset: 0x10d90, relocType: 1027, addend: 0x750},
			{offset: 0x10d98, relocType: 1027, addend: 0x700},
			{offset: 0x10ff0, relocType: 1027, addend: 0x754},
			{offset: 0x11008, relocType: 1027, addend: 0x11008},
			{offset: 0x10fe8, relocType: 1025, addend: 0}, // R_AARCH64_GLOB_DAT, ignored
		},
		nil,
	)
}

// scenarioRISCVPIE reproduces the RISC-V PIE scenario: two PT_LOAD
// segments and four R_RISCV_RELATIVE entries.
func scenarioRISCVPIE() []byte {
	return buildELF64(emRISCV, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x780, memsz: 0x780, flags: 5, data: make([]byte, 0x780)},
			{vaddr: 0x1e20, filesz: 0x250, memsz: 0x288, flags: 6, data: make([]byte, 0x250)},
		},
		[]relaSpec{
			{offset: 0x1e20, relocType: 3, addend: 0x6ac},
			{offset: 0x1e28, relocType: 3, addend: 0x644},
			{offset: 0x2000, relocType: 3, addend: 0x2000},
			{offset: 0x2058, relocType: 3, addend: 0x6e0},
		},
		nil,
	)
}

// scenarioX86PIERel reproduces the x86 PIE (REL, no addend) scenario:
// four PT_LOAD segments and two R_386_RELATIVE entries with no addend
// field at all.
func scenarioX86PIERel() []byte {
	return buildELF32(em386, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x3bc, memsz: 0x3bc, flags: 4, data: make([]byte, 0x3bc)},
			{vaddr: 0x1000, filesz: 0x288, memsz: 0x288, flags: 5, data: make([]byte, 0x288)},
			{vaddr: 0x2000, filesz: 0x16c, memsz: 0x16c, flags: 4, data: make([]byte, 0x16c)},
			{vaddr: 0x3ef4, filesz: 0x12c, memsz: 0x12c, flags: 6, data: make([]byte, 0x12c)},
		},
		[]relSpec{
			{offset: 0x3ef4, relocType: 8},
			{offset: 0x3ef8, relocType: 8},
		},
	)
}

// scenarioX8664PIEWithTLS reproduces the x86_64 flavor of the TLS
// scenario: the same two PT_LOAD segments and relocations as
// scenarioX8664PIE, plus a PT_TLS segment at 0x200db4 with a 4-byte
// tdata and a 4-byte tbss tail.
func scenarioX8664PIEWithTLS() []byte {
	return buildELF64(emX8664, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x888, memsz: 0x888, flags: 5, data: make([]byte, 0x888)},
			{vaddr: 0x200db8, filesz: 0x258, memsz: 0x260, flags: 6, data: make([]byte, 0x258)},
		},
		[]relaSpec{
			{offset: 0x200db8, relocType: 8, addend: 0x640},
			{offset: 0x200dc0, relocType: 8, addend: 0x600},
		},
		&tlsSpec{vaddr: 0x200db4, align: 4, tdata: []byte{1, 2, 3, 4}, tbssSize: 4},
	)
}

// scenarioNonPIE reproduces the non-PIE scenario: a single PT_LOAD
// segment and no PT_DYNAMIC segment at all, so IsPIE must report
// false.
func scenarioNonPIE() []byte {
	return buildELF64(emX8664, 0,
		[]loadSpec{
			{vaddr: 0, filesz: 0x400, memsz: 0x400, flags: 5, data: make([]byte, 0x400)},
		},
		nil,
		nil,
	)
}

// scenarioX8664PIEStripped reproduces the same geometry as
// scenarioX8664PIE but with no .dynamic/.rela.dyn section headers at
// all, as a stripped binary would have: the relocation table is only
// reachable via the DT_RELA/DT_RELASZ tags in the PT_DYNAMIC segment
// itself, exercising relocationsFromDynamic's fallback path.
func scenarioX8664PIEStripped() []byte {
	const (
		ehdrSize = 64
		phdrSize = 56
		shdrSize = 64
	)

	loads := []loadSpec{
		{vaddr: 0, filesz: 0x888, memsz: 0x888, flags: 5, data: make([]byte, 0x888)},
		{vaddr: 0x200db8, filesz: 0x258, memsz: 0x260, flags: 6, data: make([]byte, 0x258)},
	}
	relas := []relaSpec{
		{offset: 0x200db8, relocType: 8, addend: 0x640},
		{offset: 0x200dc0, relocType: 8, addend: 0x600},
	}

	numProgs := len(loads) + 1 // + PT_DYNAMIC
	phoff := ehdrSize
	cursor := phoff + phdrSize*numProgs

	loadOffsets := make([]int, len(loads))
	for i, l := range loads {
		loadOffsets[i] = cursor
		cursor += int(l.filesz)
	}

	dynOff := cursor
	dynSize := 16 * 4
	cursor += dynSize

	// The relocation table sits inside the first PT_LOAD segment, so the
	// DT_RELA tag carries a virtual address that segment covers.
	const relaVaddr = 0x800
	relaOff := loadOffsets[0] + relaVaddr
	relaSize := 24 * len(relas)

	shstrtab := []byte{0}
	shstrNameOff := len(shstrtab)
	shstrtab = append(shstrtab, []byte(".shstrtab\x00")...)
	shstrOff := cursor
	cursor += len(shstrtab)

	shoff := cursor
	numSections := 2 // NULL, .shstrtab
	fileSize := shoff + shdrSize*numSections

	buf := make([]byte, fileSize)
	le := binary.LittleEndian

	copy(buf[0:4], []byte{0x7f, 'E', 'L', 'F'})
	buf[4] = 2
	buf[5] = 1
	buf[6] = 1
	buf[7] = 0

	le.PutUint16(buf[16:], 3) // ET_DYN
	le.PutUint16(buf[18:], emX8664)
	le.PutUint32(buf[20:], 1)
	le.PutUint64(buf[24:], 0)
	le.PutUint64(buf[32:], uint64(phoff))
	le.PutUint64(buf[40:], uint64(shoff))
	le.PutUint16(buf[52:], ehdrSize)
	le.PutUint16(buf[54:], phdrSize)
	le.PutUint16(buf[56:], uint16(numProgs))
	le.PutUint16(buf[58:], shdrSize)
	le.PutUint16(buf[60:], uint16(numSections))
	le.PutUint16(buf[62:], uint16(numSections-1))

	writePhdr := func(idx int, typ, flags uint32, offset, vaddr, filesz, memsz, align uint64) {
		o := phoff + idx*phdrSize
		le.PutUint32(buf[o:], typ)
		le.PutUint32(buf[o+4:], flags)
		le.PutUint64(buf[o+8:], offset)
		le.PutUint64(buf[o+16:], vaddr)
		le.PutUint64(buf[o+24:], vaddr)
		le.PutUint64(buf[o+32:], filesz)
		le.PutUint64(buf[o+40:], memsz)
		le.PutUint64(buf[o+48:], align)
	}

	idx := 0
	for i, l := range loads {
		writePhdr(idx, 1, l.flags, uint64(loadOffsets[i]), l.vaddr, l.filesz, l.memsz, 0x1000)
		idx++
	}
	writePhdr(idx, 2, 6, uint64(dynOff), uint64(dynOff), uint64(dynSize), uint64(dynSize), 8)

	for i, l := range loads {
		copy(buf[loadOffsets[i]:], l.data)
	}

	writeDyn := func(i int, tag int64, val uint64) {
		o := dynOff + i*16
		le.PutUint64(buf[o:], uint64(tag))
		le.PutUint64(buf[o+8:], val)
	}
	const dtFlags1 = 0x6ffffffb
	const dfPIE = 0x08000000
	writeDyn(0, dtFlags1, dfPIE)
	writeDyn(1, 7, relaVaddr)
	writeDyn(2, 8, uint64(relaSize))
	writeDyn(3, 0, 0)

	for i, r := range relas {
		o := relaOff + i*24
		le.PutUint64(buf[o:], r.offset)
		le.PutUint64(buf[o+8:], uint64(r.relocType))
		le.PutUint64(buf[o+16:], uint64(r.addend))
	}

	copy(buf[shstrOff:], shstrtab)

	writeShdr := func(idx int, name, typ uint32, flags, addr, offset, size uint64, link, info uint32, addralign, entsize uint64) {
		o := shoff + idx*shdrSize
		le.PutUint32(buf[o:], name)
		le.PutUint32(buf[o+4:], typ)
		le.PutUint64(buf[o+8:], flags)
		le.PutUint64(buf[o+16:], addr)
		le.PutUint64(buf[o+24:], offset)
		le.PutUint64(buf[o+32:], size)
		le.PutUint32(buf[o+40:], link)
		le.PutUint32(buf[o+44:], info)
		le.PutUint64(buf[o+48:], addralign)
		le.PutUint64(buf[o+56:], entsize)
	}

	writeShdr(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	writeShdr(1, uint32(shstrNameOff), 3, 0, 0, uint64(shstrOff), uint64(len(shstrtab)), 0, 0, 1, 0)

	return buf
}
