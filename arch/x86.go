package arch

import "fmt"

// RelocationTypeX86 enumerates the i386 relocation types found in the
// r_info type field of Elf32_Rel/Elf32_Rela entries. Numbering matches
// the canonical i386 psABI (and debug/elf's R_386), not the swapped
// R_386_32/R_386_PC32 numbering some hand-transcribed tables carry.
type RelocationTypeX86 uint32

const (
	R_386_NONE      RelocationTypeX86 = 0
	R_386_32        RelocationTypeX86 = 1
	R_386_PC32      RelocationTypeX86 = 2
	R_386_GOT32     RelocationTypeX86 = 3
	R_386_PLT32     RelocationTypeX86 = 4
	R_386_COPY      RelocationTypeX86 = 5
	R_386_GLOB_DAT  RelocationTypeX86 = 6
	R_386_JMP_SLOT  RelocationTypeX86 = 7
	R_386_RELATIVE  RelocationTypeX86 = 8
	R_386_GOTOFF    RelocationTypeX86 = 9
	R_386_GOTPC     RelocationTypeX86 = 10
	R_386_32PLT     RelocationTypeX86 = 11
	R_386_TLS_TPOFF RelocationTypeX86 = 14
	R_386_TLS_IE    RelocationTypeX86 = 15
	R_386_TLS_GOTIE RelocationTypeX86 = 16
	R_386_TLS_LE    RelocationTypeX86 = 17
	R_386_TLS_GD    RelocationTypeX86 = 18
	R_386_TLS_LDM   RelocationTypeX86 = 19
	R_386_IRELATIVE RelocationTypeX86 = 42
)

var x86Names = map[RelocationTypeX86]string{
	R_386_NONE:      "R_386_NONE",
	R_386_32:        "R_386_32",
	R_386_PC32:      "R_386_PC32",
	R_386_GOT32:     "R_386_GOT32",
	R_386_PLT32:     "R_386_PLT32",
	R_386_COPY:      "R_386_COPY",
	R_386_GLOB_DAT:  "R_386_GLOB_DAT",
	R_386_JMP_SLOT:  "R_386_JMP_SLOT",
	R_386_RELATIVE:  "R_386_RELATIVE",
	R_386_GOTOFF:    "R_386_GOTOFF",
	R_386_GOTPC:     "R_386_GOTPC",
	R_386_32PLT:     "R_386_32PLT",
	R_386_TLS_TPOFF: "R_386_TLS_TPOFF",
	R_386_TLS_IE:    "R_386_TLS_IE",
	R_386_TLS_GOTIE: "R_386_TLS_GOTIE",
	R_386_TLS_LE:    "R_386_TLS_LE",
	R_386_TLS_GD:    "R_386_TLS_GD",
	R_386_TLS_LDM:   "R_386_TLS_LDM",
	R_386_IRELATIVE: "R_386_IRELATIVE",
}

func (r RelocationTypeX86) String() string {
	if name, ok := x86Names[r]; ok {
		return name
	}
	return fmt.Sprintf("R_386_Unknown(%d)", uint32(r))
}
