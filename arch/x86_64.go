package arch

import "fmt"

// RelocationTypeX86_64 enumerates the AMD64 relocation types found in the
// r_info type field of Elf64_Rela entries, numbered per the x86-64 psABI
// (matching debug/elf's R_X86_64).
type RelocationTypeX86_64 uint32

const (
	R_AMD64_NONE            RelocationTypeX86_64 = 0
	R_AMD64_64              RelocationTypeX86_64 = 1
	R_AMD64_PC32            RelocationTypeX86_64 = 2
	R_AMD64_GOT32           RelocationTypeX86_64 = 3
	R_AMD64_PLT32           RelocationTypeX86_64 = 4
	R_AMD64_COPY            RelocationTypeX86_64 = 5
	R_AMD64_GLOB_DAT        RelocationTypeX86_64 = 6
	R_AMD64_JUMP_SLOT       RelocationTypeX86_64 = 7
	R_AMD64_RELATIVE        RelocationTypeX86_64 = 8
	R_AMD64_GOTPCREL        RelocationTypeX86_64 = 9
	R_AMD64_32              RelocationTypeX86_64 = 10
	R_AMD64_32S             RelocationTypeX86_64 = 11
	R_AMD64_16              RelocationTypeX86_64 = 12
	R_AMD64_PC16            RelocationTypeX86_64 = 13
	R_AMD64_8               RelocationTypeX86_64 = 14
	R_AMD64_PC8             RelocationTypeX86_64 = 15
	R_AMD64_DTPMOD64        RelocationTypeX86_64 = 16
	R_AMD64_DTPOFF64        RelocationTypeX86_64 = 17
	R_AMD64_TPOFF64         RelocationTypeX86_64 = 18
	R_AMD64_TLSGD           RelocationTypeX86_64 = 19
	R_AMD64_TLSLD           RelocationTypeX86_64 = 20
	R_AMD64_DTPOFF32        RelocationTypeX86_64 = 21
	R_AMD64_GOTTPOFF        RelocationTypeX86_64 = 22
	R_AMD64_TPOFF32         RelocationTypeX86_64 = 23
	R_AMD64_PC64            RelocationTypeX86_64 = 24
	R_AMD64_GOTOFF64        RelocationTypeX86_64 = 25
	R_AMD64_GOTPC32         RelocationTypeX86_64 = 26
	R_AMD64_GOT64           RelocationTypeX86_64 = 27
	R_AMD64_GOTPCREL64      RelocationTypeX86_64 = 28
	R_AMD64_GOTPC64         RelocationTypeX86_64 = 29
	R_AMD64_GOTPLT64        RelocationTypeX86_64 = 30
	R_AMD64_PLTOFF64        RelocationTypeX86_64 = 31
	R_AMD64_SIZE32          RelocationTypeX86_64 = 32
	R_AMD64_SIZE64          RelocationTypeX86_64 = 33
	R_AMD64_GOTPC32_TLSDESC RelocationTypeX86_64 = 34
	R_AMD64_TLSDESC_CALL    RelocationTypeX86_64 = 35
	R_AMD64_TLSDESC         RelocationTypeX86_64 = 36
	R_AMD64_IRELATIVE       RelocationTypeX86_64 = 37
	R_AMD64_RELATIVE64      RelocationTypeX86_64 = 38
	R_AMD64_GOTPCRELX       RelocationTypeX86_64 = 41
	R_AMD64_REX_GOTPCRELX   RelocationTypeX86_64 = 42
)

var x8664Names = map[RelocationTypeX86_64]string{
	R_AMD64_NONE:            "R_AMD64_NONE",
	R_AMD64_64:              "R_AMD64_64",
	R_AMD64_PC32:            "R_AMD64_PC32",
	R_AMD64_GOT32:           "R_AMD64_GOT32",
	R_AMD64_PLT32:           "R_AMD64_PLT32",
	R_AMD64_COPY:            "R_AMD64_COPY",
	R_AMD64_GLOB_DAT:        "R_AMD64_GLOB_DAT",
	R_AMD64_JUMP_SLOT:       "R_AMD64_JUMP_SLOT",
	R_AMD64_RELATIVE:        "R_AMD64_RELATIVE",
	R_AMD64_GOTPCREL:        "R_AMD64_GOTPCREL",
	R_AMD64_32:              "R_AMD64_32",
	R_AMD64_32S:             "R_AMD64_32S",
	R_AMD64_16:              "R_AMD64_16",
	R_AMD64_PC16:            "R_AMD64_PC16",
	R_AMD64_8:               "R_AMD64_8",
	R_AMD64_PC8:             "R_AMD64_PC8",
	R_AMD64_DTPMOD64:        "R_AMD64_DTPMOD64",
	R_AMD64_DTPOFF64:        "R_AMD64_DTPOFF64",
	R_AMD64_TPOFF64:         "R_AMD64_TPOFF64",
	R_AMD64_TLSGD:           "R_AMD64_TLSGD",
	R_AMD64_TLSLD:           "R_AMD64_TLSLD",
	R_AMD64_DTPOFF32:        "R_AMD64_DTPOFF32",
	R_AMD64_GOTTPOFF:        "R_AMD64_GOTTPOFF",
	R_AMD64_TPOFF32:         "R_AMD64_TPOFF32",
	R_AMD64_PC64:            "R_AMD64_PC64",
	R_AMD64_GOTOFF64:        "R_AMD64_GOTOFF64",
	R_AMD64_GOTPC32:         "R_AMD64_GOTPC32",
	R_AMD64_GOT64:           "R_AMD64_GOT64",
	R_AMD64_GOTPCREL64:      "R_AMD64_GOTPCREL64",
	R_AMD64_GOTPC64:         "R_AMD64_GOTPC64",
	R_AMD64_GOTPLT64:        "R_AMD64_GOTPLT64",
	R_AMD64_PLTOFF64:        "R_AMD64_PLTOFF64",
	R_AMD64_SIZE32:          "R_AMD64_SIZE32",
	R_AMD64_SIZE64:          "R_AMD64_SIZE64",
	R_AMD64_GOTPC32_TLSDESC: "R_AMD64_GOTPC32_TLSDESC",
	R_AMD64_TLSDESC_CALL:    "R_AMD64_TLSDESC_CALL",
	R_AMD64_TLSDESC:         "R_AMD64_TLSDESC",
	R_AMD64_IRELATIVE:       "R_AMD64_IRELATIVE",
	R_AMD64_RELATIVE64:      "R_AMD64_RELATIVE64",
	R_AMD64_GOTPCRELX:       "R_AMD64_GOTPCRELX",
	R_AMD64_REX_GOTPCRELX:   "R_AMD64_REX_GOTPCRELX",
}

func (r RelocationTypeX86_64) String() string {
	if name, ok := x8664Names[r]; ok {
		return name
	}
	return fmt.Sprintf("R_AMD64_Unknown(%d)", uint32(r))
}
