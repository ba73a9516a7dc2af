package arch

import "fmt"

// RelocationTypeRISCV enumerates the RISC-V relocation types found in the
// r_info type field of Elf64_Rela entries, numbered per the RISC-V ELF
// psABI (matching debug/elf's R_RISCV). Numbers 12-15 are reserved by the
// ABI and intentionally absent here; they decode to Unknown like any other
// unrecognized value.
type RelocationTypeRISCV uint32

const (
	R_RISCV_NONE          RelocationTypeRISCV = 0
	R_RISCV_32            RelocationTypeRISCV = 1
	R_RISCV_64            RelocationTypeRISCV = 2
	R_RISCV_RELATIVE      RelocationTypeRISCV = 3
	R_RISCV_COPY          RelocationTypeRISCV = 4
	R_RISCV_JUMP_SLOT     RelocationTypeRISCV = 5
	R_RISCV_TLS_DTPMOD32  RelocationTypeRISCV = 6
	R_RISCV_TLS_DTPMOD64  RelocationTypeRISCV = 7
	R_RISCV_TLS_DTPREL32  RelocationTypeRISCV = 8
	R_RISCV_TLS_DTPREL64  RelocationTypeRISCV = 9
	R_RISCV_TLS_TPREL32   RelocationTypeRISCV = 10
	R_RISCV_TLS_TPREL64   RelocationTypeRISCV = 11
	R_RISCV_BRANCH        RelocationTypeRISCV = 16
	R_RISCV_JAL           RelocationTypeRISCV = 17
	R_RISCV_CALL          RelocationTypeRISCV = 18
	R_RISCV_CALL_PLT      RelocationTypeRISCV = 19
	R_RISCV_GOT_HI20      RelocationTypeRISCV = 20
	R_RISCV_TLS_GOT_HI20  RelocationTypeRISCV = 21
	R_RISCV_TLS_GD_HI20   RelocationTypeRISCV = 22
	R_RISCV_PCREL_HI20    RelocationTypeRISCV = 23
	R_RISCV_PCREL_LO12_I  RelocationTypeRISCV = 24
	R_RISCV_PCREL_LO12_S  RelocationTypeRISCV = 25
	R_RISCV_HI20          RelocationTypeRISCV = 26
	R_RISCV_LO12_I        RelocationTypeRISCV = 27
	R_RISCV_LO12_S        RelocationTypeRISCV = 28
	R_RISCV_TPREL_HI20    RelocationTypeRISCV = 29
	R_RISCV_TPREL_LO12_I  RelocationTypeRISCV = 30
	R_RISCV_TPREL_LO12_S  RelocationTypeRISCV = 31
	R_RISCV_TPREL_ADD     RelocationTypeRISCV = 32
	R_RISCV_ADD8          RelocationTypeRISCV = 33
	R_RISCV_ADD16         RelocationTypeRISCV = 34
	R_RISCV_ADD32         RelocationTypeRISCV = 35
	R_RISCV_ADD64         RelocationTypeRISCV = 36
	R_RISCV_SUB8          RelocationTypeRISCV = 37
	R_RISCV_SUB16         RelocationTypeRISCV = 38
	R_RISCV_SUB32         RelocationTypeRISCV = 39
	R_RISCV_SUB64         RelocationTypeRISCV = 40
	R_RISCV_GNU_VTINHERIT RelocationTypeRISCV = 41
	R_RISCV_GNU_VTENTRY   RelocationTypeRISCV = 42
	R_RISCV_ALIGN         RelocationTypeRISCV = 43
	R_RISCV_RVC_BRANCH    RelocationTypeRISCV = 44
	R_RISCV_RVC_JUMP      RelocationTypeRISCV = 45
	R_RISCV_RVC_LUI       RelocationTypeRISCV = 46
	R_RISCV_RELAX         RelocationTypeRISCV = 51
	R_RISCV_SUB6          RelocationTypeRISCV = 52
	R_RISCV_SET6          RelocationTypeRISCV = 53
	R_RISCV_SET8          RelocationTypeRISCV = 54
	R_RISCV_SET16         RelocationTypeRISCV = 55
	R_RISCV_SET32         RelocationTypeRISCV = 56
	R_RISCV_32_PCREL      RelocationTypeRISCV = 57
)

var riscvNames = map[RelocationTypeRISCV]string{
	R_RISCV_NONE:          "R_RISCV_NONE",
	R_RISCV_32:            "R_RISCV_32",
	R_RISCV_64:            "R_RISCV_64",
	R_RISCV_RELATIVE:      "R_RISCV_RELATIVE",
	R_RISCV_COPY:          "R_RISCV_COPY",
	R_RISCV_JUMP_SLOT:     "R_RISCV_JUMP_SLOT",
	R_RISCV_TLS_DTPMOD32:  "R_RISCV_TLS_DTPMOD32",
	R_RISCV_TLS_DTPMOD64:  "R_RISCV_TLS_DTPMOD64",
	R_RISCV_TLS_DTPREL32:  "R_RISCV_TLS_DTPREL32",
	R_RISCV_TLS_DTPREL64:  "R_RISCV_TLS_DTPREL64",
	R_RISCV_TLS_TPREL32:   "R_RISCV_TLS_TPREL32",
	R_RISCV_TLS_TPREL64:   "R_RISCV_TLS_TPREL64",
	R_RISCV_BRANCH:        "R_RISCV_BRANCH",
	R_RISCV_JAL:           "R_RISCV_JAL",
	R_RISCV_CALL:          "R_RISCV_CALL",
	R_RISCV_CALL_PLT:      "R_RISCV_CALL_PLT",
	R_RISCV_GOT_HI20:      "R_RISCV_GOT_HI20",
	R_RISCV_TLS_GOT_HI20:  "R_RISCV_TLS_GOT_HI20",
	R_RISCV_TLS_GD_HI20:   "R_RISCV_TLS_GD_HI20",
	R_RISCV_PCREL_HI20:    "R_RISCV_PCREL_HI20",
	R_RISCV_PCREL_LO12_I:  "R_RISCV_PCREL_LO12_I",
	R_RISCV_PCREL_LO12_S:  "R_RISCV_PCREL_LO12_S",
	R_RISCV_HI20:          "R_RISCV_HI20",
	R_RISCV_LO12_I:        "R_RISCV_LO12_I",
	R_RISCV_LO12_S:        "R_RISCV_LO12_S",
	R_RISCV_TPREL_HI20:    "R_RISCV_TPREL_HI20",
	R_RISCV_TPREL_LO12_I:  "R_RISCV_TPREL_LO12_I",
	R_RISCV_TPREL_LO12_S:  "R_RISCV_TPREL_LO12_S",
	R_RISCV_TPREL_ADD:     "R_RISCV_TPREL_ADD",
	R_RISCV_ADD8:          "R_RISCV_ADD8",
	R_RISCV_ADD16:         "R_RISCV_ADD16",
	R_RISCV_ADD32:         "R_RISCV_ADD32",
	R_RISCV_ADD64:         "R_RISCV_ADD64",
	R_RISCV_SUB8:          "R_RISCV_SUB8",
	R_RISCV_SUB16:         "R_RISCV_SUB16",
	R_RISCV_SUB32:         "R_RISCV_SUB32",
	R_RISCV_SUB64:         "R_RISCV_SUB64",
	R_RISCV_GNU_VTINHERIT: "R_RISCV_GNU_VTINHERIT",
	R_RISCV_GNU_VTENTRY:   "R_RISCV_GNU_VTENTRY",
	R_RISCV_ALIGN:         "R_RISCV_ALIGN",
	R_RISCV_RVC_BRANCH:    "R_RISCV_RVC_BRANCH",
	R_RISCV_RVC_JUMP:      "R_RISCV_RVC_JUMP",
	R_RISCV_RVC_LUI:       "R_RISCV_RVC_LUI",
	R_RISCV_RELAX:         "R_RISCV_RELAX",
	R_RISCV_SUB6:          "R_RISCV_SUB6",
	R_RISCV_SET6:          "R_RISCV_SET6",
	R_RISCV_SET8:          "R_RISCV_SET8",
	R_RISCV_SET16:         "R_RISCV_SET16",
	R_RISCV_SET32:         "R_RISCV_SET32",
	R_RISCV_32_PCREL:      "R_RISCV_32_PCREL",
}

func (r RelocationTypeRISCV) String() string {
	if name, ok := riscvNames[r]; ok {
		return name
	}
	return fmt.Sprintf("R_RISCV_Unknown(%d)", uint32(r))
}
