package arch

import "fmt"

// RelocationTypeARM32 enumerates the 32-bit ARM relocation types found in
// the r_info type field of Elf32_Rel entries, numbered per the ARM ELF
// ABI (matching debug/elf's R_ARM). This table is data only: nothing
// dispatches on ARM32 relocation kinds (internal/simloader's Recorder
// handles x86, x86_64, AArch64 and RISC-V only), but the numbering is
// kept complete enough to decode a r_info type field for inspection.
type RelocationTypeARM32 uint32

const (
	R_ARM_NONE         RelocationTypeARM32 = 0
	R_ARM_PC24         RelocationTypeARM32 = 1
	R_ARM_ABS32        RelocationTypeARM32 = 2
	R_ARM_REL32        RelocationTypeARM32 = 3
	R_ARM_ABS16        RelocationTypeARM32 = 5
	R_ARM_ABS12        RelocationTypeARM32 = 6
	R_ARM_ABS8         RelocationTypeARM32 = 8
	R_ARM_SBREL32      RelocationTypeARM32 = 9
	R_ARM_TLS_DTPMOD32 RelocationTypeARM32 = 17
	R_ARM_TLS_DTPOFF32 RelocationTypeARM32 = 18
	R_ARM_TLS_TPOFF32  RelocationTypeARM32 = 19
	R_ARM_COPY         RelocationTypeARM32 = 20
	R_ARM_GLOB_DAT     RelocationTypeARM32 = 21
	R_ARM_JUMP_SLOT    RelocationTypeARM32 = 22
	R_ARM_RELATIVE     RelocationTypeARM32 = 23
	R_ARM_GOTOFF       RelocationTypeARM32 = 24
	R_ARM_GOTPC        RelocationTypeARM32 = 25
	R_ARM_GOT32        RelocationTypeARM32 = 26
	R_ARM_PLT32        RelocationTypeARM32 = 27
	R_ARM_CALL         RelocationTypeARM32 = 28
	R_ARM_JUMP24       RelocationTypeARM32 = 29
	R_ARM_THM_JUMP24   RelocationTypeARM32 = 30
	R_ARM_TARGET1      RelocationTypeARM32 = 38
	R_ARM_V4BX         RelocationTypeARM32 = 40
	R_ARM_TARGET2      RelocationTypeARM32 = 41
	R_ARM_PREL31       RelocationTypeARM32 = 42
	R_ARM_MOVW_ABS_NC  RelocationTypeARM32 = 43
	R_ARM_MOVT_ABS     RelocationTypeARM32 = 44
	R_ARM_TLS_GD32     RelocationTypeARM32 = 104
	R_ARM_TLS_LDM32    RelocationTypeARM32 = 105
	R_ARM_TLS_IE32     RelocationTypeARM32 = 107
	R_ARM_TLS_LE32     RelocationTypeARM32 = 108
)

var arm32Names = map[RelocationTypeARM32]string{
	R_ARM_NONE:         "R_ARM_NONE",
	R_ARM_PC24:         "R_ARM_PC24",
	R_ARM_ABS32:        "R_ARM_ABS32",
	R_ARM_REL32:        "R_ARM_REL32",
	R_ARM_ABS16:        "R_ARM_ABS16",
	R_ARM_ABS12:        "R_ARM_ABS12",
	R_ARM_ABS8:         "R_ARM_ABS8",
	R_ARM_SBREL32:      "R_ARM_SBREL32",
	R_ARM_TLS_DTPMOD32: "R_ARM_TLS_DTPMOD32",
	R_ARM_TLS_DTPOFF32: "R_ARM_TLS_DTPOFF32",
	R_ARM_TLS_TPOFF32:  "R_ARM_TLS_TPOFF32",
	R_ARM_COPY:         "R_ARM_COPY",
	R_ARM_GLOB_DAT:     "R_ARM_GLOB_DAT",
	R_ARM_JUMP_SLOT:    "R_ARM_JUMP_SLOT",
	R_ARM_RELATIVE:     "R_ARM_RELATIVE",
	R_ARM_GOTOFF:       "R_ARM_GOTOFF",
	R_ARM_GOTPC:        "R_ARM_GOTPC",
	R_ARM_GOT32:        "R_ARM_GOT32",
	R_ARM_PLT32:        "R_ARM_PLT32",
	R_ARM_CALL:         "R_ARM_CALL",
	R_ARM_JUMP24:       "R_ARM_JUMP24",
	R_ARM_THM_JUMP24:   "R_ARM_THM_JUMP24",
	R_ARM_TARGET1:      "R_ARM_TARGET1",
	R_ARM_V4BX:         "R_ARM_V4BX",
	R_ARM_TARGET2:      "R_ARM_TARGET2",
	R_ARM_PREL31:       "R_ARM_PREL31",
	R_ARM_MOVW_ABS_NC:  "R_ARM_MOVW_ABS_NC",
	R_ARM_MOVT_ABS:     "R_ARM_MOVT_ABS",
	R_ARM_TLS_GD32:     "R_ARM_TLS_GD32",
	R_ARM_TLS_LDM32:    "R_ARM_TLS_LDM32",
	R_ARM_TLS_IE32:     "R_ARM_TLS_IE32",
	R_ARM_TLS_LE32:     "R_ARM_TLS_LE32",
}

func (r RelocationTypeARM32) String() string {
	if name, ok := arm32Names[r]; ok {
		return name
	}
	return fmt.Sprintf("R_ARM_Unknown(%d)", uint32(r))
}
