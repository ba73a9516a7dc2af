package arch

import "fmt"

// RelocationTypeAArch64 enumerates the AArch64 (LP64) relocation types
// found in the r_info type field of Elf64_Rela entries, numbered per the
// ELF for the ARM 64-bit Architecture ABI (matching debug/elf's
// R_AARCH64). The ILP32-variant range is out of scope: nothing in this
// loader targets the AArch64 ILP32 ABI.
type RelocationTypeAArch64 uint32

const (
	R_AARCH64_NONE                   RelocationTypeAArch64 = 0
	R_AARCH64_ABS64                  RelocationTypeAArch64 = 257
	R_AARCH64_ABS32                  RelocationTypeAArch64 = 258
	R_AARCH64_ABS16                  RelocationTypeAArch64 = 259
	R_AARCH64_PREL64                 RelocationTypeAArch64 = 260
	R_AARCH64_PREL32                 RelocationTypeAArch64 = 261
	R_AARCH64_PREL16                 RelocationTypeAArch64 = 262
	R_AARCH64_MOVW_UABS_G0           RelocationTypeAArch64 = 263
	R_AARCH64_MOVW_UABS_G0_NC        RelocationTypeAArch64 = 264
	R_AARCH64_MOVW_UABS_G1           RelocationTypeAArch64 = 265
	R_AARCH64_MOVW_UABS_G1_NC        RelocationTypeAArch64 = 266
	R_AARCH64_MOVW_UABS_G2           RelocationTypeAArch64 = 267
	R_AARCH64_MOVW_UABS_G2_NC        RelocationTypeAArch64 = 268
	R_AARCH64_MOVW_UABS_G3           RelocationTypeAArch64 = 269
	R_AARCH64_ADR_PREL_PG_HI21       RelocationTypeAArch64 = 275
	R_AARCH64_ADD_ABS_LO12_NC        RelocationTypeAArch64 = 277
	R_AARCH64_LDST64_ABS_LO12_NC     RelocationTypeAArch64 = 286
	R_AARCH64_CALL26                 RelocationTypeAArch64 = 283
	R_AARCH64_JUMP26                 RelocationTypeAArch64 = 282
	R_AARCH64_TLSGD_ADR_PAGE21       RelocationTypeAArch64 = 513
	R_AARCH64_TLSIE_MOVW_GOTTPREL_G1 RelocationTypeAArch64 = 539
	R_AARCH64_TLSLE_MOVW_TPREL_G0    RelocationTypeAArch64 = 547
	R_AARCH64_COPY                   RelocationTypeAArch64 = 1024
	R_AARCH64_GLOB_DAT               RelocationTypeAArch64 = 1025
	R_AARCH64_JUMP_SLOT              RelocationTypeAArch64 = 1026
	R_AARCH64_RELATIVE               RelocationTypeAArch64 = 1027
	R_AARCH64_TLS_DTPMOD64           RelocationTypeAArch64 = 1028
	R_AARCH64_TLS_DTPREL64           RelocationTypeAArch64 = 1029
	R_AARCH64_TLS_TPREL64            RelocationTypeAArch64 = 1030
	R_AARCH64_TLSDESC                RelocationTypeAArch64 = 1031
	R_AARCH64_IRELATIVE              RelocationTypeAArch64 = 1032
)

var aarch64Names = map[RelocationTypeAArch64]string{
	R_AARCH64_NONE:                   "R_AARCH64_NONE",
	R_AARCH64_ABS64:                  "R_AARCH64_ABS64",
	R_AARCH64_ABS32:                  "R_AARCH64_ABS32",
	R_AARCH64_ABS16:                  "R_AARCH64_ABS16",
	R_AARCH64_PREL64:                 "R_AARCH64_PREL64",
	R_AARCH64_PREL32:                 "R_AARCH64_PREL32",
	R_AARCH64_PREL16:                 "R_AARCH64_PREL16",
	R_AARCH64_MOVW_UABS_G0:           "R_AARCH64_MOVW_UABS_G0",
	R_AARCH64_MOVW_UABS_G0_NC:        "R_AARCH64_MOVW_UABS_G0_NC",
	R_AARCH64_MOVW_UABS_G1:           "R_AARCH64_MOVW_UABS_G1",
	R_AARCH64_MOVW_UABS_G1_NC:        "R_AARCH64_MOVW_UABS_G1_NC",
	R_AARCH64_MOVW_UABS_G2:           "R_AARCH64_MOVW_UABS_G2",
	R_AARCH64_MOVW_UABS_G2_NC:        "R_AARCH64_MOVW_UABS_G2_NC",
	R_AARCH64_MOVW_UABS_G3:           "R_AARCH64_MOVW_UABS_G3",
	R_AARCH64_ADR_PREL_PG_HI21:       "R_AARCH64_ADR_PREL_PG_HI21",
	R_AARCH64_ADD_ABS_LO12_NC:        "R_AARCH64_ADD_ABS_LO12_NC",
	R_AARCH64_LDST64_ABS_LO12_NC:     "R_AARCH64_LDST64_ABS_LO12_NC",
	R_AARCH64_CALL26:                 "R_AARCH64_CALL26",
	R_AARCH64_JUMP26:                 "R_AARCH64_JUMP26",
	R_AARCH64_TLSGD_ADR_PAGE21:       "R_AARCH64_TLSGD_ADR_PAGE21",
	R_AARCH64_TLSIE_MOVW_GOTTPREL_G1: "R_AARCH64_TLSIE_MOVW_GOTTPREL_G1",
	R_AARCH64_TLSLE_MOVW_TPREL_G0:    "R_AARCH64_TLSLE_MOVW_TPREL_G0",
	R_AARCH64_COPY:                   "R_AARCH64_COPY",
	R_AARCH64_GLOB_DAT:               "R_AARCH64_GLOB_DAT",
	R_AARCH64_JUMP_SLOT:              "R_AARCH64_JUMP_SLOT",
	R_AARCH64_RELATIVE:               "R_AARCH64_RELATIVE",
	R_AARCH64_TLS_DTPMOD64:           "R_AARCH64_TLS_DTPMOD64",
	R_AARCH64_TLS_DTPREL64:           "R_AARCH64_TLS_DTPREL64",
	R_AARCH64_TLS_TPREL64:            "R_AARCH64_TLS_TPREL64",
	R_AARCH64_TLSDESC:                "R_AARCH64_TLSDESC",
	R_AARCH64_IRELATIVE:              "R_AARCH64_IRELATIVE",
}

func (r RelocationTypeAArch64) String() string {
	if name, ok := aarch64Names[r]; ok {
		return name
	}
	return fmt.Sprintf("R_AARCH64_Unknown(%d)", uint32(r))
}
