package opcodes

// Unofficial opcode variants, verified against the nestest.log trace:
// http://ist.uwaterloo.ca/~schepers/MJK/ascii/65xx_ill.txt
//
// Each entry carries the opcode, size and cycle count observed on
// hardware. The variants are merged after the textual pass and replace
// any variant of the same name.
var unofficialVariants = []Variant{
	// E545  A3 40    *LAX ($40,X) @ 43 = 0580 = 55    A:00 X:03 Y:77 P:67 SP:FB CYC:15276
	{Name: "LAX_INX", Opcode: 0xa3, Size: 2, Cycles: 6, Comment: "LAX = LDA + LDX (Unofficial opcode)"},
	// E598  A7 67    *LAX $67 = 87                    A:00 X:AA Y:57 P:67 SP:FB CYC:15375
	{Name: "LAX_ZP", Opcode: 0xa7, Size: 2, Cycles: 3, Comment: "LAX = LDA + LDX (Unofficial opcode)"},
	// E5EB  AF 77 05 *LAX $0577 = 87                  A:00 X:32 Y:57 P:67 SP:FB CYC:15468
	{Name: "LAX_ABS", Opcode: 0xaf, Size: 3, Cycles: 4, Comment: "LAX = LDA + LDX (Unofficial opcode)"},
	// E652  B3 43    *LAX ($43),Y = 04FF @ 0580 = 55  A:00 X:03 Y:81 P:67 SP:FB CYC:15585
	{Name: "LAX_INY", Opcode: 0xb3, Size: 2, Cycles: 6, Comment: "LAX = LDA + LDX (Unofficial opcode)"},
	// E6A5  B7 10    *LAX $10,Y @ 67 = 87             A:00 X:AA Y:57 P:67 SP:FB CYC:15683
	{Name: "LAX_ZPY", Opcode: 0xb7, Size: 2, Cycles: 4, Comment: "LAX = LDA + LDX (Unofficial opcode)"},
	// E6F8  BF 57 05 *LAX $0557,Y @ 0587 = 87         A:00 X:32 Y:30 P:67 SP:FB CYC:15778
	{Name: "LAX_ABY", Opcode: 0xbf, Size: 3, Cycles: 4, Comment: "LAX = LDA + LDX (Unofficial opcode)"},

	// E757  83 49    *SAX ($49,X) @ 60 = 0489 = 00    A:3E X:17 Y:44 P:E6 SP:FB CYC:15896
	{Name: "SAX_INX", Opcode: 0x83, Size: 2, Cycles: 6, Comment: "SAX = Store A&X (Unofficial opcode)"},
	// E7B6  87 49    *SAX $49 = FF                    A:55 X:AA Y:44 P:E4 SP:FB CYC:16008
	{Name: "SAX_ZP", Opcode: 0x87, Size: 2, Cycles: 3, Comment: "SAX = Store A&X (Unofficial opcode)"},
	// E818  8F 49 05 *SAX $0549 = FF                  A:F5 X:AF Y:E5 P:E4 SP:FB CYC:16118
	{Name: "SAX_ABS", Opcode: 0x8f, Size: 3, Cycles: 4, Comment: "SAX = Store A&X (Unofficial opcode)"},
	// E87E  97 4A    *SAX $4A,Y @ 49 = FF             A:55 X:AA Y:FF P:E4 SP:FB CYC:16232
	{Name: "SAX_ZPY", Opcode: 0x97, Size: 2, Cycles: 4, Comment: "SAX = Store A&X (Unofficial opcode)"},

	// E8D8  EB 40    *SBC #$40                        A:40 X:EF Y:90 P:65 SP:FB CYC:16360
	{Name: "SNC_IMM", Opcode: 0xeb, Size: 2, Cycles: 2, Comment: "SNC = SBC + NOP (Unofficial opcode)"},

	// E92E  C3 45    *DCP ($45,X) @ 47 = 0647 = EB    A:40 X:02 Y:95 P:64 SP:FB CYC:16653
	{Name: "DCP_INX", Opcode: 0xc3, Size: 2, Cycles: 8, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// E97E  C7 47    *DCP $47 = EB                    A:40 X:02 Y:98 P:64 SP:FB CYC:16876
	{Name: "DCP_ZP", Opcode: 0xc7, Size: 2, Cycles: 5, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// E9CA  CF 47 06 *DCP $0647 = EB                  A:40 X:02 Y:9B P:64 SP:FB CYC:17086
	{Name: "DCP_ABS", Opcode: 0xcf, Size: 3, Cycles: 6, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// EA27  D3 45    *DCP ($45),Y = 0548 @ 0647 = EB  A:40 X:02 Y:FF P:64 SP:FB CYC:17314
	{Name: "DCP_INY", Opcode: 0xd3, Size: 2, Cycles: 8, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// EA88  D7 48    *DCP $48,X @ 47 = EB             A:40 X:FF Y:A1 P:64 SP:FB CYC:17575
	{Name: "DCP_ZPX", Opcode: 0xd7, Size: 2, Cycles: 6, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// EAD5  DB 48 05 *DCP $0548,Y @ 0647 = EB         A:40 X:FF Y:FF P:64 SP:FB CYC:17788
	{Name: "DCP_ABY", Opcode: 0xdb, Size: 3, Cycles: 7, Comment: "DCP = DEC + CMP (Unofficial opcode)"},
	// EB3A  DF 48 05 *DCP $0548,X @ 0647 = EB         A:40 X:FF Y:A7 P:64 SP:FB CYC:18047
	{Name: "DCP_ABX", Opcode: 0xdf, Size: 3, Cycles: 7, Comment: "DCP = DEC + CMP (Unofficial opcode)"},

	// EB9E  E3 45    *ISB ($45,X) @ 47 = 0647 = EB    A:40 X:02 Y:AA P:64 SP:FB CYC:18297
	{Name: "ISB_INX", Opcode: 0xe3, Size: 2, Cycles: 8, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// EBEE  E7 47    *ISB $47 = EB                    A:40 X:02 Y:AD P:64 SP:FB CYC:18522
	{Name: "ISB_ZP", Opcode: 0xe7, Size: 2, Cycles: 5, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// EC3A  EF 47 06 *ISB $0647 = EB                  A:40 X:02 Y:B0 P:64 SP:FB CYC:18734
	{Name: "ISB_ABS", Opcode: 0xef, Size: 3, Cycles: 6, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// EC97  F3 45    *ISB ($45),Y = 0548 @ 0647 = EB  A:40 X:02 Y:FF P:64 SP:FB CYC:18964
	{Name: "ISB_INY", Opcode: 0xf3, Size: 2, Cycles: 8, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// ECF8  F7 48    *ISB $48,X @ 47 = EB             A:40 X:FF Y:B6 P:64 SP:FB CYC:19227
	{Name: "ISB_ZPX", Opcode: 0xf7, Size: 2, Cycles: 6, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// ED45  FB 48 05 *ISB $0548,Y @ 0647 = EB         A:40 X:FF Y:FF P:64 SP:FB CYC:19442
	{Name: "ISB_ABY", Opcode: 0xfb, Size: 3, Cycles: 7, Comment: "ISB = INC + SBC (Unofficial opcode)"},
	// EDAA  FF 48 05 *ISB $0548,X @ 0647 = EB         A:40 X:FF Y:BC P:64 SP:FB CYC:19703
	{Name: "ISB_ABX", Opcode: 0xff, Size: 3, Cycles: 7, Comment: "ISB = INC + SBC (Unofficial opcode)"},

	// EE05  03 45    *SLO ($45,X) @ 47 = 0647         A:B3 X:02 Y:BD P:64 SP:FB CYC:19965
	{Name: "SLO_INX", Opcode: 0x03, Size: 2, Cycles: 8, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// EE55  07 47    *SLO $47 = EB                    A:B3 X:02 Y:C0 P:64 SP:FB CYC:20190
	{Name: "SLO_ZP", Opcode: 0x07, Size: 2, Cycles: 5, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// EEA1  0F 47 06 *SLO $0647 = EB                  A:B3 X:02 Y:C3 P:64 SP:FB CYC:20402
	{Name: "SLO_ABS", Opcode: 0x0f, Size: 3, Cycles: 6, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// EEFE  13 45    *SLO ($45),Y = 0548 @ 0647       A:B3 X:02 Y:FF P:64 SP:FB CYC:20632
	{Name: "SLO_INY", Opcode: 0x13, Size: 2, Cycles: 8, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// EF5F  17 48    *SLO $48,X @ 47 = EB             A:B3 X:FF Y:C9 P:64 SP:FB CYC:20895
	{Name: "SLO_ZPX", Opcode: 0x17, Size: 2, Cycles: 6, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// EFAC  1B 48 05 *SLO $0548,Y @ 0647 = EB         A:B3 X:FF Y:FF P:64 SP:FB CYC:21110
	{Name: "SLO_ABY", Opcode: 0x1b, Size: 3, Cycles: 7, Comment: "SLO = ASL + ORA (Unofficial opcode)"},
	// F011  1F 48 05 *SLO $0548,X @ 0647 = EB         A:B3 X:FF Y:CF P:64 SP:FB CYC:21371
	{Name: "SLO_ABX", Opcode: 0x1f, Size: 3, Cycles: 7, Comment: "SLO = ASL + ORA (Unofficial opcode)"},

	// F06C  23 45    *RLA ($45,X) @ 47 = 0647         A:B3 X:02 Y:D2 P:E4 SP:FB CYC:21635
	{Name: "RLA_INX", Opcode: 0x23, Size: 2, Cycles: 8, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F0BC  27 47    *RLA $47 = EB                    A:B3 X:02 Y:D5 P:E4 SP:FB CYC:21860
	{Name: "RLA_ZP", Opcode: 0x27, Size: 2, Cycles: 5, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F108  2F 47 06 *RLA $0647 = EB                  A:B3 X:02 Y:D8 P:E4 SP:FB CYC:22072
	{Name: "RLA_ABS", Opcode: 0x2f, Size: 3, Cycles: 6, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F165  33 45    *RLA ($45),Y = 0548 @ 0647       A:B3 X:02 Y:FF P:E4 SP:FB CYC:22302
	{Name: "RLA_INY", Opcode: 0x33, Size: 2, Cycles: 8, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F1C6  37 48    *RLA $48,X @ 47 = EB             A:B3 X:FF Y:DE P:E4 SP:FB CYC:22565
	{Name: "RLA_ZPX", Opcode: 0x37, Size: 2, Cycles: 6, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F213  3B 48 05 *RLA $0548,Y @ 0647 = EB         A:B3 X:FF Y:FF P:E4 SP:FB CYC:22780
	{Name: "RLA_ABY", Opcode: 0x3b, Size: 3, Cycles: 7, Comment: "RLA = ROL + AND (Unofficial opcode)"},
	// F278  3F 48 05 *RLA $0548,X @ 0647 = EB         A:B3 X:FF Y:E5 P:E4 SP:FB CYC:23041
	{Name: "RLA_ABX", Opcode: 0x3f, Size: 3, Cycles: 7, Comment: "RLA = ROL + AND (Unofficial opcode)"},

	// F2D3  43 45    *SRE ($45,X) @ 47 = 0647         A:B3 X:02 Y:E8 P:64 SP:FB CYC:23305
	{Name: "SRE_INX", Opcode: 0x43, Size: 2, Cycles: 8, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F323  47 47    *SRE $47 = EB                    A:B3 X:02 Y:EB P:64 SP:FB CYC:23530
	{Name: "SRE_ZP", Opcode: 0x47, Size: 2, Cycles: 5, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F36F  4F 47 06 *SRE $0647 = EB                  A:B3 X:02 Y:EE P:64 SP:FB CYC:23742
	{Name: "SRE_ABS", Opcode: 0x4f, Size: 3, Cycles: 6, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F3CC  53 45    *SRE ($45),Y = 0548 @ 0647       A:B3 X:02 Y:FF P:64 SP:FB CYC:23972
	{Name: "SRE_INY", Opcode: 0x53, Size: 2, Cycles: 8, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F42D  57 48    *SRE $48,X @ 47 = EB             A:B3 X:FF Y:F4 P:64 SP:FB CYC:24235
	{Name: "SRE_ZPX", Opcode: 0x57, Size: 2, Cycles: 6, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F47A  5B 48 05 *SRE $0548,Y @ 0647 = EB         A:B3 X:FF Y:FF P:64 SP:FB CYC:24450
	{Name: "SRE_ABY", Opcode: 0x5b, Size: 3, Cycles: 7, Comment: "SRE = LSR + EOR (Unofficial opcode)"},
	// F4DF  5F 48 05 *SRE $0548,X @ 0647 = EB         A:B3 X:FF Y:FB P:64 SP:FB CYC:24711
	{Name: "SRE_ABX", Opcode: 0x5f, Size: 3, Cycles: 7, Comment: "SRE = LSR + EOR (Unofficial opcode)"},

	// F53A  63 45    *RRA ($45,X) @ 47 = 0647         A:B3 X:02 Y:FE P:24 SP:FB CYC:24975
	{Name: "RRA_INX", Opcode: 0x63, Size: 2, Cycles: 8, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F58A  67 47    *RRA $47 = EB                    A:B2 X:02 Y:01 P:A4 SP:FB CYC:25200
	{Name: "RRA_ZP", Opcode: 0x67, Size: 2, Cycles: 5, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F5D6  6F 47 06 *RRA $0647 = EB                  A:B2 X:02 Y:04 P:A4 SP:FB CYC:25412
	{Name: "RRA_ABS", Opcode: 0x6f, Size: 3, Cycles: 6, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F633  73 45    *RRA ($45),Y = 0548 @ 0647       A:B2 X:02 Y:FF P:A4 SP:FB CYC:25642
	{Name: "RRA_INY", Opcode: 0x73, Size: 2, Cycles: 8, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F694  77 48    *RRA $48,X @ 47 = EB             A:B2 X:FF Y:0A P:A4 SP:FB CYC:25905
	{Name: "RRA_ZPX", Opcode: 0x77, Size: 2, Cycles: 6, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F6E1  7B 48 05 *RRA $0548,Y @ 0647 = EB         A:B2 X:FF Y:FF P:A4 SP:FB CYC:26120
	{Name: "RRA_ABY", Opcode: 0x7b, Size: 3, Cycles: 7, Comment: "RRA = ROR + ADC (Unofficial opcode)"},
	// F746  7F 48 05 *RRA $0548,X @ 0647 = EB         A:B2 X:FF Y:10 P:A4 SP:FB CYC:26381
	{Name: "RRA_ABX", Opcode: 0x7f, Size: 3, Cycles: 7, Comment: "RRA = ROR + ADC (Unofficial opcode)"},

	// Undocumented NOP reads with an absolute indexed operand. They are
	// defined explicitly so the decode loop sees an addressing mode and
	// can charge the page boundary penalty cycle.
	{Name: "NOP_1C_ABX", Opcode: 0x1c, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
	{Name: "NOP_3C_ABX", Opcode: 0x3c, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
	{Name: "NOP_5C_ABX", Opcode: 0x5c, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
	{Name: "NOP_7C_ABX", Opcode: 0x7c, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
	{Name: "NOP_DC_ABX", Opcode: 0xdc, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
	{Name: "NOP_FC_ABX", Opcode: 0xfc, Size: 3, Cycles: 4, PageCrossPenalty: true, Comment: "NOP read (Unofficial opcode)"},
}
