package cpu

import "testing"

var unassigned = map[uint8]bool{
	0xCB: true, 0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true,
	0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestDecode(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			in, ok := Decode(uint8(i), false)
			if ok == unassigned[uint8(i)] {
				t.Errorf("0x%02X: expected assigned %v, got %v", i, !unassigned[uint8(i)], ok)
				continue
			}
			if !ok {
				continue
			}
			if l := in.Length(); l < 1 || l > 3 {
				t.Errorf("0x%02X: invalid length %d", i, l)
			}
			if baseCycles[i] == 0 {
				t.Errorf("0x%02X: missing cycle count", i)
			}
		}
	})
	t.Run("prefixed", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			in, ok := Decode(uint8(i), true)
			if !ok {
				t.Errorf("CB 0x%02X: expected assigned", i)
			}
			if !in.Prefixed || in.Length() != 2 {
				t.Errorf("CB 0x%02X: expected prefixed 2 byte instruction, got %+v", i, in)
			}
		}
	})
	t.Run("pure", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			a, _ := Decode(uint8(i), false)
			b, _ := Decode(uint8(i), false)
			if a != b {
				t.Errorf("0x%02X: decode is not deterministic", i)
			}
		}
	})
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode   uint8
		prefixed bool
		want     string
		length   uint16
	}{
		{0x00, false, "NOP", 1},
		{0x01, false, "LD BC, d16", 3},
		{0x08, false, "LD (a16), SP", 3},
		{0x10, false, "STOP", 2},
		{0x20, false, "JR NZ, e8", 2},
		{0x2A, false, "LD A, (HL+)", 1},
		{0x36, false, "LD (HL), d8", 2},
		{0x76, false, "HALT", 1},
		{0x86, false, "ADD A, (HL)", 1},
		{0xC0, false, "RET NZ", 1},
		{0xC3, false, "JP a16", 3},
		{0xC9, false, "RET", 1},
		{0xCD, false, "CALL a16", 3},
		{0xE0, false, "LD (a8), A", 2},
		{0xE8, false, "ADD SP, e8", 2},
		{0xE9, false, "JP HL", 1},
		{0xEA, false, "LD (a16), A", 3},
		{0xF2, false, "LD A, (C)", 1},
		{0xF8, false, "LD HL, SP+e8", 2},
		{0xFE, false, "CP A, d8", 2},
		{0xFF, false, "RST 38h", 1},
		{0x11, true, "RL C", 2},
		{0x37, true, "SWAP A", 2},
		{0x7C, true, "BIT 7, H", 2},
		{0x86, true, "RES 0, (HL)", 2},
		{0xFF, true, "SET 7, A", 2},
	}
	for _, tt := range tests {
		in, ok := Decode(tt.opcode, tt.prefixed)
		if !ok {
			t.Fatalf("0x%02X: expected assigned", tt.opcode)
		}
		if got := in.String(); got != tt.want {
			t.Errorf("0x%02X: expected %q, got %q", tt.opcode, tt.want, got)
		}
		if got := in.Length(); got != tt.length {
			t.Errorf("%s: expected length %d, got %d", tt.want, tt.length, got)
		}
	}
}
