package cpu

import "testing"

func TestALU_Add(t *testing.T) {
	c, _ := newCPUWithProgram()
	for a := 0; a < 256; a++ {
		for n := 0; n < 256; n++ {
			for _, carry := range []bool{false, true} {
				c.A = uint8(a)
				c.F = Flags{Carry: carry}
				c.add(uint8(n), true)

				cy := 0
				if carry {
					cy = 1
				}
				want := Flags{
					Zero:      uint8(a+n+cy) == 0,
					HalfCarry: a&0xF+n&0xF+cy > 0xF,
					Carry:     a+n+cy > 0xFF,
				}
				if c.A != uint8(a+n+cy) || c.F != want {
					t.Fatalf("ADC %02x+%02x+%d: expected %02x %+v, got %02x %+v", a, n, cy, uint8(a+n+cy), want, c.A, c.F)
				}
			}
		}
	}
}

func TestALU_Sub(t *testing.T) {
	c, _ := newCPUWithProgram()
	for a := 0; a < 256; a++ {
		for n := 0; n < 256; n++ {
			for _, carry := range []bool{false, true} {
				c.A = uint8(a)
				c.F = Flags{Carry: carry}
				c.sub(uint8(n), true)

				cy := 0
				if carry {
					cy = 1
				}
				want := Flags{
					Zero:      uint8(a-n-cy) == 0,
					Subtract:  true,
					HalfCarry: a&0xF-n&0xF-cy < 0,
					Carry:     a-n-cy < 0,
				}
				if c.A != uint8(a-n-cy) || c.F != want {
					t.Fatalf("SBC %02x-%02x-%d: expected %02x %+v, got %02x %+v", a, n, cy, uint8(a-n-cy), want, c.A, c.F)
				}
			}
		}
	}
}

func TestALU_Compare(t *testing.T) {
	c, _ := newCPUWithProgram()
	c.A = 0x3C
	c.compare(0x2F)
	if c.A != 0x3C {
		t.Errorf("expected A unchanged, got 0x%02x", c.A)
	}
	if c.F != (Flags{Subtract: true, HalfCarry: true}) {
		t.Errorf("expected N H set, got %+v", c.F)
	}
	c.compare(0x3C)
	if c.F != (Flags{Zero: true, Subtract: true}) {
		t.Errorf("expected Z N set, got %+v", c.F)
	}
	c.compare(0x40)
	if c.F != (Flags{Subtract: true, Carry: true}) {
		t.Errorf("expected N C set, got %+v", c.F)
	}
}

func TestALU_IncrementDecrement(t *testing.T) {
	c, _ := newCPUWithProgram()
	for n := 0; n < 256; n++ {
		for _, carry := range []bool{false, true} {
			c.F = Flags{Carry: carry}
			got := c.increment(uint8(n))
			want := Flags{Zero: uint8(n+1) == 0, HalfCarry: n&0xF == 0xF, Carry: carry}
			if got != uint8(n+1) || c.F != want {
				t.Fatalf("INC %02x: expected %+v, got %02x %+v", n, want, got, c.F)
			}

			c.F = Flags{Carry: carry}
			got = c.decrement(uint8(n))
			want = Flags{Zero: uint8(n-1) == 0, Subtract: true, HalfCarry: n&0xF == 0, Carry: carry}
			if got != uint8(n-1) || c.F != want {
				t.Fatalf("DEC %02x: expected %+v, got %02x %+v", n, want, got, c.F)
			}
		}
	}
}

func TestALU_AddHL(t *testing.T) {
	tests := []struct {
		hl, n, want uint16
		flags       Flags
	}{
		{0x0FFF, 0x0001, 0x1000, Flags{Zero: true, HalfCarry: true}},
		{0xFFFF, 0x0001, 0x0000, Flags{Zero: true, HalfCarry: true, Carry: true}},
		{0x1000, 0x1000, 0x2000, Flags{Zero: true}},
	}
	c, _ := newCPUWithProgram()
	for _, tt := range tests {
		c.HL.SetUint16(tt.hl)
		c.F = Flags{Zero: true, Subtract: true}
		c.addHL(tt.n)
		if got := c.HL.Uint16(); got != tt.want || c.F != tt.flags {
			t.Errorf("ADD HL %04x+%04x: expected %04x %+v, got %04x %+v", tt.hl, tt.n, tt.want, tt.flags, got, c.F)
		}
	}
}

func TestALU_Logic(t *testing.T) {
	c, _ := newCPUWithProgram()
	c.A = 0xF0
	c.and(0x0F)
	if c.A != 0 || c.F != (Flags{Zero: true, HalfCarry: true}) {
		t.Errorf("AND: got %02x %+v", c.A, c.F)
	}
	c.or(0x81)
	if c.A != 0x81 || c.F != (Flags{}) {
		t.Errorf("OR: got %02x %+v", c.A, c.F)
	}
	c.xor(0x81)
	if c.A != 0 || c.F != (Flags{Zero: true}) {
		t.Errorf("XOR: got %02x %+v", c.A, c.F)
	}
	c.complement()
	if c.A != 0xFF || c.F != (Flags{Zero: true, Subtract: true, HalfCarry: true}) {
		t.Errorf("CPL: got %02x %+v", c.A, c.F)
	}
	c.setCarryFlag()
	if c.F != (Flags{Zero: true, Carry: true}) {
		t.Errorf("SCF: got %+v", c.F)
	}
	c.complementCarryFlag()
	if c.F != (Flags{Zero: true}) {
		t.Errorf("CCF: got %+v", c.F)
	}
}

func TestRotate(t *testing.T) {
	c, _ := newCPUWithProgram()
	tests := []struct {
		name    string
		fn      func(uint8) uint8
		in      uint8
		carryIn bool
		want    uint8
		carry   bool
	}{
		{"RLC", c.rotateLeftCarry, 0x85, false, 0x0B, true},
		{"RRC", c.rotateRightCarry, 0x01, false, 0x80, true},
		{"RL", c.rotateLeftThroughCarry, 0x80, false, 0x00, true},
		{"RL carry", c.rotateLeftThroughCarry, 0x11, true, 0x23, false},
		{"RR", c.rotateRightThroughCarry, 0x01, false, 0x00, true},
		{"RR carry", c.rotateRightThroughCarry, 0x8A, true, 0xC5, false},
		{"SLA", c.shiftLeftArithmetic, 0xFF, false, 0xFE, true},
		{"SRA", c.shiftRightArithmetic, 0x8A, false, 0xC5, false},
		{"SRL", c.shiftRightLogical, 0x01, false, 0x00, true},
		{"SWAP", c.swap, 0xF1, true, 0x1F, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.F = Flags{Carry: tt.carryIn}
			got := tt.fn(tt.in)
			if got != tt.want {
				t.Errorf("expected 0x%02x, got 0x%02x", tt.want, got)
			}
			if c.F.Carry != tt.carry || c.F.Zero != (got == 0) {
				t.Errorf("unexpected flags %+v", c.F)
			}
		})
	}
}
