package proto

import (
	"bytes"
	"testing"
)

func TestVarInt(t *testing.T) {
	tests := []struct {
		value    int32
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xFF, 0x01}},
		{25565, []byte{0xDD, 0xC7, 0x01}},
		{2097151, []byte{0xFF, 0xFF, 0x7F}},
		{2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			w := NewWriter()
			w.VarInt(tt.value)
			if !bytes.Equal(w.Bytes(), tt.expected) {
				t.Errorf("VarInt(%d) = %v, want %v", tt.value, w.Bytes(), tt.expected)
			}
			if got := VarIntSize(tt.value); got != len(tt.expected) {
				t.Errorf("VarIntSize(%d) = %d, want %d", tt.value, got, len(tt.expected))
			}

			r := NewReader(bytes.NewReader(tt.expected))
			val, err := r.VarInt()
			if err != nil {
				t.Fatalf("VarInt() error: %v", err)
			}
			if val != tt.value {
				t.Errorf("VarInt() = %d, want %d", val, tt.value)
			}
		})
	}
}

func TestVarIntTooBig(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}))
	if _, err := r.VarInt(); err != ErrVarIntTooBig {
		t.Fatalf("expected ErrVarIntTooBig, got %v", err)
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		w := NewWriter()
		w.VarLong(v)
		if len(w.Bytes()) > 10 {
			t.Fatalf("VarLong(%d) encoded too long: %d bytes", v, len(w.Bytes()))
		}
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.VarLong()
		if err != nil {
			t.Fatalf("VarLong() error: %v", err)
		}
		if got != v {
			t.Errorf("VarLong round trip = %d, want %d", got, v)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{"", "Hello", "Hello, World!", "日本語テスト"}
	for _, s := range tests {
		w := NewWriter()
		w.String(s)
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.String()
		if err != nil {
			t.Fatalf("String() error: %v", err)
		}
		if got != s {
			t.Errorf("String round trip = %q, want %q", got, s)
		}
	}
}

func TestStringSubstitutesInvalidUTF8(t *testing.T) {
	w := NewWriter()
	raw := []byte{'h', 'i', 0xFF, 'a'}
	w.VarInt(int32(len(raw)))
	w.Write(raw)

	r := NewReader(bytes.NewReader(w.Bytes()))
	got, err := r.String()
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	if want := "hi?a"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBoolRejectsNonBinary(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x02}))
	if _, err := r.Bool(); err != ErrBadBool {
		t.Fatalf("expected ErrBadBool, got %v", err)
	}
}

func TestFrameOverrun(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	r.SetRemaining(2)
	if _, err := r.Int32(); err != ErrFrameOverrun {
		t.Fatalf("expected ErrFrameOverrun, got %v", err)
	}
	if r.Remaining != 2 {
		t.Fatalf("overrun read must not consume frame budget, remaining = %d", r.Remaining)
	}
}

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Int16(-1234)
	w.Uint16(54321)
	w.Int32(-123456789)
	w.Int64(-1234567890123456789)
	w.Float32(3.14159)
	w.Float64(2.718281828459045)

	r := NewReader(bytes.NewReader(w.Bytes()))
	if v, _ := r.Int16(); v != -1234 {
		t.Errorf("Int16 = %d, want -1234", v)
	}
	if v, _ := r.Uint16(); v != 54321 {
		t.Errorf("Uint16 = %d, want 54321", v)
	}
	if v, _ := r.Int32(); v != -123456789 {
		t.Errorf("Int32 = %d, want -123456789", v)
	}
	if v, _ := r.Int64(); v != -1234567890123456789 {
		t.Errorf("Int64 = %d, want -1234567890123456789", v)
	}
	if v, _ := r.Float32(); v != 3.14159 {
		t.Errorf("Float32 = %v, want 3.14159", v)
	}
	if v, _ := r.Float64(); v != 2.718281828459045 {
		t.Errorf("Float64 = %v, want 2.718281828459045", v)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Position(8, 64, -8)
	r := NewReader(bytes.NewReader(w.Bytes()))
	x, y, z, err := r.Position()
	if err != nil {
		t.Fatalf("Position() error: %v", err)
	}
	if x != 8 || y != 64 || z != -8 {
		t.Errorf("Position round trip = (%d,%d,%d), want (8,64,-8)", x, y, z)
	}
}
