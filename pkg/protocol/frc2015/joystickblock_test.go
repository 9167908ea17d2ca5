package frc2015

import "testing"

type fakeJoystick struct {
	axes    [][]float64
	buttons []uint32
	nbtns   []int
	hats    [][]int16
}

func (f fakeJoystick) Count() int                { return len(f.axes) }
func (f fakeJoystick) Axes(i int) []float64       { return f.axes[i] }
func (f fakeJoystick) Buttons(i int) uint32       { return f.buttons[i] }
func (f fakeJoystick) ButtonCount(i int) int      { return f.nbtns[i] }
func (f fakeJoystick) Hats(i int) []int16         { return f.hats[i] }

func TestBuildJoystickBlockLayout(t *testing.T) {
	js := fakeJoystick{
		axes:    [][]float64{{1.0, -1.0, 0}},
		buttons: []uint32{0x0003},
		nbtns:   []int{10},
		hats:    [][]int16{{-1}},
	}

	block := buildJoystickBlock(js, 0)

	// len, tag, 3 axes, numButtons, hi, lo, numHats, 1 hat pair
	wantLen := 6 + 3 + 2
	if len(block) != wantLen {
		t.Fatalf("expected block length %d, got %d", wantLen, len(block))
	}
	if int(block[0]) != len(block)-1 {
		t.Fatalf("expected length byte = len-1 = %d, got %d", len(block)-1, block[0])
	}
	if block[1] != tagJoystick {
		t.Fatalf("expected tagJoystick, got %#x", block[1])
	}
	if block[2] != encodeAxis(1.0) || block[3] != encodeAxis(-1.0) || block[4] != encodeAxis(0) {
		t.Fatalf("unexpected axis bytes: %v", block[2:5])
	}
	if block[5] != 10 {
		t.Fatalf("expected numButtons 10, got %d", block[5])
	}
	if block[6] != 0x00 || block[7] != 0x03 {
		t.Fatalf("expected button mask 0x0003 big-endian, got %#x %#x", block[6], block[7])
	}
	if block[8] != 1 {
		t.Fatalf("expected numHats 1, got %d", block[8])
	}
}

func TestBuildJoystickBlocksConcatenatesInOrder(t *testing.T) {
	js := fakeJoystick{
		axes:    [][]float64{{}, {}},
		buttons: []uint32{0, 0},
		nbtns:   []int{0, 0},
		hats:    [][]int16{{}, {}},
	}

	out := buildJoystickBlocks(js)
	// two identical 6-byte blocks (no axes/hats)
	if len(out) != 12 {
		t.Fatalf("expected 12 bytes for two empty blocks, got %d", len(out))
	}
	if out[1] != tagJoystick || out[7] != tagJoystick {
		t.Fatalf("expected both blocks to carry tagJoystick")
	}
}

func TestEncodeAxisClamps(t *testing.T) {
	if got := encodeAxis(2.0); got != byte(int8(127)) {
		t.Fatalf("expected clamped +1.0 encoding, got %d", int8(got))
	}
	wantNeg := int8(-127)
	if got := encodeAxis(-2.0); got != byte(wantNeg) {
		t.Fatalf("expected clamped -1.0 encoding, got %d", int8(got))
	}
}
