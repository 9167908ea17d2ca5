package frc2015

import "github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"

// buildJoystickBlocks builds one §4.2.2 joystick block per attached
// joystick, concatenated in enumeration order. The source's equivalent
// loop writes axis bytes over the block's own length byte before
// writing the button/hat fields after it, an off-by-one the field
// table in §4.2.2 does not show; this mirrors the table, not that
// artifact (SPEC_FULL.md §9).
func buildJoystickBlocks(js joystick.Source) []byte {
	var out []byte

	for i := 0; i < js.Count(); i++ {
		out = append(out, buildJoystickBlock(js, i)...)
	}

	return out
}

func buildJoystickBlock(js joystick.Source, i int) []byte {
	axes := js.Axes(i)
	hats := js.Hats(i)

	block := make([]byte, 6+len(axes)+2*len(hats))

	block[0] = byte(len(block) - 1)
	block[1] = tagJoystick

	pos := 2
	for _, a := range axes {
		block[pos] = encodeAxis(a)
		pos++
	}

	buttons := js.Buttons(i)
	numButtons := js.ButtonCount(i)
	block[pos] = byte(numButtons)
	block[pos+1] = byte(buttons >> 8)
	block[pos+2] = byte(buttons)
	pos += 3

	block[pos] = byte(len(hats))
	pos++
	for _, h := range hats {
		block[pos] = byte(h >> 8)
		block[pos+1] = byte(h)
		pos += 2
	}

	return block
}

// encodeAxis implements §4.2.2's axis encoding: each value in
// [-1.0, +1.0] is scaled by 127 and stored as a signed 8-bit value.
func encodeAxis(v float64) byte {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return byte(int8(v * 127))
}
