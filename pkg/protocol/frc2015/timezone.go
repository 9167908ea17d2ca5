package frc2015

// buildTimezoneBlock builds the §4.2.2 timezone block an outgoing
// robot packet carries whenever the most recent robot ingress
// requested the time.
// The source sizes this buffer with a realloc that writes past the
// original allocation (SPEC_FULL.md §9); here the buffer is allocated
// to its final size up front instead.
func buildTimezoneBlock() []byte {
	t := now()
	zone, _ := t.Zone()

	block := make([]byte, 12+len(zone))
	block[0] = 0x0b
	block[1] = tagDate
	block[2] = 0x00
	block[3] = 0x00
	block[4] = byte(t.Second())
	block[5] = byte(t.Minute())
	block[6] = byte(t.Hour())
	block[7] = byte(t.YearDay())
	block[8] = byte(t.Month())
	block[9] = byte(t.Year() - 1900)
	block[10] = byte(len(zone))
	block[11] = tagTimezone

	// The source's equivalent loop uses i > length as its continuation
	// condition, which never runs; the intended behavior is i < length
	// (SPEC_FULL.md §9).
	for i := 0; i < len(zone); i++ {
		block[12+i] = zone[i]
	}

	return block
}
