package util

// TeamOctets splits a team number into the third and fourth octets of
// the 10.te.am.x addressing scheme used by RadioAddress/RobotAddress
// (§6), following the same digit-extraction idiom as the teacher's
// NumberToMAC.
func TeamOctets(team uint16) (te, am int) {
	t := int(team)
	return t / 100, t % 100
}
