// Package joystick abstracts over enumerable game controllers. The
// Driver Station kernel only needs axis/button/hat values at packet-
// build time; how those values are captured (a real OS joystick
// device, a test double, or a UI-driven virtual pad) is external to
// the protocol and scheduler core.
package joystick

// Source is the capability the Protocol Descriptor needs from
// whatever supplies joystick state: a stable count of attached
// controllers, and per-controller axis/button/hat values in
// enumeration order.
type Source interface {
	// Count returns the number of currently attached joysticks.
	Count() int
	// Axes returns the axis values of joystick i, each in [-1.0, 1.0].
	Axes(i int) []float64
	// Buttons returns a bitmask of joystick i's button state; bit b
	// set means button b is pressed, low-numbered buttons in low bits.
	Buttons(i int) uint32
	// ButtonCount returns how many buttons joystick i reports, which
	// may be fewer than 32 even though Buttons returns a uint32 mask.
	ButtonCount(i int) int
	// Hats returns the hat (POV) angles of joystick i in centidegrees,
	// or -1 for a centered hat.
	Hats(i int) []int16
}

// NullSource always reports zero attached joysticks. It is useful for
// headless operation and for tests that don't care about joystick
// payloads.
type NullSource struct{}

// Count implements Source.
func (NullSource) Count() int { return 0 }

// Axes implements Source.
func (NullSource) Axes(int) []float64 { return nil }

// Buttons implements Source.
func (NullSource) Buttons(int) uint32 { return 0 }

// ButtonCount implements Source.
func (NullSource) ButtonCount(int) int { return 0 }

// Hats implements Source.
func (NullSource) Hats(int) []int16 { return nil }
