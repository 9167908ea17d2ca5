package joystick

import (
	"sync"

	"github.com/0xcafed00d/joystick"
	"github.com/hashicorp/go-hclog"
)

// OSSource reads real, OS-attached game controllers through
// github.com/0xcafed00d/joystick. It is grounded on the teacher's
// pkg/gamepad controller, generalized from that package's fixed
// Xbox-pad field layout to the Driver Station's arbitrary
// axis/button/hat-count model.
type OSSource struct {
	l hclog.Logger

	mu     sync.RWMutex
	sticks []joystick.Joystick
	cached []cachedState
}

type cachedState struct {
	axes        []float64
	buttons     uint32
	buttonCount int
}

// Option configures an OSSource at construction time.
type Option func(*OSSource)

// WithLogger sets the logging instance used by the source.
func WithLogger(l hclog.Logger) Option {
	return func(o *OSSource) { o.l = l.Named("joystick") }
}

// NewOSSource returns a joystick source bound to no controllers yet;
// call Bind to attach one.
func NewOSSource(opts ...Option) *OSSource {
	o := &OSSource{l: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Bind attaches OS joystick device id as the next enumeration slot.
func (o *OSSource) Bind(id int) error {
	js, err := joystick.Open(id)
	if err != nil {
		return err
	}

	o.mu.Lock()
	o.sticks = append(o.sticks, js)
	o.cached = append(o.cached, cachedState{})
	o.mu.Unlock()

	o.l.Info("Bound joystick", "id", id, "count", len(o.sticks))
	return nil
}

// Close releases every bound joystick device.
func (o *OSSource) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, js := range o.sticks {
		js.Close()
	}
	o.sticks = nil
	o.cached = nil
}

// Poll reads fresh state from every bound joystick. It should be
// called once per control loop tick, ahead of the packet being built,
// matching the teacher's UpdateState/GetState split in pkg/gamepad.
func (o *OSSource) Poll() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, js := range o.sticks {
		state, err := js.Read()
		if err != nil {
			o.l.Warn("Error reading joystick", "index", i, "error", err)
			continue
		}

		axes := make([]float64, len(state.AxisData))
		for a, v := range state.AxisData {
			axes[a] = float64(v) / 32767.0
		}

		o.cached[i] = cachedState{
			axes:        axes,
			buttons:     uint32(state.Buttons),
			buttonCount: js.ButtonCount(),
		}
	}
	return nil
}

// Count implements Source.
func (o *OSSource) Count() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.sticks)
}

// Axes implements Source.
func (o *OSSource) Axes(i int) []float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if i < 0 || i >= len(o.cached) {
		return nil
	}
	return o.cached[i].axes
}

// Buttons implements Source.
func (o *OSSource) Buttons(i int) uint32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if i < 0 || i >= len(o.cached) {
		return 0
	}
	return o.cached[i].buttons
}

// ButtonCount implements Source.
func (o *OSSource) ButtonCount(i int) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if i < 0 || i >= len(o.cached) {
		return 0
	}
	return o.cached[i].buttonCount
}

// Hats implements Source. The underlying joystick library does not
// expose POV/hat switches on every platform, so OSSource always
// returns nil: every joystick reports zero hats.
func (o *OSSource) Hats(int) []int16 {
	return nil
}
