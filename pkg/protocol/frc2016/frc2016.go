// Package frc2016 registers the 2016-era Protocol Descriptor. The
// control-system family kept the 2015 wire format unchanged through
// this era, so the descriptor is frc2015's embedded verbatim, with
// only the era identity overridden (SPEC_FULL.md's Open Question
// decision on post-2015 eras).
package frc2016

import (
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2015"
)

func init() {
	protocol.Register(protocol.Era2016, func() protocol.Descriptor { return New() })
}

// Descriptor is the 2016-era descriptor: frc2015's wire format and
// latch behavior, reporting Era2016.
type Descriptor struct {
	*frc2015.Descriptor
}

// New returns a fresh 2016-era descriptor.
func New() *Descriptor {
	return &Descriptor{Descriptor: frc2015.New()}
}

// Era implements protocol.Descriptor, overriding the embedded
// frc2015.Descriptor's value.
func (d *Descriptor) Era() protocol.Era { return protocol.Era2016 }
