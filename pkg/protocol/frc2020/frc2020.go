// Package frc2020 registers the 2020-era Protocol Descriptor. Like
// frc2016, this era carries the 2015 wire format forward unchanged
// (SPEC_FULL.md's Open Question decision on post-2015 eras).
package frc2020

import (
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2015"
)

func init() {
	protocol.Register(protocol.Era2020, func() protocol.Descriptor { return New() })
}

// Descriptor is the 2020-era descriptor: frc2015's wire format and
// latch behavior, reporting Era2020.
type Descriptor struct {
	*frc2015.Descriptor
}

// New returns a fresh 2020-era descriptor.
func New() *Descriptor {
	return &Descriptor{Descriptor: frc2015.New()}
}

// Era implements protocol.Descriptor, overriding the embedded
// frc2015.Descriptor's value.
func (d *Descriptor) Era() protocol.Era { return protocol.Era2020 }
