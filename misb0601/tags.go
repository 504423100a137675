/*
Package misb0601 registers the MISB ST 0601 UAS Datalink Local Metadata
Set tag table against the core klv package's [klv.Registry]. It is data
only: every type and algorithm lives in klv; this package exists because
a registry with no entries cannot decode anything end-to-end.

The table below is a representative subset of ST 0601 (tags 1-25, 65 and
94, plus a nested Security Local Set at tag 48), adapted from the
reference klvdata tag definitions. Tags 26-47 are intentionally left
unregistered -- corner-offset, atmospheric, target-location and generic
flag fields the source itself carried only as commented-out scaffolding
-- and decode as unknown elements, which is the correct outcome for any
tag with no registered parser.
*/
package misb0601

import "github.com/paretech/go-klv0601"

// UASDatalinkLocalSetRegistry is the Registry for the UAS Datalink Local
// Set's own tag space (the direct children of the set keyed by UL
// klv.UASDatalinkLocalSetUL at the stream level).
var UASDatalinkLocalSetRegistry = newUASRegistry()

// ULRegistry dispatches klv.UASDatalinkLocalSetUL to
// UASDatalinkLocalSetRegistry, ready to hand to a klv.StreamParser.
var ULRegistry = newULRegistry()

func newULRegistry() *klv.ULRegistry {
	r := klv.NewULRegistry()
	r.Register(klv.UASDatalinkLocalSetUL, "UAS Datalink Local Set", UASDatalinkLocalSetRegistry)
	return r
}

func mustMapped(domainLo, domainHi int64, rangeLo, rangeHi float64, units string) klv.MappedParser {
	p, err := klv.NewMappedParser(domainLo, domainHi, rangeLo, rangeHi, units)
	if err != nil {
		panic(err)
	}
	return p
}

func newUASRegistry() *klv.Registry {
	r := klv.NewRegistry()

	r.RegisterTag(0x01, "Checksum", klv.BytesParser{})
	r.RegisterTag(0x02, "Precision Timestamp", klv.TimestampParser{})
	r.RegisterTag(0x03, "Mission ID", klv.StringParser{})
	r.RegisterTag(0x04, "Platform Tail Number", klv.StringParser{})

	r.RegisterTag(0x05, "Platform Heading Angle", mustMapped(0, 1<<16-1, 0, 360, "degrees"))
	r.RegisterTag(0x06, "Platform Pitch Angle", mustMapped(-(1<<15 - 1), 1<<15-1, -20, 20, "degrees"))
	r.RegisterTag(0x07, "Platform Roll Angle", mustMapped(-(1<<15 - 1), 1<<15-1, -50, 50, "degrees"))
	r.RegisterTag(0x08, "Platform True Airspeed", mustMapped(0, 1<<8-1, 0, 255, "meters/second"))
	r.RegisterTag(0x09, "Platform Indicated Airspeed", mustMapped(0, 1<<8-1, 0, 255, "meters/second"))

	r.RegisterTag(0x0A, "Platform Designation", klv.StringParser{})
	r.RegisterTag(0x0B, "Image Source Sensor", klv.StringParser{})
	r.RegisterTag(0x0C, "Image Coordinate System", klv.StringParser{})

	r.RegisterTag(0x0D, "Sensor Latitude", mustMapped(-(1<<31 - 1), 1<<31-1, -90, 90, "degrees"))
	r.RegisterTag(0x0E, "Sensor Longitude", mustMapped(-(1<<31 - 1), 1<<31-1, -180, 180, "degrees"))
	r.RegisterTag(0x0F, "Sensor True Altitude", mustMapped(0, 1<<16-1, -900, 19000, "meters"))
	r.RegisterTag(0x10, "Sensor Horizontal Field of View", mustMapped(0, 1<<16-1, 0, 180, "degrees"))
	r.RegisterTag(0x11, "Sensor Vertical Field of View", mustMapped(0, 1<<16-1, 0, 180, "degrees"))
	r.RegisterTag(0x12, "Sensor Relative Azimuth Angle", mustMapped(0, 1<<32-1, 0, 360, "degrees"))
	r.RegisterTag(0x13, "Sensor Relative Elevation Angle", mustMapped(-(1<<31 - 1), 1<<31-1, -180, 180, "degrees"))
	r.RegisterTag(0x14, "Sensor Relative Roll Angle", mustMapped(0, 1<<32-1, 0, 360, "degrees"))

	r.RegisterTag(0x15, "Slant Range", mustMapped(0, 1<<32-1, 0, 5e6, "meters"))
	r.RegisterTag(0x16, "Target Width", mustMapped(0, 1<<16-1, 0, 10e3, "meters"))

	r.RegisterTag(0x17, "Frame Center Latitude", mustMapped(-(1<<31 - 1), 1<<31-1, -90, 90, "degrees"))
	r.RegisterTag(0x18, "Frame Center Longitude", mustMapped(-(1<<31 - 1), 1<<31-1, -180, 180, "degrees"))
	// Domain is (0, 2^16), not 2^16-1: the source table carries this one
	// field with the upper bound inclusive of 65536, an asymmetry from
	// the rest of the unsigned 16-bit fields that this table preserves
	// rather than silently normalizing away.
	r.RegisterTag(0x19, "Frame Center Elevation", mustMapped(0, 1<<16, -900, 19000, "meters"))

	r.RegisterTag(0x30, "Security Local Metadata Set", klv.SetParser{Registry: securityLocalSetRegistry()})

	r.RegisterTag(0x41, "UAS Datalink LS Version Number", klv.IntegerParser{DomainLo: 0, DomainHi: 1<<8 - 1})
	r.RegisterTag(0x5E, "MIIS Core Identifier", klv.BytesParser{})

	return r
}

/*
securityLocalSetRegistry builds a minimal ST 0102 tag table: enough to
demonstrate a set-within-set composition (spec.md §3, §9) where a parent
registry entry's factory is itself a [klv.SetParser] with its own distinct
registry. It is not a complete ST 0102 implementation, any more than the
tags above are a complete ST 0601 implementation.
*/
func securityLocalSetRegistry() *klv.Registry {
	r := klv.NewRegistry()
	r.RegisterTag(0x01, "Security Classification", klv.BytesParser{})
	r.RegisterTag(0x02, "Classifying Country and Releasing Instructions Country Coding Method", klv.BytesParser{})
	r.RegisterTag(0x03, "Classifying Country", klv.StringParser{})
	r.RegisterTag(0x14, "Releasing Instructions Country Coding", klv.StringParser{})
	return r
}
