// Package adreno decodes the opaque 32-bit KGSL chip identifier into a
// structured Adreno hardware classification.
package adreno

import "fmt"

// ChipID is the decoded form of a raw chip identifier. The four version
// fields are an exact decomposition of the raw value; the name, generation
// and platform labels are lossy lookups over the decoded version.
type ChipID struct {
	Raw      uint32
	Major    uint8 // bits 31-24
	Minor    uint8 // bits 23-16
	Patch    uint8 // bits 15-8
	Revision uint8 // bits 7-0

	ModelName  string
	Generation string
	Platform   string // typical SoC family, "" when no known mapping
}

// Decode classifies a raw chip identifier. It is total: every 32-bit
// input yields a structurally valid result, falling back to the default
// model name and "Unknown" generation for versions not in the tables.
func Decode(raw uint32) ChipID {
	c := ChipID{
		Raw:      raw,
		Major:    uint8(raw >> 24),
		Minor:    uint8(raw >> 16),
		Patch:    uint8(raw >> 8),
		Revision: uint8(raw),
	}

	c.Generation = generationNames[c.Major]
	if c.Generation == "" {
		c.Generation = "Unknown"
	}

	if m, ok := models[modelKey{c.Major, c.Minor}]; ok {
		c.ModelName = m.name
		c.Platform = m.platform
	} else {
		c.ModelName = defaultModelName
	}
	return c
}

// String formats the identifier the way the driver reports it
func (c ChipID) String() string {
	return fmt.Sprintf("0x%08x (v%d.%d.%d.%d)", c.Raw, c.Major, c.Minor, c.Patch, c.Revision)
}
