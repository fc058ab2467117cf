package isa

import (
	"fmt"
	"strings"
)

// Architecture identifies the GPU instruction encoding a kernel targets.
type Architecture int

const (
	ArchUnknown Architecture = iota
	ArchGFX9
	ArchAldebaran
)

var archNames = map[Architecture]string{
	ArchGFX9:      "GFX9",
	ArchAldebaran: "ALDEBARAN",
}

// gfx target ids as reported by the ROCm runtime and KFD topology.
var gfxTargets = map[string]Architecture{
	"gfx900": ArchGFX9,
	"gfx902": ArchGFX9,
	"gfx904": ArchGFX9,
	"gfx906": ArchGFX9,
	"gfx908": ArchGFX9,
	"gfx909": ArchGFX9,
	"gfx90c": ArchGFX9,
	"gfx90a": ArchAldebaran,
}

// String returns the fixed display name used for logging and selection.
func (a Architecture) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Architecture(%d)", int(a))
}

// Valid reports whether a names a supported architecture.
func (a Architecture) Valid() bool {
	_, ok := archNames[a]
	return ok
}

// Architectures returns every supported architecture in a stable order.
func Architectures() []Architecture {
	return []Architecture{ArchAldebaran, ArchGFX9}
}

// ParseArchitecture accepts a display name ("ALDEBARAN", "gfx9") or a gfx
// target id ("gfx90a").
func ParseArchitecture(s string) (Architecture, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for arch, name := range archNames {
		if strings.ToLower(name) == key {
			return arch, nil
		}
	}
	if arch, ok := gfxTargets[key]; ok {
		return arch, nil
	}
	return ArchUnknown, fmt.Errorf("%w: %q", ErrUnsupportedArchitecture, s)
}

// ArchitectureName returns the display name of arch.
func ArchitectureName(arch Architecture) string {
	return arch.String()
}
