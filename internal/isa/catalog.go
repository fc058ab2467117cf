// Package isa holds the precompiled GPU machine-code payloads used to
// exercise a driver's compute dispatch path.
//
// Each supported architecture has a Catalog exposing the same set of
// kernel names. Payloads are opaque instruction words; this package
// resolves them by name and copies them verbatim into caller-owned
// memory. All tables are read-only after package init, so catalogs are
// safe for concurrent use without locking.
package isa

import "fmt"

// KernelSource is the capability every architecture catalog provides.
type KernelSource interface {
	Architecture() Architecture
	ArchitectureName() string
	Kernel(name KernelName) (Kernel, error)
	CopyKernelInto(name KernelName, dst []byte) (int, error)
	Kernels() []KernelName
}

// Catalog is the set of kernels for one architecture.
type Catalog struct {
	arch      Architecture
	tables    map[KernelName][]uint32
	emptyGEMM bool
}

var _ KernelSource = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithEmptyGEMMKernels replaces every GEMM kernel with a lone s_endpgm.
// Useful when bring-up hardware cannot run the full GEMM payloads.
func WithEmptyGEMMKernels(enabled bool) Option {
	return func(c *Catalog) {
		c.emptyGEMM = enabled
	}
}

var archTables = map[Architecture]map[KernelName][]uint32{
	ArchGFX9:      gfx9Kernels,
	ArchAldebaran: aldebaranKernels,
}

// New returns the catalog for arch.
func New(arch Architecture, opts ...Option) (*Catalog, error) {
	tables, ok := archTables[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, arch)
	}
	c := &Catalog{arch: arch, tables: tables}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Catalogs returns a catalog for every supported architecture, in
// Architectures order, all built with opts.
func Catalogs(opts ...Option) ([]KernelSource, error) {
	sources := make([]KernelSource, 0, len(archTables))
	for _, arch := range Architectures() {
		c, err := New(arch, opts...)
		if err != nil {
			return nil, err
		}
		sources = append(sources, c)
	}
	return sources, nil
}

func (c *Catalog) Architecture() Architecture { return c.arch }

func (c *Catalog) ArchitectureName() string { return c.arch.String() }

// Kernels lists the names this catalog serves.
func (c *Catalog) Kernels() []KernelName {
	names := make([]KernelName, 0, len(c.tables))
	for _, n := range KernelNames() {
		if _, ok := c.tables[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// Kernel resolves name. The returned Kernel shares the catalog's
// read-only storage.
func (c *Catalog) Kernel(name KernelName) (Kernel, error) {
	words, ok := c.tables[name]
	if !ok {
		return Kernel{}, &UnknownKernelError{Name: name, Arch: c.arch}
	}
	if c.emptyGEMM && name.IsGEMM() {
		words = endpgm
	}
	return Kernel{Name: name, Arch: c.arch, words: words}, nil
}

// CopyKernelInto writes the kernel into the front of dst and returns the
// number of bytes written. dst is left untouched on error.
func (c *Catalog) CopyKernelInto(name KernelName, dst []byte) (int, error) {
	k, err := c.Kernel(name)
	if err != nil {
		return 0, err
	}
	if len(dst) < k.Size() {
		return 0, &BufferTooSmallError{Name: name, Arch: c.arch, Need: k.Size(), Have: len(dst)}
	}
	k.put(dst)
	return k.Size(), nil
}

var defaultCatalogs = func() map[Architecture]*Catalog {
	m := make(map[Architecture]*Catalog, len(archTables))
	for arch := range archTables {
		c, _ := New(arch)
		m[arch] = c
	}
	return m
}()

// Default returns the shared catalog for arch with default options.
func Default(arch Architecture) (*Catalog, error) {
	c, ok := defaultCatalogs[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, arch)
	}
	return c, nil
}

// GetKernel resolves (name, arch) against the default catalogs.
func GetKernel(name KernelName, arch Architecture) (Kernel, error) {
	c, ok := defaultCatalogs[arch]
	if !ok {
		return Kernel{}, &UnknownKernelError{Name: name, Arch: arch}
	}
	return c.Kernel(name)
}

// CopyKernelInto resolves (name, arch) against the default catalogs and
// copies the payload into dst.
func CopyKernelInto(name KernelName, arch Architecture, dst []byte) (int, error) {
	c, ok := defaultCatalogs[arch]
	if !ok {
		return 0, &UnknownKernelError{Name: name, Arch: arch}
	}
	return c.CopyKernelInto(name, dst)
}
