package gpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/fxnlabs/kfd-isa/internal/memory"
	"github.com/fxnlabs/kfd-isa/internal/metrics"
	"go.uber.org/zap"
)

const (
	SourceConfig   = "config"
	SourceTopology = "topology"
)

// Manager resolves the catalog for the target hardware and loads kernels
// out of it.
type Manager struct {
	catalog *isa.Catalog
	source  string
	logger  *zap.Logger
}

// NewManager selects the architecture named in cfg, or detects it from the
// KFD topology when cfg asks for "auto".
func NewManager(cfg config.CatalogConfig, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("gpu")

	arch, source, err := resolveArchitecture(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := isa.New(arch, isa.WithEmptyGEMMKernels(cfg.EmptyGEMMKernels))
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog: %w", err)
	}

	metrics.SelectedArchitecture.WithLabelValues(arch.String(), source).Set(1)
	logger.Info("selected ISA catalog",
		zap.String("architecture", arch.String()),
		zap.String("source", source),
		zap.Bool("emptyGemmKernels", cfg.EmptyGEMMKernels),
	)

	return &Manager{
		catalog: catalog,
		source:  source,
		logger:  logger,
	}, nil
}

func resolveArchitecture(cfg config.CatalogConfig) (isa.Architecture, string, error) {
	if !strings.EqualFold(cfg.Architecture, config.ArchitectureAuto) {
		arch, err := isa.ParseArchitecture(cfg.Architecture)
		if err != nil {
			return isa.ArchUnknown, "", err
		}
		return arch, SourceConfig, nil
	}
	arch, err := DetectArchitecture(cfg.TopologyPath)
	if err != nil {
		return isa.ArchUnknown, "", fmt.Errorf("failed to detect architecture: %w", err)
	}
	return arch, SourceTopology, nil
}

// Catalog returns the selected catalog.
func (m *Manager) Catalog() *isa.Catalog {
	return m.catalog
}

// Architecture returns the selected architecture.
func (m *Manager) Architecture() isa.Architecture {
	return m.catalog.Architecture()
}

// Source reports whether the architecture came from config or topology.
func (m *Manager) Source() string {
	return m.source
}

// CopyKernel copies a kernel into a buffer owned by the caller.
func (m *Manager) CopyKernel(name isa.KernelName, dst []byte) (int, error) {
	arch := m.catalog.ArchitectureName()
	n, err := m.catalog.CopyKernelInto(name, dst)
	if err != nil {
		metrics.KernelCopyErrors.WithLabelValues(arch, errorReason(err)).Inc()
		m.logger.Warn("kernel copy failed",
			zap.String("kernel", string(name)),
			zap.String("architecture", arch),
			zap.Error(err),
		)
		return 0, err
	}

	metrics.KernelCopies.WithLabelValues(arch, string(name)).Inc()
	metrics.KernelCopyBytes.WithLabelValues(arch).Add(float64(n))
	m.logger.Debug("kernel copied",
		zap.String("kernel", string(name)),
		zap.String("architecture", arch),
		zap.Int("bytes", n),
	)
	return n, nil
}

// LoadKernel allocates a page-aligned buffer sized for the kernel and
// fills it. The caller owns the buffer and must Release it.
func (m *Manager) LoadKernel(name isa.KernelName) (*memory.Buffer, error) {
	k, err := m.catalog.Kernel(name)
	if err != nil {
		metrics.KernelCopyErrors.WithLabelValues(m.catalog.ArchitectureName(), errorReason(err)).Inc()
		return nil, err
	}

	buf, err := memory.Allocate(k.Size())
	if err != nil {
		return nil, err
	}
	if _, err := m.CopyKernel(name, buf.Bytes()); err != nil {
		_ = buf.Release()
		return nil, err
	}
	return buf, nil
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, isa.ErrUnknownKernel):
		return "unknown_kernel"
	case errors.Is(err, isa.ErrBufferTooSmall):
		return "buffer_too_small"
	default:
		return "other"
	}
}
