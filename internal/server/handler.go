package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fxnlabs/kfd-isa/internal/bundle"
	"github.com/fxnlabs/kfd-isa/internal/gemm"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/fxnlabs/kfd-isa/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Architecture struct {
	Name    string `json:"name"`
	Kernels int    `json:"kernels"`
}

type KernelInfo struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
	Bytes int    `json:"bytes"`
	XXH3  string `json:"xxh3"`
	Shape string `json:"shape,omitempty"`
	FLOPs int64  `json:"flops,omitempty"`
}

type KernelList struct {
	Architecture string       `json:"architecture"`
	Kernels      []KernelInfo `json:"kernels"`
}

// Handler serves catalog listings and raw kernel payloads.
type Handler struct {
	sources map[isa.Architecture]isa.KernelSource
	order   []isa.Architecture
	log     *zap.Logger
}

func NewHandler(sources []isa.KernelSource, log *zap.Logger) *Handler {
	h := &Handler{
		sources: make(map[isa.Architecture]isa.KernelSource, len(sources)),
		log:     log.Named("server"),
	}
	for _, src := range sources {
		h.sources[src.Architecture()] = src
		h.order = append(h.order, src.Architecture())
	}
	return h
}

// Routes registers every endpoint, each wrapped with the metrics middleware.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/architectures", metrics.Middleware(http.HandlerFunc(h.listArchitectures), "/v1/architectures"))
	mux.Handle("GET /v1/kernels/{arch}", metrics.Middleware(http.HandlerFunc(h.listKernels), "/v1/kernels/{arch}"))
	mux.Handle("GET /v1/kernels/{arch}/{name}", metrics.Middleware(http.HandlerFunc(h.getKernel), "/v1/kernels/{arch}/{name}"))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (h *Handler) listArchitectures(w http.ResponseWriter, r *http.Request) {
	archs := make([]Architecture, 0, len(h.order))
	for _, arch := range h.order {
		archs = append(archs, Architecture{
			Name:    arch.String(),
			Kernels: len(h.sources[arch].Kernels()),
		})
	}
	h.writeJSON(w, archs)
}

func (h *Handler) listKernels(w http.ResponseWriter, r *http.Request) {
	src, ok := h.source(w, r)
	if !ok {
		return
	}

	list := KernelList{Architecture: src.ArchitectureName()}
	for _, name := range src.Kernels() {
		k, err := src.Kernel(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		info := KernelInfo{
			Name:  string(name),
			Words: k.Len(),
			Bytes: k.Size(),
			XXH3:  fmt.Sprintf("%016x", bundle.Checksum(k)),
		}
		if shape, ok := gemm.ShapeOf(name); ok {
			info.Shape = shape.String()
			info.FLOPs = shape.FLOPs()
		}
		list.Kernels = append(list.Kernels, info)
	}
	h.writeJSON(w, list)
}

func (h *Handler) getKernel(w http.ResponseWriter, r *http.Request) {
	src, ok := h.source(w, r)
	if !ok {
		return
	}

	name := isa.KernelName(r.PathValue("name"))
	k, err := src.Kernel(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	buf := make([]byte, k.Size())
	if _, err := src.CopyKernelInto(name, buf); err != nil {
		h.log.Error("failed to copy kernel", zap.String("kernel", string(name)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.KernelCopies.WithLabelValues(src.ArchitectureName(), string(name)).Inc()
	metrics.KernelCopyBytes.WithLabelValues(src.ArchitectureName()).Add(float64(len(buf)))

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.Header().Set("X-Kernel-Words", strconv.Itoa(k.Len()))
	w.Header().Set("X-Kernel-Xxh3", fmt.Sprintf("%016x", bundle.Checksum(k)))
	w.Write(buf)
}

func (h *Handler) source(w http.ResponseWriter, r *http.Request) (isa.KernelSource, bool) {
	arch, err := isa.ParseArchitecture(r.PathValue("arch"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	src, ok := h.sources[arch]
	if !ok {
		http.Error(w, fmt.Sprintf("architecture %s not served", arch), http.StatusNotFound)
		return nil, false
	}
	return src, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("failed to encode response", zap.Error(err))
	}
}
