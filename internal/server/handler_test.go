package server

import (
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	sources, err := NewCatalogs(config.Default())
	require.NoError(t, err)
	return NewHandler(sources, zap.NewNop()).Routes()
}

func serve(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestListArchitectures(t *testing.T) {
	rr := serve(newTestMux(t), http.MethodGet, "/v1/architectures")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var archs []Architecture
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&archs))
	assert.Equal(t, []Architecture{
		{Name: "ALDEBARAN", Kernels: 15},
		{Name: "GFX9", Kernels: 15},
	}, archs)
}

func TestListKernels(t *testing.T) {
	rr := serve(newTestMux(t), http.MethodGet, "/v1/kernels/gfx90a")
	assert.Equal(t, http.StatusOK, rr.Code)

	var list KernelList
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	assert.Equal(t, "ALDEBARAN", list.Architecture)
	require.Len(t, list.Kernels, len(isa.KernelNames()))

	byName := make(map[string]KernelInfo)
	for _, k := range list.Kernels {
		byName[k.Name] = k
	}
	assert.Equal(t, 10, byName["copy_dword"].Words)
	assert.Equal(t, 40, byName["copy_dword"].Bytes)
	assert.Empty(t, byName["copy_dword"].Shape)
	assert.Len(t, byName["noop"].XXH3, 16)
	assert.Equal(t, "16x5120x384", byName["gemm_16x5120x384"].Shape)
	assert.Equal(t, int64(2*16*5120*384), byName["gemm_16x5120x384"].FLOPs)
}

func TestGetKernel(t *testing.T) {
	rr := serve(newTestMux(t), http.MethodGet, "/v1/kernels/ALDEBARAN/noop")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1", rr.Header().Get("X-Kernel-Words"))
	assert.Equal(t, []byte{0x00, 0x00, 0x81, 0xbf}, rr.Body.Bytes())
}

func TestGetKernel_CrossArchitecture(t *testing.T) {
	mux := newTestMux(t)
	ald := serve(mux, http.MethodGet, "/v1/kernels/ALDEBARAN/atomic_add")
	gfx9 := serve(mux, http.MethodGet, "/v1/kernels/GFX9/atomic_add")
	require.Equal(t, http.StatusOK, ald.Code)
	require.Equal(t, http.StatusOK, gfx9.Code)

	assert.Equal(t, uint32(0xdf0b0000), binary.LittleEndian.Uint32(ald.Body.Bytes()[12:]))
	assert.Equal(t, uint32(0xdd0b0000), binary.LittleEndian.Uint32(gfx9.Body.Bytes()[12:]))
}

func TestGetKernel_NotFound(t *testing.T) {
	mux := newTestMux(t)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/v1/kernels/gfx1100/noop").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/v1/kernels/GFX9/transpose").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/v1/kernels/vega/").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(mux, http.MethodPost, "/v1/kernels/GFX9/noop").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestMux(t)
	serve(mux, http.MethodGet, "/v1/kernels/GFX9/noop")

	rr := serve(mux, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "isa_kernel_copies_total")
	assert.Contains(t, rr.Body.String(), "isa_endpoint_responses_total")
}
