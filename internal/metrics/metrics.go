package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EndpointResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isa_endpoint_responses_total",
		Help: "The total number of payload server responses",
	}, []string{"endpoint", "status_code"})

	ResponseBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isa_endpoint_response_bytes_total",
		Help: "Total response body bytes written by the payload server",
	}, []string{"endpoint"})

	// Kernel loading metrics
	KernelCopies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isa_kernel_copies_total",
		Help: "Total number of kernels copied into destination buffers",
	}, []string{"architecture", "kernel"})

	KernelCopyBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isa_kernel_copy_bytes_total",
		Help: "Total bytes of machine code copied into destination buffers",
	}, []string{"architecture"})

	KernelCopyErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isa_kernel_copy_errors_total",
		Help: "Total number of failed kernel copies by reason",
	}, []string{"architecture", "reason"})

	// Set to 1 for the architecture the manager selected.
	SelectedArchitecture = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "isa_selected_architecture",
		Help: "Architecture the catalog was resolved for (1 = selected)",
	}, []string{"architecture", "source"})
)
