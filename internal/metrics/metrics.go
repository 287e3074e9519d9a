// Package metrics holds the archive's Prometheus instrumentation.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// ArchiveMetrics counts archive lifecycle operations.
type ArchiveMetrics struct {
	Uploads             prometheus.Counter
	Replacements        prometheus.Counter
	Deletes             prometheus.Counter
	BlobCleanupFailures prometheus.Counter
}

// NewArchiveMetrics creates and registers the archive counters.
func NewArchiveMetrics(reg prometheus.Registerer) (*ArchiveMetrics, error) {
	m := &ArchiveMetrics{
		Uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "earsip_documents_uploaded_total",
			Help: "Total number of documents uploaded.",
		}),
		Replacements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "earsip_documents_file_replaced_total",
			Help: "Total number of document file replacements.",
		}),
		Deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "earsip_documents_deleted_total",
			Help: "Total number of documents deleted.",
		}),
		BlobCleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "earsip_blob_cleanup_failures_total",
			Help: "Old blobs left behind after a failed best-effort cleanup.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Uploads, m.Replacements, m.Deletes, m.BlobCleanupFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
