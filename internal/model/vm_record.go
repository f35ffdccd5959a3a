package model

// VMRecord is one row of the health report: machine name plus the five
// collected metrics, passed through as reported with no conversion.
type VMRecord struct {
	Name             string `json:"name"`
	CPULatencyPct    int32  `json:"cpu_latency_pct"`
	MemorySizeMB     int32  `json:"memory_size_mb"`
	GuestMemoryMB    int32  `json:"guest_memory_mb"`
	NetworkUsageKBps int32  `json:"network_usage_kbps"`
	DiskUsageKBps    int32  `json:"disk_usage_kbps"`
}

// Value selects the record's value for the given metric.
func (r VMRecord) Value(m Metric) int32 {
	switch m {
	case MetricCPULatency:
		return r.CPULatencyPct
	case MetricMemorySize:
		return r.MemorySizeMB
	case MetricGuestMemory:
		return r.GuestMemoryMB
	case MetricNetworkUsage:
		return r.NetworkUsageKBps
	case MetricDiskUsage:
		return r.DiskUsageKBps
	default:
		return 0
	}
}
