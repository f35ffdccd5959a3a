package model

// PowerStatePoweredOn is the vSphere power state of a running machine.
const PowerStatePoweredOn = "poweredOn"

// VMSummary is the raw per-machine snapshot read from the endpoint's
// summary data. Metric fields the endpoint does not report are zero.
type VMSummary struct {
	Name             string `json:"name"`
	PowerState       string `json:"power_state"`
	CPULatencyPct    int32  `json:"cpu_latency_pct"`
	MemorySizeMB     int32  `json:"memory_size_mb"`
	GuestMemoryMB    int32  `json:"guest_memory_mb"`
	NetworkUsageKBps int32  `json:"network_usage_kbps"`
	DiskUsageKBps    int32  `json:"disk_usage_kbps"`
}
