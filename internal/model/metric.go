package model

// Metric identifies one of the report's ranking dimensions.
type Metric string

const (
	MetricCPULatency   Metric = "cpu_latency"
	MetricMemorySize   Metric = "memory_size"
	MetricGuestMemory  Metric = "guest_memory"
	MetricNetworkUsage Metric = "network_usage"
	MetricDiskUsage    Metric = "disk_usage"
)

// Metrics returns all ranking dimensions in report order.
func Metrics() []Metric {
	return []Metric{
		MetricCPULatency,
		MetricMemorySize,
		MetricGuestMemory,
		MetricNetworkUsage,
		MetricDiskUsage,
	}
}

// Label is the human-readable name used in report headings.
func (m Metric) Label() string {
	switch m {
	case MetricCPULatency:
		return "CPU Latency"
	case MetricMemorySize:
		return "Allocated Memory"
	case MetricGuestMemory:
		return "Consumed Memory"
	case MetricNetworkUsage:
		return "Network Usage"
	case MetricDiskUsage:
		return "Disk Usage"
	default:
		return string(m)
	}
}

// Unit is the unit the metric's raw values are reported in.
func (m Metric) Unit() string {
	switch m {
	case MetricCPULatency:
		return "%"
	case MetricMemorySize, MetricGuestMemory:
		return "MB"
	case MetricNetworkUsage, MetricDiskUsage:
		return "KBps"
	default:
		return ""
	}
}
