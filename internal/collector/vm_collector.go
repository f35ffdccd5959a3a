package collector

import (
	"context"
	"log/slog"
	"strings"

	"vcenter-healthcheck/internal/model"
)

// InventoryLister provides the raw machine snapshots.
type InventoryLister interface {
	List(ctx context.Context) ([]model.VMSummary, error)
}

// VMCollector turns the endpoint inventory into report records.
type VMCollector struct {
	lister         InventoryLister
	reservedPrefix string
	logger         *slog.Logger
}

func NewVMCollector(lister InventoryLister, reservedPrefix string, logger *slog.Logger) *VMCollector {
	return &VMCollector{lister: lister, reservedPrefix: reservedPrefix, logger: logger}
}

// Collect lists the inventory, keeps powered-on machines outside the
// reserved prefix, and extracts one record per retained machine.
func (c *VMCollector) Collect(ctx context.Context) ([]model.VMRecord, error) {
	vms, err := c.lister.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := Filter(vms, c.reservedPrefix)
	c.logger.Debug("inventory filtered", "total", len(vms), "kept", len(kept))

	records := make([]model.VMRecord, 0, len(kept))
	for _, vm := range kept {
		records = append(records, Record(vm))
	}
	return records, nil
}

// Filter retains machines that are powered on and whose lower-cased name
// does not start with the reserved prefix. Input order is preserved.
func Filter(vms []model.VMSummary, reservedPrefix string) []model.VMSummary {
	prefix := strings.ToLower(reservedPrefix)
	out := make([]model.VMSummary, 0, len(vms))
	for _, vm := range vms {
		if vm.PowerState != model.PowerStatePoweredOn {
			continue
		}
		if prefix != "" && strings.HasPrefix(strings.ToLower(vm.Name), prefix) {
			continue
		}
		out = append(out, vm)
	}
	return out
}

// Record extracts the report row for one machine. Raw values pass through
// with no rounding or conversion; fields the endpoint did not report are
// already zero in the snapshot.
func Record(vm model.VMSummary) model.VMRecord {
	return model.VMRecord{
		Name:             vm.Name,
		CPULatencyPct:    vm.CPULatencyPct,
		MemorySizeMB:     vm.MemorySizeMB,
		GuestMemoryMB:    vm.GuestMemoryMB,
		NetworkUsageKBps: vm.NetworkUsageKBps,
		DiskUsageKBps:    vm.DiskUsageKBps,
	}
}
