package vsphere

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/mo"

	"vcenter-healthcheck/internal/model"
)

// ClientSource yields the live endpoint client.
type ClientSource interface {
	Client(ctx context.Context) (*vim25.Client, error)
}

// InventoryReader lists the virtual machines known to the endpoint.
type InventoryReader struct {
	source ClientSource
	logger *slog.Logger
}

func NewInventoryReader(source ClientSource, logger *slog.Logger) *InventoryReader {
	return &InventoryReader{source: source, logger: logger}
}

// List creates a recursive container view over the whole inventory tree
// restricted to virtual machines, retrieves name and summary data for every
// machine in one call, and destroys the view before returning. The full
// inventory is held in memory; there is no pagination.
func (r *InventoryReader) List(ctx context.Context) ([]model.VMSummary, error) {
	client, err := r.source.Client(ctx)
	if err != nil {
		return nil, err
	}

	mgr := view.NewManager(client)
	v, err := mgr.CreateContainerView(ctx, client.ServiceContent.RootFolder, []string{"VirtualMachine"}, true)
	if err != nil {
		return nil, fmt.Errorf("create container view: %w", err)
	}
	defer func() {
		if err := v.Destroy(ctx); err != nil {
			r.logger.Warn("destroy container view failed", "error", err)
		}
	}()

	var vms []mo.VirtualMachine
	if err := v.Retrieve(ctx, []string{"VirtualMachine"}, []string{"name", "summary"}, &vms); err != nil {
		return nil, fmt.Errorf("retrieve virtual machines: %w", err)
	}

	out := make([]model.VMSummary, 0, len(vms))
	for _, vm := range vms {
		out = append(out, summaryOf(vm))
	}
	return out, nil
}

// summaryOf flattens a managed object into the report's snapshot type.
// Quick-stats fields the endpoint omits decode as zero, which is the
// documented default for every metric. The network and disk indicators are
// not part of VM summary quick stats on current endpoints and stay zero;
// precise values would need the performance-counter API.
func summaryOf(vm mo.VirtualMachine) model.VMSummary {
	s := vm.Summary
	return model.VMSummary{
		Name:          vm.Name,
		PowerState:    string(s.Runtime.PowerState),
		CPULatencyPct: s.QuickStats.OverallCpuReadiness,
		MemorySizeMB:  s.Config.MemorySizeMB,
		GuestMemoryMB: s.QuickStats.GuestMemoryUsage,
	}
}
