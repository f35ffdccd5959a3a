package vsphere_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/simulator"
	"github.com/vmware/govmomi/vim25"

	"vcenter-healthcheck/internal/model"
	"vcenter-healthcheck/internal/vsphere"
)

type staticSource struct {
	c *vim25.Client
}

func (s staticSource) Client(ctx context.Context) (*vim25.Client, error) {
	return s.c, nil
}

func TestInventoryReader_List(t *testing.T) {
	simulator.Test(func(ctx context.Context, c *vim25.Client) {
		r := vsphere.NewInventoryReader(staticSource{c}, discardLogger())

		vms, err := r.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, vms, "default inventory should contain machines")

		poweredOn := 0
		for _, vm := range vms {
			assert.NotEmpty(t, vm.Name)
			assert.NotEmpty(t, vm.PowerState)
			if vm.PowerState == model.PowerStatePoweredOn {
				poweredOn++
			}
		}
		assert.Positive(t, poweredOn, "default inventory machines start powered on")
	})
}
