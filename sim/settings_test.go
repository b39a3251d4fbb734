package sim

import "testing"

func TestSettingsBuilderRoundTrip(t *testing.T) {
	transparency := NewTransparencySettings().
		WithBase(0.9).
		WithLog(0.1).
		WithSugarBulb(0.2).
		WithLeaf(0.8).
		WithSeed(0.3)

	energy := NewEnergySettings().
		WithBase(NewBaseCostSettings().
			WithBulk(BulkCostSettings{}.WithLog(1).WithSugarBulb(2).WithLeaf(3).WithSeed(4)).
			WithBridge(BridgeCostSettings{}.WithLog(5).WithBranch(6))).
		WithProduction(NewProductionCostSettings().WithLeaf(7)).
		WithStorage(NewStorageCostSettings().
			WithEnergy(BulkCostSettings{}.WithLog(8).WithSugarBulb(9).WithLeaf(10).WithSeed(11))).
		WithTransfer(NewTransferCostSettings().
			WithEnergy(BridgeCostSettings{}.WithLog(12).WithBranch(13))).
		WithRunning(NewRunningCostSettings().
			WithBulk(BulkCostSettings{}.WithLog(14).WithSugarBulb(15).WithLeaf(16).WithSeed(17)).
			WithBridge(BridgeCostSettings{}.WithLog(18).WithBranch(19)))

	settings := NewSettings().
		WithTransparency(transparency).
		WithEnergy(energy)

	want := Settings{
		Transparency: TransparencySettings{Base: 0.9, Log: 0.1, SugarBulb: 0.2, Leaf: 0.8, Seed: 0.3},
		Energy: EnergySettings{
			Base: BaseCostSettings{
				Bulk:   BulkCostSettings{Log: 1, SugarBulb: 2, Leaf: 3, Seed: 4},
				Bridge: BridgeCostSettings{Log: 5, Branch: 6},
			},
			Production: ProductionCostSettings{Leaf: 7},
			Storage: StorageCostSettings{
				Energy: BulkCostSettings{Log: 8, SugarBulb: 9, Leaf: 10, Seed: 11},
			},
			Transfer: TransferCostSettings{
				Energy: BridgeCostSettings{Log: 12, Branch: 13},
			},
			Running: RunningCostSettings{
				Bulk:   BulkCostSettings{Log: 14, SugarBulb: 15, Leaf: 16, Seed: 17},
				Bridge: BridgeCostSettings{Log: 18, Branch: 19},
			},
		},
	}

	if settings != want {
		t.Errorf("builder round trip changed values:\ngot  %+v\nwant %+v", settings, want)
	}
}

func TestSettingsBuildersDoNotAlias(t *testing.T) {
	base := NewSettings()
	modified := base.WithTransparency(base.Transparency.WithBase(0.5))

	if base.Transparency.Base != 1.0 {
		t.Errorf("WithTransparency mutated the receiver: base = %v", base.Transparency.Base)
	}
	if modified.Transparency.Base != 0.5 {
		t.Errorf("WithTransparency lost the new value: base = %v", modified.Transparency.Base)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := NewSettings()

	if s.Transparency.Base != 1.0 || s.Transparency.Leaf != 1.0 {
		t.Errorf("unexpected transparency defaults: %+v", s.Transparency)
	}
	if s.Transparency.Log != 0 || s.Transparency.SugarBulb != 0 || s.Transparency.Seed != 0 {
		t.Errorf("solid bulks should default opaque: %+v", s.Transparency)
	}
	if s.Energy.Storage.Energy.Log != 1.0 || s.Energy.Transfer.Energy.Branch != 1.0 {
		t.Errorf("unexpected scaling cost defaults: %+v", s.Energy)
	}
	if s.Energy.Running.Bulk.Leaf != 0 || s.Energy.Base.Bridge.Log != 0 {
		t.Errorf("base and running costs should default to zero: %+v", s.Energy)
	}
}
