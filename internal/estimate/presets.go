package estimate

import (
	"fmt"
	"sort"
)

// Preset names a canned deployment sizing.
type Preset string

const (
	PresetSmallWebApp      Preset = "small_web_app"
	PresetProductionWebApp Preset = "production_web_app"
	PresetMLTraining       Preset = "ml_training"
	PresetDataWarehouse    Preset = "data_warehouse"
	PresetDevTest          Preset = "dev_test"
)

// presetInputs maps each preset to a fixed aggregate-calculator input.
var presetInputs = map[Preset]EstimateInput{
	PresetSmallWebApp: {
		Compute: &ComputeConfig{Shape: "VM.Standard.E5.Flex", OCPUs: 2, MemoryGB: 16},
		Storage: &StorageConfig{Type: "block_volume", SizeGB: 100},
		Network: &NetworkConfig{OutboundDataGB: 500, LoadBalancers: 1, BandwidthMbps: 10},
	},
	PresetProductionWebApp: {
		Compute:  &ComputeConfig{Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32, Instances: 3},
		Storage:  &StorageConfig{Type: "block_volume", SizeGB: 500},
		Database: &DatabaseConfig{Type: "autonomous_transaction", ECPUs: 4, StorageGB: 1024},
		Network:  &NetworkConfig{OutboundDataGB: 15000, LoadBalancers: 2, BandwidthMbps: 100},
	},
	PresetMLTraining: {
		Compute: &ComputeConfig{Shape: "VM.GPU.A10.1", GPUs: 1},
		Storage: &StorageConfig{Type: "object_standard", SizeGB: 5000},
	},
	PresetDataWarehouse: {
		Database: &DatabaseConfig{Type: "autonomous_warehouse", ECPUs: 8, StorageGB: 10240},
		Storage:  &StorageConfig{Type: "object_standard", SizeGB: 20480},
	},
	PresetDevTest: {
		Compute:       &ComputeConfig{Shape: "VM.Standard.A1.Flex", OCPUs: 4, MemoryGB: 24},
		Storage:       &StorageConfig{Type: "block_volume", SizeGB: 50},
		HoursPerMonth: 160,
	},
}

// Presets lists the known preset names in stable order.
func Presets() []string {
	names := make([]string, 0, len(presetInputs))
	for p := range presetInputs {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// EstimatePreset runs the aggregate calculator over a named preset and
// prefixes the notes with the preset name. Unknown presets are a soft miss.
func (e *Engine) EstimatePreset(preset string, region string) (*EstimateResult, error) {
	in, ok := presetInputs[Preset(preset)]
	if !ok {
		return &EstimateResult{
			Breakdown: []LineItem{},
			Currency:  "USD",
			Notes:     []string{fmt.Sprintf("Unknown deployment preset %q", preset)},
		}, nil
	}
	in.Region = region

	out, err := e.EstimateMonthlyCost(in)
	if err != nil {
		return nil, err
	}
	out.Notes = append([]string{fmt.Sprintf("Preset: %s", preset)}, out.Notes...)
	return out, nil
}
