package format

import "github.com/curaprof/curaprof/pkg/schema"

// customizationsSource labels values coming from the user's definition
// changes in the quick-reference section.
const customizationsSource = "your_customizations"

// importantSettings are the settings most people look up first.
var importantSettings = []string{
	// Layer
	"layer_height", "layer_height_0",
	// Walls
	"wall_thickness", "wall_line_count",
	// Top/Bottom
	"top_layers", "bottom_layers", "top_bottom_thickness",
	// Infill
	"infill_sparse_density", "infill_pattern",
	// Speed
	"speed_print", "speed_infill", "speed_wall", "speed_wall_0", "speed_wall_x",
	"speed_topbottom", "speed_travel", "speed_layer_0",
	// Retraction
	"retraction_enable", "retraction_amount", "retraction_speed",
	"retraction_hop_enabled", "retraction_hop",
	// Temperature
	"material_print_temperature", "material_bed_temperature",
	// Cooling
	"cool_fan_speed", "cool_fan_speed_min", "cool_fan_speed_max",
	// Support
	"support_enable", "support_type", "support_structure",
	// Adhesion
	"adhesion_type", "skirt_line_count", "brim_width",
	// Machine
	"machine_width", "machine_depth", "machine_height",
	"machine_heated_bed", "machine_nozzle_size",
}

// BuildKeySettings extracts the commonly-referenced settings into a
// quick-reference map. User customizations win over resolved chain values.
func BuildKeySettings(machine *schema.MachineSection) map[string]schema.KeySetting {
	result := make(map[string]schema.KeySetting)
	if machine == nil {
		return result
	}

	defChanges := definitionChangesValues(machine)

	for _, key := range importantSettings {
		if value, ok := defChanges[key]; ok {
			result[key] = schema.KeySetting{Value: value, Source: customizationsSource}
			continue
		}
		entry, ok := machine.EffectiveSettings[key]
		if !ok {
			continue
		}
		value := entry.EffectiveValue
		if value == nil {
			value = entry.Value
		}
		if value == nil {
			value = entry.DefaultValue
		}
		source := entry.Origin()
		if source == "" {
			source = "default"
		}
		result[key] = schema.KeySetting{Value: value, Source: source}
	}
	return result
}

// definitionChangesValues pulls the `values` section out of the raw
// definition-changes block, whichever of the two document renderings holds
// it.
func definitionChangesValues(machine *schema.MachineSection) map[string]any {
	values, ok := machine.DefinitionChanges["values"]
	if !ok {
		return nil
	}
	switch v := values.(type) {
	case map[string]any:
		return v
	case map[string]string:
		result := make(map[string]any, len(v))
		for key, value := range v {
			result[key] = value
		}
		return result
	default:
		return nil
	}
}
