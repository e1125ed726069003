package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/curaprof/curaprof/pkg/schema"
)

// BuildSummary assembles the quick-overview section placed at the top of
// the output document.
func BuildSummary(out *schema.ExtractOutput) map[string]any {
	summary := map[string]any{
		"_note": "This section provides a quick overview. Full details below.",
	}

	if machine := out.Machine; machine != nil {
		summary["machine_name"] = out.Metadata.Machine
		summary["inheritance"] = strings.Join(
			lo.Map(machine.InheritanceChain, func(link schema.DefinitionLink, _ int) string {
				return link.Name
			}),
			" → ",
		)
		summary["total_settings"] = len(machine.EffectiveSettings)
	}

	if gcode := out.GCode; gcode != nil {
		summary["gcode_source"] = gcode.Source
		summary["start_gcode_lines"] = lineCount(gcode.StartGCode)
		summary["end_gcode_lines"] = lineCount(gcode.EndGCode)
	}

	if len(out.QualityBuiltin) > 0 {
		tiers := lo.Keys(out.QualityBuiltin)
		sort.Strings(tiers)
		summary["builtin_qualities"] = tiers
	}

	if len(out.QualityCustom) > 0 {
		names := lo.Keys(out.QualityCustom)
		sort.Strings(names)
		summary["custom_profiles"] = names
	}

	if len(out.Plugins) > 0 {
		plugins := lo.MapToSlice(out.Plugins, func(_ string, info schema.PluginInfo) string {
			version := info.Version
			if version == "" {
				version = "?"
			}
			return fmt.Sprintf("%s v%s", info.Name, version)
		})
		sort.Strings(plugins)
		summary["plugins"] = plugins
	}

	return summary
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
