package describe

import (
	e "github.com/curaprof/curaprof/internal/exec"
	"github.com/curaprof/curaprof/pkg/schema"
)

// DescribeMachine resolves one machine's configuration and returns the
// machine section: inheritance chain, effective settings with provenance,
// and the raw definition-changes block.
func DescribeMachine(cfg schema.Configuration, machine string) (*schema.MachineSection, error) {
	return e.DescribeMachine(cfg, machine)
}
