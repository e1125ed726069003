package exec

import (
	"github.com/curaprof/curaprof/pkg/schema"
)

// ExecuteDescribeConfigCmd prints the final merged tool configuration.
func ExecuteDescribeConfigCmd(cfg schema.Configuration, outputFormat string) error {
	return printFormatted(cfg, outputFormat)
}

// ExecuteDescribeMachineCmd resolves and prints one machine's section:
// inheritance chain, effective settings with provenance, and definition
// changes.
func ExecuteDescribeMachineCmd(cfg schema.Configuration, machine, outputFormat string) error {
	section, err := DescribeMachine(cfg, machine)
	if err != nil {
		return err
	}
	return printFormatted(section, outputFormat)
}

// DescribeMachine resolves one machine's section for programmatic use.
func DescribeMachine(cfg schema.Configuration, machine string) (*schema.MachineSection, error) {
	ex, err := NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	ex.ValidateAndWarn()

	name, err := selectMachine(ex, machine)
	if err != nil {
		return nil, err
	}
	return ex.extractMachine(name), nil
}
