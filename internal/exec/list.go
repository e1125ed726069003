package exec

import (
	"fmt"

	"github.com/curaprof/curaprof/pkg/schema"
)

// ExecuteListMachinesCmd prints the discovered machine instance names.
func ExecuteListMachinesCmd(cfg schema.Configuration) error {
	ex, err := NewExtractor(cfg)
	if err != nil {
		return err
	}
	ex.ValidateAndWarn()
	for _, machine := range ex.Discovery().Machines() {
		fmt.Println(machine)
	}
	return nil
}

// ExecuteListProfilesCmd prints the discovered custom quality profile names.
func ExecuteListProfilesCmd(cfg schema.Configuration) error {
	ex, err := NewExtractor(cfg)
	if err != nil {
		return err
	}
	ex.ValidateAndWarn()
	for _, profile := range ex.Discovery().CustomProfiles() {
		fmt.Println(profile)
	}
	return nil
}
