package exec

import (
	"fmt"

	"github.com/curaprof/curaprof/pkg/version"
)

// ExecuteVersionCmd prints the curaprof version.
func ExecuteVersionCmd() error {
	fmt.Printf("curaprof %s\n", version.Version)
	return nil
}
