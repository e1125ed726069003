package exec

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/curaprof/curaprof/errors"
	"github.com/curaprof/curaprof/pkg/format"
	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/schema"
	"github.com/curaprof/curaprof/pkg/utils"
)

// ExtractCmdArgs carries the `extract` command's flags.
type ExtractCmdArgs struct {
	Machine string
	Output  string
	Format  string
	Raw     bool
	Options ExtractOptions
}

// ExecuteExtractCmd runs the full extraction and writes the output document
// to a file or stdout.
func ExecuteExtractCmd(cfg schema.Configuration, args ExtractCmdArgs) error {
	ex, err := NewExtractor(cfg)
	if err != nil {
		return err
	}
	ex.ValidateAndWarn()

	machine, err := selectMachine(ex, args.Machine)
	if err != nil {
		return err
	}

	out := ex.ExtractAll(machine, args.Options)

	var payload any = out
	if !args.Raw {
		log.Debug("formatting for readability")
		generic, err := utils.ConvertToMap(out)
		if err != nil {
			return errors.Wrap(err, "formatting output")
		}
		payload = format.Humanize(generic)
	}

	if args.Output != "" {
		if err := writeFormatted(args.Output, payload, args.Format); err != nil {
			return errors.Wrapf(err, "writing %s", args.Output)
		}
		log.Info("profile saved", "file", args.Output)
		return nil
	}
	return printFormatted(payload, args.Format)
}

// writeFormatted writes data to a file in the requested format, mirroring
// the stdout format switch.
func writeFormatted(path string, data any, outputFormat string) error {
	switch outputFormat {
	case "", "json":
		return utils.WriteToFileAsJSON(path, data, 0o644)
	case "yaml":
		return utils.WriteToFileAsYAML(path, data, 0o644)
	default:
		return errors.Wrapf(errUtils.ErrUnknownFormat, "%q (supported: json, yaml)", outputFormat)
	}
}

// selectMachine resolves the machine to extract: the explicit choice, or
// the first discovered machine when none was given.
func selectMachine(ex *Extractor, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	machines := ex.Discovery().Machines()
	if len(machines) == 0 {
		return "", errors.WithHint(errUtils.ErrMachineNotFound, "no machine instances found under the data path")
	}
	log.Info("no machine selected, using first discovered", "machine", machines[0])
	return machines[0], nil
}

// printFormatted prints data to stdout in the requested format.
func printFormatted(data any, outputFormat string) error {
	switch outputFormat {
	case "", "json":
		return utils.PrintAsJSON(data)
	case "yaml":
		return utils.PrintAsYAML(data)
	default:
		return errors.Wrapf(errUtils.ErrUnknownFormat, "%q (supported: json, yaml)", outputFormat)
	}
}
