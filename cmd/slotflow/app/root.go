// Package app implements the slotflow command.
package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotflow/internal/instancefile"
	"github.com/katalvlaran/slotflow/internal/logging"
	"github.com/katalvlaran/slotflow/slot"
)

const ComponentName = "slotflow"

// NewSlotflowCmd builds the root command.
func NewSlotflowCmd() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   ComponentName + " --file instance.yaml",
		Short: "Assign invitees to meeting slots",
		Long: `slotflow reads a scheduling instance (slot count, invitee order,
available and prioritized slots per invitee) and prints the matching that
schedules the most meetings, ties broken by invitee order and stated
priority. Without --priority it solves the document's policy, or both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagFilename("file", "yaml", "yml", "json")

	return cmd
}

func run(cmd *cobra.Command, opts *Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), opts.NoColor, opts.Verbose)

	doc, err := instancefile.Load(opts.File)
	if err != nil {
		return err
	}
	report, err := solve(doc, opts.Policy.resolve(doc), log)
	if err != nil {
		return err
	}

	format, _ := instancefile.ParseFormat(opts.Output)
	out, err := instancefile.Render(report, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}

func solve(doc *instancefile.Document, policies []slot.Priority, log zerolog.Logger) (instancefile.Report, error) {
	base := doc.Instance(doc.DefaultPriority())
	report := instancefile.Report{Invitees: base.Invitees, Slots: base.Slots}

	bound, err := slot.MaxMatchable(base)
	if err != nil {
		return report, errors.Wrap(err, "upper bound")
	}
	log.Debug().Int("invitees", base.Invitees).Int("slots", base.Slots).Int("max_matchable", bound).Msg("instance loaded")

	for _, p := range policies {
		a, err := slot.Assign(doc.Instance(p), slot.WithLogger(log))
		if err != nil {
			return report, errors.Wrapf(err, "solve %s", p)
		}
		log.Info().Stringer("priority", p).Int("matched", a.Matched).Int("max_matchable", bound).Msg("scheduled")
		report.Results = append(report.Results, instancefile.Result{Priority: p, Matched: a.Matched, Matching: a.Matching})
	}
	return report, nil
}
