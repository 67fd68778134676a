package app

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/slotflow/internal/instancefile"
	"github.com/katalvlaran/slotflow/slot"
)

const policyBoth = "both"

// policyValue is the --priority flag: one slot.Priority or "both".
type policyValue struct {
	set  bool
	both bool
	p    slot.Priority
}

func (v *policyValue) String() string {
	switch {
	case !v.set:
		return ""
	case v.both:
		return policyBoth
	}
	return v.p.String()
}

func (v *policyValue) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), policyBoth) {
		v.set, v.both = true, true
		return nil
	}
	if err := v.p.Set(s); err != nil {
		return err
	}
	v.set, v.both = true, false
	return nil
}

func (v *policyValue) Type() string { return "priority" }

// resolve picks the policies to run: the flag if given, else the document's.
func (v *policyValue) resolve(doc *instancefile.Document) []slot.Priority {
	switch {
	case !v.set:
		return doc.Policies()
	case v.both:
		return slot.Priorities()
	}
	return []slot.Priority{v.p}
}

// Options holds the command-line configuration.
type Options struct {
	File    string
	Policy  policyValue
	Output  string
	Verbose int
	NoColor bool
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{Output: string(instancefile.FormatYAML)}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", o.File, "instance document (YAML or JSON)")
	fs.Var(&o.Policy, "priority", "policy to solve: invitee_order, invitee_priorities or both (default: the document's, else both)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output format: yaml or json")
	fs.CountVarP(&o.Verbose, "verbose", "v", "log verbosity; repeat for more")
	fs.BoolVar(&o.NoColor, "no-color", o.NoColor, "disable coloured log output")
}

// Validate checks the options that flag parsing cannot.
func (o *Options) Validate() error {
	if o.File == "" {
		return errors.New("--file is required")
	}
	if _, err := instancefile.ParseFormat(o.Output); err != nil {
		return errors.Wrap(err, "--output")
	}
	return nil
}
