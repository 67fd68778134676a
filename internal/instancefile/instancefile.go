// Package instancefile reads scheduling instances from YAML or JSON
// documents and renders solved assignments back out.
//
//	slots: 4
//	order: [44, 11, 33, 22, 55]
//	priority: invitee_order     # optional
//	available:   {11: [0, 2], 22: [1], 44: [0, 1, 3]}
//	prioritized: {22: [0, 2], 33: [1, 2], 55: [0, 3]}
//
// invitees defaults to len(order).
package instancefile

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/slotflow/slot"
)

// Document is the on-disk form of a slot.Instance.
type Document struct {
	Invitees    *int                     `json:"invitees,omitempty"`
	Slots       int                      `json:"slots"`
	Order       []slot.InviteeID         `json:"order"`
	Priority    *slot.Priority           `json:"priority,omitempty"`
	Available   map[slot.InviteeID][]int `json:"available,omitempty"`
	Prioritized map[slot.InviteeID][]int `json:"prioritized,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read instance file %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "instance file %s", path)
	}
	return doc, nil
}

// Parse decodes a YAML or JSON document, rejecting unknown fields, and
// validates the instance it describes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode instance")
	}
	if err := slot.Validate(doc.Instance(doc.DefaultPriority())); err != nil {
		return nil, errors.Wrap(err, "invalid instance")
	}
	return &doc, nil
}

// DefaultPriority is the document's policy, or InviteeOrder when unset.
func (d *Document) DefaultPriority() slot.Priority {
	if d.Priority == nil {
		return slot.InviteeOrder
	}
	return *d.Priority
}

// Policies lists the policies to solve when the caller has no preference:
// the document's own policy if it names one, otherwise all of them.
func (d *Document) Policies() []slot.Priority {
	if d.Priority != nil {
		return []slot.Priority{*d.Priority}
	}
	return slot.Priorities()
}

// Instance converts the document into a slot.Instance solved under p.
func (d *Document) Instance(p slot.Priority) slot.Instance {
	invitees := len(d.Order)
	if d.Invitees != nil {
		invitees = *d.Invitees
	}
	return slot.Instance{
		Invitees:    invitees,
		Slots:       d.Slots,
		Order:       d.Order,
		Available:   d.Available,
		Prioritized: d.Prioritized,
		Priority:    p,
	}
}

// Result is one solved policy.
type Result struct {
	Priority slot.Priority `json:"priority"`
	Matched  int           `json:"matched"`
	Matching slot.Matching `json:"matching"`
}

// Report is what the command prints.
type Report struct {
	Invitees int      `json:"invitees"`
	Slots    int      `json:"slots"`
	Results  []Result `json:"results"`
}

// Format selects the rendering of a Report.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Errorf("unknown output format %q (want yaml or json)", s)
}

// Render encodes r. Map keys come out sorted, so equal reports render to
// equal bytes.
func Render(r Report, f Format) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "encode report")
	}
	switch f {
	case FormatYAML:
		return data, nil
	case FormatJSON:
		out, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, "encode report")
		}
		return append(out, '\n'), nil
	}
	return nil, errors.Errorf("unknown output format %q", f)
}
