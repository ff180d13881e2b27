// Package record holds the metadata attached to selectable objects: the who/when/where of
// a construction element. Records are loaded once alongside the model and never edited.
package record

import (
	"strconv"

	"github.com/Carmen-Shannon/oxy-inspect/common"
)

// Record is the metadata shown for a selected object. Every field is optional.
type Record struct {
	// Date is the installation or inspection date as written in the source data.
	Date string `yaml:"date" toml:"date"`
	// Vendor is the subcontractor or vendor responsible for the element.
	Vendor string `yaml:"vendor" toml:"vendor"`
	// SecondaryResponsible is the site foreman (mandor) overseeing the work.
	SecondaryResponsible string `yaml:"mandor" toml:"mandor"`
	// Zone is the site zone the element belongs to.
	Zone string `yaml:"zone" toml:"zone"`
	// Workers is the crew size. Nil means unknown and displays as common.NotSpecified.
	// Zero is a valid count and displays as "0", unlike a blank crew entry.
	Workers *int `yaml:"workers,omitempty" toml:"workers,omitempty"`
}

// Field is a labelled display value.
type Field struct {
	Label string
	Value string
}

// Field labels in display order.
const (
	LabelDate    = "Date"
	LabelVendor  = "Subkon/Vendor"
	LabelMandor  = "Mandor"
	LabelZone    = "Zone"
	LabelWorkers = "Workers"
)

// WorkersDisplay returns the crew size as text, or common.NotSpecified when unknown.
func (r Record) WorkersDisplay() string {
	if r.Workers == nil {
		return common.NotSpecified
	}
	return strconv.Itoa(*r.Workers)
}

// Fields returns the record's display fields in order, substituting common.NotSpecified
// for every absent value.
//
// Returns:
//   - []Field: the five labelled values
func (r Record) Fields() []Field {
	return []Field{
		{Label: LabelDate, Value: common.OrNotSpecified(r.Date)},
		{Label: LabelVendor, Value: common.OrNotSpecified(r.Vendor)},
		{Label: LabelMandor, Value: common.OrNotSpecified(r.SecondaryResponsible)},
		{Label: LabelZone, Value: common.OrNotSpecified(r.Zone)},
		{Label: LabelWorkers, Value: r.WorkersDisplay()},
	}
}

// IntPtr returns a pointer to v. Handy for building records in code.
func IntPtr(v int) *int {
	return &v
}
