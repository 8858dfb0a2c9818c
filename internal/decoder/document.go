// internal/decoder/document.go
package decoder

import (
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// Entry is one channel and its decoded reading.
type Entry struct {
	Channel registermap.ChannelSpec
	Reading Reading
}

// Section is one category of a document, channels in map order.
type Section struct {
	Category registermap.Category
	Entries  []Entry
}

// Document is the decoded view of one snapshot.
// It is built once by Decode and not modified afterwards.
type Document struct {
	sections []Section
	source   *poller.Snapshot
}

// NewDocument assembles a document from sections.
// Used by the exporter's decode-back path.
func NewDocument(sections []Section) Document {
	return Document{sections: copySections(sections)}
}

// Sections returns the categories in document order.
func (d Document) Sections() []Section {
	return copySections(d.sections)
}

// Source returns the snapshot the document was decoded from.
// Documents read back from a file have none.
func (d Document) Source() (poller.Snapshot, bool) {
	if d.source == nil {
		return poller.Snapshot{}, false
	}
	return *d.source, true
}

// Lookup finds a reading by channel id, e.g. "pressure.system".
func (d Document) Lookup(id string) (Reading, bool) {
	for _, s := range d.sections {
		for _, e := range s.Entries {
			if e.Channel.ID() == id {
				return e.Reading, true
			}
		}
	}
	return Reading{}, false
}

// InvalidCount is the number of channels that decoded to Invalid.
func (d Document) InvalidCount() int {
	n := 0
	for _, s := range d.sections {
		for _, e := range s.Entries {
			if !e.Reading.Valid() {
				n++
			}
		}
	}
	return n
}

func copySections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section{
			Category: s.Category,
			Entries:  append([]Entry(nil), s.Entries...),
		}
	}
	return out
}
