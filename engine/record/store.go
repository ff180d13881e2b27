package record

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Store is a read-only lookup of records by object name.
type Store interface {
	// Get returns the record for an object. Objects without an explicit entry receive the
	// store's default record if one is configured.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - Record: the record
	//   - bool: false if the object has no record
	Get(name string) (Record, bool)

	// Has reports whether the object has an explicit entry, ignoring the default.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - bool: true if an explicit entry exists
	Has(name string) bool

	// Len returns the number of explicit entries.
	//
	// Returns:
	//   - int: entry count
	Len() int

	// Names returns the explicitly recorded object names, sorted.
	//
	// Returns:
	//   - []string: the names
	Names() []string
}

type store struct {
	records map[string]Record
	def     *Record
}

var _ Store = &store{}

// NewStore creates a Store from the provided options. Records are copied in; later changes
// to the caller's map are not observed.
//
// Parameters:
//   - options: variadic list of StoreBuilderOption functions
//
// Returns:
//   - Store: the store
func NewStore(options ...StoreBuilderOption) Store {
	s := &store{records: make(map[string]Record)}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *store) Get(name string) (Record, bool) {
	if r, ok := s.records[name]; ok {
		return r, true
	}
	if s.def != nil {
		return *s.def, true
	}
	return Record{}, false
}

func (s *store) Has(name string) bool {
	_, ok := s.records[name]
	return ok
}

func (s *store) Len() int {
	return len(s.records)
}

func (s *store) Names() []string {
	names := make([]string, 0, len(s.records))
	for n := range s.records {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse decodes a YAML document mapping object names to records.
//
//	object_1:
//	  date: "2024-01-15"
//	  vendor: PT. ABC
//	  mandor: Pak Ahmad
//	  zone: Zone A
//	  workers: 25
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - map[string]Record: the decoded records
//   - error: if the document is malformed
func Parse(data []byte) (map[string]Record, error) {
	records := make(map[string]Record)
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "record: decode yaml")
	}
	return records, nil
}

// Load reads and parses a YAML records file.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - map[string]Record: the decoded records
//   - error: if the file cannot be read or parsed
func Load(path string) (map[string]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "record: read %s", path)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "record: parse %s", path)
	}
	return records, nil
}
