package record

// StoreBuilderOption is a function that configures a store during construction.
type StoreBuilderOption func(*store)

// WithRecords adds records keyed by object name. Later options override earlier ones.
//
// Parameters:
//   - records: the records to add
//
// Returns:
//   - StoreBuilderOption: option function to apply
func WithRecords(records map[string]Record) StoreBuilderOption {
	return func(s *store) {
		for name, r := range records {
			if r.Workers != nil {
				r.Workers = IntPtr(*r.Workers)
			}
			s.records[name] = r
		}
	}
}

// WithRecord adds a single record.
//
// Parameters:
//   - name: the object name
//   - r: the record
//
// Returns:
//   - StoreBuilderOption: option function to apply
func WithRecord(name string, r Record) StoreBuilderOption {
	return WithRecords(map[string]Record{name: r})
}

// WithDefault sets the record returned for objects without an explicit entry.
// A nil default disables the fallback.
//
// Parameters:
//   - r: the default record or nil
//
// Returns:
//   - StoreBuilderOption: option function to apply
func WithDefault(r *Record) StoreBuilderOption {
	return func(s *store) {
		if r == nil {
			s.def = nil
			return
		}
		d := *r
		if d.Workers != nil {
			d.Workers = IntPtr(*d.Workers)
		}
		s.def = &d
	}
}
