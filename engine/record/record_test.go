package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
object_1:
  date: "2024-01-15"
  vendor: PT. ABC
  mandor: Pak Ahmad
  zone: Zone A
  workers: 25
column_7:
  zone: Zone B
  workers: 0
`

func TestFieldsSubstituteNotSpecified(t *testing.T) {
	fields := Record{Zone: "Zone C"}.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, Field{LabelDate, common.NotSpecified}, fields[0])
	assert.Equal(t, Field{LabelVendor, common.NotSpecified}, fields[1])
	assert.Equal(t, Field{LabelMandor, common.NotSpecified}, fields[2])
	assert.Equal(t, Field{LabelZone, "Zone C"}, fields[3])
	assert.Equal(t, Field{LabelWorkers, common.NotSpecified}, fields[4])
}

func TestWorkersZeroIsAValue(t *testing.T) {
	assert.Equal(t, "0", Record{Workers: IntPtr(0)}.WorkersDisplay())
	assert.Equal(t, "25", Record{Workers: IntPtr(25)}.WorkersDisplay())
}

func TestParse(t *testing.T) {
	records, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records["object_1"]
	assert.Equal(t, "2024-01-15", r.Date)
	assert.Equal(t, "PT. ABC", r.Vendor)
	assert.Equal(t, "Pak Ahmad", r.SecondaryResponsible)
	require.NotNil(t, r.Workers)
	assert.Equal(t, 25, *r.Workers)

	c := records["column_7"]
	assert.Empty(t, c.Vendor)
	require.NotNil(t, c.Workers)
	assert.Equal(t, 0, *c.Workers)

	_, err = Parse([]byte("object_1: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStoreDefault(t *testing.T) {
	records, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	s := NewStore(WithRecords(records))
	_, ok := s.Get("unknown")
	assert.False(t, ok)

	def := &Record{Vendor: "Default Vendor", Workers: IntPtr(0)}
	s = NewStore(WithRecords(records), WithDefault(def))
	def.Vendor = "mutated"

	r, ok := s.Get("unknown")
	require.True(t, ok)
	assert.Equal(t, "Default Vendor", r.Vendor)
	assert.False(t, s.Has("unknown"))
	assert.True(t, s.Has("object_1"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"column_7", "object_1"}, s.Names())

	r, ok = s.Get("object_1")
	require.True(t, ok)
	assert.Equal(t, "PT. ABC", r.Vendor)
}

func TestStoreCopiesWorkers(t *testing.T) {
	n := 3
	s := NewStore(WithRecord("a", Record{Workers: &n}))
	n = 9
	r, _ := s.Get("a")
	assert.Equal(t, 3, *r.Workers)
}
