package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

func sampleReports() []m.Report {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	return []m.Report{
		{
			ID:         "b-second",
			Definition: "charts/cruise.json",
			Kind:       m.KindChaseAround,
			Case:       "warm",
			CreatedAt:  created.Add(time.Second),
			Calculation: &m.Calculation{
				Inputs:   map[string]float64{"altitude": 5000, "temperature": 0},
				Outputs:  map[string]float64{"trueAirspeed": 125},
				Solution: []m.Path{{{0, 60}, {20, 60}}},
				Scales:   []m.Path{{{20, 100}, {20, 60}}},
			},
		},
		{
			ID:         "a-first",
			Definition: "charts/envelope.json",
			Kind:       m.KindLoadEnvelope,
			CreatedAt:  created,
			Calculation: &m.Calculation{
				Inputs:   map[string]float64{"weight": 1500},
				Outputs:  map[string]float64{},
				Envelope: &m.EnvelopeSolution{Position: m.Point{50, 50}, WithinLimits: true, Category: "normal"},
			},
		},
		{
			ID:         "c-failed",
			Definition: "charts/cruise.json",
			Kind:       m.KindChaseAround,
			Case:       "no-crossing",
			CreatedAt:  created.Add(time.Second),
			Error:      "no intersection",
		},
	}
}

var reportCmp = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
}

func TestLocalReportStore_RoundTrip(t *testing.T) {
	formats := []m.ReportFormat{m.FormatJSON, m.FormatYAML, m.FormatMsgpack}

	for _, format := range formats {
		for _, compress := range []bool{false, true} {
			name := string(format)
			if compress {
				name += "+zstd"
			}

			t.Run(name, func(t *testing.T) {
				dir := m.FilePath(t.TempDir())
				store := NewReportStore(format, compress)

				require.NoError(t, store.SaveReports(dir, sampleReports()))

				entries, err := os.ReadDir(string(dir))
				require.NoError(t, err)
				require.Len(t, entries, 3)

				for _, entry := range entries {
					assert.Equal(t, compress, strings.HasSuffix(entry.Name(), compressedExt), entry.Name())
					assert.Equal(t, "."+string(format), baseExt(entry.Name()))
				}

				got, err := store.LoadReports(dir)
				require.NoError(t, err)

				want := sampleReports()
				want[0], want[1] = want[1], want[0]

				if diff := cmp.Diff(want, got, reportCmp...); diff != "" {
					t.Errorf("reports mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestLocalReportStore_AssignsIDs(t *testing.T) {
	dir := m.FilePath(t.TempDir())
	store := NewReportStore("", false)

	require.NoError(t, store.SaveReports(dir, []m.Report{{Kind: m.KindLoadArms}}))

	got, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].ID, 36)

	_, err = os.Stat(filepath.Join(string(dir), got[0].ID+".json"))
	require.NoError(t, err)
}

func TestLocalReportStore_LoadReports_MixedFormats(t *testing.T) {
	dir := m.FilePath(t.TempDir())
	reports := sampleReports()

	require.NoError(t, NewReportStore(m.FormatYAML, false).SaveReports(dir, reports[:1]))
	require.NoError(t, NewReportStore(m.FormatMsgpack, true).SaveReports(dir, reports[1:]))
	require.NoError(t, os.WriteFile(filepath.Join(string(dir), "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(string(dir), "nested.json"), 0o755))

	got, err := NewReportStore(m.FormatJSON, false).LoadReports(dir)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"a-first", "b-second", "c-failed"}, ids)
}

func TestLocalReportStore_LoadReports_MissingDir(t *testing.T) {
	_, err := NewReportStore(m.FormatJSON, false).LoadReports(m.FilePath(filepath.Join(t.TempDir(), "absent")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalReportStore_LoadReports_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	_, err := NewReportStore(m.FormatJSON, false).LoadReports(m.FilePath(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}
