package dispatch

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
)

// fakeImporter claims files by name suffix and returns canned directives.
type fakeImporter struct {
	suffix     string
	directives []ledger.Directive
	date       time.Time
}

func (f *fakeImporter) Identify(path string) bool {
	return filepath.Base(path) == f.suffix
}

func (f *fakeImporter) Extract(path string, existing []ledger.Directive) ([]ledger.Directive, error) {
	return f.directives, nil
}

func (f *fakeImporter) Account(path string) string { return "Assets:Paypal" }

func (f *fakeImporter) Date(path string) (time.Time, bool) {
	return f.date, !f.date.IsZero()
}

func (f *fakeImporter) Filename(path string) string { return "paypal.csv" }

func discard() *log.Logger { return log.New(io.Discard) }

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "bank.csv", files[0].Name)
	assert.Equal(t, int64(4), files[0].Size)
}

func TestScan_IgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "processed", "old.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	txn := &ledger.Transaction{Date: time.Now()}
	matching := &fakeImporter{suffix: "a.csv", directives: []ledger.Directive{txn}}
	other := &fakeImporter{suffix: "a.csv"}

	files := []FileInfo{{Name: "a.csv", Path: "a.csv"}}
	results, err := Dispatch(files, []Importer{matching, other}, discard())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Same(t, Importer(matching), results[0].Importer)
	assert.Len(t, results[0].Directives, 1)
}

func TestDispatch_UnclaimedFileSkipped(t *testing.T) {
	imp := &fakeImporter{suffix: "a.csv"}
	files := []FileInfo{{Name: "b.csv", Path: "b.csv"}}

	results, err := Dispatch(files, []Importer{imp}, discard())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestArchive_WithDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	imp := &fakeImporter{date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)}
	dst, err := Archive(dir, FileInfo{Name: "export.csv", Path: src}, imp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processed", "2024-03-06.paypal.csv"), dst)

	_, err = os.Stat(dst)
	assert.NoError(t, err)
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestArchive_NoDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	dst, err := Archive(dir, FileInfo{Name: "export.csv", Path: src}, &fakeImporter{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processed", "paypal.csv"), dst)
}
