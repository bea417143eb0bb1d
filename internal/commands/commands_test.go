package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paypal.yaml")
	_, err := run(t, "init", "-c", path)
	require.NoError(t, err)
	return path
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paypal.yaml")

	out, err := run(t, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "locale: de")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := writeConfig(t)
	_, err := run(t, "init", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExtract(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "extract", "-c", cfg, "../../testdata/paypal_de.csv")
	require.NoError(t, err)

	assert.Contains(t, out, `2024-03-01 * "" "Bankgutschrift auf PayPal-Konto"`)
	assert.Contains(t, out, "Assets:ZeroSum:Transfers  -100.00 EUR")
	assert.Contains(t, out, "Expenses:PayPal:Commission  -2.50 EUR")
	assert.Contains(t, out, "Expenses:FIXME\n")
	assert.Contains(t, out, "2024-03-06 balance Assets:PayPal  321.00 EUR")
	assert.Contains(t, out, `sender: "jane@example.com"`)
}

func TestExtract_WrongLocale(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, "extract", "-c", cfg, "../../testdata/paypal_en.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestIdentify(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "identify", "-c", cfg, "../../testdata/paypal_de.csv", "../../testdata/paypal_en.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "yes\t../../testdata/paypal_de.csv")
	assert.Contains(t, out, "no\t../../testdata/paypal_en.csv")
}

func TestImport(t *testing.T) {
	cfg := writeConfig(t)

	dir := t.TempDir()
	data, err := os.ReadFile("../../testdata/paypal_de.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.csv"), data, 0o644))

	out, err := run(t, "import", "-c", cfg, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-06 balance Assets:PayPal  321.00 EUR")

	// Not archived without the flag.
	_, err = os.Stat(filepath.Join(dir, "export.csv"))
	assert.NoError(t, err)
}

func TestImport_Archive(t *testing.T) {
	cfg := writeConfig(t)

	dir := t.TempDir()
	data, err := os.ReadFile("../../testdata/paypal_de.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.csv"), data, 0o644))

	_, err = run(t, "import", "-c", cfg, dir, "--archive")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "processed", "2024-03-06.paypal.csv"))
	assert.NoError(t, err)
}
