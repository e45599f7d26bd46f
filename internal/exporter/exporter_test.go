package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"companyexport/internal/domain/models"

	"github.com/stretchr/testify/require"
)

var safeCharset = regexp.MustCompile(`^[A-Za-z0-9._-]*$`)

func TestSafeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces and punctuation", input: "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)", expected: "Continental_AG_Germany_Fed._Rep._NBB_CTTA_Y"},
		{name: "leading and trailing separators", input: "  ///Boeing Co.///  ", expected: "Boeing_Co."},
		{name: "already safe", input: "Denso_Corp-2025.json", expected: "Denso_Corp-2025.json"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SafeFilename(tc.input))
		})
	}
}

func TestSafeFilenameCharsetAndLength(t *testing.T) {
	inputs := []string{
		"Magna International Inc (NYS: MGA)",
		"名前 von Übermaß GmbH & Co. KGaA",
		strings.Repeat("Continental AG ", 50),
	}

	for _, input := range inputs {
		safe := SafeFilename(input)
		require.True(t, safeCharset.MatchString(safe), "Unexpected characters in %q", safe)
		require.LessOrEqual(t, len(safe), 80)
		require.False(t, strings.HasPrefix(safe, "_"))
		require.False(t, strings.HasSuffix(safe, "_"))
	}
}

func TestWriteUniqueFilenames(t *testing.T) {
	e, err := New(t.TempDir())
	require.NoError(t, err)

	docs := []models.Company{{Name: "Airbus SE (NBB: EADS Y)", Country: "Netherlands"}}

	f1, err := e.Write(docs, "Airbus SE (NBB: EADS Y)")
	require.NoError(t, err)
	f2, err := e.Write(docs, "Airbus SE (NBB: EADS Y)")
	require.NoError(t, err)

	require.NotEqual(t, f1, f2, "Two exports of the same target must never collide")
	require.True(t, strings.HasPrefix(f1, "Airbus_SE_NBB_EADS_Y_"))
	require.True(t, strings.HasSuffix(f1, ".json"))
}

func TestWriteContent(t *testing.T) {
	dir := t.TempDir()
	e, err := New(dir)
	require.NoError(t, err)

	docs := []models.Company{
		{Name: "Denso Corp (NBB: DNZO Y)", Country: "Japan", Industry: "Auto Parts"},
	}

	filename, err := e.Write(docs, "denso")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ", "Expected indented JSON")

	var decoded []models.Company
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "Denso Corp (NBB: DNZO Y)", decoded[0].Name)
}

func TestPath(t *testing.T) {
	e, err := New(t.TempDir())
	require.NoError(t, err)

	filename, err := e.Write([]models.Company{{Name: "Boeing Co. (The) (NYS: BA)"}}, "boeing")
	require.NoError(t, err)

	p, ok := e.Path(filename)
	require.True(t, ok)
	require.NotEmpty(t, p)

	_, ok = e.Path("never_written_anything.json")
	require.False(t, ok, "Expected not-found for a filename never written")

	_, ok = e.Path("../" + filename)
	require.False(t, ok, "Path separators must not escape the export dir")
}

func BenchmarkSafeFilename(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SafeFilename("Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)")
	}
}
