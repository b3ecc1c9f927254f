package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sdejongh/templa/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleEntries = []models.CopyEntry{
	{SourcePath: "src", DestPath: "dst/src", Kind: models.KindDir, Action: models.ActionCopy},
	{SourcePath: "src/a.txt", DestPath: "dst/src/a.txt", Kind: models.KindFile, Action: models.ActionCopy, Encoding: "UTF-8", BOM: true, Newline: "crlf", Bytes: 16},
	{SourcePath: "src/secret.bin", Kind: models.KindFile, Action: models.ActionIgnore},
}

func TestFormatEntry(t *testing.T) {
	assert.Equal(t, "src --> dst/src [DIR]", FormatEntry(sampleEntries[0]))
	assert.Equal(t, "src/a.txt --> dst/src/a.txt [UTF-8]", FormatEntry(sampleEntries[1]))
	assert.Equal(t, "src/secret.bin [ignored]", FormatEntry(sampleEntries[2]))
}

func TestHumanFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewHumanFormatter(&errOut, false)
	require.NoError(t, f.Start(&out, 0))
	for _, e := range sampleEntries {
		require.NoError(t, f.Entry(e))
	}
	require.NoError(t, f.Error(fmt.Errorf("Cannot read file 'x'")))
	require.NoError(t, f.Complete(&models.CopyReport{}))

	assert.Equal(t, "src --> dst/src [DIR]\nsrc/a.txt --> dst/src/a.txt [UTF-8]\nsrc/secret.bin [ignored]\n", out.String())
	assert.Equal(t, "ERROR: Cannot read file 'x'\n", errOut.String())
	assert.Equal(t, "human", f.Name())
}

func TestHumanFormatter_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewHumanFormatter(&errOut, true)
	require.NoError(t, f.Start(&out, 0))
	require.NoError(t, f.Entry(sampleEntries[1]))
	require.NoError(t, f.Error(fmt.Errorf("boom")))

	assert.Empty(t, out.String())
	assert.Equal(t, "ERROR: boom\n", errOut.String(), "errors are printed even when quiet")
}

func TestJSONFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewJSONFormatter(&errOut)
	require.NoError(t, f.Start(&out, 0))
	for _, e := range sampleEntries {
		require.NoError(t, f.Entry(e))
	}

	report := &models.CopyReport{OperationID: "op-1", SourcePath: "src", DestPath: "dst"}
	report.Record(sampleEntries[0])
	report.Record(sampleEntries[1])
	report.Record(sampleEntries[2])
	report.Finish(nil)
	require.NoError(t, f.Complete(report))

	var data JSONReportData
	require.NoError(t, json.Unmarshal(out.Bytes(), &data))
	assert.Equal(t, "op-1", data.OperationID)
	assert.Equal(t, "ok", data.Result)
	assert.Equal(t, 0, data.ExitCode)
	assert.Len(t, data.Entries, 3)
	assert.Equal(t, "UTF-8", data.Entries[1].Encoding)
	assert.EqualValues(t, 1, data.Stats.FilesCopied)
	assert.EqualValues(t, 1, data.Stats.Ignored)
	assert.Empty(t, data.Errors)
	assert.Empty(t, errOut.String())
}

func TestJSONFormatter_Error(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewJSONFormatter(&errOut)
	require.NoError(t, f.Start(&out, 0))

	err := models.NewCopyError(models.ResultWriteError, "/dst/a", fmt.Errorf("Cannot write file '/dst/a'"))
	require.NoError(t, f.Error(err))

	report := &models.CopyReport{}
	report.Finish(err)
	require.NoError(t, f.Complete(report))

	var data JSONReportData
	require.NoError(t, json.Unmarshal(out.Bytes(), &data))
	assert.Equal(t, "write error", data.Result)
	assert.Equal(t, 3, data.ExitCode)
	require.Len(t, data.Errors, 1)
	assert.Equal(t, "/dst/a", data.Errors[0].Path)
	assert.Contains(t, errOut.String(), "ERROR: Cannot write file '/dst/a'")
}

func TestProgressFormatter(t *testing.T) {
	var out, errOut, barOut bytes.Buffer
	f := NewProgressFormatter(NewHumanFormatter(&errOut, false), &barOut)
	f.forceBar = true

	require.NoError(t, f.Start(&out, len(sampleEntries)))
	for _, e := range sampleEntries {
		require.NoError(t, f.Entry(e))
	}
	require.NoError(t, f.Complete(&models.CopyReport{}))

	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")))
	assert.NotNil(t, f.bar)
	assert.EqualValues(t, 3, f.bar.Current())
	assert.Equal(t, "progress", f.Name())
}

func TestProgressFormatter_NoTerminal(t *testing.T) {
	var out, barOut bytes.Buffer
	f := NewProgressFormatter(NewHumanFormatter(&bytes.Buffer{}, false), &barOut)
	require.NoError(t, f.Start(&out, 1))
	require.NoError(t, f.Entry(sampleEntries[0]))
	require.NoError(t, f.Complete(&models.CopyReport{}))

	assert.Nil(t, f.bar)
	assert.Empty(t, barOut.String())
	assert.Equal(t, "src --> dst/src [DIR]\n", out.String())
}

func TestNew(t *testing.T) {
	f, err := New("human", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "human", f.Name())

	f, err = New("json", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	_, err = New("xml", nil, false)
	assert.Error(t, err)
}
