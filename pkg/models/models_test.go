package models

import (
	"fmt"
	"testing"

	"github.com/sdejongh/templa/pkg/replace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyOperationValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		op := &CopyOperation{SourcePath: "src", DestPath: "dst", Replace: replace.New(map[string]string{"a": "b"})}
		assert.NoError(t, op.Validate())
	})

	t.Run("MissingSource", func(t *testing.T) {
		op := &CopyOperation{DestPath: "dst"}
		err := op.Validate()
		require.Error(t, err)
		assert.Equal(t, ResultSyntaxError, ResultOf(err))
	})

	t.Run("MissingDest", func(t *testing.T) {
		op := &CopyOperation{SourcePath: "src"}
		var ve *ValidationError
		require.ErrorAs(t, op.Validate(), &ve)
		assert.Equal(t, "DestPath", ve.Field)
	})

	t.Run("NilReplaceIsFine", func(t *testing.T) {
		op := &CopyOperation{SourcePath: "src", DestPath: "dst"}
		assert.NoError(t, op.Validate())
	})
}

func TestResultOf(t *testing.T) {
	base := fmt.Errorf("boom")
	tests := []struct {
		name string
		err  error
		want Result
	}{
		{"nil", nil, ResultOK},
		{"read", NewCopyError(ResultReadError, "/a", base), ResultReadError},
		{"write", NewCopyError(ResultWriteError, "/b", base), ResultWriteError},
		{"logical", NewCopyError(ResultLogicalError, "/c", base), ResultLogicalError},
		{"canceled", NewCopyError(ResultCanceled, "/d", ErrCanceled), ResultCanceled},
		{"wrapped", fmt.Errorf("outer: %w", NewCopyError(ResultWriteError, "/e", base)), ResultWriteError},
		{"plain", base, ResultReadError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultOf(tt.err))
		})
	}
}

func TestCopyErrorPath(t *testing.T) {
	err := NewCopyError(ResultReadError, "/src/file.txt", fmt.Errorf("cannot read file '/src/file.txt'"))
	assert.Equal(t, "/src/file.txt", PathOf(err))
	assert.Contains(t, err.Error(), "/src/file.txt")
	assert.Empty(t, PathOf(fmt.Errorf("plain")))
}

func TestResultExitCode(t *testing.T) {
	codes := map[Result]int{
		ResultOK:           0,
		ResultSyntaxError:  1,
		ResultReadError:    2,
		ResultWriteError:   3,
		ResultLogicalError: 4,
		ResultCanceled:     5,
	}
	for r, code := range codes {
		assert.Equal(t, code, r.ExitCode(), r.String())
	}
}

func TestCopyReportRecord(t *testing.T) {
	r := &CopyReport{}
	r.Record(CopyEntry{Kind: KindDir, Action: ActionCopy})
	r.Record(CopyEntry{Kind: KindFile, Action: ActionCopy, Encoding: "UTF-8", Bytes: 10})
	r.Record(CopyEntry{Kind: KindFile, Action: ActionCopy, Encoding: "binary", Bytes: 5})
	r.Record(CopyEntry{Kind: KindFile, Action: ActionIgnore})

	assert.Len(t, r.Entries, 4)
	assert.EqualValues(t, 1, r.Stats.DirsCopied.Load())
	assert.EqualValues(t, 2, r.Stats.FilesCopied.Load())
	assert.EqualValues(t, 1, r.Stats.TextFiles.Load())
	assert.EqualValues(t, 1, r.Stats.BinaryFiles.Load())
	assert.EqualValues(t, 1, r.Stats.Ignored.Load())
	assert.EqualValues(t, 15, r.Stats.BytesWritten.Load())

	r.Finish(NewCopyError(ResultCanceled, "/x", ErrCanceled))
	assert.Equal(t, ResultCanceled, r.Result)
}
