package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingClipboard struct {
	copiedTexts []string
	copyError   error
}

func (clipboardStub *recordingClipboard) Copy(text string) error {
	if clipboardStub.copyError != nil {
		return clipboardStub.copyError
	}
	clipboardStub.copiedTexts = append(clipboardStub.copiedTexts, text)
	return nil
}

type commandHarness struct {
	workingDirectory string
	clipboard        *recordingClipboard
	logs             *observer.ObservedLogs
	dependencies     Dependencies
}

// newCommandHarness isolates configuration lookup to temporary home and working directories.
func newCommandHarness(testingHandle *testing.T) *commandHarness {
	testingHandle.Helper()
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	testingHandle.Setenv("USERPROFILE", homeDirectory)

	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	harness := &commandHarness{
		workingDirectory: testingHandle.TempDir(),
		clipboard:        &recordingClipboard{},
		logs:             observedLogs,
	}
	harness.dependencies = Dependencies{
		Logger:           zap.New(observedCore),
		Clipboard:        harness.clipboard,
		WorkingDirectory: harness.workingDirectory,
	}
	return harness
}

func (harness *commandHarness) writeFile(testingHandle *testing.T, relativePath string, content string) string {
	testingHandle.Helper()
	absolutePath := filepath.Join(harness.workingDirectory, relativePath)
	require.NoError(testingHandle, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testingHandle, os.WriteFile(absolutePath, []byte(content), 0o600))
	return absolutePath
}

func (harness *commandHarness) readFile(testingHandle *testing.T, relativePath string) string {
	testingHandle.Helper()
	content, readError := os.ReadFile(filepath.Join(harness.workingDirectory, relativePath))
	require.NoError(testingHandle, readError)
	return string(content)
}

func executeCommand(command *cobra.Command, arguments ...string) (string, error) {
	var standardOutput bytes.Buffer
	command.SetOut(&standardOutput)
	command.SetErr(io.Discard)
	command.SetArgs(arguments)
	executionError := command.Execute()
	return standardOutput.String(), executionError
}

func TestDeliverResultWritesFileAndConfirms(t *testing.T) {
	harness := newCommandHarness(t)
	var standardOutput bytes.Buffer

	deliverError := harness.dependencies.deliverResult(&standardOutput, "body", "out.md", markdownWrittenConfirmation, true)
	require.NoError(t, deliverError)
	require.Equal(t, "Markdown written to out.md\n", standardOutput.String())
	require.Equal(t, "body\n", harness.readFile(t, "out.md"))
	require.Equal(t, []string{"body\n"}, harness.clipboard.copiedTexts)
}

func TestDeliverResultClipboardFailureIsOnlyAWarning(t *testing.T) {
	harness := newCommandHarness(t)
	harness.clipboard.copyError = errors.New("no clipboard")
	var standardOutput bytes.Buffer

	deliverError := harness.dependencies.deliverResult(&standardOutput, "body\n", "", treeWrittenConfirmationFormat, true)
	require.NoError(t, deliverError)
	require.Equal(t, "body\n", standardOutput.String())
	require.Equal(t, 1, harness.logs.FilterMessage(warningClipboardMessage).Len())
}

func TestRequireDirectoryRejectsFilesAndMissingPaths(t *testing.T) {
	harness := newCommandHarness(t)
	harness.writeFile(t, "note.md", "text")

	_, fileError := harness.dependencies.requireDirectory("note.md")
	require.ErrorIs(t, fileError, ErrNotDirectory)

	_, missingError := harness.dependencies.requireDirectory("absent")
	require.ErrorIs(t, missingError, ErrNotDirectory)

	resolvedPath, resolveError := harness.dependencies.requireDirectory(".")
	require.NoError(t, resolveError)
	require.Equal(t, harness.workingDirectory, resolvedPath)
}
