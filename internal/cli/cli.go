// Package cli provides the foldertree and vaulttoc command line interfaces.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/config"
	"github.com/temirov/vaultmap/internal/services/clipboard"
	"github.com/temirov/vaultmap/internal/utils"
)

const (
	outputFlagName        = "output"
	outputFlagShorthand   = "o"
	copyFlagName          = "copy"
	configFileFlagName    = "config-file"
	versionTemplateFormat = "%s version: {{.Version}}\n"

	outputFlagDescription     = "write the result to this file instead of standard output"
	copyFlagDescription       = "also copy the result to the system clipboard"
	configFileFlagDescription = "read defaults from this YAML file instead of ./" + utils.ConfigFileName

	outputFilePermissions = 0o644
	trailingNewline       = "\n"

	errorNotDirectoryFormat   = "%w: '%s'"
	errorStatPathFormat       = "stat failed for '%s': %w"
	errorAbsolutePathFormat   = "abs failed for '%s': %w"
	errorWriteOutputFormat    = "write output to %s: %w"
	errorWorkingDirectoryFmt  = "unable to determine working directory: %w"
	warningClipboardMessage   = "unable to copy result to clipboard"
	infoCopiedToClipboard     = "result copied to clipboard"
	loggerFieldPath           = "path"
	standardOutputDescription = "standard output"
)

// ErrNotDirectory is returned when a required directory argument is missing or not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Dependencies are the collaborators shared by both commands.
type Dependencies struct {
	Logger           *zap.Logger
	Clipboard        clipboard.Copier
	WorkingDirectory string
}

func (dependencies Dependencies) logger() *zap.Logger {
	if dependencies.Logger == nil {
		return zap.NewNop()
	}
	return dependencies.Logger
}

// loadConfiguration reads the YAML defaults relative to the working directory.
func (dependencies Dependencies) loadConfiguration(explicitPath string) (config.ApplicationConfiguration, error) {
	workingDirectory := dependencies.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return config.ApplicationConfiguration{}, fmt.Errorf(errorWorkingDirectoryFmt, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}
	return config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
	})
}

// resolvePath makes relative paths relative to the configured working directory.
func (dependencies Dependencies) resolvePath(inputPath string) (string, error) {
	if filepath.IsAbs(inputPath) || dependencies.WorkingDirectory == "" {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return "", fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		return absolutePath, nil
	}
	return filepath.Join(dependencies.WorkingDirectory, inputPath), nil
}

// requireDirectory resolves inputPath and fails unless it names an existing directory.
func (dependencies Dependencies) requireDirectory(inputPath string) (string, error) {
	resolvedPath, resolveError := dependencies.resolvePath(inputPath)
	if resolveError != nil {
		return "", resolveError
	}
	info, statError := os.Stat(resolvedPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return "", fmt.Errorf(errorNotDirectoryFormat, ErrNotDirectory, inputPath)
		}
		return "", fmt.Errorf(errorStatPathFormat, inputPath, statError)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(errorNotDirectoryFormat, ErrNotDirectory, inputPath)
	}
	return resolvedPath, nil
}

// deliverResult writes text to outputPath (or standardOutput when empty) and optionally copies it.
// Text always ends with a newline once written. The confirmation is printed only for file output.
func (dependencies Dependencies) deliverResult(standardOutput io.Writer, text string, outputPath string, confirmationFormat string, copyToClipboard bool) error {
	if !strings.HasSuffix(text, trailingNewline) {
		text += trailingNewline
	}
	if outputPath == "" {
		if _, writeError := io.WriteString(standardOutput, text); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, standardOutputDescription, writeError)
		}
	} else {
		resolvedOutputPath, resolveError := dependencies.resolvePath(outputPath)
		if resolveError != nil {
			return resolveError
		}
		if writeError := os.WriteFile(resolvedOutputPath, []byte(text), outputFilePermissions); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, outputPath, writeError)
		}
		fmt.Fprintf(standardOutput, confirmationFormat, outputPath)
	}
	if copyToClipboard && dependencies.Clipboard != nil {
		if copyError := dependencies.Clipboard.Copy(text); copyError != nil {
			dependencies.logger().Warn(warningClipboardMessage, zap.Error(copyError))
		} else {
			dependencies.logger().Info(infoCopiedToClipboard)
		}
	}
	return nil
}
