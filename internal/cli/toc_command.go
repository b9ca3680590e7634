package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/config"
	"github.com/temirov/vaultmap/internal/diagram"
	"github.com/temirov/vaultmap/internal/services/clipboard"
	"github.com/temirov/vaultmap/internal/toc"
	"github.com/temirov/vaultmap/internal/types"
	"github.com/temirov/vaultmap/internal/utils"
)

const (
	tocToolName         = "vaulttoc"
	tocUse              = tocToolName + " [path]"
	tocShortDescription = "generate a markdown table of contents with a Mermaid diagram"
	// tocLongDescription provides detailed help for the toc command.
	tocLongDescription = `Generate a table-of-contents note for an Obsidian folder.

Scan mode (a folder path) lists the folder's notes, writes an editable
` + toc.DefaultConfigFileName + ` next to the folder and prints the full document.
Regenerate mode (-i) re-reads the sections of an existing note and replaces
only its Mermaid block, keeping every other line as it was.
Defaults may be stored under the "toc" key of ` + utils.ConfigFileName + `.`
	// tocUsageExample demonstrates toc command usage.
	tocUsageExample = `  # Scan a folder and write the table of contents
  vaulttoc ~/Vault/Projects -o Projects.md

  # Use a hand-edited section config and a flowchart
  vaulttoc ~/Vault/Projects -c toc_config.json -d flowchart -o Projects.md

  # Refresh the diagram after editing the note's sections
  vaulttoc -i Projects.md -o Projects.md`

	inputFlagName               = "input"
	inputFlagShorthand          = "i"
	configFlagName              = "config"
	configFlagShorthand         = "c"
	templateFlagName            = "template"
	diagramFlagName             = "diagram"
	diagramFlagShorthand        = "d"
	titleFlagName               = "title"
	titleFlagShorthand          = "t"
	allFilesFlagName            = "all-files"
	inputFlagDescription        = "regenerate the diagram of this existing markdown file"
	configFlagDescription       = "load sections from this JSON config instead of scanning"
	templateFlagDescription     = "emit a two-section template to reorganize by hand"
	diagramFlagDescription      = "diagram style: mindmap or flowchart"
	titleFlagDescription        = "title of the table of contents"
	allFilesFlagDescription     = "include every file, not only markdown notes"
	markdownWrittenConfirmation = "Markdown written to %s\n"

	errorModeConflictFormat      = "%w: give either a folder path or --%s"
	errorTemplateConflictFormat  = "%w: --%s needs a folder path, not --%s"
	errorNoInputFormat           = "%w: give a folder path or --%s"
	errorReadInputFormat         = "read input %s: %w"
	errorConfiguredDiagramFormat = "toc.diagram in configuration: %w"
	infoConfigSavedMessage       = "saved editable section config"
	warningConfigSaveMessage     = "unable to save section config"
	warningConfigMissingMessage  = "section config not found, scanning folder instead"
	infoScanningMessage          = "scanning folder"
	infoRegeneratingMessage      = "regenerating diagram"
)

var (
	// ErrModeConflict is returned when both scan and regenerate inputs are given.
	ErrModeConflict = errors.New("conflicting inputs")
	// ErrNoInput is returned when neither a folder nor an input file is given.
	ErrNoInput = errors.New("no input")
)

// tocOptions stores the flag values of the toc command.
type tocOptions struct {
	inputPath       string
	configPath      string
	template        bool
	outputPath      string
	style           types.DiagramStyle
	title           string
	allFiles        bool
	copyToClipboard bool
	configFilePath  string
}

// ExecuteToc runs the vaulttoc application.
func ExecuteToc(logger *zap.Logger) error {
	return NewTocCommand(Dependencies{Logger: logger, Clipboard: clipboard.NewService()}).Execute()
}

// NewTocCommand builds the vaulttoc root command.
func NewTocCommand(dependencies Dependencies) *cobra.Command {
	var options tocOptions

	tocCommand := &cobra.Command{
		Use:           tocUse,
		Short:         tocShortDescription,
		Long:          tocLongDescription,
		Example:       tocUsageExample,
		Args:          cobra.MaximumNArgs(1),
		Version:       utils.GetApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if modeError := validateTocMode(arguments, options); modeError != nil {
				return modeError
			}
			applicationConfiguration, configurationError := dependencies.loadConfiguration(options.configFilePath)
			if configurationError != nil {
				return configurationError
			}
			if resolveError := resolveTocOptions(command, &options, applicationConfiguration.Toc); resolveError != nil {
				return resolveError
			}

			var document string
			var generateError error
			if options.inputPath != "" {
				document, generateError = regenerateDocument(dependencies, options)
			} else {
				document, generateError = scanDocument(dependencies, arguments[0], options)
			}
			if generateError != nil {
				return generateError
			}
			return dependencies.deliverResult(command.OutOrStdout(), document, options.outputPath, markdownWrittenConfirmation, options.copyToClipboard)
		},
	}
	tocCommand.SetVersionTemplate(fmt.Sprintf(versionTemplateFormat, tocToolName))

	flags := tocCommand.Flags()
	flags.StringVarP(&options.inputPath, inputFlagName, inputFlagShorthand, "", inputFlagDescription)
	flags.StringVarP(&options.configPath, configFlagName, configFlagShorthand, "", configFlagDescription)
	flags.BoolVar(&options.template, templateFlagName, false, templateFlagDescription)
	flags.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	registerDiagramStyleFlag(flags, &options.style, diagramFlagName, diagramFlagShorthand, types.DiagramStyleMindmap, diagramFlagDescription)
	flags.StringVarP(&options.title, titleFlagName, titleFlagShorthand, types.DefaultTocTitle, titleFlagDescription)
	flags.BoolVar(&options.allFiles, allFilesFlagName, false, allFilesFlagDescription)
	flags.BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flags.StringVar(&options.configFilePath, configFileFlagName, "", configFileFlagDescription)
	return tocCommand
}

func validateTocMode(arguments []string, options tocOptions) error {
	hasFolder := len(arguments) == 1
	hasInput := options.inputPath != ""
	switch {
	case hasFolder && hasInput:
		return fmt.Errorf(errorModeConflictFormat, ErrModeConflict, inputFlagName)
	case hasInput && options.template:
		return fmt.Errorf(errorTemplateConflictFormat, ErrModeConflict, templateFlagName, inputFlagName)
	case !hasFolder && !hasInput:
		return fmt.Errorf(errorNoInputFormat, ErrNoInput, inputFlagName)
	}
	return nil
}

// resolveTocOptions fills unset flags from the configuration file.
func resolveTocOptions(command *cobra.Command, options *tocOptions, fileConfiguration config.TocConfiguration) error {
	flags := command.Flags()
	if !flags.Changed(diagramFlagName) && fileConfiguration.Diagram != "" {
		configuredStyle, parseError := parseDiagramStyle(fileConfiguration.Diagram)
		if parseError != nil {
			return fmt.Errorf(errorConfiguredDiagramFormat, parseError)
		}
		options.style = configuredStyle
	}
	if !flags.Changed(titleFlagName) && fileConfiguration.Title != "" {
		options.title = fileConfiguration.Title
	}
	if !flags.Changed(allFilesFlagName) && fileConfiguration.MarkdownOnly != nil {
		options.allFiles = !*fileConfiguration.MarkdownOnly
	}
	if !flags.Changed(copyFlagName) {
		options.copyToClipboard = config.BoolOrDefault(fileConfiguration.Copy, false)
	}
	return nil
}

// scanDocument builds the section config for a folder and renders the full document.
func scanDocument(dependencies Dependencies, folderArgument string, options tocOptions) (string, error) {
	folderPath, pathError := dependencies.requireDirectory(folderArgument)
	if pathError != nil {
		return "", pathError
	}
	logger := dependencies.logger()

	if options.configPath != "" && !options.template {
		loadedConfig, found, loadError := loadSectionConfig(dependencies, options.configPath)
		if loadError != nil {
			return "", loadError
		}
		if found {
			if loadedConfig.Title == "" {
				loadedConfig.Title = options.title
			}
			return toc.GenerateDocument(loadedConfig, options.style)
		}
		logger.Warn(warningConfigMissingMessage, zap.String(loggerFieldPath, options.configPath))
	}

	logger.Info(infoScanningMessage, zap.String(loggerFieldPath, folderPath))
	files := toc.ScanFolder(folderPath, !options.allFiles, logger)
	if options.template {
		return toc.GenerateDocument(toc.NewTemplateConfig(options.title, files), options.style)
	}

	defaultConfig := toc.NewDefaultConfig(options.title, files)
	configPath := toc.DefaultConfigPath(folderPath)
	if saveError := toc.SaveConfig(configPath, defaultConfig); saveError != nil {
		logger.Warn(warningConfigSaveMessage, zap.String(loggerFieldPath, configPath), zap.Error(saveError))
	} else {
		logger.Info(infoConfigSavedMessage, zap.String(loggerFieldPath, configPath))
	}
	return toc.GenerateDocument(defaultConfig, options.style)
}

// loadSectionConfig reports found=false when the file does not exist.
func loadSectionConfig(dependencies Dependencies, configArgument string) (types.TocConfig, bool, error) {
	configPath, resolveError := dependencies.resolvePath(configArgument)
	if resolveError != nil {
		return types.TocConfig{}, false, resolveError
	}
	if _, statError := os.Stat(configPath); os.IsNotExist(statError) {
		return types.TocConfig{}, false, nil
	}
	loadedConfig, loadError := toc.LoadConfig(configPath)
	if loadError != nil {
		return types.TocConfig{}, false, loadError
	}
	return loadedConfig, true, nil
}

// regenerateDocument replaces the diagram of an existing note with one built from its own sections.
//
// #nosec G304
func regenerateDocument(dependencies Dependencies, options tocOptions) (string, error) {
	inputPath, resolveError := dependencies.resolvePath(options.inputPath)
	if resolveError != nil {
		return "", resolveError
	}
	originalContent, readError := os.ReadFile(inputPath)
	if readError != nil {
		return "", fmt.Errorf(errorReadInputFormat, options.inputPath, readError)
	}
	dependencies.logger().Info(infoRegeneratingMessage, zap.String(loggerFieldPath, inputPath))

	parsedConfig := toc.ParseMarkdown(string(originalContent), options.title)
	diagramBlock, generateError := diagram.Generate(parsedConfig, options.style)
	if generateError != nil {
		return "", generateError
	}
	return toc.ComposeDocument(diagramBlock, string(originalContent)), nil
}
