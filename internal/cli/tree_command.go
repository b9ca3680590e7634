package cli

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/commands"
	"github.com/temirov/vaultmap/internal/config"
	"github.com/temirov/vaultmap/internal/services/clipboard"
	"github.com/temirov/vaultmap/internal/utils"
)

const (
	treeToolName         = "foldertree"
	treeUse              = treeToolName + " <path>"
	treeShortDescription = "render a directory as a text tree"
	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Render a directory's sub-folders and files as a box-drawing text tree,
suitable for pasting into Obsidian or any markdown document.
Defaults may be stored under the "tree" key of ` + utils.ConfigFileName + `.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Print the tree of a vault
  foldertree ~/ObsidianVault

  # Folders only, two levels deep, written to a file
  foldertree . --dirs-only --depth 2 -o tree.md

  # Skip tool folders and show only notes
  foldertree . --exclude .git --exclude .obsidian --include "*.md"`

	dirsOnlyFlagName         = "dirs-only"
	depthFlagName            = "depth"
	excludeFlagName          = "exclude"
	includeFlagName          = "include"
	gitignoreFlagName        = "gitignore"
	dirsOnlyFlagDescription  = "only show directories, skip files"
	depthFlagDescription     = "maximum depth to recurse (1 lists only the root's children)"
	excludeFlagDescription   = "directory names to skip entirely (repeatable or comma-separated)"
	includeFlagDescription   = "only show files matching these glob patterns (repeatable or comma-separated)"
	gitignoreFlagDescription = "also hide entries matched by the root .gitignore"

	treeWrittenConfirmationFormat = "Tree written to %s\n"
	errorNegativeDepthFormat      = "depth must not be negative, got %d"
	errorLoadGitignoreFormat      = "loading %s: %w"
	gitIgnoreFileName             = ".gitignore"
	debugRenderingTreeMessage     = "rendering tree"
)

// treeOptions stores the flag values of the tree command.
type treeOptions struct {
	outputPath      string
	directoriesOnly bool
	depth           int
	exclude         []string
	include         []string
	useGitignore    bool
	copyToClipboard bool
	configFilePath  string
}

// ExecuteTree runs the foldertree application.
func ExecuteTree(logger *zap.Logger) error {
	return NewTreeCommand(Dependencies{Logger: logger, Clipboard: clipboard.NewService()}).Execute()
}

// NewTreeCommand builds the foldertree root command.
func NewTreeCommand(dependencies Dependencies) *cobra.Command {
	var options treeOptions

	treeCommand := &cobra.Command{
		Use:           treeUse,
		Short:         treeShortDescription,
		Long:          treeLongDescription,
		Example:       treeUsageExample,
		Args:          cobra.ExactArgs(1),
		Version:       utils.GetApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			applicationConfiguration, configurationError := dependencies.loadConfiguration(options.configFilePath)
			if configurationError != nil {
				return configurationError
			}
			treeBuilder, buildError := resolveTreeBuilder(command, &options, applicationConfiguration.Tree, dependencies)
			if buildError != nil {
				return buildError
			}
			rootDirectoryPath, pathError := dependencies.requireDirectory(arguments[0])
			if pathError != nil {
				return pathError
			}
			if options.useGitignore {
				ignoreMatcher, ignoreError := loadGitignore(rootDirectoryPath)
				if ignoreError != nil {
					return ignoreError
				}
				treeBuilder.Ignore = ignoreMatcher
			}

			dependencies.logger().Debug(debugRenderingTreeMessage, zap.String(loggerFieldPath, rootDirectoryPath))
			renderedTree := treeBuilder.Render(rootDirectoryPath)
			return dependencies.deliverResult(command.OutOrStdout(), renderedTree, options.outputPath, treeWrittenConfirmationFormat, options.copyToClipboard)
		},
	}
	treeCommand.SetVersionTemplate(fmt.Sprintf(versionTemplateFormat, treeToolName))

	flags := treeCommand.Flags()
	flags.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	flags.BoolVar(&options.directoriesOnly, dirsOnlyFlagName, false, dirsOnlyFlagDescription)
	flags.IntVar(&options.depth, depthFlagName, 0, depthFlagDescription)
	flags.StringSliceVar(&options.exclude, excludeFlagName, nil, excludeFlagDescription)
	flags.StringSliceVar(&options.include, includeFlagName, nil, includeFlagDescription)
	flags.BoolVar(&options.useGitignore, gitignoreFlagName, false, gitignoreFlagDescription)
	flags.BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flags.StringVar(&options.configFilePath, configFileFlagName, "", configFileFlagDescription)
	return treeCommand
}

// resolveTreeBuilder merges explicit flags over configuration file defaults.
// The gitignore and copy switches are resolved into options for later use in RunE.
func resolveTreeBuilder(command *cobra.Command, options *treeOptions, fileConfiguration config.TreeConfiguration, dependencies Dependencies) (*commands.TreeBuilder, error) {
	flags := command.Flags()
	treeBuilder := &commands.TreeBuilder{Logger: dependencies.logger()}

	treeBuilder.Exclude = fileConfiguration.Exclude
	if flags.Changed(excludeFlagName) {
		treeBuilder.Exclude = utils.NormalizePatternList(options.exclude)
	}
	treeBuilder.Include = fileConfiguration.Include
	if flags.Changed(includeFlagName) {
		treeBuilder.Include = utils.NormalizePatternList(options.include)
	}
	treeBuilder.DirectoriesOnly = config.BoolOrDefault(fileConfiguration.DirectoriesOnly, false)
	if flags.Changed(dirsOnlyFlagName) {
		treeBuilder.DirectoriesOnly = options.directoriesOnly
	}
	treeBuilder.MaxDepth = fileConfiguration.Depth
	if flags.Changed(depthFlagName) {
		depth := options.depth
		treeBuilder.MaxDepth = &depth
	}
	if !flags.Changed(gitignoreFlagName) {
		options.useGitignore = config.BoolOrDefault(fileConfiguration.UseGitignore, false)
	}
	if !flags.Changed(copyFlagName) {
		options.copyToClipboard = config.BoolOrDefault(fileConfiguration.Copy, false)
	}
	if treeBuilder.MaxDepth != nil && *treeBuilder.MaxDepth < 0 {
		return nil, fmt.Errorf(errorNegativeDepthFormat, *treeBuilder.MaxDepth)
	}
	return treeBuilder, nil
}

// loadGitignore returns a matcher for the root .gitignore, or nil when the file does not exist.
func loadGitignore(rootDirectoryPath string) (gitignore.IgnoreMatcher, error) {
	gitignorePath := filepath.Join(rootDirectoryPath, gitIgnoreFileName)
	if _, statError := os.Stat(gitignorePath); statError != nil {
		if os.IsNotExist(statError) {
			return nil, nil
		}
		return nil, fmt.Errorf(errorLoadGitignoreFormat, gitignorePath, statError)
	}
	ignoreMatcher, matcherError := gitignore.NewGitIgnore(gitignorePath, rootDirectoryPath)
	if matcherError != nil {
		return nil, fmt.Errorf(errorLoadGitignoreFormat, gitignorePath, matcherError)
	}
	return ignoreMatcher, nil
}
