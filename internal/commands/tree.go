// Package commands contains the directory tree rendering used by foldertree.
package commands

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/listing"
)

const (
	branchConnector     = "├── "
	lastBranchConnector = "└── "
	branchExtension     = "│   "
	lastBranchExtension = "    "
	directorySuffix     = "/"
	lineSeparator       = "\n"

	// warningSkipSubdirMessage is logged when a directory cannot be listed.
	warningSkipSubdirMessage = "skipping unreadable directory"
	// warningAccessDeniedMessage is logged when a directory denies listing.
	warningAccessDeniedMessage = "access denied"
)

// Render returns the root directory name followed by its tree lines.
func (treeBuilder *TreeBuilder) Render(rootDirectoryPath string) string {
	renderedLines := []string{RootLabel(rootDirectoryPath)}
	renderedLines = append(renderedLines, treeBuilder.BuildLines(rootDirectoryPath)...)
	return strings.Join(renderedLines, lineSeparator)
}

// RootLabel returns the base name of the directory with a trailing slash.
// The path itself is used when it has no base name, as for a filesystem root.
func RootLabel(rootDirectoryPath string) string {
	rootName := rootDirectoryPath
	if absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath); absolutePathError == nil {
		baseName := filepath.Base(absoluteRootPath)
		if baseName != "" && baseName != string(filepath.Separator) && baseName != "." {
			rootName = baseName
		}
	}
	if strings.HasSuffix(rootName, directorySuffix) {
		return rootName
	}
	return rootName + directorySuffix
}

// BuildLines returns the prefixed display lines for everything below rootDirectoryPath.
// The root itself is not included.
func (treeBuilder *TreeBuilder) BuildLines(rootDirectoryPath string) []string {
	return treeBuilder.buildLines(rootDirectoryPath, "", 0, treeBuilder.listingOptions())
}

// buildLines recursively lists currentDirectoryPath, extending prefix for each level.
func (treeBuilder *TreeBuilder) buildLines(currentDirectoryPath string, prefix string, currentDepth int, options listing.Options) []string {
	if treeBuilder.MaxDepth != nil && currentDepth >= *treeBuilder.MaxDepth {
		return nil
	}

	directoryListing, listError := listing.List(currentDirectoryPath, options)
	if listError != nil {
		treeBuilder.logger().Warn(warningSkipSubdirMessage, zap.String("path", currentDirectoryPath), zap.Error(listError))
		return nil
	}
	if directoryListing.AccessDenied {
		treeBuilder.logger().Warn(warningAccessDeniedMessage, zap.String("path", currentDirectoryPath))
		return []string{prefix + listing.AccessDeniedPlaceholder}
	}

	itemCount := len(directoryListing.Directories) + len(directoryListing.Files)
	var lines []string
	for directoryIndex, directoryName := range directoryListing.Directories {
		isLastItem := directoryIndex == itemCount-1
		connector, extension := connectorsFor(isLastItem)
		lines = append(lines, prefix+connector+directoryName+directorySuffix)
		lines = append(lines, treeBuilder.buildLines(
			filepath.Join(currentDirectoryPath, directoryName),
			prefix+extension,
			currentDepth+1,
			options,
		)...)
	}
	for fileIndex, fileName := range directoryListing.Files {
		isLastItem := len(directoryListing.Directories)+fileIndex == itemCount-1
		connector, _ := connectorsFor(isLastItem)
		lines = append(lines, prefix+connector+fileName)
	}
	return lines
}

// connectorsFor returns the entry connector and the prefix extension for its descendants.
func connectorsFor(isLastItem bool) (string, string) {
	if isLastItem {
		return lastBranchConnector, lastBranchExtension
	}
	return branchConnector, branchExtension
}
