package toc

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/vaultmap/internal/listing"
	"github.com/temirov/vaultmap/internal/types"
	"github.com/temirov/vaultmap/internal/utils"
)

const (
	// DefaultConfigFileName is written next to the scanned folder so sections can be edited by hand.
	DefaultConfigFileName = "toc_config.json"

	markdownFilePattern        = "*.md"
	firstTemplateSectionName   = "Category 1"
	secondTemplateSectionName  = "Category 2"
	warningScanFailedMessage   = "unable to scan folder"
	warningScanDeniedMessage   = "permission denied reading folder"
	debugScannedFolderMessage  = "scanned folder"
	scannedFolderPathFieldName = "path"
)

// ScanFolder lists the files directly inside folderPath, sorted case-insensitively.
// Unreadable folders are logged and yield no files.
func ScanFolder(folderPath string, markdownOnly bool, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	options := listing.Options{Exclude: utils.DefaultVaultExclusions}
	if markdownOnly {
		options.Include = []string{markdownFilePattern}
	}
	folderListing, listError := listing.List(folderPath, options)
	if listError != nil {
		logger.Warn(warningScanFailedMessage, zap.String(scannedFolderPathFieldName, folderPath), zap.Error(listError))
		return nil
	}
	if folderListing.AccessDenied {
		logger.Warn(warningScanDeniedMessage, zap.String(scannedFolderPathFieldName, folderPath))
		return nil
	}
	files := make([]string, 0, len(folderListing.Files))
	for _, fileName := range folderListing.Files {
		if utils.ContainsString(utils.DefaultVaultExclusions, fileName) {
			continue
		}
		files = append(files, fileName)
	}
	logger.Debug(debugScannedFolderMessage, zap.String(scannedFolderPathFieldName, folderPath), zap.Int("files", len(files)))
	return files
}

// NewDefaultConfig places every file into a single uncategorized section.
func NewDefaultConfig(title string, files []string) types.TocConfig {
	return types.TocConfig{
		Title: title,
		Sections: []types.Section{
			{Name: types.DefaultSectionName, Files: nonNilFiles(files)},
		},
	}
}

// NewTemplateConfig splits files evenly across two placeholder sections;
// the first section takes the extra file when the count is odd.
func NewTemplateConfig(title string, files []string) types.TocConfig {
	splitIndex := (len(files) + 1) / 2
	return types.TocConfig{
		Title: title,
		Sections: []types.Section{
			{Name: firstTemplateSectionName, Files: nonNilFiles(files[:splitIndex])},
			{Name: secondTemplateSectionName, Files: nonNilFiles(files[splitIndex:])},
		},
	}
}

// DefaultConfigPath returns the location of the editable config for a scanned folder:
// toc_config.json in the folder's parent directory.
func DefaultConfigPath(scannedFolderPath string) string {
	absoluteFolderPath, absolutePathError := filepath.Abs(scannedFolderPath)
	if absolutePathError != nil {
		absoluteFolderPath = filepath.Clean(scannedFolderPath)
	}
	return filepath.Join(filepath.Dir(absoluteFolderPath), DefaultConfigFileName)
}

// nonNilFiles keeps empty sections serialized as [] rather than null.
func nonNilFiles(files []string) []string {
	if files == nil {
		return []string{}
	}
	return append([]string{}, files...)
}
