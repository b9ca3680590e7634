// Package listing enumerates the direct children of a directory, split into
// directories and files, filtered and sorted for display.
package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/temirov/vaultmap/internal/utils"
)

const (
	// AccessDeniedPlaceholder is rendered in place of a directory's children when it cannot be read.
	AccessDeniedPlaceholder = "[access denied]"

	// errorReadDirectoryFormat is used when a directory cannot be read for reasons other than permissions.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// IgnoreMatcher reports whether an absolute path should be hidden.
// github.com/monochromegane/go-gitignore matchers satisfy it.
type IgnoreMatcher interface {
	Match(path string, isDir bool) bool
}

// Options controls which children List keeps.
type Options struct {
	// Exclude holds directory names omitted by exact match.
	Exclude []string
	// Include holds glob patterns; when non-empty a file is kept only if it matches one.
	Include []string
	// DirectoriesOnly discards files after filtering.
	DirectoriesOnly bool
	// Ignore optionally hides gitignored entries.
	Ignore IgnoreMatcher
}

// Listing is the filtered content of one directory.
type Listing struct {
	Directories  []string
	Files        []string
	AccessDenied bool
}

// Empty reports whether the listing has nothing to display.
func (listing Listing) Empty() bool {
	return len(listing.Directories) == 0 && len(listing.Files) == 0
}

type entry struct {
	name        string
	isDirectory bool
}

// List returns the sorted directories and files directly inside directoryPath.
// A permission failure is reported through Listing.AccessDenied rather than as an error.
func List(directoryPath string, options Options) (Listing, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			return Listing{AccessDenied: true}, nil
		}
		return Listing{}, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	entries := make([]entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entries = append(entries, entry{
			name:        directoryEntry.Name(),
			isDirectory: isDirectoryEntry(directoryPath, directoryEntry),
		})
	}
	sortEntries(entries)

	var listing Listing
	for _, currentEntry := range entries {
		if options.Ignore != nil && options.Ignore.Match(filepath.Join(directoryPath, currentEntry.name), currentEntry.isDirectory) {
			continue
		}
		if currentEntry.isDirectory {
			if utils.ContainsString(options.Exclude, currentEntry.name) {
				continue
			}
			listing.Directories = append(listing.Directories, currentEntry.name)
			continue
		}
		if !MatchesAny(currentEntry.name, options.Include) {
			continue
		}
		listing.Files = append(listing.Files, currentEntry.name)
	}
	if options.DirectoriesOnly {
		listing.Files = nil
	}
	return listing, nil
}

// MatchesAny reports whether name matches at least one shell glob pattern.
// Negated classes may be written [!...] or [^...].
// An empty pattern list matches everything; malformed patterns never match.
func MatchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		isMatched, matchError := doublestar.Match(pattern, name)
		if matchError == nil && isMatched {
			return true
		}
	}
	return false
}

// sortEntries orders directories before files, then by case-insensitive name.
func sortEntries(entries []entry) {
	sort.SliceStable(entries, func(left, right int) bool {
		if entries[left].isDirectory != entries[right].isDirectory {
			return entries[left].isDirectory
		}
		leftName := strings.ToLower(entries[left].name)
		rightName := strings.ToLower(entries[right].name)
		if leftName != rightName {
			return leftName < rightName
		}
		return entries[left].name < entries[right].name
	})
}

// isDirectoryEntry classifies symbolic links by their target.
func isDirectoryEntry(directoryPath string, directoryEntry os.DirEntry) bool {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir()
	}
	targetInfo, statError := os.Stat(filepath.Join(directoryPath, directoryEntry.Name()))
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}
