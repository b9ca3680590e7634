// Package toc builds, parses, stores and composes vault table-of-contents documents.
package toc

import (
	"strings"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	sectionHeadingPrefix    = "### "
	subsectionHeadingPrefix = "#### "
	titleHeadingPrefix      = "# "
	chapterHeadingPrefix    = "## "
	wikiLinkItemPrefix      = "- [["
	wikiLinkSuffix          = "]]"
	wikiLinkAliasSeparator  = "|"
)

// parserState tracks which container receives file links.
type parserState int

const (
	stateNoSection parserState = iota
	stateInSection
	stateInSubsection
)

// lineKind classifies one markdown line for the parser.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineSectionHeading
	lineSubsectionHeading
	lineOuterHeading
	lineFileLink
)

// ParseMarkdown extracts sections, subsections and wiki-linked files from an organized note.
// Unrecognized lines are skipped, so unstructured input yields a config without sections.
// A scope ends only at the next heading of the same or a higher level.
func ParseMarkdown(markdown string, title string) types.TocConfig {
	config := types.TocConfig{Title: title}
	state := stateNoSection
	for _, line := range strings.Split(markdown, "\n") {
		kind, value := classifyLine(line)
		switch kind {
		case lineSectionHeading:
			config.Sections = append(config.Sections, types.Section{Name: value})
			state = stateInSection
		case lineSubsectionHeading:
			if state == stateNoSection {
				continue
			}
			currentSection := &config.Sections[len(config.Sections)-1]
			currentSection.Subsections = append(currentSection.Subsections, types.Subsection{Name: value})
			state = stateInSubsection
		case lineOuterHeading:
			// Links under a # or ## heading belong to no section and are dropped.
			state = stateNoSection
		case lineFileLink:
			switch state {
			case stateInSection:
				currentSection := &config.Sections[len(config.Sections)-1]
				currentSection.Files = append(currentSection.Files, value)
			case stateInSubsection:
				currentSection := &config.Sections[len(config.Sections)-1]
				currentSubsection := &currentSection.Subsections[len(currentSection.Subsections)-1]
				currentSubsection.Files = append(currentSubsection.Files, value)
			}
		}
	}
	return config
}

// classifyLine returns the kind of a line and its payload: a heading name or a link target.
func classifyLine(line string) (lineKind, string) {
	trimmedLine := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmedLine, sectionHeadingPrefix):
		return lineSectionHeading, strings.TrimSpace(strings.TrimPrefix(trimmedLine, sectionHeadingPrefix))
	case strings.HasPrefix(trimmedLine, subsectionHeadingPrefix):
		return lineSubsectionHeading, strings.TrimSpace(strings.TrimPrefix(trimmedLine, subsectionHeadingPrefix))
	case strings.HasPrefix(trimmedLine, titleHeadingPrefix), strings.HasPrefix(trimmedLine, chapterHeadingPrefix):
		return lineOuterHeading, ""
	case strings.HasPrefix(trimmedLine, wikiLinkItemPrefix):
		if target, ok := wikiLinkTarget(strings.TrimPrefix(trimmedLine, wikiLinkItemPrefix)); ok {
			return lineFileLink, target
		}
	}
	return lineIgnored, ""
}

// wikiLinkTarget returns the note name before the closing brackets, dropping any alias.
func wikiLinkTarget(remainder string) (string, bool) {
	closingIndex := strings.Index(remainder, wikiLinkSuffix)
	if closingIndex < 0 {
		return "", false
	}
	target := remainder[:closingIndex]
	if aliasIndex := strings.Index(target, wikiLinkAliasSeparator); aliasIndex >= 0 {
		target = target[:aliasIndex]
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	return target, true
}
