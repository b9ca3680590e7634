package diagram

import (
	"strings"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	mindmapHeader       = "mindmap"
	mindmapIndentUnit   = "  "
	mindmapRootPrefix   = "root(("
	mindmapRootSuffix   = "))"
	rootLevel           = 1
	sectionLevel        = 2
	sectionItemLevel    = 3
	subsectionFileLevel = 4
	openParenthesis     = "("
	closeParenthesis    = ")"
	escapedOpenParen    = `\(`
	escapedCloseParen   = `\)`
)

var mindmapLabelEscaper = strings.NewReplacer(openParenthesis, escapedOpenParen, closeParenthesis, escapedCloseParen)

// mindmapLines nests nodes purely by indentation: two spaces per level.
func mindmapLines(config types.TocConfig) []string {
	lines := []string{
		mindmapHeader,
		mindmapNode(rootLevel, mindmapRootPrefix+escapeMindmapLabel(config.Title)+mindmapRootSuffix),
	}
	for _, section := range config.Sections {
		lines = append(lines, mindmapNode(sectionLevel, escapeMindmapLabel(section.Name)))
		for _, fileName := range section.Files {
			lines = append(lines, mindmapNode(sectionItemLevel, escapeMindmapLabel(DisplayName(fileName))))
		}
		for _, subsection := range section.Subsections {
			lines = append(lines, mindmapNode(sectionItemLevel, escapeMindmapLabel(subsection.Name)))
			for _, fileName := range subsection.Files {
				lines = append(lines, mindmapNode(subsectionFileLevel, escapeMindmapLabel(DisplayName(fileName))))
			}
		}
	}
	return lines
}

func mindmapNode(level int, label string) string {
	return strings.Repeat(mindmapIndentUnit, level) + label
}

// escapeMindmapLabel keeps parentheses from being read as node shape delimiters.
func escapeMindmapLabel(label string) string {
	return mindmapLabelEscaper.Replace(label)
}
