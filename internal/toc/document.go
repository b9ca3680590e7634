package toc

import (
	"strings"

	"github.com/temirov/vaultmap/internal/diagram"
	"github.com/temirov/vaultmap/internal/types"
)

const (
	documentTitlePrefix     = "# "
	visualOverviewHeading   = "## Visual Overview"
	filesBySectionHeading   = "## Files by Section"
	emptySectionPlaceholder = "*(No files in this section)*"
)

// GenerateDocument renders a complete table-of-contents note: a title, the diagram,
// and the sections listed as wiki links. The output parses back into the same sections.
func GenerateDocument(config types.TocConfig, style types.DiagramStyle) (string, error) {
	diagramBlock, generateError := diagram.Generate(config, style)
	if generateError != nil {
		return "", generateError
	}

	lines := []string{
		documentTitlePrefix + config.Title,
		"",
		visualOverviewHeading,
		"",
		diagramBlock,
		"",
		filesBySectionHeading,
		"",
	}
	for _, section := range config.Sections {
		lines = append(lines, sectionHeadingPrefix+section.Name, "")
		if len(section.Files) == 0 && len(section.Subsections) == 0 {
			lines = append(lines, emptySectionPlaceholder)
		}
		lines = append(lines, wikiLinkLines(section.Files)...)
		for _, subsection := range section.Subsections {
			if lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			lines = append(lines, subsectionHeadingPrefix+subsection.Name, "")
			lines = append(lines, wikiLinkLines(subsection.Files)...)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, lineSeparator), nil
}

func wikiLinkLines(fileNames []string) []string {
	linkLines := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		linkLines = append(linkLines, wikiLinkItemPrefix+diagram.DisplayName(fileName)+wikiLinkSuffix)
	}
	return linkLines
}
