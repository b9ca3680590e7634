// Package diagram renders a table of contents as Mermaid diagram source.
package diagram

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	// OpeningFence starts a Mermaid block inside markdown.
	OpeningFence = "```mermaid"
	// ClosingFence ends a fenced block.
	ClosingFence = "```"

	markdownExtension = ".md"
	lineSeparator     = "\n"

	errorUnsupportedStyleFormat = "%w: %q"
)

// ErrUnsupportedDiagramStyle is returned for styles other than mindmap and flowchart.
var ErrUnsupportedDiagramStyle = errors.New("unsupported diagram style")

// Generate renders config as a fenced Mermaid block of the requested style.
// The result carries no trailing newline.
func Generate(config types.TocConfig, style types.DiagramStyle) (string, error) {
	var bodyLines []string
	switch style {
	case types.DiagramStyleMindmap:
		bodyLines = mindmapLines(config)
	case types.DiagramStyleFlowchart:
		bodyLines = flowchartLines(config)
	default:
		return "", fmt.Errorf(errorUnsupportedStyleFormat, ErrUnsupportedDiagramStyle, style)
	}
	lines := make([]string, 0, len(bodyLines)+2)
	lines = append(lines, OpeningFence)
	lines = append(lines, bodyLines...)
	lines = append(lines, ClosingFence)
	return strings.Join(lines, lineSeparator), nil
}

// DisplayName strips a trailing .md extension, in any letter case, from a file name.
func DisplayName(fileName string) string {
	extension := filepath.Ext(fileName)
	if strings.EqualFold(extension, markdownExtension) {
		return strings.TrimSuffix(fileName, extension)
	}
	return fileName
}
