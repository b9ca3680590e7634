package toc

import (
	"strings"

	"github.com/temirov/vaultmap/internal/diagram"
)

const (
	lineSeparator      = "\n"
	crlfLineSeparator  = "\r\n"
	notFoundLineIndex  = -1
	trimmableCharacter = " \t\r\n"
)

// ComposeDocument places diagramBlock into original, replacing the first existing
// Mermaid block. Without an existing block the diagram is prepended.
// Recomposing the result with the same diagram returns it unchanged.
// A note using CRLF line endings keeps them, including inside the diagram.
func ComposeDocument(diagramBlock string, original string) string {
	lineBreak := lineSeparator
	if strings.Contains(original, crlfLineSeparator) {
		lineBreak = crlfLineSeparator
		diagramBlock = strings.ReplaceAll(strings.ReplaceAll(diagramBlock, crlfLineSeparator, lineSeparator), lineSeparator, crlfLineSeparator)
	}
	blockSeparator := lineBreak + lineBreak

	lines := strings.Split(original, lineSeparator)
	startIndex, endIndex := locateDiagramBlock(lines)
	if startIndex == notFoundLineIndex {
		return diagramBlock + blockSeparator + original
	}

	var composed strings.Builder
	leadingText := strings.TrimRight(strings.Join(lines[:startIndex], lineSeparator), trimmableCharacter)
	if leadingText != "" {
		composed.WriteString(leadingText)
		composed.WriteString(blockSeparator)
	}
	composed.WriteString(diagramBlock)
	if endIndex+1 < len(lines) {
		trailingText := strings.TrimLeft(strings.Join(lines[endIndex+1:], lineSeparator), trimmableCharacter)
		if trailingText != "" {
			composed.WriteString(blockSeparator)
			composed.WriteString(trailingText)
		}
	}
	return composed.String()
}

// locateDiagramBlock returns the first and last line of the first Mermaid block.
// An unterminated block extends to the last line.
func locateDiagramBlock(lines []string) (int, int) {
	for startIndex, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), diagram.OpeningFence) {
			continue
		}
		for endIndex := startIndex + 1; endIndex < len(lines); endIndex++ {
			if strings.HasPrefix(strings.TrimSpace(lines[endIndex]), diagram.ClosingFence) {
				return startIndex, endIndex
			}
		}
		return startIndex, len(lines) - 1
	}
	return notFoundLineIndex, notFoundLineIndex
}
