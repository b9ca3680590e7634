package diagram

import (
	"fmt"
	"strings"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	flowchartHeader     = "flowchart TD"
	flowchartIndent     = "    "
	nodeIdentifierStart = 0
	nodeIdentifierFmt   = "n%d"
	nodeDeclarationFmt  = `%s%s["%s"]`
	edgeDeclarationFmt  = "%s%s --> %s"
	doubleQuote         = `"`
	escapedDoubleQuote  = `\"`
)

var flowchartLabelEscaper = strings.NewReplacer(doubleQuote, escapedDoubleQuote)

// flowchart accumulates node and edge declarations for a single Generate call.
// Node identifiers come from nextIdentifier, so they are unique within one diagram only.
type flowchart struct {
	nodes          []string
	edges          []string
	nextIdentifier int
}

// flowchartLines declares every node first and then every edge.
func flowchartLines(config types.TocConfig) []string {
	chart := &flowchart{nextIdentifier: nodeIdentifierStart}
	rootIdentifier := chart.declareNode(config.Title)
	for _, section := range config.Sections {
		sectionIdentifier := chart.declareNode(section.Name)
		chart.connect(rootIdentifier, sectionIdentifier)
		for _, fileName := range section.Files {
			chart.connect(sectionIdentifier, chart.declareNode(DisplayName(fileName)))
		}
		for _, subsection := range section.Subsections {
			subsectionIdentifier := chart.declareNode(subsection.Name)
			chart.connect(sectionIdentifier, subsectionIdentifier)
			for _, fileName := range subsection.Files {
				chart.connect(subsectionIdentifier, chart.declareNode(DisplayName(fileName)))
			}
		}
	}

	lines := make([]string, 0, 1+len(chart.nodes)+len(chart.edges))
	lines = append(lines, flowchartHeader)
	lines = append(lines, chart.nodes...)
	lines = append(lines, chart.edges...)
	return lines
}

// declareNode records a node for label and returns its identifier.
func (chart *flowchart) declareNode(label string) string {
	identifier := fmt.Sprintf(nodeIdentifierFmt, chart.nextIdentifier)
	chart.nextIdentifier++
	chart.nodes = append(chart.nodes, fmt.Sprintf(nodeDeclarationFmt, flowchartIndent, identifier, escapeFlowchartLabel(label)))
	return identifier
}

func (chart *flowchart) connect(fromIdentifier string, toIdentifier string) {
	chart.edges = append(chart.edges, fmt.Sprintf(edgeDeclarationFmt, flowchartIndent, fromIdentifier, toIdentifier))
}

// escapeFlowchartLabel keeps quotes from terminating the quoted label early.
func escapeFlowchartLabel(label string) string {
	return flowchartLabelEscaper.Replace(label)
}
