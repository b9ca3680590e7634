package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	diagramFlagTypeName            = "style"
	invalidDiagramStyleErrorFormat = "invalid diagram style %q; accepted values: %s"
	acceptedValuesSeparator        = ", "
)

// diagramStyleValue accepts only the supported Mermaid styles, case-insensitively.
type diagramStyleValue struct {
	target *types.DiagramStyle
}

func (value *diagramStyleValue) Set(input string) error {
	style, parseError := parseDiagramStyle(input)
	if parseError != nil {
		return parseError
	}
	*value.target = style
	return nil
}

func (value *diagramStyleValue) String() string {
	if value == nil || value.target == nil {
		return string(types.DiagramStyleMindmap)
	}
	return string(*value.target)
}

func (value *diagramStyleValue) Type() string {
	return diagramFlagTypeName
}

func registerDiagramStyleFlag(flagSet *pflag.FlagSet, target *types.DiagramStyle, name string, shorthand string, defaultValue types.DiagramStyle, usage string) {
	*target = defaultValue
	flagSet.VarP(&diagramStyleValue{target: target}, name, shorthand, usage)
}

func parseDiagramStyle(input string) (types.DiagramStyle, error) {
	style := types.DiagramStyle(strings.ToLower(strings.TrimSpace(input)))
	if !style.IsSupported() {
		return "", fmt.Errorf(invalidDiagramStyleErrorFormat, input, acceptedDiagramStyles())
	}
	return style, nil
}

func acceptedDiagramStyles() string {
	styleNames := make([]string, 0, len(types.SupportedDiagramStyles))
	for _, style := range types.SupportedDiagramStyles {
		styleNames = append(styleNames, string(style))
	}
	return strings.Join(styleNames, acceptedValuesSeparator)
}
