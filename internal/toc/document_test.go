package toc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/vaultmap/internal/toc"
	"github.com/temirov/vaultmap/internal/types"
)

func TestGenerateDocument(testingHandle *testing.T) {
	config := types.TocConfig{
		Title: "SOP",
		Sections: []types.Section{
			{Name: "Setup", Files: []string{"install.md"}},
			{Name: "Empty", Files: []string{}},
		},
	}
	document, generateError := toc.GenerateDocument(config, types.DiagramStyleMindmap)
	require.NoError(testingHandle, generateError)
	require.Equal(testingHandle, strings.Join([]string{
		"# SOP",
		"",
		"## Visual Overview",
		"",
		"```mermaid",
		"mindmap",
		"  root((SOP))",
		"    Setup",
		"      install",
		"    Empty",
		"```",
		"",
		"## Files by Section",
		"",
		"### Setup",
		"",
		"- [[install]]",
		"",
		"### Empty",
		"",
		"*(No files in this section)*",
		"",
	}, "\n"), document)
}

func TestGenerateDocumentParsesBack(testingHandle *testing.T) {
	config := types.TocConfig{
		Title: "Handbook",
		Sections: []types.Section{
			{
				Name:  "Setup",
				Files: []string{"install"},
				Subsections: []types.Subsection{
					{Name: "Advanced", Files: []string{"tuning", "profiling"}},
					{Name: "Legacy", Files: []string{"old"}},
				},
			},
			{Name: "Only subsections", Subsections: []types.Subsection{{Name: "Inner", Files: []string{"x"}}}},
		},
	}
	for _, style := range types.SupportedDiagramStyles {
		document, generateError := toc.GenerateDocument(config, style)
		require.NoError(testingHandle, generateError)
		require.Equal(testingHandle, config, toc.ParseMarkdown(document, config.Title), string(style))
	}
}

func TestGenerateDocumentRejectsUnknownStyle(testingHandle *testing.T) {
	_, generateError := toc.GenerateDocument(types.TocConfig{Title: "x"}, types.DiagramStyle("pie"))
	require.Error(testingHandle, generateError)
}

func TestScanFolder(testingHandle *testing.T) {
	folderPath := testingHandle.TempDir()
	for _, fileName := range []string{"b.md", "A.md", "c.txt"} {
		require.NoError(testingHandle, os.WriteFile(filepath.Join(folderPath, fileName), []byte("x"), 0o644))
	}
	require.NoError(testingHandle, os.MkdirAll(filepath.Join(folderPath, "sub.md"), 0o755))

	require.Equal(testingHandle, []string{"A.md", "b.md"}, toc.ScanFolder(folderPath, true, nil))
	require.Equal(testingHandle, []string{"A.md", "b.md", "c.txt"}, toc.ScanFolder(folderPath, false, nil))
	require.Empty(testingHandle, toc.ScanFolder(filepath.Join(folderPath, "missing"), true, nil))
}

func TestNewDefaultConfig(testingHandle *testing.T) {
	config := toc.NewDefaultConfig("Title", nil)
	require.Equal(testingHandle, types.TocConfig{
		Title:    "Title",
		Sections: []types.Section{{Name: types.DefaultSectionName, Files: []string{}}},
	}, config)
}

func TestNewTemplateConfig(testingHandle *testing.T) {
	testCases := []struct {
		name           string
		files          []string
		expectedFirst  []string
		expectedSecond []string
	}{
		{name: "even", files: []string{"a", "b", "c", "d"}, expectedFirst: []string{"a", "b"}, expectedSecond: []string{"c", "d"}},
		{name: "odd", files: []string{"a", "b", "c"}, expectedFirst: []string{"a", "b"}, expectedSecond: []string{"c"}},
		{name: "single", files: []string{"a"}, expectedFirst: []string{"a"}, expectedSecond: []string{}},
		{name: "none", files: nil, expectedFirst: []string{}, expectedSecond: []string{}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			config := toc.NewTemplateConfig("T", testCase.files)
			require.Len(t, config.Sections, 2)
			require.Equal(t, testCase.expectedFirst, config.Sections[0].Files)
			require.Equal(t, testCase.expectedSecond, config.Sections[1].Files)
		})
	}
}

func TestDefaultConfigPath(testingHandle *testing.T) {
	parentDirectory := testingHandle.TempDir()
	require.Equal(testingHandle,
		filepath.Join(parentDirectory, toc.DefaultConfigFileName),
		toc.DefaultConfigPath(filepath.Join(parentDirectory, "SOP")+string(filepath.Separator)),
	)
}

func TestSaveAndLoadConfig(testingHandle *testing.T) {
	configPath := filepath.Join(testingHandle.TempDir(), toc.DefaultConfigFileName)
	config := toc.NewDefaultConfig("Vault", []string{"a.md", "b.md"})
	require.NoError(testingHandle, toc.SaveConfig(configPath, config))

	savedData, readError := os.ReadFile(configPath)
	require.NoError(testingHandle, readError)
	require.Equal(testingHandle, "{\n  \"title\": \"Vault\",\n  \"sections\": [\n    {\n      \"name\": \"Uncategorized\",\n      \"files\": [\n        \"a.md\",\n        \"b.md\"\n      ]\n    }\n  ]\n}\n", string(savedData))

	loadedConfig, loadError := toc.LoadConfig(configPath)
	require.NoError(testingHandle, loadError)
	require.Equal(testingHandle, config, loadedConfig)
}

func TestLoadConfigErrors(testingHandle *testing.T) {
	temporaryDirectory := testingHandle.TempDir()
	malformedPath := filepath.Join(temporaryDirectory, "broken.json")
	require.NoError(testingHandle, os.WriteFile(malformedPath, []byte(`{"title": "x", "sections": [`), 0o644))

	_, malformedError := toc.LoadConfig(malformedPath)
	require.ErrorContains(testingHandle, malformedError, "parse config")

	_, missingError := toc.LoadConfig(filepath.Join(temporaryDirectory, "missing.json"))
	require.ErrorIs(testingHandle, missingError, os.ErrNotExist)

	_, directoryError := toc.LoadConfig(temporaryDirectory)
	require.Error(testingHandle, directoryError)
}
