package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func createSampleVault(testingHandle *testing.T, harness *commandHarness) {
	testingHandle.Helper()
	harness.writeFile(testingHandle, "vault/Notes/a.md", "a")
	harness.writeFile(testingHandle, "vault/readme.md", "readme")
	harness.writeFile(testingHandle, "vault/image.png", "png")
}

func TestTreeCommandRendersTree(t *testing.T) {
	testCases := []struct {
		name           string
		configContent  string
		arguments      []string
		expectedOutput string
	}{
		{
			name:      "full_tree",
			arguments: []string{"vault"},
			expectedOutput: "vault/\n" +
				"├── Notes/\n" +
				"│   └── a.md\n" +
				"├── image.png\n" +
				"└── readme.md\n",
		},
		{
			name:      "depth_and_include",
			arguments: []string{"vault", "--depth", "1", "--include", "*.md"},
			expectedOutput: "vault/\n" +
				"├── Notes/\n" +
				"└── readme.md\n",
		},
		{
			name:           "configured_dirs_only",
			configContent:  "tree:\n  dirs_only: true\n",
			arguments:      []string{"vault"},
			expectedOutput: "vault/\n└── Notes/\n",
		},
		{
			name:          "flag_overrides_configuration",
			configContent: "tree:\n  dirs_only: true\n  exclude: [Notes]\n",
			arguments:     []string{"vault", "--dirs-only=false", "--exclude", ""},
			expectedOutput: "vault/\n" +
				"├── Notes/\n" +
				"│   └── a.md\n" +
				"├── image.png\n" +
				"└── readme.md\n",
		},
		{
			name:           "comma_separated_excludes",
			arguments:      []string{"vault", "--exclude", "Notes,Other", "--include", "*.png"},
			expectedOutput: "vault/\n└── image.png\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			harness := newCommandHarness(t)
			createSampleVault(t, harness)
			if testCase.configContent != "" {
				harness.writeFile(t, ".vaultmap.yaml", testCase.configContent)
			}

			output, executionError := executeCommand(NewTreeCommand(harness.dependencies), testCase.arguments...)
			require.NoError(t, executionError)
			require.Equal(t, testCase.expectedOutput, output)
		})
	}
}

func TestTreeCommandWritesOutputFile(t *testing.T) {
	harness := newCommandHarness(t)
	createSampleVault(t, harness)

	output, executionError := executeCommand(NewTreeCommand(harness.dependencies), "vault", "--dirs-only", "-o", "tree.md", "--copy")
	require.NoError(t, executionError)
	require.Equal(t, "Tree written to tree.md\n", output)
	require.Equal(t, "vault/\n└── Notes/\n", harness.readFile(t, "tree.md"))
	require.Equal(t, []string{"vault/\n└── Notes/\n"}, harness.clipboard.copiedTexts)
}

func TestTreeCommandHonorsGitignore(t *testing.T) {
	harness := newCommandHarness(t)
	createSampleVault(t, harness)
	harness.writeFile(t, "vault/.gitignore", "*.png\n.gitignore\n")

	output, executionError := executeCommand(NewTreeCommand(harness.dependencies), "vault", "--gitignore")
	require.NoError(t, executionError)
	require.Equal(t, "vault/\n├── Notes/\n│   └── a.md\n└── readme.md\n", output)
}

func TestTreeCommandRejectsInvalidInput(t *testing.T) {
	harness := newCommandHarness(t)
	createSampleVault(t, harness)

	_, missingError := executeCommand(NewTreeCommand(harness.dependencies), "absent")
	require.ErrorIs(t, missingError, ErrNotDirectory)

	_, fileError := executeCommand(NewTreeCommand(harness.dependencies), "vault/readme.md")
	require.ErrorIs(t, fileError, ErrNotDirectory)

	_, depthError := executeCommand(NewTreeCommand(harness.dependencies), "vault", "--depth=-1")
	require.Error(t, depthError)

	_, argumentError := executeCommand(NewTreeCommand(harness.dependencies))
	require.Error(t, argumentError)
}

func TestTreeCommandPrintsVersion(t *testing.T) {
	harness := newCommandHarness(t)

	output, executionError := executeCommand(NewTreeCommand(harness.dependencies), "--version")
	require.NoError(t, executionError)
	require.True(t, strings.HasPrefix(output, "foldertree version: "))
}
