package toc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/temirov/vaultmap/internal/types"
)

const (
	configIndent              = "  "
	configFilePermissions     = 0o644
	errorReadConfigFormat     = "read config %s: %w"
	errorDecodeConfigFormat   = "parse config %s: %w"
	errorEncodeConfigFormat   = "encode config: %w"
	errorWriteConfigFormat    = "write config %s: %w"
	errorConfigIsDirectoryFmt = "config path %s is a directory"
)

// LoadConfig reads a JSON table-of-contents config. Malformed JSON is an error,
// never silently replaced by defaults.
//
// #nosec G304
func LoadConfig(configPath string) (types.TocConfig, error) {
	configInfo, statError := os.Stat(configPath)
	if statError == nil && configInfo.IsDir() {
		return types.TocConfig{}, fmt.Errorf(errorConfigIsDirectoryFmt, configPath)
	}
	configData, readError := os.ReadFile(configPath)
	if readError != nil {
		return types.TocConfig{}, fmt.Errorf(errorReadConfigFormat, configPath, readError)
	}
	var config types.TocConfig
	if decodeError := json.Unmarshal(configData, &config); decodeError != nil {
		return types.TocConfig{}, fmt.Errorf(errorDecodeConfigFormat, configPath, decodeError)
	}
	return config, nil
}

// SaveConfig writes config as two-space indented JSON followed by a newline.
func SaveConfig(configPath string, config types.TocConfig) error {
	encodedConfig, encodeError := json.MarshalIndent(config, "", configIndent)
	if encodeError != nil {
		return fmt.Errorf(errorEncodeConfigFormat, encodeError)
	}
	encodedConfig = append(encodedConfig, '\n')
	if writeError := os.WriteFile(configPath, encodedConfig, configFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteConfigFormat, configPath, writeError)
	}
	return nil
}
