package utils

// ApplicationExecutionFailedMessage prefixes fatal errors reported by the entry points.
const ApplicationExecutionFailedMessage = "Error"

// LoggerInitializationFailedMessageFormat is used when the application logger cannot be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// Configuration file locations shared by both tools.
const (
	// ConfigFileName is the name of the local configuration file looked up in the working directory.
	ConfigFileName = ".vaultmap.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".vaultmap"
	// GlobalConfigFileName is the name of the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
)
