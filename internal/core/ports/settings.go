package ports

// SettingsProvider exposes the machine-wide restore configuration that
// project-level overrides fall back to.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsProvider interface {
	// GlobalPackagesFolder is the default package installation folder.
	GlobalPackagesFolder() string

	// EnabledSources are the globally configured package sources.
	EnabledSources() []string

	// FallbackFolders are the globally configured read-only package folders.
	FallbackFolders() []string

	// ConfigFilePaths are the discovered configuration files, nearest first.
	ConfigFilePaths() []string
}
