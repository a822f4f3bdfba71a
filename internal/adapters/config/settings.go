// Package config provides the machine-wide restore settings provider.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the settings file name discovered upward from the
// working directory.
const DefaultConfigName = "stanza.config.yaml"

// configDTO mirrors one stanza.config.yaml file.
type configDTO struct {
	PackagesFolder  string   `yaml:"packagesFolder"`
	Sources         []string `yaml:"sources"`
	FallbackFolders []string `yaml:"fallbackFolders"`
}

// Settings implements ports.SettingsProvider from the discovered config
// chain. Values from the nearest config win; the full discovered chain is
// reported so the restore engine can re-read it.
type Settings struct {
	packagesFolder  string
	sources         []string
	fallbackFolders []string
	configPaths     []string
}

// Discover walks upward from cwd collecting every config file, nearest
// first, and folds them into an effective Settings.
func Discover(cwd string) (*Settings, error) {
	s := &Settings{}

	dir, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		path := filepath.Join(dir, DefaultConfigName)
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			dto, loadErr := loadOne(path)
			if loadErr != nil {
				return nil, loadErr
			}
			s.configPaths = append(s.configPaths, path)
			s.fold(dto)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if s.packagesFolder == "" {
		s.packagesFolder = defaultPackagesFolder()
	}
	return s, nil
}

// fold applies a farther config under the already-folded nearer ones:
// a field only lands when nothing nearer has set it.
func (s *Settings) fold(dto configDTO) {
	if s.packagesFolder == "" {
		s.packagesFolder = dto.PackagesFolder
	}
	if len(s.sources) == 0 {
		s.sources = dto.Sources
	}
	if len(s.fallbackFolders) == 0 {
		s.fallbackFolders = dto.FallbackFolders
	}
}

func loadOne(path string) (configDTO, error) {
	var dto configDTO

	//nolint:gosec // path is discovered relative to the user's working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return dto, zerr.Wrap(err, "failed to read settings file")
	}
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return dto, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}
	return dto, nil
}

func defaultPackagesFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "stanza-packages")
	}
	return filepath.Join(home, ".stanza", "packages")
}

// GlobalPackagesFolder is the default package installation folder.
func (s *Settings) GlobalPackagesFolder() string {
	return s.packagesFolder
}

// EnabledSources are the globally configured package sources.
func (s *Settings) EnabledSources() []string {
	return s.sources
}

// FallbackFolders are the globally configured read-only package folders.
func (s *Settings) FallbackFolders() []string {
	return s.fallbackFolders
}

// ConfigFilePaths are the discovered configuration files, nearest first.
func (s *Settings) ConfigFilePaths() []string {
	return s.configPaths
}
