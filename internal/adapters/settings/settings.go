// Package settings layers toolchain settings from defaults, the project, user configuration,
// the environment and command-line overrides.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes environment variables, e.g. IMPORTA_TOOLCHAIN_COMPILER.
const EnvPrefix = "IMPORTA"

const (
	keyKind     = "toolchain.kind"
	keyCompiler = "toolchain.compiler"
	keyLinker   = "toolchain.linker"
)

// configExtensions are tried in order for the user configuration file.
var configExtensions = []string{"yml", "yaml", "json", "toml"}

var _ ports.SettingsResolver = (*Resolver)(nil)

// Resolver implements ports.SettingsResolver with viper.
type Resolver struct {
	configDir string
}

// New creates a Resolver reading user configuration from configDir. An empty configDir skips that layer.
func New(configDir string) *Resolver {
	return &Resolver{configDir: configDir}
}

// DefaultConfigDir returns <UserConfigDir>/importa, or "" when the platform has none.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "importa")
}

// Resolve merges every settings source. Precedence from low to high is: built-in defaults, the project file,
// the user configuration file, IMPORTA_* environment variables and non-empty override fields.
// Executables left unset get the defaults of the resolved toolchain kind.
func (r *Resolver) Resolve(project, overrides domain.ToolchainSettings) (domain.ToolchainSettings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyKind, string(domain.ToolchainMSVC))
	v.SetDefault(keyCompiler, "")
	v.SetDefault(keyLinker, "")
	setNonEmpty(v.SetDefault, keyKind, string(project.Kind))
	setNonEmpty(v.SetDefault, keyCompiler, project.Compiler)
	setNonEmpty(v.SetDefault, keyLinker, project.Linker)

	if err := r.readUserConfig(v); err != nil {
		return domain.ToolchainSettings{}, err
	}

	setNonEmpty(v.Set, keyKind, string(overrides.Kind))
	setNonEmpty(v.Set, keyCompiler, overrides.Compiler)
	setNonEmpty(v.Set, keyLinker, overrides.Linker)

	settings := domain.ToolchainSettings{
		Kind:     domain.ToolchainKind(strings.ToLower(v.GetString(keyKind))),
		Compiler: v.GetString(keyCompiler),
		Linker:   v.GetString(keyLinker),
	}

	switch settings.Kind {
	case domain.ToolchainMSVC:
		if settings.Compiler == "" {
			settings.Compiler = "cl.exe"
		}
		if settings.Linker == "" {
			settings.Linker = "link.exe"
		}
	case domain.ToolchainClang:
		if settings.Compiler == "" {
			settings.Compiler = "clang-cl.exe"
		}
	default:
		return domain.ToolchainSettings{}, zerr.With(zerr.Wrap(domain.ErrUnknownToolchain, "cannot resolve toolchain settings"), "kind", string(settings.Kind))
	}

	return settings, nil
}

// readUserConfig reads the first config.<ext> found in the configuration directory.
func (r *Resolver) readUserConfig(v *viper.Viper) error {
	if r.configDir == "" {
		return nil
	}

	for _, ext := range configExtensions {
		path := filepath.Join(r.configDir, "config."+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read user configuration"), "path", path)
		}
		return nil
	}
	return nil
}

func setNonEmpty(set func(string, any), key, value string) {
	if value != "" {
		set(key, value)
	}
}
