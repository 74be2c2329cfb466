package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// BuildMode selects between debug and release builds.
type BuildMode int

const (
	// BuildModeDebug forces the lowest optimization level.
	BuildModeDebug BuildMode = iota
	// BuildModeRelease honors the configured optimization level.
	BuildModeRelease
)

// CppStandard selects the C++ language standard.
type CppStandard int

const (
	// Cpp20 selects C++20.
	Cpp20 CppStandard = iota
	// Cpp23 selects C++23.
	Cpp23
	// CppLatest selects the newest standard the compiler knows.
	CppLatest
)

// OptimizationLevel is the release-mode optimization level.
type OptimizationLevel int

const (
	// O0 disables optimization.
	O0 OptimizationLevel = iota
	// O1 optimizes for size.
	O1
	// O2 optimizes for speed.
	O2
	// O3 enables full optimization.
	O3
)

// DebugInfo controls how much debug information is produced.
type DebugInfo int

const (
	// DebugInfoNone emits no debug information.
	DebugInfoNone DebugInfo = iota
	// DebugInfoMinimal embeds debug information in the object files.
	DebugInfoMinimal
	// DebugInfoFull requests a separate debug-symbol artifact where supported.
	DebugInfoFull
)

// Runtime selects the C runtime linkage.
type Runtime int

const (
	// RuntimeMultiThreadedDebugDLL links the debug DLL runtime (/MDd).
	RuntimeMultiThreadedDebugDLL Runtime = iota
	// RuntimeMultiThreadedDebug links the static debug runtime (/MTd).
	RuntimeMultiThreadedDebug
	// RuntimeMultiThreadedDLL links the release DLL runtime (/MD).
	RuntimeMultiThreadedDLL
	// RuntimeMultiThreaded links the static release runtime (/MT).
	RuntimeMultiThreaded
)

var (
	buildModeNames    = []string{"debug", "release"}
	cppStandardNames  = []string{"c++20", "c++23", "c++latest"}
	optimizationNames = []string{"O0", "O1", "O2", "O3"}
	debugInfoNames    = []string{"none", "minimal", "full"}
	runtimeNames      = []string{"MDd", "MTd", "MD", "MT"}
)

func (m BuildMode) String() string         { return enumName(buildModeNames, int(m)) }
func (s CppStandard) String() string       { return enumName(cppStandardNames, int(s)) }
func (o OptimizationLevel) String() string { return enumName(optimizationNames, int(o)) }
func (d DebugInfo) String() string         { return enumName(debugInfoNames, int(d)) }
func (r Runtime) String() string           { return enumName(runtimeNames, int(r)) }

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "unknown"
	}
	return names[v]
}

// ParseBuildMode parses "debug" or "release".
func ParseBuildMode(s string) (BuildMode, error) {
	v, err := parseEnum(buildModeNames, "mode", s)
	return BuildMode(v), err
}

// ParseCppStandard parses "c++20", "c++23" or "c++latest".
func ParseCppStandard(s string) (CppStandard, error) {
	v, err := parseEnum(cppStandardNames, "standard", s)
	return CppStandard(v), err
}

// ParseOptimizationLevel parses "O0" through "O3".
func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	v, err := parseEnum(optimizationNames, "optimization", s)
	return OptimizationLevel(v), err
}

// ParseDebugInfo parses "none", "minimal" or "full".
func ParseDebugInfo(s string) (DebugInfo, error) {
	v, err := parseEnum(debugInfoNames, "debug_info", s)
	return DebugInfo(v), err
}

// ParseRuntime parses "MDd", "MTd", "MD" or "MT".
// Matching is case-sensitive because "MD" and "MDd" differ only by case of the suffix.
func ParseRuntime(s string) (Runtime, error) {
	for i, name := range runtimeNames {
		if name == s {
			return Runtime(i), nil
		}
	}
	return 0, invalidValue("unrecognized value", "runtime", s)
}

func invalidValue(msg, field string, value any) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrInvalidConfiguration, msg), "field", field), "value", value)
}

func parseEnum(names []string, field, s string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, invalidValue("unrecognized value", field, s)
}

// BuildConfiguration is the snapshot of compile and link settings consumed by a toolchain.
type BuildConfiguration struct {
	Mode         BuildMode
	Standard     CppStandard
	Optimization OptimizationLevel
	DebugInfo    DebugInfo
	Runtime      Runtime
	// Defines keep their declaration order so command lines are reproducible.
	Defines     []string
	IncludeDirs []string
	LibraryDirs []string
}

// DebugDefault returns the default debug configuration.
func DebugDefault() BuildConfiguration {
	return BuildConfiguration{
		Mode:         BuildModeDebug,
		Standard:     Cpp20,
		Optimization: O0,
		DebugInfo:    DebugInfoFull,
		Runtime:      RuntimeMultiThreadedDebugDLL,
		Defines:      []string{"_DEBUG"},
	}
}

// ReleaseDefault returns the default release configuration.
func ReleaseDefault() BuildConfiguration {
	return BuildConfiguration{
		Mode:         BuildModeRelease,
		Standard:     Cpp20,
		Optimization: O2,
		DebugInfo:    DebugInfoNone,
		Runtime:      RuntimeMultiThreadedDLL,
		Defines:      []string{"NDEBUG"},
	}
}

// ReleaseWithDebugInfo returns the release configuration with full debug information.
func ReleaseWithDebugInfo() BuildConfiguration {
	cfg := ReleaseDefault()
	cfg.DebugInfo = DebugInfoFull
	return cfg
}

// Clone returns a deep copy so the snapshot cannot be mutated through shared slices.
func (c BuildConfiguration) Clone() BuildConfiguration {
	c.Defines = slices.Clone(c.Defines)
	c.IncludeDirs = slices.Clone(c.IncludeDirs)
	c.LibraryDirs = slices.Clone(c.LibraryDirs)
	return c
}

// Validate checks that every enumerated setting is within range.
func (c BuildConfiguration) Validate() error {
	checks := []struct {
		field string
		value int
		count int
	}{
		{"mode", int(c.Mode), len(buildModeNames)},
		{"standard", int(c.Standard), len(cppStandardNames)},
		{"optimization", int(c.Optimization), len(optimizationNames)},
		{"debug_info", int(c.DebugInfo), len(debugInfoNames)},
		{"runtime", int(c.Runtime), len(runtimeNames)},
	}
	for _, chk := range checks {
		if chk.value < 0 || chk.value >= chk.count {
			return invalidValue("value out of range", chk.field, chk.value)
		}
	}
	return nil
}

// ConfigurationPreset returns the factory configuration for a preset name.
// Recognized presets are "debug", "release" and "release-debug".
func ConfigurationPreset(name string) (BuildConfiguration, error) {
	switch strings.ToLower(name) {
	case "", "debug":
		return DebugDefault(), nil
	case "release":
		return ReleaseDefault(), nil
	case "release-debug", "relwithdebinfo":
		return ReleaseWithDebugInfo(), nil
	default:
		return BuildConfiguration{}, invalidValue("unrecognized preset", "preset", name)
	}
}
