// Package toolchain translates build intents into MSVC-style and Clang-style command lines.
package toolchain

import (
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/zerr"
)

// MSVCCompileFlags returns the cl.exe flags shared by every compile command.
func MSVCCompileFlags(cfg domain.BuildConfiguration) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	args := []string{msvcStandard[cfg.Standard]}

	if cfg.Mode == domain.BuildModeDebug {
		args = append(args, "/Od")
	} else {
		args = append(args, msvcOptimization[cfg.Optimization])
	}

	switch cfg.DebugInfo {
	case domain.DebugInfoFull:
		args = append(args, "/Zi")
	case domain.DebugInfoMinimal:
		args = append(args, "/Z7")
	case domain.DebugInfoNone:
	}

	args = append(args, runtimeFlag[cfg.Runtime])
	args = append(args, "/EHsc", "/nologo", "/c", "/TP", "/permissive-")

	for _, def := range cfg.Defines {
		args = append(args, "/D"+def)
	}
	for _, dir := range cfg.IncludeDirs {
		args = append(args, "/I"+dir)
	}
	return args, nil
}

// ClangCompileFlags returns the clang driver flags shared by every compile command.
func ClangCompileFlags(cfg domain.BuildConfiguration) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	args := []string{clangStandard[cfg.Standard]}

	if cfg.Mode == domain.BuildModeDebug {
		args = append(args, "-O0")
	} else {
		args = append(args, clangOptimization[cfg.Optimization])
	}

	if cfg.DebugInfo == domain.DebugInfoFull || cfg.DebugInfo == domain.DebugInfoMinimal {
		args = append(args, "-g")
	}

	// clang-cl understands the MSVC runtime switches.
	args = append(args, runtimeFlag[cfg.Runtime])
	args = append(args, "-fms-compatibility", "-Wno-msvc-include")

	for _, def := range cfg.Defines {
		args = append(args, "-D"+def)
	}
	for _, dir := range cfg.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	return args, nil
}

var (
	msvcStandard = map[domain.CppStandard]string{
		domain.Cpp20:     "/std:c++20",
		domain.Cpp23:     "/std:c++23",
		domain.CppLatest: "/std:c++latest",
	}
	msvcOptimization = map[domain.OptimizationLevel]string{
		domain.O0: "/Od",
		domain.O1: "/O1",
		domain.O2: "/O2",
		domain.O3: "/Ox",
	}
	clangStandard = map[domain.CppStandard]string{
		domain.Cpp20:     "-std=c++20",
		domain.Cpp23:     "-std=c++2b",
		domain.CppLatest: "-std=c++2b",
	}
	clangOptimization = map[domain.OptimizationLevel]string{
		domain.O0: "-O0",
		domain.O1: "-O1",
		domain.O2: "-O2",
		domain.O3: "-O3",
	}
	runtimeFlag = map[domain.Runtime]string{
		domain.RuntimeMultiThreadedDebugDLL: "/MDd",
		domain.RuntimeMultiThreadedDebug:    "/MTd",
		domain.RuntimeMultiThreadedDLL:      "/MD",
		domain.RuntimeMultiThreaded:         "/MT",
	}
)

func unsupported(reason, key, value string) error {
	return zerr.With(zerr.Wrap(domain.ErrUnsupportedIntent, reason), key, value)
}
