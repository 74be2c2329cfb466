package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/adapters/toolchain"
	"go.trai.ch/importa/internal/core/domain"
)

func TestMSVCCompileFlags(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() domain.BuildConfiguration
		want []string
	}{
		{
			name: "debug default",
			cfg:  domain.DebugDefault,
			want: []string{"/std:c++20", "/Od", "/Zi", "/MDd", "/EHsc", "/nologo", "/c", "/TP", "/permissive-", "/D_DEBUG"},
		},
		{
			name: "release default",
			cfg:  domain.ReleaseDefault,
			want: []string{"/std:c++20", "/O2", "/MD", "/EHsc", "/nologo", "/c", "/TP", "/permissive-", "/DNDEBUG"},
		},
		{
			name: "debug ignores optimization level",
			cfg: func() domain.BuildConfiguration {
				cfg := domain.DebugDefault()
				cfg.Optimization = domain.O3
				cfg.DebugInfo = domain.DebugInfoMinimal
				cfg.Runtime = domain.RuntimeMultiThreadedDebug
				cfg.Standard = domain.CppLatest
				cfg.Defines = nil
				return cfg
			},
			want: []string{"/std:c++latest", "/Od", "/Z7", "/MTd", "/EHsc", "/nologo", "/c", "/TP", "/permissive-"},
		},
		{
			name: "release O3 static runtime with includes",
			cfg: func() domain.BuildConfiguration {
				cfg := domain.ReleaseDefault()
				cfg.Optimization = domain.O3
				cfg.Runtime = domain.RuntimeMultiThreaded
				cfg.Standard = domain.Cpp23
				cfg.Defines = []string{"B=2", "A=1"}
				cfg.IncludeDirs = []string{"inc", "third_party"}
				return cfg
			},
			want: []string{
				"/std:c++23", "/Ox", "/MT", "/EHsc", "/nologo", "/c", "/TP", "/permissive-",
				"/DB=2", "/DA=1", "/Iinc", "/Ithird_party",
			},
		},
		{
			name: "release O0 and O1",
			cfg: func() domain.BuildConfiguration {
				cfg := domain.ReleaseDefault()
				cfg.Optimization = domain.O1
				cfg.Defines = nil
				return cfg
			},
			want: []string{"/std:c++20", "/O1", "/MD", "/EHsc", "/nologo", "/c", "/TP", "/permissive-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toolchain.MSVCCompileFlags(tt.cfg())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClangCompileFlags(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() domain.BuildConfiguration
		want []string
	}{
		{
			name: "debug default",
			cfg:  domain.DebugDefault,
			want: []string{"-std=c++20", "-O0", "-g", "/MDd", "-fms-compatibility", "-Wno-msvc-include", "-D_DEBUG"},
		},
		{
			name: "release default",
			cfg:  domain.ReleaseDefault,
			want: []string{"-std=c++20", "-O2", "/MD", "-fms-compatibility", "-Wno-msvc-include", "-DNDEBUG"},
		},
		{
			name: "minimal debug info still emits -g",
			cfg: func() domain.BuildConfiguration {
				cfg := domain.ReleaseDefault()
				cfg.DebugInfo = domain.DebugInfoMinimal
				cfg.Optimization = domain.O0
				cfg.Standard = domain.CppLatest
				cfg.Defines = nil
				cfg.IncludeDirs = []string{"include"}
				return cfg
			},
			want: []string{"-std=c++2b", "-O0", "-g", "/MD", "-fms-compatibility", "-Wno-msvc-include", "-Iinclude"},
		},
		{
			name: "cpp23 maps to c++2b",
			cfg: func() domain.BuildConfiguration {
				cfg := domain.ReleaseDefault()
				cfg.Standard = domain.Cpp23
				cfg.Optimization = domain.O1
				cfg.Runtime = domain.RuntimeMultiThreadedDebug
				return cfg
			},
			want: []string{"-std=c++2b", "-O1", "/MTd", "-fms-compatibility", "-Wno-msvc-include", "-DNDEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toolchain.ClangCompileFlags(tt.cfg())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
