package domain_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importa/internal/core/domain"
)

func TestCommand_Render(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
		want string
	}{
		{
			name: "simple command",
			cmd:  domain.Command{Executable: "git", Arguments: []string{"--version"}},
			want: `"git" --version`,
		},
		{
			name: "executable with spaces",
			cmd: domain.Command{
				Executable: `C:\Program Files\My App\app.exe`,
				Arguments:  []string{"-a", "-b"},
			},
			want: `"C:\Program Files\My App\app.exe" -a -b`,
		},
		{
			name: "argument with spaces",
			cmd: domain.Command{
				Executable: "my_app.exe",
				Arguments:  []string{"arg1", "hello world", "arg3"},
			},
			want: `"my_app.exe" arg1 "hello world" arg3`,
		},
		{
			name: "no arguments",
			cmd:  domain.Command{Executable: "tool.exe"},
			want: `"tool.exe"`,
		},
		{
			name: "quoted library path is not escaped",
			cmd: domain.Command{
				Executable: "link.exe",
				Arguments:  []string{`/LIBPATH:"lib"`},
			},
			want: `"link.exe" /LIBPATH:"lib"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Render())
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestCommand_RenderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abcXYZ019-_/:=.\\ ")

	word := func() string {
		n := 1 + rng.IntN(12)
		var sb strings.Builder
		for range n {
			sb.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		return sb.String()
	}

	for i := range 500 {
		cmd := domain.Command{Executable: word()}
		for range rng.IntN(8) {
			cmd.Arguments = append(cmd.Arguments, word())
		}

		tokens := splitCommandLine(cmd.Render())
		require.NotEmpty(t, tokens, "iteration %d", i)
		assert.Equal(t, cmd.Executable, tokens[0], "iteration %d", i)
		assert.Equal(t, len(cmd.Arguments), len(tokens)-1, "iteration %d: %s", i, cmd.Render())
		for j, arg := range cmd.Arguments {
			if j+1 < len(tokens) {
				assert.Equal(t, arg, tokens[j+1], "iteration %d", i)
			}
		}
	}
}

func TestExecutionResult_Success(t *testing.T) {
	assert.True(t, domain.ExecutionResult{}.Success())
	assert.False(t, domain.ExecutionResult{ExitCode: 1}.Success())
	assert.False(t, domain.ExecutionResult{ExitCode: -1}.Success())
}

// splitCommandLine splits on whitespace outside double-quoted spans and drops the quotes.
func splitCommandLine(s string) []string {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && unicode.IsSpace(r):
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
