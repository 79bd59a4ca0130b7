// Copyright © 2026 The clang-complete authors

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luthersystems/clang-complete/input"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const clangOutput = `COMPLETION: short
COMPLETION: static : static
COMPLETION: Pattern : static_cast<<#type#>>(<#expression#>)
COMPLETION: strlen : [#size_t#]strlen(<#const char *s#>)
COMPLETION: strcpy : [#char *#]strcpy(<#char *dst#>, <#const char *src#>)
COMPLETION: struct
OVERLOAD: [#int#]f(<#int#>)
`

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestPrintCommand_DefaultFlags(t *testing.T) {
	cmd := PrintCommand()
	assert.Equal(t, "print [flags] [files...]", cmd.Use)

	for _, name := range []string{"prefix", "max-completions", "format", "pretty", "width", "exclude"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestPrintCommand_Stdin(t *testing.T) {
	got, err := runCommand(t, PrintCommand(WithLogger(zap.NewNop())), clangOutput, "-p", "ST")
	require.NoError(t, err)
	assert.Equal(t,
		"COMPLETION: static\n"+
			"COMPLETION: strlen : [#size_t#]strlen(<#const char *s#>)\n"+
			"COMPLETION: strcpy : [#char *#]strcpy(<#char *dst#>, <#const char *src#>)\n"+
			"COMPLETION: struct\n",
		got)
}

func TestPrintCommand_SoftCap(t *testing.T) {
	got, err := runCommand(t, PrintCommand(WithLogger(zap.NewNop())), clangOutput, "-n", "0")
	require.NoError(t, err)
	assert.Equal(t,
		"COMPLETION: short\n"+
			"COMPLETION: static\n"+
			"COMPLETION: strlen : [#size_t#]strlen(<#const char *s#>)\n",
		got)
}

func TestPrintCommand_Files(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "a.txt")
	yml := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(txt, []byte("COMPLETION: foo\n"), 0o600))
	require.NoError(t, os.WriteFile(yml, []byte(`
- chunks:
  - {kind: typed-text, text: static}
  - {kind: result-type, text: int}
`), 0o600))

	core, logs := observer.New(zap.DebugLevel)
	got, err := runCommand(t, PrintCommand(WithLogger(zap.New(core))), "", txt, yml)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETION: foo\nCOMPLETION: static : static[#int#]\n", got)

	entries := logs.FilterMessage("completions printed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["emitted"])
}

func TestPrintCommand_Pretty(t *testing.T) {
	got, err := runCommand(t, PrintCommand(WithLogger(zap.NewNop())), clangOutput, "--pretty", "-p", "strl")
	require.NoError(t, err)
	assert.Equal(t, "strlen  size_t strlen(const char *s)\n", got)
}

func TestPrintCommand_BadInput(t *testing.T) {
	got, err := runCommand(t, PrintCommand(WithLogger(zap.NewNop())), "COMPLETION: f : f(<#x\n")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Contains(t, err.Error(), "<stdin>:1")

	_, err = runCommand(t, PrintCommand(WithLogger(zap.NewNop())), "", "--format", "xml")
	require.Error(t, err)
}

func TestPrintCommand_Span(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		assert.NoError(t, tp.Shutdown(context.Background()))
	})

	_, err := runCommand(t, PrintCommand(WithLogger(zap.NewNop()), WithTracerProvider(tp)), clangOutput, "-p", "s")
	require.NoError(t, err)
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "completion.Print", spans[0].Name)
}

func TestConvertCommand(t *testing.T) {
	got, err := runCommand(t, ConvertCommand(WithLogger(zap.NewNop())), clangOutput)
	require.NoError(t, err)

	back, err := input.DecodeYAML(strings.NewReader(got), "converted.yaml")
	require.NoError(t, err)
	assert.Len(t, back, 6)
}

func TestExploreCommand_RejectsStdin(t *testing.T) {
	_, err := runCommand(t, ExploreCommand(WithLogger(zap.NewNop())), "", "-")
	require.Error(t, err)

	_, err = runCommand(t, ExploreCommand(WithLogger(zap.NewNop())), "")
	require.Error(t, err, "explore requires at least one file")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "clang-complete dev\n", out.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false, true)
	log.Info("hidden")
	log.Warn("shown", zap.Int("n", 1))
	require.NoError(t, log.Sync())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log = newLogger(&buf, true, false)
	log.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestDocCommand(t *testing.T) {
	var out bytes.Buffer
	docCmd.SetOut(&out)
	require.NoError(t, docCmd.RunE(docCmd, nil))
	assert.Contains(t, out.String(), "COMPLETION: <typed-text> : <rendered-chunks>")
}

func TestPrintCommand_PrettyWritesToFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	cmd := PrintCommand(WithLogger(zap.NewNop()))
	cmd.SetArgs([]string{"--pretty", "-p", "strc"})
	cmd.SetIn(strings.NewReader(clangOutput))
	cmd.SetOut(f)
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "strcpy  char * strcpy(char *dst, const char *src)\n", string(data))
}

func TestCommandsDoNotPrintUsageOnError(t *testing.T) {
	for _, newCmd := range []func(...Option) *cobra.Command{
		PrintCommand, ExploreCommand, ConvertCommand, LintCommand,
	} {
		cmd := newCmd(WithLogger(zap.NewNop()))
		var stdout, stderr bytes.Buffer
		cmd.SetArgs([]string{"--bogus"})
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err, cmd.Name())
		assert.NotContains(t, stdout.String(), "Usage:", cmd.Name())
		assert.NotContains(t, stderr.String(), "Usage:", cmd.Name())
	}
}
