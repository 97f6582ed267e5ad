package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// cliBuffers holds the IO buffers wired into the root command for a test run.
type cliBuffers struct {
	in  *bytes.Buffer
	out *bytes.Buffer
	err *bytes.Buffer
}

// setupCLI prepares the root command with buffer IO and an isolated empty
// config file, and registers cleanup that restores all package state.
func setupCLI(t *testing.T) (*cliBuffers, string) {
	t.Helper()

	restore := snapshotCLIState()
	t.Cleanup(restore)

	bufs := &cliBuffers{
		in:  &bytes.Buffer{},
		out: &bytes.Buffer{},
		err: &bytes.Buffer{},
	}
	rootCmd.SetIn(bufs.in)
	rootCmd.SetOut(bufs.out)
	rootCmd.SetErr(bufs.err)
	rootCmd.SetContext(withIO(context.Background(), bufs.in, bufs.out, bufs.err))

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return bufs, cfgPath
}

func snapshotCLIState() func() {
	prevTitle := titleFlag
	prevStylesheet := stylesheet
	prevOutputFmt := outputFmt
	prevOutputType := outputType
	prevConfig := configFile
	prevQueryExpr := queryExpr
	prevQueryFile := queryFile
	prevErrorFmt := errorFmt
	prevQuiet := quietFlag
	prevInspectLines := inspectLines

	prevOut := rootCmd.OutOrStdout()
	prevErr := rootCmd.ErrOrStderr()
	prevIn := rootCmd.InOrStdin()
	prevCtx := rootCmd.Context()

	return func() {
		titleFlag = prevTitle
		stylesheet = prevStylesheet
		outputFmt = prevOutputFmt
		outputType = prevOutputType
		configFile = prevConfig
		queryExpr = prevQueryExpr
		queryFile = prevQueryFile
		errorFmt = prevErrorFmt
		quietFlag = prevQuiet
		inspectLines = prevInspectLines

		rootCmd.SetOut(prevOut)
		rootCmd.SetErr(prevErr)
		rootCmd.SetIn(prevIn)
		rootCmd.SetContext(prevCtx)
		rootCmd.SetArgs(nil)
		resetFlagChanges(rootCmd)
		for _, sub := range rootCmd.Commands() {
			resetFlagChanges(sub)
		}
	}
}

func resetFlagChanges(cmdFlagSet interface {
	Flags() *pflag.FlagSet
	PersistentFlags() *pflag.FlagSet
	InheritedFlags() *pflag.FlagSet
},
) {
	if cmdFlagSet == nil {
		return
	}
	cmdFlagSet.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	cmdFlagSet.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	cmdFlagSet.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}
