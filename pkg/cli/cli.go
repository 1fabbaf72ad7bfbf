package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/christophwitzko/waitfor/pkg/logger"
	"github.com/spf13/cobra"
)

// ExitCoder is implemented by errors that map to a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the exit code for err: 0 for nil, the code of the first
// ExitCoder in the chain, or 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

func WrapRunE(log *logger.Logger, fn func(log *logger.Logger, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if code := HandleError(log, fn(log, cmd, args)); code != 0 {
			os.Exit(code)
		}
	}
}

// HandleError reports err on the error log and returns its exit code.
func HandleError(log *logger.Logger, err error) int {
	if err != nil {
		log.Errorf("ERROR: %v", err)
	}
	return ExitCode(err)
}

func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func MustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	Must(err)
	return val
}

func GetBuildInfo() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "(no build info available)"
	}
	commit := "unknown commit"
	commitDate := "unknown date"
	dirty := ""
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 8 {
				commit = commit[:8]
			}
		case "vcs.time":
			commitDate = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				dirty = " (dirty)"
			}
		}
	}
	return fmt.Sprintf("revision: %s (%s)%s", commit, commitDate, dirty)
}

func GetRelativePath(p string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return p
	}
	relP, err := filepath.Rel(cwd, p)
	if err != nil {
		return p
	}
	return relP
}
