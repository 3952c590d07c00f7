package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// RunExtension attempts to find and execute an external pms-<subcommand>
// binary. The global flags are passed to it as PMS_* environment variables.
//
// It returns (true, exitCode) if an extension was found and executed, and
// (false, 0) if there is no such extension.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "pms-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		zap.L().Debug("no extension", zap.String("name", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), ExtensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// ExtensionEnv returns the environment passing the global flags to an
// extension.
func ExtensionEnv() []string {
	return []string{
		EnvPortfolioFile + "=" + *portfolioFile,
		EnvCurrency + "=" + *currency,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
