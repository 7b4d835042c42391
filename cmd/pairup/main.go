package main

import (
	"os"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/config"
	"github.com/cristianoliveira/pairup/internal/logging"
)

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the CLI and maps the outcome to an exit code.
func run(execute func() error) int {
	config.Load()
	if err := logging.InitGlobal(); err != nil {
		colors.Debug("logging disabled: " + err.Error())
	}
	defer func() { _ = logging.ShutdownGlobal() }()
	defer func() { _ = coreClient.Close() }()

	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	if err := execute(); err != nil {
		colors.Error(err.Error())
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		return 1
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}
