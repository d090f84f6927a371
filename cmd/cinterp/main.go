// Command cinterp is a batch interpreter for a restricted C-like
// dialect: variable declarations, expression statements, and a builtin
// print directive. It reads statements terminated by ';' from standard
// input, evaluates them in order against one execution context, and
// writes the run report to standard output.
package main

import (
	"os"

	"github.com/nilsen/cinterp/internal/config"
	"github.com/nilsen/cinterp/internal/driver"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(driver.ExitParse)
	}

	d := driver.New(cfg, os.Stdout, os.Stderr)
	os.Exit(d.Run(os.Stdin))
}

// configPath is the optional override file consulted by config.Load;
// a missing file just means the compiled-in defaults stand.
func configPath() string {
	if p := os.Getenv("CINTERP_CONFIG"); p != "" {
		return p
	}

	return "cinterp.toml"
}
