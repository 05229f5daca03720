// Command a11ycheck runs accessibility checks over HTML documents.
//
//	a11ycheck [-config file.yaml] [-device mobile] [-out dir] page.html...
//
// It exits with status 1 when any violation was found.
package main

import (
	"flag"
	"os"

	checkcmd "github.com/sirkon/a11ycheck/internal/checkcli"
	"github.com/sirkon/a11ycheck/internal/config"
)

func main() {
	cfg, err := checkcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	res, err := checkcmd.Run(cfg, os.Stdout)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if res.Violations > 0 {
		config.Exitf("%d accessibility violations in %d files", res.Violations, res.Files)
	}
}
