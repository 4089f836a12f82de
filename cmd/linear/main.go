// Command linear runs a YAML script of container operations and logs each step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/inconshreveable/log15"

	"github.com/bradenaw/linear/internal/script"
)

func main() {
	path := flag.String("script", "", "Path to the YAML step script")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: linear -script steps.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	config, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	handler, err := config.Handler()
	if err != nil {
		return err
	}
	logger := log15.New("service", "linear")
	logger.SetHandler(handler)

	r, err := script.NewRunner(logger, config.ArraySize, config.StackCapacity)
	if err != nil {
		return err
	}
	logger.Debug("Running script", "path", path, "steps", len(config.Steps))
	return r.Run(config.Steps)
}
