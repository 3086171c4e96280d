// Command hitbox-check runs the probes of a scene file and prints what each one overlaps
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/config"
	"github.com/lixenwraith/hitbox/logging"
	"github.com/lixenwraith/hitbox/scene"
)

func main() {
	verbose := flag.Bool("v", false, "Log registry lifecycle to stderr")
	flag.Parse()

	cfg := config.Load()
	paths := flag.Args()
	if len(paths) == 0 && cfg.ScenePath != "" {
		paths = []string{cfg.ScenePath}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hitbox-check [-v] scene.yaml...")
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	if _, err := logging.Setup(logging.Params{Writer: os.Stderr, Level: level, Process: "hitbox-check"}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, paths); err != nil {
		fmt.Fprintf(os.Stderr, "hitbox-check: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, paths []string) error {
	reg := collision.NewRegistry(collision.WithLogger(slog.Default().With("area", "registry")))

	for _, path := range paths {
		s, err := scene.Load(path)
		if err != nil {
			return err
		}

		name := s.Name
		if name == "" {
			name = path
		}
		for _, r := range s.Run(reg) {
			fmt.Fprintf(w, "%s/%s: %s\n", name, r.Name, r.Collision)
		}
	}
	return nil
}
