package main

import (
	"os"

	"github.com/routewalk/routewalk"
	"github.com/routewalk/routewalk/internal/config"
)

// loadEngine builds an Engine from routewalk.yaml (or the defaults when
// none exists), with an optional --dir override for the routes directory.
func loadEngine(dirFlag string) (*routewalk.Engine, *config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	root := wd
	if found, ferr := config.FindProjectRoot(wd); ferr == nil {
		root = found
	}

	cfg, err := config.LoadOrDefault(root)
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.RoutesPath()
	if dirFlag != "" {
		dir = dirFlag
	}

	engine := routewalk.New(dir,
		routewalk.WithExclude(cfg.Exclude...),
		routewalk.WithIndexMarker(cfg.IndexMarker),
		routewalk.WithExtension(cfg.Extension),
	)
	return engine, cfg, nil
}
