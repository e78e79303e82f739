package main

import (
	"flag"
	"fmt"
	"os"

	"logo-lms/config"
	"logo-lms/database"
	"logo-lms/logger"
)

var log = logger.New("migrate-cli")

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	version := flag.Int("version", -1, "version to force")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [flags] up|down|force|version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", err)
		os.Exit(1)
	}

	mg, err := database.NewMigrator(cfg.DatabaseURL())
	if err != nil {
		log.Error("open migrator", err)
		os.Exit(1)
	}
	defer mg.Close()

	if err := run(mg, flag.Arg(0), *steps, *version); err != nil {
		log.Error("migrate %s", err, flag.Arg(0))
		mg.Close()
		os.Exit(1)
	}
}

func run(mg *database.Migrator, cmd string, steps, version int) error {
	switch cmd {
	case "up":
		return mg.Up()
	case "down":
		if err := mg.Down(steps); err != nil {
			return err
		}
		log.Success("rolled back %d step(s)", steps)
	case "force":
		if version < 0 {
			return fmt.Errorf("force needs -version")
		}
		if err := mg.Force(version); err != nil {
			return err
		}
		log.Success("forced version %d", version)
	case "version":
		v, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		log.Info("version %d (dirty=%t)", v, dirty)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
