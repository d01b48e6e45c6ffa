package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Andyucu/FavApp-Starter/internal/assoc"
	"github.com/Andyucu/FavApp-Starter/internal/autostart"
	"github.com/Andyucu/FavApp-Starter/internal/discovery"
	"github.com/Andyucu/FavApp-Starter/internal/infrastructure/config"
	"github.com/Andyucu/FavApp-Starter/internal/launch"
	"github.com/Andyucu/FavApp-Starter/internal/logging"
	"github.com/Andyucu/FavApp-Starter/internal/profile"
	"github.com/Andyucu/FavApp-Starter/internal/shared/paths"
	"github.com/Andyucu/FavApp-Starter/internal/theme"
)

func main() {
	var (
		profileName = flag.String("profile", "", "Profile to use (default: active profile)")
		doLaunch    = flag.Bool("launch", false, "Launch every app in the selected profile")
		doList      = flag.Bool("list", false, "List profiles and their apps")
		doScan      = flag.Bool("scan", false, "Scan the system for installed applications")
		delayMS     = flag.Int("delay", -1, "Milliseconds to wait between launches (-1: configured default)")
		autoOn      = flag.Bool("autostart-on", false, "Enable launch at login")
		autoOff     = flag.Bool("autostart-off", false, "Disable launch at login")
		register    = flag.Bool("register", false, "Register the .favapp file association")
	)
	flag.Parse()

	cfg := config.LoadOrDefault()
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		File:        cfg.Logging.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath, err = paths.ConfigFile()
		if err != nil {
			logger.Fatal("failed to resolve config path", zap.Error(err))
		}
	}
	store := profile.Open(storePath, logger.Component("profile"))

	switch {
	case *doList:
		listProfiles(store)
	case *doScan:
		scanApps(cfg, logger)
	case *autoOn:
		fail(logger, "enable autostart", autostart.Enable())
	case *autoOff:
		fail(logger, "disable autostart", autostart.Disable())
	case *register:
		fail(logger, "register file association", assoc.Register(""))
	case *doLaunch:
		launchProfile(store, cfg, logger, *profileName, *delayMS)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func listProfiles(store *profile.Store) {
	active := store.ActiveProfile()
	fmt.Printf("Theme: %s\n", theme.Effective(store.Theme()))
	for _, name := range store.Profiles() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
		for _, app := range store.Apps(name) {
			fmt.Printf("    %-20s %s %s\n", app.Name, app.Path, app.Arguments)
		}
	}
}

func scanApps(cfg *config.Config, logger *logging.Logger) {
	scanner := discovery.New(logger.Component("discovery"))
	scanner.MaxDepth = cfg.Discovery.MaxDepth
	scanner.Exclude = cfg.Discovery.Exclude
	scanner.VerifyPE = cfg.Discovery.VerifyPE

	for _, app := range scanner.Scan() {
		fmt.Printf("%-30s %s\n", app.Name, app.Path)
	}
}

func launchProfile(store *profile.Store, cfg *config.Config, logger *logging.Logger, name string, delayMS int) {
	apps := store.Apps(name)
	if len(apps) == 0 {
		fmt.Println("Nothing to launch.")
		return
	}

	specs := make([]launch.Spec, 0, len(apps))
	for _, app := range apps {
		specs = append(specs, launch.Spec{
			Name:       app.Name,
			Path:       app.Path,
			Arguments:  app.Arguments,
			WorkingDir: app.WorkingDir,
		})
	}

	if delayMS < 0 {
		delayMS = cfg.Launch.DelayMS
	}
	launcher := launch.New(logger.Component("launch"))
	results := launcher.Multiple(specs, time.Duration(delayMS)*time.Millisecond, func(current, total int, name string) {
		fmt.Printf("Launching %d/%d: %s\n", current, total, name)
	})

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  %s: %v\n", r.Name, r.Err)
		}
	}
	if failed > 0 {
		fmt.Printf("%d of %d apps failed to launch.\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("Launched %d apps.\n", len(results))
}

func fail(logger *logging.Logger, what string, err error) {
	if err != nil {
		logger.Fatal("operation failed", zap.String("op", what), zap.Error(err))
	}
	fmt.Printf("%s: done\n", what)
}
