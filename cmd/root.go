package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartlisting/smartlisting/internal/aws"
	"github.com/smartlisting/smartlisting/internal/config"
	"github.com/smartlisting/smartlisting/internal/config/data"
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/view"
)

const appVersion = "0.1.0"

var (
	slFlags *data.Flags
	rootCmd = &cobra.Command{
		Use:   config.AppName,
		Short: "Sectioned list screens in your terminal",
		Long:  `smartlisting renders profile and menu screens as sectioned lists, with placeholders while data loads.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("%s version %s\n", config.AppName, appVersion)
		},
	}
)

func init() {
	slFlags = config.NewFlags()
	initFlags()
	rootCmd.AddCommand(versionCmd)
}

func initFlags() {
	rootCmd.Flags().StringVarP(slFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(slFlags.LogFile, "logFile", "", "Log file path")
	rootCmd.Flags().StringVarP(slFlags.Command, "command", "c", "", "Startup screen or alias")
	rootCmd.Flags().BoolVar(slFlags.Headless, "headless", false, "Print the startup screen and exit")
	rootCmd.Flags().StringVar(slFlags.LoadDelay, "loadDelay", "", "Time placeholders show before data loads (e.g. 2s)")
	rootCmd.Flags().StringVar(slFlags.ProfileData, "profileData", "", "Profile document path or s3:// URL")
	rootCmd.Flags().StringVar(slFlags.MenuData, "menuData", "", "Menu document path or s3:// URL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// 1. Initialize locations
	if err := config.InitLocs(); err != nil {
		return fmt.Errorf("failed to initialize locations: %w", err)
	}

	// 2. Initialize logging
	if !config.IsStringSet(slFlags.LogFile) {
		*slFlags.LogFile = config.AppLogFile
	}
	if err := config.InitLogLoc(*slFlags.LogFile); err != nil {
		return fmt.Errorf("failed to initialize log location: %w", err)
	}
	logger, closer, err := config.NewLogger(*slFlags.LogFile, *slFlags.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	slog.SetDefault(logger)

	// 3. Load and refine configuration
	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Refine(slFlags); err != nil {
		return fmt.Errorf("failed to refine configuration: %w", err)
	}
	if _, err := cfg.Save(config.AppConfigFile, false); err != nil {
		slog.Warn("Unable to save configuration", "error", err)
	}

	// 4. Load aliases
	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		slog.Warn("Unable to load aliases", "error", err)
	}

	// 5. Build the document factory
	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	// 6. Print once or run the TUI
	if *slFlags.Headless {
		var sid dao.ScreenID
		if err := sid.Parse(aliases.Get(cfg.Smartlisting.Screen())); err != nil {
			return err
		}
		return view.RenderScreen(cmd.Context(), factory, &sid, os.Stdout)
	}

	app := view.NewApp(cfg, aliases, factory, appVersion)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run()
}

func newFactory(cfg *config.Config) (*dao.ScreenFactory, error) {
	ttl, err := cfg.Smartlisting.GetCacheTTL()
	if err != nil {
		return nil, err
	}
	store, err := newObjectStore(cfg)
	if err != nil {
		return nil, err
	}

	f := dao.NewFactory(dao.NewDocumentFetcher(store, dao.NewDocumentCache(ttl)))
	for _, sid := range dao.ListAccessors() {
		f.SetSource(sid, cfg.Smartlisting.SourceFor(sid.String()))
	}

	return f, nil
}

// newObjectStore returns an S3 reader when a screen reads from S3.
func newObjectStore(cfg *config.Config) (dao.ObjectStore, error) {
	var usesS3 bool
	for _, sid := range dao.ListAccessors() {
		usesS3 = usesS3 || aws.IsS3URL(cfg.Smartlisting.SourceFor(sid.String()))
	}
	if !usesS3 {
		return nil, nil
	}

	profile := cfg.Smartlisting.AWS.Profile
	if profile != "" {
		ok, err := aws.DefaultSharedFiles().HasProfile(profile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read AWS profiles: %w", err)
		}
		if !ok {
			slog.Warn("AWS profile not found in shared files", "profile", profile)
		}
	}
	timeout, err := cfg.Smartlisting.GetAPITimeout()
	if err != nil {
		return nil, err
	}

	return aws.NewAPIClient(&aws.ClientConfig{
		Profile: profile,
		Region:  cfg.Smartlisting.AWS.Region,
		Timeout: timeout,
	})
}
