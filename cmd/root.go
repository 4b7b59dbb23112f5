package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/packwiz/cfinstall/cmdshared"
	"github.com/packwiz/cfinstall/core"
	"github.com/packwiz/cfinstall/curseforge"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Exit codes
const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 1
)

var cfgFile string

// newRootCmd creates the cfinstall command; it installs a single modpack and has no subcommands
func newRootCmd(stdin io.Reader, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfinstall <modpack-uri> <target-directory>",
		Short: "Install a CurseForge modpack from a curseforge://install link",
		Long: `Install a CurseForge modpack from a curseforge://install link.

The modpack archive is downloaded, every file listed in its manifest is downloaded into
the mods folder of the target directory and the overrides are copied over the top.`,
		Example:       "  cfinstall 'curseforge://install?addonId=123456&fileId=7654321' ./instance",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments were validated before this runs; config errors aren't usage errors
			cmd.SilenceUsage = true
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := curseforge.ParseModpackURI(args[0], args[1])
			if err != nil {
				return err
			}
			cfg := core.ConfigFromViper()

			empty, err := cmdshared.IsEmptyDir(ref.TargetDir)
			if err != nil {
				return fmt.Errorf("failed to read target directory: %w", err)
			}
			if !empty {
				ok, err := cmdshared.PromptYesNo(stdin, stderr, fmt.Sprintf("%s is not empty, existing files may be overwritten. Continue? [Y/n]: ", ref.TargetDir))
				if err != nil {
					return err
				}
				if !ok {
					pterm.Info.Println("Install cancelled")
					return nil
				}
			}

			var reporter core.ProgressReporter = cmdshared.NewLineReporter(stderr)
			if cfg.ProgressBar {
				reporter = cmdshared.NewBarReporter(stderr)
			}
			installer := curseforge.NewInstaller(cfg, &http.Client{}, reporter)
			return installer.Install(cmd.Context(), ref)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cfinstall.toml)")
	flags.String("api-url", core.DefaultAPIURL, "The CurseForge addon API to resolve files with")
	flags.IntP("workers", "w", core.DefaultWorkers, "The number of files to download at once (0 for no limit)")
	flags.String("mods-folder", core.DefaultModsFolder, "The folder in the target directory to download mods to")
	flags.Bool("progress-bar", false, "Show a progress bar instead of a line per downloaded file")
	flags.Bool("record", false, "Write "+core.RecordFileName+" describing the install to the target directory")
	flags.BoolP("verbose", "v", false, "Print debug output")
	flags.Bool("no-colours", false, "Do not display console/terminal colours")
	flags.BoolP("non-interactive", "y", false, "Don't ask before installing into a directory that isn't empty")
	bindFlags(flags)

	return rootCmd
}

func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = viper.BindPFlag(f.Name, f)
	})
}

// Execute runs cfinstall with the process arguments and exits with its status
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) int {
	pterm.SetDefaultOutput(stderr)

	rootCmd := newRootCmd(stdin, stderr)
	usageShown := false
	rootCmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_ = c.Usage()
		usageShown = true
	})
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if usageShown {
		return exitUsage
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			pterm.Warning.Println("Install interrupted")
		} else {
			pterm.Error.Println(err)
		}
		return exitError
	}
	return exitSuccess
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	core.SetConfigDefaults()
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		dirs, err := core.GetConfigDirs()
		if err != nil {
			return fmt.Errorf("failed to locate config directory: %w", err)
		}
		for _, dir := range dirs {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigName(".cfinstall")
	}

	viper.SetEnvPrefix("cfinstall")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (cfgFile != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := core.ConfigFromViper()
	if cfg.NoColours {
		pterm.DisableStyling()
	}
	if cfg.Verbose {
		pterm.EnableDebugMessages()
	}
	if err == nil {
		pterm.Debug.Println("Using config file:", viper.ConfigFileUsed())
	}
	return nil
}
