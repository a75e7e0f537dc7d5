// Package main provides the CLI entrypoint for buildstreak.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/buildstreak/internal/config"
	"github.com/verte-zerg/buildstreak/internal/model"
	"github.com/verte-zerg/buildstreak/internal/store"
	"github.com/verte-zerg/buildstreak/internal/streak"
	"github.com/verte-zerg/buildstreak/internal/ui"
)

var (
	configPath string
	useGlobal  bool
	statusNet  bool
	configShow bool
)

var (
	now   = time.Now
	getwd = os.Getwd
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "buildstreak",
		Short:         "Track today's build successes and failures",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("command missing (try: buildstreak --help)")
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().BoolVar(&useGlobal, "global", false, "use the global store when the directory is not initialized")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newOutcomeCmd("success", "Record a successful build", (*streak.Executor).Success))
	rootCmd.AddCommand(newOutcomeCmd("fail", "Record a failed build", (*streak.Executor).Fail))
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newTmuxCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a store directory and point this directory at it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitCmd,
	}
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	base := ""
	if len(args) > 0 {
		base = args[0]
	}
	target, err := config.Initialize(dir, base)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s %s\n", ui.Success("Initialized build streak store at"), ui.Path(target)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	hint := "Marker written to " + filepath.Join(dir, config.MarkerName)
	if _, err := fmt.Fprintln(out, ui.Muted(hint)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newOutcomeCmd(use, short string, record func(*streak.Executor) (model.Counter, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			executor, err := openExecutor(cmd)
			if err != nil {
				return err
			}
			if _, err := record(executor); err != nil {
				return fmt.Errorf("failed to record %s: %w", use, err)
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print today's tally",
		Args:  cobra.NoArgs,
		RunE:  runStatusCmd,
	}
	cmd.Flags().BoolVar(&statusNet, "net", false, "print successes minus failures")
	return cmd
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	executor, err := openExecutor(cmd)
	if err != nil {
		return err
	}
	counter, err := executor.Status()
	if err != nil {
		return fmt.Errorf("failed to load counter: %w", err)
	}
	line := streak.FormatStatus(counter)
	if statusNet {
		line = streak.FormatNet(counter)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zero today's tally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			executor, err := openExecutor(cmd)
			if err != nil {
				return err
			}
			if err := executor.Reset(); err != nil {
				return fmt.Errorf("failed to reset counter: %w", err)
			}
			return nil
		},
	}
}

func newTmuxCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tmux",
		Aliases: []string{"render"},
		Short:   "Print today's tally as a tmux status segment",
		Args:    cobra.NoArgs,
		RunE:    runTmuxCmd,
	}
}

// runTmuxCmd prints nothing in directories that were never initialized, since
// the status line invokes it everywhere.
func runTmuxCmd(cmd *cobra.Command, _ []string) error {
	executor, err := openExecutor(cmd)
	if errors.Is(err, config.ErrNotInitialized) {
		return nil
	}
	if err != nil {
		return err
	}
	segment, err := executor.Render()
	if err != nil {
		return fmt.Errorf("failed to load counter: %w", err)
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), segment); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
	cmd.Flags().BoolVar(&configShow, "show", false, "print effective settings instead of opening an editor")
	return cmd
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	if configShow {
		return showConfig(cmd)
	}
	path := configPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func showConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "global", &useGlobal, fileCfg.Store.Global)

	root := "(not initialized)"
	if dir, err := getwd(); err == nil {
		if resolved, err := config.Resolve(dir); err == nil {
			root = resolved
		}
	}
	rows := [][]string{
		{"config", configPath},
		{"store", root},
		{"lock", strconv.FormatBool(fileCfg.LockEnabled())},
		{"global", strconv.FormatBool(useGlobal)},
		{"global-root", fileCfg.GlobalRoot()},
	}
	for _, line := range ui.FormatTable(rows, nil) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// openExecutor resolves the store root for the working directory and returns
// an executor over today's counter.
func openExecutor(cmd *cobra.Command) (*streak.Executor, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "global", &useGlobal, fileCfg.Store.Global)

	dir, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := config.Resolve(dir)
	if errors.Is(err, config.ErrNotInitialized) && useGlobal {
		root = fileCfg.GlobalRoot()
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create global store: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	st := store.New(root, store.WithClock(now), store.WithLock(fileCfg.LockEnabled()))
	return streak.New(st), nil
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# buildstreak configuration
# Uncomment a value to enable it. CLI flags override config values.

[store]
# lock = true             # Serialize counter updates with a file lock
# global = false          # Use the global store when no %s marker exists
# global-root = %q
`,
		config.MarkerName,
		config.DefaultGlobalRoot(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
