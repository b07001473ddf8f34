package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	grouping "github.com/timmens/random-grouping"
	"github.com/timmens/random-grouping/internal/logging"
	"github.com/timmens/random-grouping/source"
	"github.com/timmens/random-grouping/store"
	"github.com/timmens/random-grouping/strategy"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new matching and update the history",
	Long: `Reads the participant table (local CSV or URL), the matching history
(created when missing), and writes the new group listing plus the updated
history. Flags override values from the optional config file.`,
	RunE: runCreate,
}

// fileConfig is the yaml config file schema: the engine configuration plus
// CLI-level paths and conveniences.
type fileConfig struct {
	grouping.Config `yaml:",inline"`

	// Names is the roster CSV path or URL.
	Names string `yaml:"names"`

	// History is the matching history CSV path; created when missing.
	History string `yaml:"history"`

	// Output is the human-readable group listing path.
	Output string `yaml:"output"`

	// Multiplier broadcasts one scalar to every roster attribute; ignored
	// when Multipliers is set explicitly.
	Multiplier float64 `yaml:"multiplier"`

	// Strategy selects the builder: "greedy" (default) or "sampling".
	Strategy string `yaml:"strategy"`
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("config", "", "Path to yaml config file")
	createCmd.Flags().String("names", "", "Roster CSV path or URL (required unless set in config)")
	createCmd.Flags().String("history", "matchings_history.csv", "Matching history CSV path")
	createCmd.Flags().String("output", "matching.txt", "Group listing output path")
	createCmd.Flags().Int("min-size", 0, "Minimum group size")
	createCmd.Flags().Int("n-groups", 0, "Number of groups to create (derives the minimum size)")
	createCmd.Flags().Int("max-size", 0, "Maximum group size (may exclude participants)")
	createCmd.Flags().Uint64("seed", 0, "Random seed (0 = derive from clock)")
	createCmd.Flags().Float64("multiplier", 0, "Mixing multiplier broadcast to every attribute")
	createCmd.Flags().String("strategy", "", "Builder: greedy or sampling")
	createCmd.Flags().Int("candidates", 0, "Candidate partitions for the sampling builder")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Names == "" {
		return fmt.Errorf("no roster given: set --names or the config file's names entry")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogDefault(level)

	ctx := context.Background()

	roster, err := source.New(cfg.Names).Load(ctx)
	if err != nil {
		return err
	}
	history, err := store.LoadHistory(cfg.History)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		"participants", roster.Len(),
		"active", len(roster.ActiveIDs()),
		"meetings", history.Len())

	if len(cfg.Multipliers) == 0 && cfg.Multiplier != 0 {
		cfg.Multipliers = grouping.BroadcastMultiplier(cfg.Multiplier, roster.AttributeNames())
	}

	opts := []grouping.Option{grouping.WithLogger(logger)}
	switch cfg.Strategy {
	case "", "greedy":
		if cfg.Strategy == "greedy" {
			opts = append(opts, grouping.WithStrategy(strategy.NewGreedy()))
		}
	case "sampling":
		opts = append(opts, grouping.WithStrategy(strategy.NewSampling(cfg.Candidates)))
	default:
		return fmt.Errorf("unknown strategy %q: want greedy or sampling", cfg.Strategy)
	}

	matcher, err := grouping.NewMatcher(&cfg.Config, opts...)
	if err != nil {
		return err
	}

	result, err := matcher.CreateMatching(roster, history)
	if err != nil {
		return err
	}

	// Listing first: a failed render must not leave the history advanced
	// with no output for the meeting.
	if err := store.WriteMatching(cfg.Output, result.Grouping, roster); err != nil {
		return err
	}
	if err := store.SaveHistory(cfg.History, result.History); err != nil {
		return err
	}

	fmt.Print(store.FormatMatching(result.Grouping, roster))
	for _, p := range result.Excluded {
		fmt.Printf("Excluded: %s\n", p.Name)
	}

	return nil
}

// loadConfig merges the optional yaml config file with flag overrides.
// Explicitly set flags always win.
func loadConfig(cmd *cobra.Command) (*fileConfig, error) {
	cfg := &fileConfig{}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("names") || cfg.Names == "" {
		cfg.Names, _ = flags.GetString("names")
	}
	if flags.Changed("history") || cfg.History == "" {
		cfg.History, _ = flags.GetString("history")
	}
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("min-size") {
		cfg.MinSize, _ = flags.GetInt("min-size")
	}
	if flags.Changed("n-groups") {
		cfg.NGroups, _ = flags.GetInt("n-groups")
	}
	if flags.Changed("max-size") {
		cfg.MaxSize, _ = flags.GetInt("max-size")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("multiplier") {
		cfg.Multiplier, _ = flags.GetFloat64("multiplier")
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("candidates") {
		cfg.Candidates, _ = flags.GetInt("candidates")
	}

	return cfg, nil
}
