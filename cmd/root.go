package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/curriculum"
	"github.com/abhisek/studyplan/internal/logging"
	"github.com/abhisek/studyplan/internal/planner"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Prerequisite-aware study planner",
		Long:          "studyplan orders subjects by prerequisite, tracks syllabus completion and ranks weak topics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (yaml, toml or json)")
	root.PersistentFlags().String("curriculum", "", "Path to curriculum YAML (overrides STUDYPLAN_CURRICULUM_PATH)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newPathCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSyllabusCmd())
	root.AddCommand(newWeakCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// loadPlanner resolves configuration, builds the logger writing to logOut
// and returns a planner populated from the curriculum, if one is configured.
//
// Flags take priority over the config file and environment.
func loadPlanner(cmd *cobra.Command, logOut io.Writer) (*planner.Service, *slog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if p, _ := cmd.Flags().GetString("curriculum"); p != "" {
		cfg.Curriculum.Path = p
	}

	logger := logging.FromConfig(cfg.Log, logOut)
	for _, w := range cfg.Validate() {
		logger.Warn("config", "warning", w)
	}

	if cfg.Curriculum.Path == "" {
		logger.Warn("no curriculum configured, starting empty")
		return planner.New(cfg.Planner, logger), logger, nil
	}

	doc, err := curriculum.Load(cfg.Curriculum.Path, logger)
	if err != nil {
		return nil, nil, err
	}
	if doc.Syllabus.Title != "" {
		cfg.Planner.RootTitle = doc.Syllabus.Title
	}
	svc := planner.New(cfg.Planner, logger)
	if err := doc.Apply(svc); err != nil {
		return nil, nil, err
	}
	return svc, logger, nil
}
