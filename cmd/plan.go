package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmercadier/timetable/config"
	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/core/planner"
)

var (
	planDate    string
	tasksPath   string
	jsonOutPath string
	csvOutPath  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the timetable for a date from a tasks file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planDate, "date", time.Now().Format(model.DateLayout), "date to plan (YYYY-MM-DD)")
	planCmd.Flags().StringVarP(&tasksPath, "tasks", "t", "tasks.yaml", "tasks file")
	planCmd.Flags().StringVar(&jsonOutPath, "json", "", "write the schedule as JSON to this file")
	planCmd.Flags().StringVar(&csvOutPath, "csv", "", "write the schedule as CSV to this file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := config.LoadTasks(tasksPath)
	if err != nil {
		return err
	}
	store := planner.NewStore()
	for _, e := range entries {
		if _, err := store.AddTask(planDate, e.Spec()); err != nil {
			return fmt.Errorf("add task: %w", err)
		}
	}

	return runPipeline(ctx, cfg, store, planDate, cmd.OutOrStdout(), jsonOutPath, csvOutPath)
}
