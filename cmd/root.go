package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmercadier/timetable/config"
	"github.com/lmercadier/timetable/core/model"
	"github.com/lmercadier/timetable/core/planner"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Contextualized daily timetable optimizer",
	Long: "timetable builds a single-day time table from tasks with mixed " +
		"constraints: fixed-time tasks are pinned, flexible tasks are placed " +
		"into the gaps by difficulty, focus window and a simulated energy budget.",
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, falling back to defaults when
// it does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())
	date := time.Now().Format(model.DateLayout)

	fmt.Fprintln(out, "Welcome to the Contextualized Schedule Optimizer!")
	fmt.Fprintf(out, "Peak Focus Hours: %d:00 to %d:00\n", cfg.Planner.PeakStartHour, cfg.Planner.PeakEndHour)

	cfg.Planner.StartHour = promptInt(in, out,
		fmt.Sprintf("Schedule Start Hour (e.g., 8 for 08:00) [%d]: ", cfg.Planner.StartHour), cfg.Planner.StartHour)
	cfg.Planner.EndHour = promptInt(in, out,
		fmt.Sprintf("Schedule End Hour (e.g., 18 for 18:00) [%d]: ", cfg.Planner.EndHour), cfg.Planner.EndHour)
	if err := cfg.Planner.Validate(); err != nil {
		return err
	}

	store := planner.NewStore()
	collectTasks(in, out, store, date)

	return runPipeline(ctx, cfg, store, date, out, "", "")
}

// collectTasks gathers task details interactively until "done".
func collectTasks(in *bufio.Reader, out io.Writer, store *planner.Store, date string) {
	fmt.Fprintln(out, "\n--- ENTERING TASK DETAILS ---")
	for {
		name := promptString(in, out, "Task Name (or 'done' to finish): ", "")
		if strings.EqualFold(name, "done") || name == "" {
			return
		}
		spec := planner.TaskSpec{
			Name:             name,
			DurationMinutes:  promptInt(in, out, "Duration (minutes, e.g., 60): ", 60),
			FixedStart:       promptString(in, out, "Fixed Start Time (HH:MM) or blank for flexible: ", ""),
			Category:         promptString(in, out, "Category (work, personal, travel, fitness, outdoor) [work]: ", "work"),
			Difficulty:       promptString(in, out, "Difficulty (HIGH, MEDIUM, LOW) [MEDIUM]: ", "MEDIUM"),
			DependsOn:        promptString(in, out, "Dependency (name of prior task, or blank): ", ""),
			IsOutdoor:        strings.EqualFold(promptString(in, out, "Is this an outdoor task? (y/n) [n]: ", "n"), "y"),
			RequiredResource: promptString(in, out, "Required Resource (Laptop, Specific Tool, Phone, Car or blank): ", ""),
			GroupID:          promptString(in, out, "Grouping ID (e.g., 'ProjectAlpha', or blank): ", ""),
		}
		if _, err := store.AddTask(date, spec); err != nil {
			fmt.Fprintf(out, "Error adding task: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Task %q added.\n", name)
	}
}

func promptString(in *bufio.Reader, out io.Writer, prompt, def string) string {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptInt(in *bufio.Reader, out io.Writer, prompt string, def int) int {
	for {
		raw := promptString(in, out, prompt, strconv.Itoa(def))
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(out, "Invalid number %q\n", raw)
			continue
		}
		return n
	}
}
