package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/engine"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/graph"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/report"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/sample"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/schedule"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/session"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/ui"
)

var (
	flagStrategy   string
	flagJSON       bool
	flagLimit      int
	flagToday      string
	flagSessionDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "task-analyzer",
		Short: "Rank pending tasks by computed priority",
		Long: `Task-analyzer scores each task from its due date, importance, effort and
dependency links, then ranks the batch so you know what to work on next.
Batches come from a JSON file, stdin, or tasks saved with 'add'.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Override today's date (YYYY-MM-DD) for reproducible runs")
	rootCmd.PersistentFlags().StringVar(&flagSessionDir, "session-dir", "", "Directory for saved session tasks")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(clearCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetConfigName(".task-analyzer")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetDefault("strategy", string(scoring.SmartBalance))
	viper.SetDefault("limit", engine.DefaultSuggestionLimit)

	viper.SetEnvPrefix("TASK_ANALYZER")
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Score and rank a batch of tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, fileStrategy, err := loadBatch(args)
			if err != nil {
				return err
			}
			if len(batch) == 0 {
				return fmt.Errorf("no tasks provided: pass a JSON file, pipe one in, or save tasks with 'add'")
			}

			result := engine.Analyze(batch, resolveStrategy(fileStrategy), today())

			if flagJSON {
				return printJSON(analyzeResponse{
					Success:    true,
					Strategy:   result.Strategy,
					TotalTasks: len(result.Ranked),
					Tasks:      result.Ranked,
					Warnings:   result.Warnings,
				})
			}
			report.PrintRanked(os.Stdout, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagStrategy, "strategy", "", "Scoring strategy (smart_balance, fastest_wins, high_impact, deadline_driven)")

	return cmd
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [file]",
		Short: "Show the top tasks to work on today",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, _, err := loadBatch(args)
			if err != nil {
				return err
			}
			if len(batch) == 0 {
				batch = sample.Batch(today())
				if !flagJSON {
					fmt.Fprintf(os.Stderr, "%s no tasks supplied, using sample data\n", ui.Dim("note:"))
				}
			}

			limit := flagLimit
			if limit == 0 {
				limit = viper.GetInt("limit")
			}
			result := engine.Suggest(batch, limit, today())

			if flagJSON {
				return printJSON(suggestResponse{
					Success:     true,
					Message:     result.Message,
					Suggestions: result.Suggestions,
					Warnings:    result.Warnings,
				})
			}
			report.PrintSuggestions(os.Stdout, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&flagLimit, "limit", 0, "How many suggestions to return (default 3)")

	return cmd
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [file]",
		Short: "Show a dependency-ordered schedule with waves and critical path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, _, err := loadBatch(args)
			if err != nil {
				return err
			}
			if len(batch) == 0 {
				return fmt.Errorf("no tasks provided: pass a JSON file, pipe one in, or save tasks with 'add'")
			}

			result := engine.Analyze(batch, scoring.SmartBalance, today())
			tasks := make([]task.Task, len(result.Ranked))
			for i, s := range result.Ranked {
				tasks[i] = s.Task
			}
			deps := graph.Analyze(tasks)
			plan := schedule.Build(tasks, deps)

			if flagJSON {
				return printJSON(planResponse{
					Success:      true,
					TotalHours:   plan.TotalHours,
					CriticalPath: plan.CriticalPath,
					Order:        plan.Order,
					Waves:        plan.Waves,
					Warnings:     result.Warnings,
				})
			}
			report.PrintPlan(os.Stdout, plan, tasks)
			report.PrintWarnings(os.Stdout, result.Warnings)
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var (
		flagTitle      string
		flagDue        string
		flagImportance int
		flagHours      int
		flagDeps       []int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a task to the session store",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(sessionDir())
			if err != nil {
				return err
			}

			rec, err := s.Add(session.Record{
				Title:        flagTitle,
				DueDate:      flagDue,
				Importance:   flagImportance,
				Hours:        flagHours,
				Dependencies: flagDeps,
			})
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(rec)
			}
			fmt.Printf("%s saved task %s %s\n", ui.Green("✓"), ui.BoldMagenta(fmt.Sprintf("#%d", rec.ID)), rec.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagTitle, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&flagDue, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&flagImportance, "importance", task.DefaultImportance, "Importance rating 1-10")
	cmd.Flags().IntVar(&flagHours, "hours", task.MinHours, "Estimated effort in hours")
	cmd.Flags().IntSliceVar(&flagDeps, "deps", nil, "Ids of prerequisite tasks")
	cmd.MarkFlagRequired("title")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks saved in the session store",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(sessionDir())
			if err != nil {
				return err
			}

			records := s.List()
			if flagJSON {
				return printJSON(records)
			}
			if len(records) == 0 {
				fmt.Println("No saved tasks. Add one with 'task-analyzer add --title ...'.")
				return nil
			}
			for _, rec := range records {
				due := "no due date"
				if rec.DueDate != "" {
					due = "due " + rec.DueDate
				}
				fmt.Printf("%s %s  %s\n", ui.BoldMagenta(fmt.Sprintf("#%d", rec.ID)), rec.Title,
					ui.Dim(fmt.Sprintf("(%s, importance %d, %dh)", due, rec.Importance, rec.Hours)))
			}
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete saved tasks and reset the id counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(sessionDir())
			if err != nil {
				return err
			}
			if err := s.Clear(); err != nil {
				return err
			}
			if !flagJSON {
				fmt.Printf("%s session cleared\n", ui.Green("✓"))
			}
			return nil
		},
	}
}

// loadBatch reads the task batch from the file argument ("-" for stdin) or
// falls back to the session store. The second return is a strategy token
// embedded in the input document, if any.
func loadBatch(args []string) ([]task.Raw, string, error) {
	if len(args) == 1 {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return nil, "", fmt.Errorf("read tasks: %w", err)
		}
		return task.DecodeBatch(data)
	}

	s, err := session.Open(sessionDir())
	if err != nil {
		return nil, "", err
	}
	return s.Batch(), "", nil
}

// resolveStrategy picks the strategy: flag first, then the input document,
// then config. Unknown tokens fall back to smart_balance with a notice.
func resolveStrategy(fromFile string) scoring.Strategy {
	token := flagStrategy
	if token == "" {
		token = fromFile
	}
	if token == "" {
		token = viper.GetString("strategy")
	}

	strategy, ok := scoring.Parse(token)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s unknown strategy %q, using %s\n", ui.Yellow("warning:"), token, strategy)
	}
	return strategy
}

func sessionDir() string {
	if flagSessionDir != "" {
		return flagSessionDir
	}
	return viper.GetString("session_dir")
}

func today() task.Date {
	if flagToday != "" {
		if d, ok := task.ParseDate(flagToday); ok {
			return d
		}
		fmt.Fprintf(os.Stderr, "%s unparseable --today value %q, using the current date\n", ui.Yellow("warning:"), flagToday)
	}
	return task.DateOf(time.Now())
}
