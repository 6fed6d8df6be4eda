package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/grue-labs/lantern/agent"
	"github.com/grue-labs/lantern/config"
	"github.com/grue-labs/lantern/eval"
	"github.com/grue-labs/lantern/game"
	"github.com/grue-labs/lantern/log"
	"github.com/grue-labs/lantern/runner"
	"github.com/grue-labs/lantern/submission"
	"github.com/grue-labs/lantern/ui"
)

var (
	version = "1.0.0"

	gameFlag     string
	agentFlag    string
	maxMovesFlag int
	seedFlag     int64
	tailFlag     bool
	printFlag    bool
	externalFlag bool
	copyFlag     bool
	debugFlag    bool
	episodesFlag int
	gamesFlag    []string

	rootCmd = &cobra.Command{
		Use:   "lantern",
		Short: "Lantern - run and evaluate agents on text adventure games",
		Long: `Lantern runs AI agents against built-in text adventure games, with a move
cap and deterministic seeded evaluation. Agents can be built-in policies,
play through the MCP tool surface, or be external submissions.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugFlag {
				os.Setenv("DEBUG", "true")
			}
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run an agent against a game, writing output to the results file",
		Long: `Run an agent against a game. By default output is redirected to
results/<game>_<submission>.txt. With --tail, stderr is merged into stdout
and output is truncated to the first 100 lines. With --print, everything
goes to the console.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()
			return runRun(cmd.Context())
		},
	}

	localCmd = &cobra.Command{
		Use:   "local",
		Short: "Run a built-in agent directly, bypassing the external runner",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			opts := runOptions(cfg)
			opts.Local = true

			result, dest, err := runner.New().RunBuiltin(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Println(result.Summary())
			fmt.Println("wrote transcript to " + dest)
			return nil
		},
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			name := gameFlag
			if name == "" {
				name = cfg.DefaultGame
			}
			return ui.RunPlay(name)
		},
	}

	evalCmd = &cobra.Command{
		Use:   "eval",
		Short: "Run a deterministic seeded evaluation of an agent",
		Long: `Evaluate an agent across games with seeded episodes. The same agent,
games, episode count, and seed always produce the same scores. Writes
results/eval_<agent>.json and prints a summary table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()
			return runEval(cmd.Context())
		},
	}

	gamesCmd = &cobra.Command{
		Use:   "games",
		Short: "List the built-in games",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range game.List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	submissionCmd = &cobra.Command{
		Use:   "submission",
		Short: "Manage external submissions",
	}

	submissionFetchCmd = &cobra.Command{
		Use:   "fetch <git-url>",
		Short: "Clone a submission repository and validate its manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			subsDir, err := config.GetSubmissionsDir()
			if err != nil {
				return err
			}
			m, err := submission.Fetch(args[0], subsDir)
			if err != nil {
				return err
			}
			fmt.Printf("fetched submission %q into %s\n", m.Name, m.Dir)
			return nil
		},
	}

	submissionListCmd = &cobra.Command{
		Use:   "list",
		Short: "List fetched submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			subsDir, err := config.GetSubmissionsDir()
			if err != nil {
				return err
			}
			names, err := submission.List(subsDir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("no submissions fetched")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lantern version %s\n", version)
		},
	}
)

func runOptions(cfg *config.Config) runner.Options {
	opts := runner.Options{
		Game:         gameFlag,
		Submission:   agentFlag,
		MaxMoves:     maxMovesFlag,
		Seed:         seedFlag,
		ResultsDir:   cfg.ResultsDir,
		HistoryLimit: cfg.HistoryLimit,
	}
	if opts.Game == "" {
		opts.Game = cfg.DefaultGame
	}
	if opts.Submission == "" {
		opts.Submission = cfg.DefaultSubmission
	}
	if opts.MaxMoves <= 0 {
		opts.MaxMoves = cfg.MaxMoves
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	if tailFlag {
		opts.Mode = runner.ModeHead
	} else if printFlag {
		opts.Mode = runner.ModeConsole
	}
	return opts
}

// isBuiltinAgent reports whether the submission reference names a built-in
// policy rather than an external submission.
func isBuiltinAgent(name string) bool {
	switch strings.TrimPrefix(name, "mcp-") {
	case "", "walkthrough", "random":
		return true
	}
	return false
}

func runRun(ctx context.Context) error {
	cfg := config.LoadConfig()
	opts := runOptions(cfg)
	r := runner.New()

	var summary, dest string
	exitCode := 0
	switch {
	case externalFlag:
		inv := runner.Invocation{
			Runner:          cfg.RunnerCommand,
			MaxMoves:        opts.MaxMoves,
			Game:            opts.Game,
			Submission:      opts.Submission,
			Verbose:         true,
			DebugVerbose:    true,
			PrintFullOutput: true,
		}
		result, code, d, err := r.RunExternal(ctx, inv, opts)
		if err != nil {
			return err
		}
		exitCode = code
		summary, dest = result.Summary(), d

	case isBuiltinAgent(opts.Submission):
		result, d, err := r.RunBuiltin(ctx, opts)
		if err != nil {
			return err
		}
		summary, dest = result.Summary(), d

	default:
		subsDir, err := config.GetSubmissionsDir()
		if err != nil {
			return err
		}
		m, err := submission.Resolve(opts.Submission, subsDir)
		if err != nil {
			return err
		}
		opts.Submission = m.Name
		inv := runner.Invocation{
			Runner:     strings.TrimSpace(m.Command + " " + strings.Join(m.Args, " ")),
			MaxMoves:   opts.MaxMoves,
			Game:       opts.Game,
			Submission: m.Name,
			Verbose:    true,
		}
		opts.Env = append(m.Env,
			"GAME="+opts.Game,
			fmt.Sprintf("MAX_MOVES=%d", opts.MaxMoves),
			fmt.Sprintf("LANTERN_SEED=%d", agentSeed(opts)),
		)
		result, code, d, err := r.RunExternal(ctx, inv, opts)
		if err != nil {
			return err
		}
		exitCode = code
		summary, dest = result.Summary(), d
	}

	if opts.Mode == runner.ModeFile {
		fmt.Println(summary)
		fmt.Println("wrote output to " + dest)
	}
	if log.IsDebugEnabled() {
		fmt.Println("debug log at " + log.FileName())
	}
	if copyFlag {
		if err := clipboard.WriteAll(summary); err != nil {
			log.WarningLog.Printf("failed to copy summary to clipboard: %v", err)
		} else {
			fmt.Println("summary copied to clipboard")
		}
	}
	if exitCode != 0 {
		// Mirror the external runner's exit code after reporting.
		log.Close()
		os.Exit(exitCode)
	}
	return nil
}

func agentSeed(opts runner.Options) int64 {
	return agent.DeriveSeed(opts.Game, opts.Seed, 0)
}

func runEval(ctx context.Context) error {
	cfg := config.LoadConfig()

	spec := eval.Spec{
		Agent:    agentFlag,
		Games:    gamesFlag,
		Episodes: episodesFlag,
		Seed:     seedFlag,
		MaxMoves: maxMovesFlag,
	}
	if spec.Agent == "" {
		spec.Agent = cfg.DefaultSubmission
	}
	if spec.MaxMoves <= 0 {
		spec.MaxMoves = cfg.MaxMoves
	}
	if spec.Seed == 0 {
		spec.Seed = cfg.Seed
	}

	report, err := eval.Run(ctx, spec)
	if err != nil {
		return err
	}

	fmt.Println(report.Render())
	path, err := report.WriteJSON(cfg.ResultsDir)
	if err != nil {
		return err
	}
	fmt.Println("wrote report to " + path)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging (same as DEBUG=true)")

	runCmd.Flags().StringVarP(&gameFlag, "game", "g", "", "game to run (default from config)")
	runCmd.Flags().StringVar(&agentFlag, "agent", "", "agent or submission to run (default from config)")
	runCmd.Flags().IntVarP(&maxMovesFlag, "max-moves", "n", 0, "move cap for the run (default from config)")
	runCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for seeded agents (0 derives from the game name)")
	runCmd.Flags().BoolVar(&tailFlag, "tail", false, "merge stderr into stdout and keep only the first 100 lines")
	runCmd.Flags().BoolVar(&printFlag, "print", false, "print output to the console instead of the results file")
	runCmd.Flags().BoolVar(&externalFlag, "external", false, "invoke the configured external runner command")
	runCmd.Flags().BoolVar(&copyFlag, "copy", false, "copy the result summary to the clipboard")

	localCmd.Flags().StringVarP(&gameFlag, "game", "g", "", "game to run")
	localCmd.Flags().StringVar(&agentFlag, "agent", "", "built-in agent to run")
	localCmd.Flags().IntVarP(&maxMovesFlag, "max-moves", "n", 0, "move cap for the run")
	localCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for seeded agents")

	playCmd.Flags().StringVarP(&gameFlag, "game", "g", "", "game to play")

	evalCmd.Flags().StringVar(&agentFlag, "agent", "", "agent to evaluate")
	evalCmd.Flags().StringSliceVar(&gamesFlag, "games", nil, "games to evaluate (default: all)")
	evalCmd.Flags().IntVar(&episodesFlag, "episodes", 3, "episodes per game")
	evalCmd.Flags().Int64Var(&seedFlag, "seed", 0, "base seed (0 derives per-game seeds)")
	evalCmd.Flags().IntVarP(&maxMovesFlag, "max-moves", "n", 0, "move cap per episode")

	submissionCmd.AddCommand(submissionFetchCmd)
	submissionCmd.AddCommand(submissionListCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(submissionCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
