package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// cliOptions collects persistent flags. Empty values leave the config untouched.
type cliOptions struct {
	ConfigPath  string
	EnvFile     string
	Addr        string
	Backend     string
	Model       string
	LogLevel    string
	LogFile     string
	CORSOrigins string
	Swagger     bool
}

func buildRootCmd() *cobra.Command { return buildRootCmdWith(&cliOptions{}) }

// buildRootCmdWith constructs the command tree. Running askd without a
// subcommand starts the server.
func buildRootCmdWith(o *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "askd",
		Short:         "HTTP front end for a hosted generative model with smoke-test evaluations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context(), o) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.ConfigPath, "config", "", "Config file (.yaml|.yml|.json|.toml)")
	pf.StringVar(&o.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	pf.StringVar(&o.Backend, "backend", "", "Model backend: gemini|openai (defaults ASKD_BACKEND or gemini)")
	pf.StringVar(&o.Model, "model", "", "Model id or alias fast|capable (defaults ASKD_MODEL or fast)")
	pf.StringVar(&o.LogLevel, "log-level", "", "Log level: debug|info|warn|error (defaults ASKD_LOG_LEVEL or info)")
	pf.StringVar(&o.LogFile, "log-file", "", "Append log lines to this file (defaults ASKD_LOG_FILE or app_log)")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP server",
		Example: "  askd serve --addr :8080\n  askd serve --config askd.yaml --cors-origins https://a.example,https://b.example",
		RunE:    func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context(), o) },
	}
	for _, c := range []*cobra.Command{root, serveCmd} {
		c.Flags().StringVar(&o.Addr, "addr", "", "HTTP listen address (defaults ASKD_ADDR or :8080)")
		c.Flags().StringVar(&o.CORSOrigins, "cors-origins", "", "Comma-separated origins; enables CORS when set")
		c.Flags().BoolVar(&o.Swagger, "swagger", false, "Serve API docs under /swagger/")
	}

	queryCmd := &cobra.Command{
		Use:     "query <text>",
		Short:   "Send one query to the model and print the JSON response",
		Example: "  askd query \"What is the capital of France?\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), o, cmd.OutOrStdout(), args)
		},
	}

	evaluateCmd := &cobra.Command{
		Use:       "evaluate [query|summary]",
		Short:     "Run an evaluation suite against the live model and print the JSON result",
		Example:   "  askd evaluate query\n  askd evaluate summary",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"query", "summary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.Context(), o, cmd.OutOrStdout(), args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run:   func(cmd *cobra.Command, args []string) { fmt.Fprintln(cmd.OutOrStdout(), version) },
	}

	root.AddCommand(serveCmd, queryCmd, evaluateCmd, versionCmd)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(completionCmd)
	return root
}
