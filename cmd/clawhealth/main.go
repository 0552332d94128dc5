// Command clawhealth checks the health of an OpenClaw deployment and
// reports it as JSON, plain text, or an HTML dashboard.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/rembot/clawhealth/internal/config"
	"github.com/rembot/clawhealth/internal/health"
	"github.com/rembot/clawhealth/internal/probe"
	"github.com/rembot/clawhealth/internal/report"
	"github.com/rembot/clawhealth/internal/web"
)

const description = "clawhealth - health checks and reports for an OpenClaw deployment"

const usageText = `Available commands:
  clawhealth --health            # Run full health check
  clawhealth --status            # Check OpenClaw status
  clawhealth --git               # Check Git servers
  clawhealth --health --report   # Generate text report
  clawhealth --health --html     # Generate HTML dashboard
  clawhealth --health --json     # Force JSON output
  clawhealth --serve :8080       # Serve the HTML dashboard over HTTP`

type cliFlags struct {
	health bool
	status bool
	git    bool
	report bool
	html   bool
	json   bool
	serve  string
	config string
}

var flags cliFlags

var rootCmd = &cobra.Command{
	Use:           "clawhealth",
	Short:         "Health checks and reports for an OpenClaw deployment",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           run,
}

func init() {
	rootCmd.Flags().BoolVar(&flags.health, "health", false, "Run full health check")
	rootCmd.Flags().BoolVar(&flags.status, "status", false, "Check OpenClaw status")
	rootCmd.Flags().BoolVar(&flags.git, "git", false, "Check Git servers")
	rootCmd.Flags().BoolVar(&flags.report, "report", false, "Generate text health report")
	rootCmd.Flags().BoolVar(&flags.html, "html", false, "Generate HTML health report")
	rootCmd.Flags().BoolVar(&flags.json, "json", false, "Force JSON output (default)")
	rootCmd.Flags().StringVar(&flags.serve, "serve", "", "Serve the dashboard on the given address")
	rootCmd.Flags().StringVar(&flags.config, "config", "", "Config file (YAML)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cmd *cobra.Command, args []string) {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()
	checker := health.New(cfg)
	out := cmd.OutOrStdout()

	switch {
	case flags.serve != "":
		srv := web.New(checker)
		log.Fatal(srv.Start(flags.serve))

	case flags.health:
		checker.Progress = out
		snap, err := checker.Run(ctx)
		if err != nil {
			log.Fatalf("%v", err)
		}
		printSnapshot(out, snap)

	case flags.status:
		printJSON(out, checker.Client.Status(ctx))

	case flags.git:
		printJSON(out, probe.Check(checker.Targets, probe.DefaultTimeout))

	default:
		fmt.Fprintln(out, description)
		fmt.Fprintln(out)
		fmt.Fprintln(out, usageText)
	}
}

// printSnapshot applies the selected renderer; --html wins over
// --report, and without either the snapshot is dumped as JSON.
func printSnapshot(w io.Writer, snap *health.Snapshot) {
	switch {
	case flags.html:
		out, err := report.HTML(snap)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		fmt.Fprintln(w, out)
	case flags.report:
		fmt.Fprintln(w, report.Text(snap))
	default:
		printJSON(w, snap)
	}
}

func printJSON(w io.Writer, v any) {
	out, err := report.JSON(v)
	if err != nil {
		log.Fatalf("render json: %v", err)
	}
	fmt.Fprintln(w, out)
}
