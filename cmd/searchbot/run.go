package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/logging"
	"github.com/searchbot/searchbot/internal/runner"
	"github.com/searchbot/searchbot/internal/svc"
)

// RunCmd executes a term file in the foreground, without the HTTP server.
func RunCmd() *cobra.Command {
	var (
		file         string
		delay        float64
		browserName  string
		profileNames []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run searches from a term file",
		Long: `Load a JSON array of search terms from a file and run them in the
foreground. For Chrome, --profiles selects profiles by display name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				logging.Disable()
			}
			return runFromFile(file, delay, browserName, profileNames)
		},
	}

	cmd.Flags().StringVar(&file, "file", "terms.json", "JSON file containing the term list")
	cmd.Flags().Float64Var(&delay, "delay", 3, "delay between searches in seconds")
	cmd.Flags().StringVar(&browserName, "browser", "chrome", "browser to use")
	cmd.Flags().StringSliceVar(&profileNames, "profiles", nil, "Chrome profile names")
	return cmd
}

func runFromFile(file string, delay float64, browserName string, profileNames []string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if len(terms) == 0 {
		return fmt.Errorf("no terms found in %s", file)
	}
	fmt.Printf("Loaded %d terms from %s\n", len(terms), file)

	kind, err := browser.ParseKind(browserName)
	if err != nil {
		return err
	}

	svcCtx, err := svc.NewServiceContext(effectiveConfig())
	if err != nil {
		return err
	}

	var profiles []browser.Profile
	if kind.SupportsProfiles() && len(profileNames) > 0 {
		available := svcCtx.Profiles()
		for _, name := range profileNames {
			found := false
			for _, p := range available {
				if p.Name == name {
					profiles = append(profiles, p)
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("Warning: profile %q not found\n", name)
			}
		}
	}

	fmt.Printf("Starting automation with %s...\n", kind)
	runID, err := svcCtx.Runner.Start(runner.Config{
		Terms:        terms,
		DelaySeconds: delay,
		Browser:      kind,
		Profiles:     profiles,
	})
	if err != nil {
		return err
	}

	// Foreground: poll until the run reaches a terminal state, echoing
	// status transitions as they happen.
	lastMsg := ""
	for {
		status := svcCtx.Runner.Status()
		if status.Message != lastMsg {
			fmt.Printf("[%3.0f%%] %s\n", status.Progress, status.Message)
			lastMsg = status.Message
		}
		if !status.Running {
			if status.Outcome != runner.OutcomeCompleted {
				return fmt.Errorf("run %s ended: %s", runID, status.Outcome)
			}
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
}
