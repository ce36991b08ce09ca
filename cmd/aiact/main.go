package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aiact/internal/bootstrap"
	assessdto "aiact/internal/modules/assess/dto"
	"aiact/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, apiURL string

	root := &cobra.Command{
		Use:           "aiact",
		Short:         "EU AI Act compliance self-assessment client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.aiact)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "compliance service base URL")

	root.AddCommand(newTUICmd(&dataDir, &apiURL))
	root.AddCommand(newCheckCmd(&dataDir, &apiURL))
	root.AddCommand(newLoginCmd(&dataDir, &apiURL))
	root.AddCommand(newRegisterCmd(&dataDir, &apiURL))
	root.AddCommand(newLogoutCmd(&dataDir, &apiURL))
	root.AddCommand(newWhoamiCmd(&dataDir, &apiURL))
	root.AddCommand(newReportsCmd(&dataDir, &apiURL))
	root.AddCommand(newCasesCmd(&dataDir, &apiURL))
	return root
}

func loadApp(dataDir, apiURL string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir, apiURL)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// loadAuthedApp restores the persisted session so that gateway calls carry
// the bearer token.
func loadAuthedApp(ctx context.Context, dataDir, apiURL string) (*bootstrap.App, error) {
	app, err := loadApp(dataDir, apiURL)
	if err != nil {
		return nil, err
	}
	if _, err := app.AuthCLI.Initialize(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func newTUICmd(dataDir, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive assessment UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newCheckCmd(dataDir, apiURL *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <description>",
		Short: "Run a compliance check on a system description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAuthedApp(cmd.Context(), *dataDir, *apiURL)
			if err != nil {
				return err
			}
			out, err := app.AssessCLI.Check(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(out)
			}
			printResult(out.Result)
			fmt.Printf("\nReport: %s\n", out.ReportID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw analysis as JSON")
	return cmd
}

func printResult(res assessdto.ResultOutput) {
	fmt.Printf("%s (score %d/100)\n", strings.ToUpper(res.RiskCategory), res.RiskScore)
	if res.Explanation != "" {
		fmt.Printf("\n%s\n", res.Explanation)
	}
	printList("Risk factors", res.RiskFactors)
	printList("Relevant articles", res.Articles)
	printList("Recommendations", res.Recommendations)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, it := range items {
		fmt.Printf("  - %s\n", it)
	}
}

func newLoginCmd(dataDir, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", session.Identity)
			return nil
		},
	}
}

func newRegisterCmd(dataDir, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Register(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Registered as %s\n", session.Identity)
			return nil
		},
	}
}

func newLogoutCmd(dataDir, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadAuthedApp(cmd.Context(), *dataDir, *apiURL)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(dataDir, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadAuthedApp(cmd.Context(), *dataDir, *apiURL)
			if err != nil {
				return err
			}
			status, err := app.AuthCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			if !status.Authenticated {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("Logged in as %s\n", status.Identity)
			if status.TokenExpiry != nil {
				fmt.Printf("Token expires %s\n", status.TokenExpiry.Format("2006-01-02 15:04 MST"))
			}
			return nil
		},
	}
}

func newReportsCmd(dataDir, apiURL *string) *cobra.Command {
	reports := &cobra.Command{Use: "reports", Short: "Work with past assessment reports"}

	var filter string
	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your past reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadAuthedApp(cmd.Context(), *dataDir, *apiURL)
			if err != nil {
				return err
			}
			records, err := app.HistoryCLI.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(records)
			}
			if len(records) == 0 {
				fmt.Println("No reports")
				return nil
			}
			for _, rec := range records {
				desc := strings.ReplaceAll(rec.Description, "\n", " ")
				if len(desc) > 60 {
					desc = desc[:59] + "…"
				}
				fmt.Printf("%-38s %-12s %3d  %s  %s\n",
					rec.ID, rec.Analysis.RiskCategory, rec.Analysis.RiskScore, rec.CreatedAt, desc)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "", "substring match on description or report id")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")

	var outDir string
	downloadCmd := &cobra.Command{
		Use:   "download <report-id>",
		Short: "Download a report PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAuthedApp(cmd.Context(), *dataDir, *apiURL)
			if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				cfg, err := config.New(*dataDir, *apiURL)
				if err != nil {
					return err
				}
				dir = cfg.DownloadDir()
			}
			out, err := app.ReportCLI.Download(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %s (%d bytes", out.Path, out.Bytes)
			if out.Pages > 0 {
				fmt.Printf(", %d pages", out.Pages)
			}
			fmt.Println(")")
			return nil
		},
	}
	downloadCmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to save into")

	urlCmd := &cobra.Command{
		Use:   "url <report-id>",
		Short: "Print the direct download address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			fmt.Println(app.ReportCLI.URL(args[0]))
			return nil
		},
	}

	reports.AddCommand(listCmd, downloadCmd, urlCmd)
	return reports
}

func newCasesCmd(dataDir, apiURL *string) *cobra.Command {
	cases := &cobra.Command{Use: "cases", Short: "Browse the bundled case studies"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List case studies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			studies, err := app.CatalogCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, cs := range studies {
				fmt.Printf("%-26s %-12s %3d  %s — %s\n", cs.ID, cs.RiskCategory, cs.Score, cs.Company, cs.Title)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one case study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *apiURL)
			if err != nil {
				return err
			}
			cs, err := app.CatalogCLI.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s — %s\n%s (score %d/100)\n\n%s\n\nSubmittable description:\n%s\n",
				cs.Title, cs.Company, cs.RiskCategory, cs.Score, cs.LongDescription, cs.SystemDescription)
			return nil
		},
	}

	cases.AddCommand(listCmd, showCmd)
	return cases
}
