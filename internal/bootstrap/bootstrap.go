package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	assessinadapter "aiact/internal/modules/assess/adapter/in"
	assessoutadapter "aiact/internal/modules/assess/adapter/out"
	assessservice "aiact/internal/modules/assess/service"
	assessusecase "aiact/internal/modules/assess/usecase"
	authinadapter "aiact/internal/modules/auth/adapter/in"
	authoutadapter "aiact/internal/modules/auth/adapter/out"
	authservice "aiact/internal/modules/auth/service"
	authusecase "aiact/internal/modules/auth/usecase"
	cataloginadapter "aiact/internal/modules/catalog/adapter/in"
	catalogoutadapter "aiact/internal/modules/catalog/adapter/out"
	catalogservice "aiact/internal/modules/catalog/service"
	catalogusecase "aiact/internal/modules/catalog/usecase"
	historyinadapter "aiact/internal/modules/history/adapter/in"
	historyoutadapter "aiact/internal/modules/history/adapter/out"
	historyservice "aiact/internal/modules/history/service"
	historyusecase "aiact/internal/modules/history/usecase"
	reportinadapter "aiact/internal/modules/report/adapter/in"
	reportoutadapter "aiact/internal/modules/report/adapter/out"
	reportservice "aiact/internal/modules/report/service"
	reportusecase "aiact/internal/modules/report/usecase"

	"aiact/internal/gateway"
	"aiact/internal/platform/clock"
	"aiact/internal/platform/config"
	"aiact/internal/platform/id"
	uiapp "aiact/internal/ui/app"
)

type App struct {
	AssessCLI  assessinadapter.CLIHandler
	AuthCLI    authinadapter.CLIHandler
	HistoryCLI historyinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	CatalogCLI cataloginadapter.CLIHandler

	ports       uiapp.Ports
	downloadDir string
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	sessionStore, err := authoutadapter.NewSQLiteSessionStore(cfg.DBPath(), clk)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	// The auth service doubles as the gateway's token source, so it has to
	// exist before the client.
	authSvc := authservice.NewAuthService()
	client := gateway.New(cfg, authSvc, ids)
	authUC := authusecase.NewInteractor(
		authSvc,
		authoutadapter.NewGatewayAuthenticator(client),
		sessionStore,
		authoutadapter.NewJWTInspector(),
	)

	assessUC := assessusecase.NewInteractor(
		assessservice.NewAssessService(assessoutadapter.NewGatewayChecker(client)),
	)

	historyUC := historyusecase.NewInteractor(
		historyservice.NewHistoryService(historyoutadapter.NewGatewayReports(client)),
	)

	downloader := reportoutadapter.NewGatewayDownloader(client)
	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(
			downloader,
			reportoutadapter.NewFileSink(),
			reportoutadapter.NewPDFInspector(),
		),
		downloader,
	)

	catalogUC := catalogusecase.NewInteractor(
		catalogservice.NewCatalogService(catalogoutadapter.NewEmbeddedCatalog()),
	)

	return &App{
		AssessCLI:  assessinadapter.NewCLIHandler(assessUC),
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		HistoryCLI: historyinadapter.NewCLIHandler(historyUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),

		ports: uiapp.Ports{
			Assess:  assessUC,
			Auth:    authUC,
			History: historyUC,
			Report:  reportUC,
			Catalog: catalogUC,
		},
		downloadDir: cfg.DownloadDir(),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.New(app.ports, app.downloadDir)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
