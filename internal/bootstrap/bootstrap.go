package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	chartinadapter "healthlog/internal/modules/chart/adapter/in"
	chartoutadapter "healthlog/internal/modules/chart/adapter/out"
	chartout "healthlog/internal/modules/chart/port/out"
	chartservice "healthlog/internal/modules/chart/service"
	chartusecase "healthlog/internal/modules/chart/usecase"
	proxyinadapter "healthlog/internal/modules/proxy/adapter/in"
	proxyoutadapter "healthlog/internal/modules/proxy/adapter/out"
	proxyservice "healthlog/internal/modules/proxy/service"
	recordinadapter "healthlog/internal/modules/record/adapter/in"
	recordoutadapter "healthlog/internal/modules/record/adapter/out"
	recorddomain "healthlog/internal/modules/record/domain"
	recordservice "healthlog/internal/modules/record/service"
	recordusecase "healthlog/internal/modules/record/usecase"
	sheetinadapter "healthlog/internal/modules/sheet/adapter/in"
	sheetoutadapter "healthlog/internal/modules/sheet/adapter/out"
	sheetout "healthlog/internal/modules/sheet/port/out"
	sheetservice "healthlog/internal/modules/sheet/service"
	"healthlog/internal/platform/clock"
	"healthlog/internal/platform/config"
	"healthlog/internal/platform/httpserver"
	"healthlog/internal/platform/id"
	"healthlog/internal/platform/logger"
	"healthlog/internal/platform/schedule"
	uiapp "healthlog/internal/ui/app"
	"healthlog/internal/ui/state"
)

const (
	terminalMaxPoints = 60
	clientTimeout     = 30 * time.Second
)

type App struct {
	Config     config.Config
	Log        *zap.Logger
	Clock      clock.Clock
	IDs        id.Generator
	RecordCLI  recordinadapter.CLIHandler
	ChartCLI   chartinadapter.CLIHandler
	ChartJSCLI chartinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	clk := clock.SystemClock{}
	client := &http.Client{Timeout: clientTimeout}

	recordUC := recordusecase.NewInteractor(recordservice.NewRecordService(
		clk,
		recordoutadapter.NewHTTPGateway(cfg.ProxyURL, client),
		recordoutadapter.NewXLSXExporter(),
	))

	return &App{
		Config:     cfg,
		Log:        log,
		Clock:      clk,
		IDs:        id.UUID{},
		RecordCLI:  recordinadapter.NewCLIHandler(recordUC),
		ChartCLI:   newChartCLI(chartoutadapter.NewTerminalRenderer(terminalMaxPoints)),
		ChartJSCLI: newChartCLI(chartoutadapter.NewChartJSRenderer()),
	}, nil
}

func newChartCLI(renderer chartout.Renderer) chartinadapter.CLIHandler {
	return chartinadapter.NewCLIHandler(chartusecase.NewInteractor(chartservice.NewHost(renderer)))
}

// ProxyEngine mounts the forwarding endpoint. The script URL is looked up on
// every request.
func (a *App) ProxyEngine() *gin.Engine {
	r := httpserver.NewEngine(a.Log, a.IDs)
	uc := proxyservice.NewProxyService(proxyoutadapter.NewHTTPScriptClient(&http.Client{}), config.ScriptURL)
	proxyinadapter.NewGinHandler(uc).Register(r, a.Config.ProxyPath)
	return r
}

// SheetEngine serves the local spreadsheet stand-in on "/". The returned store
// must be closed by the caller.
func (a *App) SheetEngine(backend, path string) (*gin.Engine, sheetout.RowStore, error) {
	store, err := a.openRowStore(backend, path)
	if err != nil {
		return nil, nil, err
	}
	r := httpserver.NewEngine(a.Log, a.IDs)
	sheetinadapter.NewGinHandler(sheetservice.NewSheetService(store)).Register(r, "/")
	return r, store, nil
}

func (a *App) openRowStore(backend, path string) (sheetout.RowStore, error) {
	switch backend {
	case "xlsx":
		return sheetoutadapter.NewXLSXRowStore(path)
	case "sqlite":
		store, err := sheetoutadapter.NewSQLiteRowStore(path, a.Clock, a.IDs)
		if err != nil {
			return nil, fmt.Errorf("open sqlite sheet: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported sheet backend %q", backend)
	}
}

// SnapshotJob exports the full history to a dated workbook under dir. It reads
// the store directly through the script URL so it works without a client.
func (a *App) SnapshotJob(dir string) schedule.Job {
	return func(ctx context.Context) error {
		url := config.ScriptURL()
		if url == "" {
			return fmt.Errorf("%s is not set", config.ScriptURLEnv)
		}
		uc := recordusecase.NewInteractor(recordservice.NewRecordService(
			a.Clock,
			recordoutadapter.NewHTTPGateway(url, &http.Client{Timeout: clientTimeout}),
			recordoutadapter.NewXLSXExporter(),
		))
		name := "healthlog-" + a.Clock.Now().Format("2006-01-02T150405") + ".xlsx"
		out, err := recordinadapter.NewCLIHandler(uc).Export(ctx, filepath.Join(dir, name), recorddomain.WindowAll.String())
		if err != nil {
			return err
		}
		a.Log.Info("snapshot written", zap.String("path", out.Path), zap.Int("records", out.Count))
		return nil
	}
}

func RunTUI(app *App) error {
	window, err := recorddomain.ParsePresetWindow(app.Config.Chart.Window)
	if err != nil {
		return err
	}
	initial := state.New(recorddomain.DayOf(app.Clock.Now()), window, app.Config.Chart.Variant)
	model := uiapp.NewModel(app.RecordCLI, app.ChartCLI, app.Clock, initial)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Serve runs handler on addr until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string, handler http.Handler) error {
	return httpserver.Run(ctx, addr, handler, app.Log)
}
