package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/config"
	"github.com/ytget/video-saver/internal/download"
	"github.com/ytget/video-saver/internal/fetch"
	"github.com/ytget/video-saver/internal/history"
	"github.com/ytget/video-saver/internal/logger"
	"github.com/ytget/video-saver/internal/notify"
	"github.com/ytget/video-saver/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.video-saver"

	// EnvLogLevel overrides the app log level
	EnvLogLevel = "VIDEOSAVER_LOG_LEVEL"
)

func main() {
	log, err := logger.New(os.Getenv(EnvLogLevel), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		log = zap.NewNop()
	}
	defer logger.Sync(log)

	log.Info("FB Video Saver starting", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.BrandIcon())

	myWindow := myApp.NewWindow("FB Video Saver")
	myWindow.Resize(ui.NewMobileUI().WindowSize())

	settings := config.NewSettings(myApp)

	store, storeErr := history.Open(
		history.NewPreferencesBackend(myApp.Preferences()),
		history.WithCapacity(settings.GetHistoryLimit()),
		history.WithLogger(log.Named("history")),
	)
	if storeErr != nil {
		log.Error("history storage unavailable", zap.Error(storeErr))
	}

	fetcher := fetch.NewSimulator(
		fetch.WithLatency(settings.GetFetchLatency()),
		fetch.WithLogger(log.Named("fetch")),
	)
	simulator := download.NewSimulator(download.WithTickInterval(settings.GetProgressTick()))
	dispatcher := notify.NewDispatcher()
	downloadSvc := download.NewService(simulator, store, dispatcher, log.Named("download"))

	rootUI := ui.NewRootUI(myWindow, myApp, settings, ui.Services{
		Fetcher:     fetcher,
		Downloads:   downloadSvc,
		History:     store,
		Completions: dispatcher,
		Logger:      log.Named("ui"),
	})
	if errors.Is(storeErr, history.ErrStorageUnavailable) {
		rootUI.ReportStorageUnavailable()
	}
	myWindow.SetOnClosed(rootUI.Close)

	rootUI.Show()
	myWindow.ShowAndRun()
}
