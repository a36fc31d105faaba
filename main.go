package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/item-list/internal/config"
	"github.com/ytget/item-list/internal/fetch"
	"github.com/ytget/item-list/internal/logging"
	"github.com/ytget/item-list/internal/state"
	"github.com/ytget/item-list/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.item-list"
	AppIcon = "item-list.png"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(env.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("item list starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewItemListTheme())
	if icon, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, env)

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	fetcher := fetch.NewService(nil, logger)
	fetcher.SetTimeout(env.FetchTimeout)

	store := state.NewStore(fetcher, fyne.Do, logger)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, store, settings, localization, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	root.Start(ctx)

	// Show and run
	myWindow.ShowAndRun()
}
