package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/plugin"
	"github.com/ytget/lsky-paste/internal/ui"
	"github.com/ytget/lsky-paste/internal/upload"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.lsky-paste"
	AppName = "Lsky Paste"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Initialize services
	prefs := config.NewPreferences(myApp)
	uploadSvc := upload.NewService(upload.NewClient())

	// Create the host window, then load the plugin into it
	root := ui.NewRootUI(myWindow, myApp, uploadSvc, prefs)
	root.AttachPlugin(plugin.New(uploadSvc, plugin.WithFileSource(root)))

	// Show and run
	myWindow.ShowAndRun()
}
