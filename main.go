package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wavedial/wavedial/internal/api"
	"github.com/wavedial/wavedial/internal/config"
	"github.com/wavedial/wavedial/internal/player"
	"github.com/wavedial/wavedial/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.wavedial.wavedial"
	AppName = "WaveDial"
	AppIcon = "wavedial.png"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("WaveDial v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	// Without an audio output the UI still works, play attempts surface an
	// error dialog instead
	var output player.Output
	if vlcOutput, err := player.NewVLCOutput(); err != nil {
		log.Printf("Failed to initialize audio output: %v", err)
	} else {
		output = vlcOutput
	}

	controller := player.NewController(output)
	apiClient := api.NewClient(settings.GetBackendURL(), settings.GetUserID())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, apiClient, controller)
	rootUI.Start()

	// Release the audio output when the window closes
	myWindow.SetCloseIntercept(func() {
		controller.Release()
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
