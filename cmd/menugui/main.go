// menugui runs MenuScript files against a fyne display.
package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"

	menuscript "github.com/phroun/menuscript"
)

var (
	debugMode bool
	language  string
)

var rootCmd = &cobra.Command{
	Use:   "menugui <script.menu>",
	Short: "Run a MenuScript file in a desktop window",
	Long: `menugui interprets a MenuScript file and renders the windows,
controls and popups it declares. Script lines that fail are logged and
skipped; the application keeps running.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
	// Errors are already reported via dialog/log
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "enable debug logging for all categories")
	rootCmd.Flags().StringVar(&language, "lang", "", "startup display language (en, zh-TW, zh-CN)")
}

func run(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		// A missing script is the one startup failure worth a native
		// dialog: there is no window yet to show anything in.
		dialog.Message("Cannot read script %s: %v", scriptPath, err).Title("MenuScript").Error()
		return fmt.Errorf("reading script: %w", err)
	}

	config := menuscript.DefaultConfig()
	config.Debug = debugMode
	if language != "" {
		config.DefaultLanguage = language
	}

	fyneApp := app.New()
	mainWindow := fyneApp.NewWindow("MenuScript")
	mainWindow.Resize(fyne.NewSize(float32(config.DefaultWindowW), float32(config.DefaultWindowH)))

	renderer := newGuiRenderer(fyneApp, mainWindow)
	interp := menuscript.New(config, renderer, menuscript.NewHTTPClient(config))
	renderer.Bind(interp)

	// The script runs off the UI thread; the renderer marshals every
	// widget mutation back with fyne.Do. API completions queue up and
	// are applied by the pump loop below.
	go func() {
		if errCount := interp.RunScript(string(script)); errCount > 0 {
			interp.Logger().Notice("%d script line(s) failed, continuing", errCount)
		}
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			interp.PumpEvents()
		}
	}()

	mainWindow.ShowAndRun()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
