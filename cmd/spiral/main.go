package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/spiral-carousel/audio"
	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/config"
	"github.com/lixenwraith/spiral-carousel/gesture"
)

var (
	configFlag string
	debugFlag  bool

	logFile *os.File

	rootCmd = &cobra.Command{
		Use:           "spiral",
		Short:         "Spiral carousel layout engine and terminal viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debugFlag)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write logs to "+logDir+"/"+logFileName)

	rootCmd.AddCommand(newViewCmd(), newLayoutCmd(), newPathCmd(), newDefaultsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spiral: %v\n", err)
		os.Exit(1)
	}
}

// loadEngine reads the config file and builds the layout engine from it
func loadEngine() (config.File, *carousel.Carousel, error) {
	f, err := config.Load(configFlag)
	if err != nil {
		return f, nil, err
	}
	car, err := carousel.New(f.Carousel())
	if err != nil {
		return f, nil, fmt.Errorf("create carousel: %w", err)
	}
	return f, car, nil
}

func newViewCmd() *cobra.Command {
	var noSound bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Interactive terminal viewer (drag, wheel to zoom, q to quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, car, err := loadEngine()
			if err != nil {
				return err
			}
			settings, err := f.Settings()
			if err != nil {
				return err
			}
			if noSound {
				f.View.Sound = false
			}
			return runViewer(car, settings, f.View)
		},
	}
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "Disable audio feedback")
	return cmd
}

func runViewer(car *carousel.Carousel, settings gesture.Settings, view config.ViewSection) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPIRAL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	var sound *audio.SoundManager
	if view.Sound {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
		defer sound.Cleanup()
	}

	NewViewer(screen, car, settings, view, sound).Run()
	return nil
}
