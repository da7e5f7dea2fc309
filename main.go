// Slide Menu is a demo app for a row which reveals actions when swiped to the left.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2/app"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ErikKalkoken/slidemenu/internal/menuconfig"
)

const appID = "io.github.erikkalkoken.slidemenu"

//go:embed menu.yaml
var defaultMenu []byte

// defined flags
var (
	levelFlag     logLevelFlag
	logFileFlag   = flag.Bool("logfile", false, "Write logs to a file instead of the console")
	menuFlag      = flag.String("menu", "", "Load the menu definition from this YAML file")
	showDirsFlag  = flag.Bool("show-dirs", false, "Show directories where user data is stored")
	uninstallFlag = flag.Bool("uninstall", false, "Uninstalls the app by deleting all user files")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	fyneApp := app.NewWithID(appID)
	ad := newAppDirs(fyneApp)
	if *showDirsFlag {
		fmt.Printf("Logs: %s\n", ad.log)
		fmt.Printf("Settings: %s\n", ad.settings)
		return
	}
	if *uninstallFlag {
		fmt.Print("Are you sure you want to uninstall this app and delete all user files (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			if err := ad.deleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("App uninstalled")
		} else {
			fmt.Println("Aborted")
		}
		return
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	m, err := loadMenu(*menuFlag)
	if err != nil {
		log.Fatalf("Failed to load menu definition: %s", err)
	}
	u, err := newDemoUI(fyneApp, m)
	if err != nil {
		log.Fatalf("Failed to create slide menu: %s", err)
	}
	u.showAndRun()
}

// loadMenu loads the menu definition from a file or the embedded default when name is empty.
func loadMenu(name string) (menuconfig.Menu, error) {
	if name == "" {
		return menuconfig.Load(bytes.NewReader(defaultMenu))
	}
	return menuconfig.LoadFile(name)
}
