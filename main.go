package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func run() error {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	bufWidth := flag.Int("width", 640, "render buffer width in pixels")
	bufHeight := flag.Int("height", 360, "render buffer height in pixels")
	fullscreen := flag.Bool("fullscreen", false, "take over the primary monitor")
	presetName := flag.String("preset", "", "name of the preset to start with")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <audiofile.wav|mp3>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := InitLogger(*logLevel); err != nil {
		return err
	}
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one audio file argument")
	}
	trackPath := flag.Arg(0)

	tape, err := LoadTape(trackPath)
	if err != nil {
		return err
	}
	logger.Info("loaded track", "path", trackPath, "duration", tape.Duration())

	presets, err := LoadPresets()
	if err != nil {
		logger.Warn("loading user presets", "error", err)
	}
	if *presetName != "" {
		for i, p := range presets {
			if p.Name == *presetName {
				presets[0], presets[i] = presets[i], presets[0]
				break
			}
		}
	}

	app := CreateApp(tape, trackPath, presets, *bufWidth, *bufHeight)
	title := fmt.Sprintf("phoenixvis : %s", trackPath)
	return WithGL(title, 960, 540, *fullscreen, app)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v\n", err)
	}
}
