// pong is a two-player Pong table with particle bursts and a ball trail.
// W/S move the left paddle, Up/Down the right one. T toggles the trail,
// Space bursts particles from the ball, R restarts the match, Escape quits.
//
// Tunables can be overridden from a dotenv file (-env) or PONG_* environment
// variables. A JSON script (-script) replays a fixed sequence of intents with
// a fixed seed and frame time instead of reading the keyboard.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/game"
)

const windowTitle = "Pong"

func main() {
	envFile := flag.String("env", ".env", "dotenv file with PONG_* overrides")
	scriptFile := flag.String("script", "", "JSON intent script to replay")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "log simulation events to stderr")
	mute := flag.Bool("mute", false, "disable sound")
	showFPS := flag.Bool("fps", true, "show the FPS counter")
	shots := flag.String("screenshots", "screenshots", "directory for F12 screenshots")
	flag.Parse()

	cfg := pong.DefaultConfig()
	if err := cfg.LoadEnv(*envFile); err != nil {
		log.Fatal(err)
	}

	run := game.RunConfig{
		Title:         windowTitle,
		ShowFPS:       *showFPS,
		Debug:         *debug,
		Mute:          *mute,
		ScreenshotDir: *shots,
		Seed:          *seed,
	}
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			log.Fatal(err)
		}
		sc, err := pong.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		run.Script = sc
	}

	if err := game.Run(cfg, run); err != nil {
		log.Fatal(err)
	}
}
