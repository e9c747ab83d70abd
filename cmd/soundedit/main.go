// SPDX-License-Identifier: EPL-2.0

// Command soundedit edits short clips from the command line. It stands in for
// the editor host: commands are given as arguments and the result is
// written back as WAV or MP3.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ik5/soundedit/internal/logging"
)

// version is set via ldflags at build time
var version = "dev"

type Globals struct {
	LogLevel string `help:"Log level: disabled, error, warn, info, debug or trace." default:"warn" env:"SOUNDEDIT_LOG_LEVEL"`
	EnvFile  string `help:"Read default settings from a .env file." type:"path" placeholder:"FILE"`
}

var cli struct {
	Globals

	Version kong.VersionFlag `help:"Show version information."`

	Edit  EditCmd  `cmd:"" help:"Apply edit commands to a clip and save the result."`
	Peaks PeaksCmd `cmd:"" help:"Print RMS levels and draw the waveform."`
	Play  PlayCmd  `cmd:"" help:"Play a clip or part of it."`
	Info  InfoCmd  `cmd:"" help:"Show details about a clip."`
}

// envFileArg finds --env-file before kong runs, so the file can feed the
// env tags of every other flag.
func envFileArg(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func main() {
	if path := envFileArg(os.Args[1:]); path != "" {
		if err := godotenv.Load(path); err != nil {
			printError(fmt.Sprintf("loading %s: %v", path, err))
			os.Exit(1)
		}
	}

	ctx := kong.Parse(&cli,
		kong.Name("soundedit"),
		kong.Description("Trim, cut, paste and add effects to short audio clips."),
		kong.Vars{"version": version},
		kong.Vars(defaults),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	logging.SetLevel(level)

	if err := ctx.Run(&cli.Globals); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
