package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomo",
		Usage: `
		pomo is a Pomodoro timer for the command-line. It counts down in step
		with the wall clock and announces the end of each session with a
		desktop notification and a sound.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the sounds in the catalog",
				Action: soundsAction,
			},
			{
				Name:      "play",
				Usage:     "Play a random catalog sound for a mode",
				ArgsUsage: "[focus|shortBreak|longBreak]",
				Flags:     []cli.Flag{eventFlag, waitFlag},
				Action:    playAction,
			},
			{
				Name:      "notify",
				Usage:     "Show a desktop notification",
				ArgsUsage: "[title] [body]",
				Action:    notifyAction,
			},
			{
				Name:      "permission",
				Usage:     "Show or change the notification permission",
				ArgsUsage: "[status|allow|deny|reset]",
				Action:    permissionAction,
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			shortBreakFlag,
			longBreakFlag,
			volumeFlag,
			catalogFlag,
			phrasesFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
