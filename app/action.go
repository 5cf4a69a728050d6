package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/audio"
	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logging"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/static"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies command-line overrides. The
// user is walked through the main settings on first run if prompt is set.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// loadTables reads the sound catalog and phrase table named in the config,
// falling back to the built-in copies when they cannot be read.
func loadTables(cfg *config.Config) (catalog.Catalog, catalog.Phrases) {
	if err := static.CopyToDir(pathutil.DataDir()); err != nil {
		slog.Warn("unable to copy default files", slog.Any("error", err))
	}

	catalogPath := firstNonEmptyString(cfg.Sound.Catalog, pathutil.CatalogFilePath())

	c, err := catalog.Load(catalogPath)
	if err != nil {
		slog.Warn("using built-in sound catalog",
			slog.String("path", catalogPath),
			slog.Any("error", err),
		)

		b, _ := static.ReadFile(static.CatalogFile)
		c, _ = catalog.Parse(b)
	}

	phrasePath := firstNonEmptyString(cfg.Notifications.Phrases, pathutil.PhraseFilePath())

	p, err := catalog.LoadPhrases(phrasePath)
	if err != nil {
		slog.Warn("using built-in phrases",
			slog.String("path", phrasePath),
			slog.Any("error", err),
		)

		b, _ := static.ReadFile(static.PhraseFile)
		p, _ = catalog.ParsePhrases(b)
	}

	return c, p
}

// parseMode validates a mode name given on the command line.
func parseMode(s string) (session.Mode, error) {
	if s == "" {
		return session.Focus, nil
	}

	for _, mode := range session.Modes {
		if string(mode) == s {
			return mode, nil
		}
	}

	return "", errUnknownMode.Fmt(s)
}

func parseEvent(s string) (session.EventType, error) {
	switch session.EventType(s) {
	case session.Start, session.End:
		return session.EventType(s), nil
	}

	return "", errUnknownEvent.Fmt(s)
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	c, p := loadTables(cfg)

	speaker := audio.NewSpeaker(slog.Default())
	defer speaker.Close()

	var platform notify.Platform
	if cfg.Notifications.Enabled {
		platform = notify.NewDesktop(db, notify.WithLogger(slog.Default()))
	}

	kit := NewKit(KitOptions{
		Backend:  speaker,
		Platform: platform,
		Catalog:  c,
		Phrases:  p,
		Volume:   cfg,
	})

	cfg.Watch()

	slog.Info("starting timer", slog.String("config", cfg.String()))

	return timer.Run(timer.New(kit, cfg))
}

// soundsAction prints the sound catalog.
func soundsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	c, _ := loadTables(cfg)

	printSoundsTable(ctx.App.Writer, c)

	return nil
}

// playAction plays a sound for a mode, the same way a completed session
// would.
func playAction(ctx *cli.Context) error {
	mode, err := parseMode(ctx.Args().First())
	if err != nil {
		return err
	}

	event, err := parseEvent(ctx.String("event"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	c, _ := loadTables(cfg)

	if len(c.Candidates(mode, event)) == 0 {
		pterm.Info.Printfln("no %s sound for %s", event, mode)
		return nil
	}

	speaker := audio.NewSpeaker(slog.Default())
	defer speaker.Close()

	kit := NewKit(KitOptions{
		Backend: speaker,
		Catalog: c,
		Volume:  cfg,
	})

	kit.UnlockAudio()
	kit.PlaySoundForMode(mode, event)

	time.Sleep(ctx.Duration("wait"))

	return nil
}

// notifyAction shows a notification. The title and body default to the
// text used when a session in the given mode ends.
func notifyAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	_, p := loadTables(cfg)

	kit := NewKit(KitOptions{
		Platform: notify.NewDesktop(db, notify.WithLogger(slog.Default())),
		Phrases:  p,
	})

	title := firstNonEmptyString(ctx.Args().Get(0), p.Title(session.Focus))
	body := firstNonEmptyString(ctx.Args().Get(1), p.Body(session.Focus))

	kit.ShowNotification(title, body)

	return nil
}

// permissionAction reports or changes the stored notification permission.
func permissionAction(ctx *cli.Context) error {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	d := notify.NewDesktop(db)

	switch arg := ctx.Args().First(); arg {
	case "", "status":
	case "allow":
		err = d.SetPermission(notify.PermissionGranted)
	case "deny":
		err = d.SetPermission(notify.PermissionDenied)
	case "reset":
		err = d.SetPermission(notify.PermissionDefault)
	default:
		return errUnknownPermissionCmd.Fmt(arg)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, describePermission(d.Permission(), d.Available()))

	return nil
}

func describePermission(p notify.Permission, available bool) string {
	var status string

	switch p {
	case notify.PermissionGranted:
		status = ui.Green(p)
	case notify.PermissionDenied:
		status = ui.Red(p)
	default:
		status = ui.Cyan(p)
	}

	text := "Notifications: " + status

	if !available {
		text += " " + ui.Highlight("(notification service unavailable)")
	}

	return text
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR or POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	_, logCloser = logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	if logCloser == nil {
		return nil
	}

	err := logCloser.Close()
	if errors.Is(err, os.ErrClosed) {
		return nil
	}

	return err
}
