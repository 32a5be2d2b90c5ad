package handler

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/output"
)

// Version is printed by --version.
var Version = "passgen v1.0.0"

// NewApp wires the generator handler into a cli.App. level is lowered to
// debug when --verbose is given.
func NewApp(cfg config.Config, h *GeneratorHandler, level *slog.LevelVar) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Show version",
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, Version)
	}

	app := cli.NewApp()
	app.Name = "passgen"
	app.Usage = "Generate random passwords"
	app.Version = Version
	app.HideHelpCommand = true
	app.Flags = Flags(cfg.Length, cfg.Count)
	app.Before = func(c *cli.Context) error {
		if c.Bool(verboseFlagName) && level != nil {
			level.Set(slog.LevelDebug)
		}
		output.SetColor(!cfg.NoColor && !c.Bool(noColorFlagName) && output.IsTerminal(c.App.Writer))
		return nil
	}
	app.Action = h.HandleGenerate
	return app
}
