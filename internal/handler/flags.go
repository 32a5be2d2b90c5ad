package handler

import (
	"github.com/urfave/cli/v2"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/output"
)

const (
	lengthFlagName      = "length"
	countFlagName       = "count"
	digitsFlagName      = "digits"
	symbolsFlagName     = "symbols"
	uppercaseFlagName   = "uppercase"
	lowercaseFlagName   = "lowercase"
	noAmbiguousFlagName = "no-ambiguous"
	excludeFlagName     = "exclude"
	prefixFlagName      = "prefix"
	suffixFlagName      = "suffix"
	noDuplicateFlagName = "no-duplicate"
	seedFlagName        = "seed"
	secureFlagName      = "secure"
	saveFlagName        = "save"
	copyFlagName        = "copy"
	verboseFlagName     = "verbose"
	hashFlagName        = "hash"
	jsonFlagName        = "json"
	qrFlagName          = "qr"
	noColorFlagName     = "no-color"
)

// Flags returns the command-line flags. Length and count defaults come from
// configuration.
func Flags(defaultLength, defaultCount int) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    lengthFlagName,
			Aliases: []string{"l"},
			Value:   defaultLength,
			Usage:   "Password length",
		},
		&cli.IntFlag{
			Name:    countFlagName,
			Aliases: []string{"n", "number"},
			Value:   defaultCount,
			Usage:   "Number of passwords to generate",
		},
		&cli.BoolFlag{
			Name:    digitsFlagName,
			Aliases: []string{"d"},
			Usage:   "Include digits (0-9)",
		},
		&cli.BoolFlag{
			Name:    symbolsFlagName,
			Aliases: []string{"sy"},
			Usage:   "Include symbols (!@#$%^&* ...)",
		},
		&cli.BoolFlag{
			Name:    uppercaseFlagName,
			Aliases: []string{"u"},
			Usage:   "Include uppercase letters (A-Z)",
		},
		&cli.BoolFlag{
			Name:    lowercaseFlagName,
			Aliases: []string{"lo"},
			Usage:   "Include lowercase letters (a-z)",
		},
		&cli.BoolFlag{
			Name:    noAmbiguousFlagName,
			Aliases: []string{"a"},
			Usage:   "Avoid ambiguous characters (0 O I l 1)",
		},
		&cli.StringFlag{
			Name:    excludeFlagName,
			Aliases: []string{"x"},
			Usage:   "Exclude specific characters (e.g. 01lIO)",
		},
		&cli.StringFlag{
			Name:    prefixFlagName,
			Aliases: []string{"p"},
			Usage:   "Add a prefix to each password",
		},
		&cli.StringFlag{
			Name:    suffixFlagName,
			Aliases: []string{"suf"},
			Usage:   "Add a suffix to each password",
		},
		&cli.BoolFlag{
			Name:    noDuplicateFlagName,
			Aliases: []string{"nd"},
			Usage:   "No duplicate characters within a password",
		},
		&cli.Int64Flag{
			Name:    seedFlagName,
			Aliases: []string{"sd"},
			Usage:   "Seed for reproducible output (applies with --no-duplicate)",
		},
		&cli.BoolFlag{
			Name:    secureFlagName,
			Aliases: []string{"sec"},
			Usage:   "Enable all character classes and avoid ambiguous characters",
		},
		&cli.StringFlag{
			Name:    saveFlagName,
			Aliases: []string{"sv"},
			Usage:   "Save passwords and ratings to `FILE`",
		},
		&cli.BoolFlag{
			Name:    copyFlagName,
			Aliases: []string{"c"},
			Usage:   "Copy the first password to the clipboard",
		},
		&cli.BoolFlag{
			Name:    verboseFlagName,
			Aliases: []string{"v"},
			Usage:   "Show the resolved options and debug logs",
		},
		&cli.BoolFlag{
			Name:  hashFlagName,
			Usage: "Print an Argon2id hash of each password",
		},
		&cli.BoolFlag{
			Name:  jsonFlagName,
			Usage: "Write results to stdout as JSON",
		},
		&cli.BoolFlag{
			Name:  qrFlagName,
			Usage: "Render the first password as a QR code",
		},
		&cli.BoolFlag{
			Name:  noColorFlagName,
			Usage: "Disable colored output",
		},
	}
}

func requestFromFlags(c *cli.Context) model.GenerateRequest {
	length, count := c.Int(lengthFlagName), c.Int(countFlagName)
	req := model.GenerateRequest{
		Length:         &length,
		Count:          &count,
		Digits:         c.Bool(digitsFlagName),
		Symbols:        c.Bool(symbolsFlagName),
		Uppercase:      c.Bool(uppercaseFlagName),
		Lowercase:      c.Bool(lowercaseFlagName),
		AvoidAmbiguous: c.Bool(noAmbiguousFlagName),
		Exclude:        c.String(excludeFlagName),
		Prefix:         c.String(prefixFlagName),
		Suffix:         c.String(suffixFlagName),
		NoDuplicates:   c.Bool(noDuplicateFlagName),
		Secure:         c.Bool(secureFlagName),
		Hash:           c.Bool(hashFlagName),
	}
	if c.IsSet(seedFlagName) {
		seed := c.Int64(seedFlagName)
		req.Seed = &seed
	}
	return req
}

func outputOptionsFromFlags(c *cli.Context) output.Options {
	return output.Options{
		JSON:     c.Bool(jsonFlagName),
		Copy:     c.Bool(copyFlagName),
		QR:       c.Bool(qrFlagName),
		SavePath: c.String(saveFlagName),
		Verbose:  c.Bool(verboseFlagName),
	}
}
