package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/output"
	"github.com/vaultpass/passgen/internal/service"
)

// GeneratorHandler runs the generate action for the command line.
type GeneratorHandler struct {
	service   *service.GeneratorService
	clipboard output.Clipboard
	logger    *slog.Logger
}

// NewGeneratorHandler creates a new GeneratorHandler. A nil clipboard uses
// the system clipboard.
func NewGeneratorHandler(svc *service.GeneratorService, cb output.Clipboard, logger *slog.Logger) *GeneratorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeneratorHandler{service: svc, clipboard: cb, logger: logger}
}

// HandleGenerate generates the requested passwords and emits them.
func (h *GeneratorHandler) HandleGenerate(c *cli.Context) error {
	resp, err := h.service.Generate(requestFromFlags(c))
	if err != nil {
		if !isValidationError(err) {
			h.logger.Error("generation failed", "error", err)
		}
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	sink := output.NewSink(c.App.Writer, c.App.ErrWriter, h.clipboard, h.logger)
	if err := sink.Emit(resp, outputOptionsFromFlags(c)); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrInvalidCount) ||
		errors.Is(err, crypto.ErrEmptyCharset) ||
		errors.Is(err, crypto.ErrLengthExceedsCharset)
}
