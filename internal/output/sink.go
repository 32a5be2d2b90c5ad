package output

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/vaultpass/passgen/internal/model"
)

// Options selects which sinks receive a batch.
type Options struct {
	JSON     bool
	Copy     bool
	QR       bool
	SavePath string
	Verbose  bool
}

// Sink fans a generated batch out to the requested destinations.
type Sink struct {
	stdout    io.Writer
	stderr    io.Writer
	clipboard Clipboard
	logger    *slog.Logger
}

// NewSink creates a Sink. A nil clipboard falls back to the system one.
func NewSink(stdout, stderr io.Writer, cb Clipboard, logger *slog.Logger) *Sink {
	if cb == nil {
		cb = SystemClipboard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{stdout: stdout, stderr: stderr, clipboard: cb, logger: logger}
}

// Emit writes resp to every sink in opts. Each sink is attempted once; a
// failing sink does not stop the ones after it and all failures are returned.
func (s *Sink) Emit(resp model.GenerateResponse, opts Options) error {
	var result *multierror.Error

	// JSON keeps stdout machine-readable, so everything else goes to stderr.
	notices := s.stdout
	if opts.JSON {
		notices = s.stderr
		if err := WriteJSON(s.stdout, resp.Results); err != nil {
			result = multierror.Append(result, fmt.Errorf("writing JSON: %w", err))
		}
	} else if err := WriteResults(s.stdout, resp.Results); err != nil {
		result = multierror.Append(result, fmt.Errorf("writing results: %w", err))
	}

	if len(resp.Results) > 0 {
		first := resp.Results[0].Password

		if opts.Copy {
			if err := s.clipboard.WriteAll(first); err != nil {
				s.logger.Debug("clipboard write failed", "error", err)
				result = multierror.Append(result, err)
			} else {
				notice(notices, "First password copied to clipboard.")
			}
		}

		if opts.QR {
			fmt.Fprintln(notices)
			if err := WriteQR(notices, first); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	if opts.SavePath != "" {
		if err := SaveFile(opts.SavePath, resp.Results); err != nil {
			s.logger.Debug("save failed", "path", opts.SavePath, "error", err)
			result = multierror.Append(result, err)
		} else {
			notice(notices, "Passwords saved to file: %s", opts.SavePath)
		}
	}

	if opts.Verbose {
		if err := WriteConfig(notices, resp.Config, resp.CharsetSize); err != nil {
			result = multierror.Append(result, fmt.Errorf("writing config: %w", err))
		}
	}

	return result.ErrorOrNil()
}
