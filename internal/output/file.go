package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vaultpass/passgen/internal/model"
)

// SaveFile writes "<password> (<rating>)" lines to path, replacing any
// existing content. The file is always closed, even if a write fails.
func SaveFile(path string, results []model.Result) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s (%s)\n", res.Password, res.Rating); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
