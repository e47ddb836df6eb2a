// Package printing dispatches rendered tickets to the CUPS receipt printer.
// The printer expects CP858, so tickets are transcoded with iconv before
// being handed to lp. Printing is best effort: a sale or closure never fails
// because the printer is off.
package printing

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// Dispatcher sends a rendered ticket to a printer.
type Dispatcher interface {
	// Print dispatches the ticket text. It returns immediately; delivery
	// failures are logged, not returned.
	Print(ctx context.Context, text string)
}

// LPDispatcher prints through iconv and lp against a named CUPS destination.
type LPDispatcher struct {
	PrinterName string
	TmpDir      string
}

// NewLPDispatcher creates a dispatcher for the given CUPS destination.
func NewLPDispatcher(printerName string) *LPDispatcher {
	return &LPDispatcher{PrinterName: printerName, TmpDir: os.TempDir()}
}

// Print transcodes the ticket to CP858 and queues it on the printer. The
// work happens in a goroutine so the request path never waits on CUPS.
func (d *LPDispatcher) Print(ctx context.Context, text string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	go func() {
		if err := d.print(text); err != nil {
			logger.Error("Ticket print failed", slog.String("printer", d.PrinterName), slog.String("error", err.Error()))
		}
	}()
}

func (d *LPDispatcher) print(text string) error {
	id := uuid.NewString()
	utf8Path := filepath.Join(d.TmpDir, "ticket_"+id+"_utf8.txt")
	cp858Path := filepath.Join(d.TmpDir, "ticket_"+id+"_cp858.txt")
	defer os.Remove(utf8Path)
	defer os.Remove(cp858Path)

	if err := os.WriteFile(utf8Path, []byte(text), 0o600); err != nil {
		return err
	}
	if err := exec.Command("iconv", "-f", "UTF-8", "-t", "CP858", utf8Path, "-o", cp858Path).Run(); err != nil {
		return err
	}
	return exec.Command("lp", "-d", d.PrinterName, cp858Path).Run()
}

// NopDispatcher drops tickets. Used when no printer is configured and in
// tests.
type NopDispatcher struct{}

// Print does nothing.
func (NopDispatcher) Print(ctx context.Context, text string) {}
