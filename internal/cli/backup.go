package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) exportBackup(ctx context.Context, args []string) {
	path, ok := oneArg(args, "export <file>")
	if !ok {
		return
	}

	data, err := a.backupService.ExportAll(ctx)
	if err != nil {
		a.log.Error(ctx, "export failed", "err", err)
		return
	}
	if err := os.WriteFile(path, data, 0o660); err != nil {
		a.log.Error(ctx, "error writing backup file", "err", err)
		return
	}
	fmt.Printf("Exported %d bytes to %s\n", len(data), path)
}

func (a *App) importBackup(ctx context.Context, args []string) {
	path, ok := oneArg(args, "import <file>")
	if !ok {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Error(ctx, "error reading backup file", "err", err)
		return
	}

	if !a.backupService.ImportAll(ctx, data) {
		fmt.Println("Import failed: snapshot is not valid. Store left unchanged.")
		return
	}
	fmt.Println("Import complete.")
}
