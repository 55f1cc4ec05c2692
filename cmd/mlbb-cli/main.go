package main

import (
	"context"

	"mlbb-pipeline/cmd/mlbb-cli/commands"
	"mlbb-pipeline/lib/serviceutil"
	"mlbb-pipeline/lib/telemetry"
)

func main() {
	serviceutil.InitSlog(false)

	ctx := context.Background()
	// telemetry is optional for a local batch run
	if tel, err := telemetry.SetupFromEnv(ctx, "mlbb-cli"); err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
