package commands

import (
	"log/slog"

	"mlbb-pipeline/lib/configutil"
	"mlbb-pipeline/lib/jsonutil"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/serviceutil"
	"mlbb-pipeline/services/transform"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var transformConfigPath *string

func init() {
	transformConfigPath = transformCmd.Flags().String("config", "mlbb.json5", "The config file listing source and output paths.")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform [--config <path/to/mlbb.json5>]",
	Short: "Converts raw item/hero/emblem dumps into the target schema files.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := configutil.ReadConfig[Config](*transformConfigPath)
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		items, err := jsonutil.ReadFile[mlbbio.Collection[mlbbio.Item]](cfg.ItemsRaw)
		if err != nil {
			serviceutil.Fatal("failed to load raw items", err)
		}
		heroes, err := jsonutil.ReadFile[mlbbio.Collection[mlbbio.Hero]](cfg.HeroesRaw)
		if err != nil {
			serviceutil.Fatal("failed to load raw heroes", err)
		}
		mains, err := jsonutil.ReadFile[mlbbio.Collection[mlbbio.Emblem]](cfg.EmblemsMainRaw)
		if err != nil {
			serviceutil.Fatal("failed to load raw emblems", err)
		}
		abilities, err := jsonutil.ReadFile[mlbbio.Collection[mlbbio.Ability]](cfg.EmblemsAbilitiesRaw)
		if err != nil {
			serviceutil.Fatal("failed to load raw emblem abilities", err)
		}
		slog.Info("loaded source data",
			"items", len(items.Data),
			"heroes", len(heroes.Data),
			"emblems", len(mains.Data),
			"abilities", len(abilities.Data),
		)

		itemDoc := transform.Items(ctx, items.Data)
		heroDoc := transform.Heroes(ctx, heroes.Data)
		emblemDoc := transform.Emblems(ctx, mains.Data, abilities.Data)

		save := func(path string, doc any) {
			err := jsonutil.WriteFile(path, doc)
			if err != nil {
				serviceutil.Fatal("failed to write output", err)
			}
			slog.Info("saved", "file", path)
		}
		save(cfg.ItemsOut, itemDoc)
		save(cfg.HeroesOut, heroDoc)
		save(cfg.EmblemsOut, emblemDoc)

		t := newTable()
		t.AppendHeader(table.Row{"collection", "records"})
		t.AppendRow(table.Row{"items", len(itemDoc.Data)})
		// the hero count excludes the sentinel record
		t.AppendRow(table.Row{"heroes", len(heroDoc.Data) - 1})
		t.AppendRow(table.Row{"emblems", len(emblemDoc.Data)})
		t.Render()
	},
}
