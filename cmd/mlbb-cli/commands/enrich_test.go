package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mlbb-pipeline/lib/jsonutil"
	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/services/enrich"

	"github.com/stretchr/testify/require"
)

func writeHeroFile(t *testing.T) string {
	t.Helper()
	doc := mlbbapi.NewDocument[mlbbapi.Hero]("hero-schema")
	doc.Data = []mlbbapi.Hero{
		{HeroName: "None", Uid: "null", Laning: []string{""}, Skills: []mlbbapi.Skill{}},
		{HeroName: "Kagura", Uid: "kagura", ID: "h034", Skills: []mlbbapi.Skill{}},
	}

	path := filepath.Join(t.TempDir(), "hero-meta-final.json")
	err := jsonutil.WriteFile(path, doc)
	require.NoError(t, err)
	return path
}

func TestRunEnrichNoDetails(t *testing.T) {
	heroPath := writeHeroFile(t)
	before, err := os.ReadFile(heroPath)
	require.NoError(t, err)

	empty := func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
		return enrich.DetailMap{}, nil
	}
	_, _, err = runEnrich(context.Background(), heroPath, empty)
	require.ErrorIs(t, err, enrich.ErrNoDetailData)

	// the hero file must be byte-for-byte untouched
	after, err := os.ReadFile(heroPath)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRunEnrichMergesAndSaves(t *testing.T) {
	heroPath := writeHeroFile(t)

	loader := func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
		return enrich.DetailMap{"Kagura": {
			HeroName: "Kagura",
			Skills:   []mlbbio.Skill{{SkillKey: "ultimate", SkillName: "Yin Yang Overturn"}},
		}}, nil
	}
	_, summary, err := runEnrich(context.Background(), heroPath, loader)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Enriched)
	require.Equal(t, 0, summary.Skipped)

	saved, err := jsonutil.ReadFile[mlbbapi.Document[mlbbapi.Hero]](heroPath)
	require.NoError(t, err)
	require.Len(t, saved.Data[1].Skills, 1)
	require.Equal(t, "Yin Yang Overturn", saved.Data[1].Skills[0].SkillName)
}

func TestRunEnrichMissingHeroFile(t *testing.T) {
	none := func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
		t.Fatal("loader must not run when the hero file is missing")
		return nil, nil
	}
	_, _, err := runEnrich(context.Background(), filepath.Join(t.TempDir(), "nope.json"), none)
	require.Error(t, err)
}
