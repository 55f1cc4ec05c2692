package transform

import (
	"context"
	"testing"

	"mlbb-pipeline/lib/scrapers/mlbbio"

	"github.com/stretchr/testify/require"
)

func TestHeroesSentinelFirst(t *testing.T) {
	doc := Heroes(context.Background(), []mlbbio.Hero{
		{ID: 2, HeroName: "Balmond"},
		{ID: 1, HeroName: "Miya"},
	})

	require.Len(t, doc.Data, 3)
	require.Equal(t, "None", doc.Data[0].HeroName)
	require.Equal(t, "null", doc.Data[0].Uid)
	// heroes sort by source id
	require.Equal(t, "Miya", doc.Data[1].HeroName)
	require.Equal(t, "Balmond", doc.Data[2].HeroName)
}

func TestHeroUidAndId(t *testing.T) {
	doc := Heroes(context.Background(), []mlbbio.Hero{
		{ID: 61, HeroName: "Chang'e"},
		{ID: 104, HeroName: "Popol and Kupa"},
	})

	change := doc.Data[1]
	require.Equal(t, "change", change.Uid)
	require.Equal(t, "h061", change.ID)
	require.Equal(t, "61", change.Mlid)
	require.Equal(t, "change.png", change.HeroIcon)

	popol := doc.Data[2]
	require.Equal(t, "popol-and-kupa", popol.Uid)
	require.Equal(t, "h104", popol.ID)
}

func TestHeroLaning(t *testing.T) {
	testCases := []struct {
		name     string
		lane     mlbbio.StringOrList
		expected []string
	}{
		{
			name:     "list passes through untouched",
			lane:     mlbbio.StringOrList{IsList: true, List: []string{"Gold", "Jungle"}},
			expected: []string{"Gold", "Jungle"},
		},
		{
			name:     "string is lowercased and wrapped",
			lane:     mlbbio.StringOrList{Str: "Mid"},
			expected: []string{"mid"},
		},
		{
			name:     "absent becomes single empty element",
			lane:     mlbbio.StringOrList{},
			expected: []string{""},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := Heroes(context.Background(), []mlbbio.Hero{
				{ID: 1, HeroName: "Miya", Lane: test.lane},
			})
			require.Equal(t, test.expected, doc.Data[1].Laning)
		})
	}
}

func TestHeroClass(t *testing.T) {
	testCases := []struct {
		name     string
		role     mlbbio.StringOrList
		expected string
	}{
		{
			name:     "list joins with comma",
			role:     mlbbio.StringOrList{IsList: true, List: []string{"Fighter", "Tank"}},
			expected: "Fighter, Tank",
		},
		{
			name:     "string passes through",
			role:     mlbbio.StringOrList{Str: "Marksman"},
			expected: "Marksman",
		},
		{
			name:     "absent becomes empty",
			role:     mlbbio.StringOrList{},
			expected: "",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := Heroes(context.Background(), []mlbbio.Hero{
				{ID: 1, HeroName: "Miya", Role: test.role},
			})
			require.Equal(t, test.expected, doc.Data[1].Class)
		})
	}
}

func TestHeroSkillsStartEmpty(t *testing.T) {
	doc := Heroes(context.Background(), []mlbbio.Hero{{ID: 1, HeroName: "Miya"}})
	require.NotNil(t, doc.Data[1].Skills)
	require.Empty(t, doc.Data[1].Skills)
}
