package mlbbio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleHar = `{
  "log": {
    "entries": [
      {
        "request": {"url": "https://mlbb.io/api/hero/list"},
        "response": {"content": {"text": "{\"success\": true, \"data\": []}"}}
      },
      {
        "request": {"url": "https://mlbb.io/api/hero/detail/Chang%27e?cache=0"},
        "response": {"content": {"text": "{\"success\": true, \"data\": {\"hero_name\": \"Chang'e\"}}"}}
      },
      {
        "request": {"url": "https://mlbb.io/api/hero/detail/Unknown"},
        "response": {"content": {"text": "{\"success\": false, \"message\": \"hero not found\"}"}}
      },
      {
        "request": {"url": "https://mlbb.io/api/hero/detail/Broken"},
        "response": {"content": {"text": "<html>cloudflare</html>"}}
      },
      {
        "request": {"url": "https://mlbb.io/api/hero/detail/Empty"},
        "response": {"content": {"text": ""}}
      }
    ]
  }
}`

func TestExtractHarDetails(t *testing.T) {
	harPath := filepath.Join(t.TempDir(), "mlbb.io.har")
	err := os.WriteFile(harPath, []byte(sampleHar), 0644)
	require.NoError(t, err)

	details, err := ExtractHarDetails(context.Background(), harPath)
	require.NoError(t, err)

	// only the successful detail entry survives, keyed by the decoded name
	require.Len(t, details, 1)
	require.Contains(t, details, "Chang'e")
	require.Equal(t, "Chang'e", details["Chang'e"].HeroName)
}

func TestExtractHarDetailsMissingFile(t *testing.T) {
	_, err := ExtractHarDetails(context.Background(), filepath.Join(t.TempDir(), "nope.har"))
	require.Error(t, err)
}
