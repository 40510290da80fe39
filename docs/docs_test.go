package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := map[string][]string{
		"/games":                              {"get", "post"},
		"/games/{gameID}":                     {"get", "put", "delete"},
		"/players":                            {"get", "post"},
		"/players/{playerID}":                 {"get", "put", "delete"},
		"/sessions":                           {"get", "post"},
		"/sessions/{sessionID}":               {"get", "put", "delete"},
		"/sessions/{sessionID}/players":       {"put"},
		"/session-players":                    {"get", "post"},
		"/session-players/merge":              {"put"},
		"/session-players/{sessionPlayersID}": {"get", "put", "delete"},
		"/health":                             {"get"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}

	for _, name := range []string{"models.Game", "models.Session", "services.SessionPlayersInput"} {
		assert.Contains(t, doc.Definitions, name)
	}
}
