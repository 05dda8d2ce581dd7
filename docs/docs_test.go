package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/finance-dashboard/docs"
)

func TestReadDoc_IncluyeRutasDelDashboard(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	for _, p := range []string{"/api/dashboard", "/api/dashboard/render", "/api/dashboard/customers"} {
		assert.Contains(t, doc.Paths, p)
	}
}
