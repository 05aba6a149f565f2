package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/freight-api/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(doc)))
	assert.Contains(t, doc, "/api/containers/optimize")
	assert.Contains(t, doc, "/api/fleet/assignments")
}
