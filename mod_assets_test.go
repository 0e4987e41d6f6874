package gizmo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServer_RegisterMesh(t *testing.T) {
	server := NewAssetServer()

	a := server.RegisterMesh("translate_x_shaft")
	b := server.RegisterMesh("translate_x_shaft")

	assert.NotEqual(t, a, b, "every registration gets its own id")
	_, err := uuid.Parse(string(a))
	require.NoError(t, err)

	mesh, ok := server.Mesh(a)
	require.True(t, ok)
	assert.Equal(t, "translate_x_shaft", mesh.Name)

	_, ok = server.Mesh("missing")
	assert.False(t, ok)
	assert.Len(t, server.MeshIds(), 2)
}

func TestAssetServerModule_InstallIsIdempotent(t *testing.T) {
	app := NewApp()
	app.UseModules(AssetServerModule{}, AssetServerModule{})

	assert.NotNil(t, Resource[AssetServer](app))
}
