package gizmo

import (
	"slices"

	"github.com/google/uuid"
)

type AssetId string

// MeshAsset is a named mesh a renderer can resolve. The gizmo never draws;
// it only tracks which of its meshes should be shown.
type MeshAsset struct {
	Name string
}

type AssetServer struct {
	meshes map[AssetId]MeshAsset
}

type AssetServerModule struct{}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes: make(map[AssetId]MeshAsset),
	}
}

func (mod AssetServerModule) Install(app *App, cmd *Commands) {
	if Resource[AssetServer](app) != nil {
		return
	}
	app.addResources(NewAssetServer())
}

// RegisterMesh records a mesh by name and returns a fresh id for it. Names
// need not be unique; every handle gets its own id.
func (server *AssetServer) RegisterMesh(name string) AssetId {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		Name: name,
	}
	return id
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

// MeshIds lists the registered ids in lexical order.
func (server *AssetServer) MeshIds() []AssetId {
	ids := make([]AssetId, 0, len(server.meshes))
	for id := range server.meshes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
