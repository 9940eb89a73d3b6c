package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/achilleasa/modelsnap/log"
	"github.com/achilleasa/modelsnap/types"
	"github.com/netisu/aeno"
)

var logger = log.New("asset")

// A Model aggregates the meshes loaded from one or more model files together
// with the union of their axis-aligned bounds in model space.
type Model struct {
	Mesh *aeno.Mesh

	MinBound types.Vec3
	MaxBound types.Vec3
}

// Get the per-axis model size.
func (m *Model) Size() types.Vec3 {
	return m.MaxBound.Sub(m.MinBound)
}

// Load one or more glTF/GLB files and merge them into a single model. The
// merged bounds cover every loaded mesh so the group gets framed as a unit.
func LoadModel(paths []string) (*Model, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("asset: no model files specified")
	}

	model := &Model{Mesh: aeno.NewEmptyMesh()}
	for index, path := range paths {
		mesh, err := loadMesh(path)
		if err != nil {
			return nil, err
		}

		model.merge(mesh, index == 0)
	}

	return model, nil
}

// Merge a mesh into the model, growing the union bounds.
func (m *Model) merge(mesh *aeno.Mesh, first bool) {
	box := mesh.BoundingBox()
	minBound := vec3FromAeno(box.Min)
	maxBound := vec3FromAeno(box.Max)
	if first {
		m.MinBound = minBound
		m.MaxBound = maxBound
	} else {
		m.MinBound = types.MinVec3(m.MinBound, minBound)
		m.MaxBound = types.MaxVec3(m.MaxBound, maxBound)
	}

	m.Mesh.Add(mesh)
}

// Load a single mesh, dispatching on the file extension.
func loadMesh(path string) (*aeno.Mesh, error) {
	res, err := NewResource(path)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	switch strings.ToLower(filepath.Ext(res.RemotePath())) {
	case ".gltf", ".glb":
	default:
		return nil, fmt.Errorf("asset: unsupported model format for %s", path)
	}

	// The importer reads from the filesystem, so remote resources get
	// spooled to a temp file first.
	localPath := res.Path()
	if res.IsRemote() {
		localPath, err = spool(res)
		if err != nil {
			return nil, err
		}
		defer os.Remove(localPath)
	}

	start := time.Now()
	mesh, _, err := aeno.LoadGLTF(localPath)
	if err != nil {
		return nil, fmt.Errorf("asset: could not load %s: %s", path, err)
	}
	logger.Infof("loaded %s (%d triangles) in %d ms", path, len(mesh.Triangles), time.Since(start).Nanoseconds()/1000000)

	return mesh, nil
}

// Copy a remote resource to a temp file, preserving the file extension so the
// importer can identify the format.
func spool(res *Resource) (string, error) {
	f, err := os.CreateTemp("", "modelsnap-*"+filepath.Ext(res.RemotePath()))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = io.Copy(f, res); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("asset: could not spool %s: %s", res.Path(), err)
	}
	return f.Name(), nil
}

func vec3FromAeno(v aeno.Vector) types.Vec3 {
	return types.XYZ(float32(v.X), float32(v.Y), float32(v.Z))
}
