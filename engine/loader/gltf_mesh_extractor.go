package loader

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// gltfMeshExtractorImpl is the implementation of gltfMeshExtractor.
type gltfMeshExtractorImpl struct {
	parser gltfParser
}

// gltfMeshExtractor turns glTF mesh primitives into world-space triangles for picking and drawing.
type gltfMeshExtractor interface {
	// ExtractTriangles reads one primitive of a mesh and transforms it by world.
	// Point and line primitives yield no triangles.
	//
	// Parameters:
	//   - meshIndex: the index of the mesh in the document
	//   - primitiveIndex: the index of the primitive within the mesh
	//   - world: the node's accumulated world matrix
	//
	// Returns:
	//   - []model.Triangle: the world-space triangles
	//   - error: error if an accessor cannot be read
	ExtractTriangles(meshIndex, primitiveIndex int, world common.Mat4) ([]model.Triangle, error)
}

var _ gltfMeshExtractor = &gltfMeshExtractorImpl{}

func newGLTFMeshExtractor(parser gltfParser) gltfMeshExtractor {
	return &gltfMeshExtractorImpl{parser: parser}
}

func (e *gltfMeshExtractorImpl) ExtractTriangles(meshIndex, primitiveIndex int, world common.Mat4) ([]model.Triangle, error) {
	doc := e.parser.Document()
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, errors.Errorf("mesh index %d out of range", meshIndex)
	}

	mesh := &doc.Meshes[meshIndex]
	if primitiveIndex < 0 || primitiveIndex >= len(mesh.Primitives) {
		return nil, errors.Errorf("mesh %q primitive index %d out of range", mesh.Name, primitiveIndex)
	}
	tris, err := e.extractPrimitive(&mesh.Primitives[primitiveIndex])
	if err != nil {
		return nil, errors.Wrapf(err, "mesh %q primitive %d", mesh.Name, primitiveIndex)
	}
	out := make([]model.Triangle, len(tris))
	for i, t := range tris {
		out[i] = t.Transform(world)
	}
	return out, nil
}

// extractPrimitive returns the primitive's triangles in mesh space.
func (e *gltfMeshExtractorImpl) extractPrimitive(prim *gltfPrimitive) ([]model.Triangle, error) {
	mode := gltfPrimitiveModeTriangles
	if prim.Mode != nil {
		mode = *prim.Mode
	}
	if mode != gltfPrimitiveModeTriangles && mode != gltfPrimitiveModeTriangleStrip && mode != gltfPrimitiveModeTriangleFan {
		return nil, nil
	}

	posIndex, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil
	}
	positions, err := e.parser.ReadVec3Accessor(posIndex)
	if err != nil {
		return nil, errors.Wrap(err, "positions")
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = e.parser.ReadIndicesAccessor(*prim.Indices)
		if err != nil {
			return nil, errors.Wrap(err, "indices")
		}
	} else {
		// Non-indexed geometry draws vertices in order.
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, errors.Errorf("index %d out of range for %d positions", idx, len(positions))
		}
	}

	vertex := func(i uint32) common.Vec3 {
		p := positions[i]
		return mgl32.Vec3{p[0], p[1], p[2]}
	}

	var tris []model.Triangle
	switch mode {
	case gltfPrimitiveModeTriangles:
		tris = make([]model.Triangle, 0, len(indices)/3)
		for i := 0; i+2 < len(indices); i += 3 {
			tris = append(tris, model.Triangle{V0: vertex(indices[i]), V1: vertex(indices[i+1]), V2: vertex(indices[i+2])})
		}
	case gltfPrimitiveModeTriangleStrip:
		for i := 0; i+2 < len(indices); i++ {
			a, b := indices[i], indices[i+1]
			if i%2 == 1 {
				a, b = b, a
			}
			tris = append(tris, model.Triangle{V0: vertex(a), V1: vertex(b), V2: vertex(indices[i+2])})
		}
	case gltfPrimitiveModeTriangleFan:
		for i := 1; i+1 < len(indices); i++ {
			tris = append(tris, model.Triangle{V0: vertex(indices[0]), V1: vertex(indices[i]), V2: vertex(indices[i+1])})
		}
	}
	return tris, nil
}

// gltfNodeMatrix returns the node's local matrix: its explicit matrix when present, otherwise T * R * S.
func gltfNodeMatrix(node *gltfNode) common.Mat4 {
	if node.Matrix != nil {
		return mgl32.Mat4(*node.Matrix)
	}

	t := model.IdentityTransform()
	if node.Translation != nil {
		t.Translation = *node.Translation
	}
	if node.Rotation != nil {
		t.Rotation = *node.Rotation
	}
	if node.Scale != nil {
		t.Scale = *node.Scale
	}
	return t.Matrix()
}
