package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// importedObject is one mesh primitive flattened to world space, ready to become a scene.Object.
type importedObject struct {
	Name      string
	Kind      scene.Kind
	Triangles []model.Triangle
	Material  material.Material
}

// importedScene is the CPU result of an import.
type importedScene struct {
	Name    string
	Objects []importedObject
}

// gltfMeshNode is one primitive of a node that references a mesh, resolved during traversal.
// Every primitive of a mesh yields its own entry so each keeps its material.
type gltfMeshNode struct {
	node      int
	ordinal   int
	mesh      int
	primitive int
	name      string
	world     common.Mat4
	pickable  bool
	material  int
}

// gltfImporterImpl is the implementation of gltfImporter.
type gltfImporterImpl struct {
	workers  int
	override surfaceOverride
	logger   *zap.Logger
}

// gltfImporter parses a glTF/GLB document and flattens its default scene into named objects.
type gltfImporter interface {
	// Import parses the file at path.
	//
	// Parameters:
	//   - path: the .gltf or .glb file
	//
	// Returns:
	//   - *importedScene: the flattened scene
	//   - error: error if parsing or extraction fails
	Import(path string) (*importedScene, error)

	// ImportReader parses a document from r. Relative buffer URIs resolve against baseDir.
	// The scene is named after the document's default scene when it has one.
	//
	// Parameters:
	//   - name: the fallback scene name
	//   - r: the document bytes
	//   - isGLB: true for GLB containers
	//   - baseDir: directory for external buffers, may be empty
	//
	// Returns:
	//   - *importedScene: the flattened scene
	//   - error: error if parsing or extraction fails
	ImportReader(name string, r io.Reader, isGLB bool, baseDir string) (*importedScene, error)
}

var _ gltfImporter = &gltfImporterImpl{}

func newGLTFImporter(workers int, override surfaceOverride, logger *zap.Logger) gltfImporter {
	return &gltfImporterImpl{
		workers:  workers,
		override: override,
		logger:   logger,
	}
}

func (imp *gltfImporterImpl) Import(path string) (*importedScene, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}
	return imp.importFromParser(parser, gltfSceneName(parser.Document(), path))
}

func (imp *gltfImporterImpl) ImportReader(name string, r io.Reader, isGLB bool, baseDir string) (*importedScene, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB, baseDir); err != nil {
		return nil, err
	}
	return imp.importFromParser(parser, gltfSceneName(parser.Document(), name))
}

// importFromParser resolves object names and materials on the calling goroutine, then extracts
// every primitive's triangles on the worker pool.
func (imp *gltfImporterImpl) importFromParser(parser gltfParser, name string) (*importedScene, error) {
	doc := parser.Document()
	nodes, err := gltfCollectMeshNodes(doc)
	if err != nil {
		return nil, err
	}

	materials := newGLTFMaterialExtractor(parser, imp.override)
	meshes := newGLTFMeshExtractor(parser)

	out := &importedScene{
		Name:    name,
		Objects: make([]importedObject, len(nodes)),
	}
	names := newNameSet()
	for i, n := range nodes {
		kind := scene.KindSelectable
		if !n.pickable {
			kind = scene.KindScaffolding
		}
		base := n.name
		if base == "" {
			base = fmt.Sprintf("object_%d", n.ordinal)
		}
		out.Objects[i] = importedObject{
			Name:     names.claim(base),
			Kind:     kind,
			Material: materials.ExtractMaterial(n.material).Clone(),
		}
	}

	pool := worker.NewDynamicWorkerPool(imp.workers, 256, 1*time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	errs := make([]error, len(nodes))
	start := time.Now()
	for i := range nodes {
		wg.Add(1)
		id := i
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				n := nodes[id]
				tris, err := meshes.ExtractTriangles(n.mesh, n.primitive, n.world)
				if err != nil {
					errs[id] = errors.Wrapf(err, "node %d (%s)", n.node, out.Objects[id].Name)
					return nil, errs[id]
				}
				out.Objects[id].Triangles = tris
				return nil, nil
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	imp.logger.Debug("gltf triangles extracted",
		zap.String("scene", name),
		zap.Int("objects", len(nodes)),
		zap.Int("workers", imp.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// gltfCollectMeshNodes walks the default scene depth first, accumulating world matrices, and returns
// one entry per primitive of every node that references a mesh, in traversal order. Documents
// without scenes use every root node.
func gltfCollectMeshNodes(doc *gltfDocument) ([]gltfMeshNode, error) {
	roots, err := gltfRootNodes(doc)
	if err != nil {
		return nil, err
	}

	var out []gltfMeshNode
	ordinal := 0
	visited := make(map[int]bool, len(doc.Nodes))

	var walk func(index int, parent common.Mat4, pickable bool) error
	walk = func(index int, parent common.Mat4, pickable bool) error {
		if index < 0 || index >= len(doc.Nodes) {
			return errors.Errorf("node index %d out of range", index)
		}
		if visited[index] {
			return errors.Errorf("node %d is reachable twice, the node graph must be a tree", index)
		}
		visited[index] = true

		node := &doc.Nodes[index]
		world := parent.Mul4(gltfNodeMatrix(node))
		pickable = pickable && gltfPickable(node.Extras)

		if node.Mesh != nil {
			if *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
				return errors.Errorf("node %d references missing mesh %d", index, *node.Mesh)
			}
			mesh := &doc.Meshes[*node.Mesh]
			name := strings.TrimSpace(node.Name)
			if name == "" {
				name = strings.TrimSpace(mesh.Name)
			}
			meshPickable := pickable && gltfPickable(mesh.Extras)
			for p := range mesh.Primitives {
				materialIndex := -1
				if mesh.Primitives[p].Material != nil {
					materialIndex = *mesh.Primitives[p].Material
				}
				out = append(out, gltfMeshNode{
					node:      index,
					ordinal:   ordinal,
					mesh:      *node.Mesh,
					primitive: p,
					name:      name,
					world:     world,
					pickable:  meshPickable,
					material:  materialIndex,
				})
			}
			ordinal++
		}

		for _, child := range node.Children {
			if err := walk(child, world, pickable); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range roots {
		if err := walk(root, mgl32.Ident4(), true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// gltfRootNodes returns the root nodes of the default scene.
func gltfRootNodes(doc *gltfDocument) ([]int, error) {
	if len(doc.Scenes) > 0 {
		sceneIndex := 0
		if doc.Scene != nil {
			sceneIndex = *doc.Scene
		}
		if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
			return nil, errors.Errorf("default scene %d out of range", sceneIndex)
		}
		return doc.Scenes[sceneIndex].Nodes, nil
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots, nil
}

// gltfPickable reads extras.pickable, defaulting to true for absent or malformed extras.
func gltfPickable(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var extras gltfExtras
	if err := json.Unmarshal(raw, &extras); err != nil || extras.Pickable == nil {
		return true
	}
	return *extras.Pickable
}

// gltfSceneName prefers the default scene's name and falls back to the file name.
func gltfSceneName(doc *gltfDocument, path string) string {
	if doc != nil && len(doc.Scenes) > 0 {
		i := 0
		if doc.Scene != nil {
			i = *doc.Scene
		}
		if i >= 0 && i < len(doc.Scenes) && doc.Scenes[i].Name != "" {
			return doc.Scenes[i].Name
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// nameSet hands out unique object names, suffixing repeats with _1, _2, ...
type nameSet struct {
	used map[string]bool
}

func newNameSet() *nameSet {
	return &nameSet{used: make(map[string]bool)}
}

func (s *nameSet) claim(name string) string {
	candidate := name
	for k := 1; s.used[candidate]; k++ {
		candidate = fmt.Sprintf("%s_%d", name, k)
	}
	s.used[candidate] = true
	return candidate
}
