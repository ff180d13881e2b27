package loader

import (
	"fmt"
	"strconv"

	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
)

// defaultMaterialName names the material of primitives that reference none.
const defaultMaterialName = "default"

// surfaceOverride replaces the roughness and metalness of every loaded material when positive.
type surfaceOverride struct {
	Roughness float32
	Metalness float32
}

// gltfMaterialExtractorImpl is the implementation of gltfMaterialExtractor.
type gltfMaterialExtractorImpl struct {
	parser   gltfParser
	override surfaceOverride
	cache    map[int]material.Material
}

// gltfMaterialExtractor builds engine materials from glTF PBR factors. Texture maps are ignored.
type gltfMaterialExtractor interface {
	// ExtractMaterial returns the material for a glTF material index, or the default material
	// for a negative or out of range index. The result is shared; callers Clone it per object.
	//
	// Parameters:
	//   - materialIndex: the index of the material in the document
	//
	// Returns:
	//   - material.Material: the material
	ExtractMaterial(materialIndex int) material.Material
}

var _ gltfMaterialExtractor = &gltfMaterialExtractorImpl{}

func newGLTFMaterialExtractor(parser gltfParser, override surfaceOverride) gltfMaterialExtractor {
	return &gltfMaterialExtractorImpl{
		parser:   parser,
		override: override,
		cache:    make(map[int]material.Material),
	}
}

func (e *gltfMaterialExtractorImpl) ExtractMaterial(materialIndex int) material.Material {
	doc := e.parser.Document()
	if materialIndex < 0 || materialIndex >= len(doc.Materials) {
		materialIndex = -1
	}
	if m, ok := e.cache[materialIndex]; ok {
		return m
	}

	props := material.Properties{
		Name:      defaultMaterialName,
		BaseColor: [4]float32{1, 1, 1, 1},
		Roughness: 1,
		Metallic:  1,
		Opacity:   1,
	}
	if materialIndex < 0 {
		// glTF default material is a plain grey dielectric.
		props.BaseColor = [4]float32{0.8, 0.8, 0.8, 1}
		props.Metallic = 0
	} else {
		gm := &doc.Materials[materialIndex]
		props.Name = gm.Name
		if props.Name == "" {
			props.Name = fmt.Sprintf("material_%d", materialIndex)
		}
		if pbr := gm.PbrMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				props.BaseColor = *pbr.BaseColorFactor
			}
			if pbr.MetallicFactor != nil {
				props.Metallic = *pbr.MetallicFactor
			}
			if pbr.RoughnessFactor != nil {
				props.Roughness = *pbr.RoughnessFactor
			}
		}
		if gm.EmissiveFactor != nil {
			props.Emissive = *gm.EmissiveFactor
		}
		if gm.AlphaMode == "BLEND" {
			props.Transparent = true
			props.Opacity = props.BaseColor[3]
		}
		if len(gm.Extras) > 0 {
			props.Extras = make(map[string]string, len(gm.Extras))
			for k, v := range gm.Extras {
				props.Extras[k] = extraString(v)
			}
		}
	}

	if e.override.Roughness > 0 {
		props.Roughness = e.override.Roughness
	}
	if e.override.Metalness > 0 {
		props.Metallic = e.override.Metalness
	}

	m := material.FromProperties(props)
	e.cache[materialIndex] = m
	return m
}

// extraString formats a decoded JSON extras value for display.
func extraString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
