// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ToonVertexShader is the vertex shader for section objects.
//
//go:embed toon.vert
var ToonVertexShader string

// ToonFragmentShader is the banded toon fragment shader.
//
//go:embed toon.frag
var ToonFragmentShader string

// PointsVertexShader is the vertex shader for the particle field.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader is the fragment shader for the particle field.
//
//go:embed points.frag
var PointsFragmentShader string
