// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LightingVertexShader is the vertex shader for the lit morphing shape.
//
//go:embed lighting.vert
var LightingVertexShader string

// LightingFragmentShader is the fragment shader for the lit morphing shape.
//
//go:embed lighting.frag
var LightingFragmentShader string

// LampVertexShader is the vertex shader for the lamp cubes.
//
//go:embed lamp.vert
var LampVertexShader string

// LampFragmentShader is the fragment shader for the lamp cubes.
//
//go:embed lamp.frag
var LampFragmentShader string
