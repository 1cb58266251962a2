package render

// Default program: positions pass through untransformed apart from the target's
// screen mapping, and each vertex carries its own color.
const (
	VertexShader = `#version 330
in vec3 vertexPosition;
in vec4 vertexColor;
uniform mat4 mvp;
out vec4 fragColor;
void main() {
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	FragmentShader = `#version 330
in vec4 fragColor;
out vec4 finalColor;
void main() {
  finalColor = fragColor;
}
`
)
