package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Directional light plus ambient, with a rim term so highlighted parts read against the background.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float rimStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * 0.8;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  float rim = pow(1.0 - max(dot(N, V), 0.0), 3.0) * rimStrength;
  finalColor = vec4(amb + diffuse + vec3(rim), colDiffuse.a);
}
`
)

var ambient = [4]float32{0.3, 0.3, 0.32, 1}

type uniforms struct {
	viewPos, lightDir, ambient, rim int32
}

func loadLitShader() (rl.Shader, uniforms) {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return sh, uniforms{-1, -1, -1, -1}
	}
	return sh, uniforms{
		viewPos:  rl.GetShaderLocation(sh, "viewPos"),
		lightDir: rl.GetShaderLocation(sh, "lightDir"),
		ambient:  rl.GetShaderLocation(sh, "ambient"),
		rim:      rl.GetShaderLocation(sh, "rimStrength"),
	}
}
