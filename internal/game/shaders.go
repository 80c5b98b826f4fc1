package game

// Sprite vertex shader: pixel-space quads transformed by an orthographic
// projection with the origin at the top-left of the window.
const spriteVertSrc = `#version 410 core

in vec2 position;
in vec2 texCoord;
in vec4 color;

uniform mat4 projection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    vTexCoord = texCoord;
    vColor = color;
}
` + "\x00"

// Sprite fragment shader: tint * texture, or flat tint when useTexture is
// off (untextured quads share one batch bucket). The sampler is named tex
// because "texture" collides with the GLSL 4.10 builtin of the same name.
const spriteFragSrc = `#version 410 core

uniform sampler2D tex;
uniform bool useTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
    if (useTexture) {
        vec4 t = texture(tex, vTexCoord);
        FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
    } else {
        FragColor = vColor;
    }
}
` + "\x00"

// Names resolved once at link time. Renaming either side breaks the
// binding, so both live next to the shader text.
var (
	spriteAttribs  = []string{"position", "texCoord", "color"}
	spriteUniforms = []string{"projection", "tex", "useTexture"}
)
