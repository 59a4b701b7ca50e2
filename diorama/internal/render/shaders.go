package render

const litVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 1.0)));
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const litFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;

// Luzes da cena
uniform vec3 ambientColor;  // cor * intensidade
uniform vec3 sunDir;        // direção para a luz
uniform vec3 sunColor;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointDistance;

// Névoa linear
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;

// Material
uniform vec3 emissive;
uniform float specular;
uniform float unlit;

out vec4 finalColor;

void main()
{
    vec4 texelColor = texture(texture0, fragTexCoord);
    vec4 base = texelColor * fragColor * colDiffuse;

    vec3 rgb = base.rgb;
    if (unlit < 0.5) {
        vec3 normal = normalize(fragNormal);
        vec3 viewDir = normalize(viewPos - fragWorldPos);

        vec3 light = ambientColor;
        float diff = max(dot(normal, sunDir), 0.0);
        light += sunColor * diff;

        // Luz pontual com alcance finito (zero em pointDistance)
        vec3 toPoint = pointPos - fragWorldPos;
        float d = length(toPoint);
        float window = clamp(1.0 - pow(d / pointDistance, 4.0), 0.0, 1.0);
        float atten = window * window;
        vec3 pDir = toPoint / max(d, 0.0001);
        light += pointColor * max(dot(normal, pDir), 0.0) * atten;

        vec3 halfVec = normalize(sunDir + viewDir);
        float spec = pow(max(dot(normal, halfVec), 0.0), 32.0) * specular;

        rgb = rgb * light + vec3(spec) + emissive;
    }

    float dist = length(viewPos - fragWorldPos);
    float fogFactor = clamp((fogFar - dist) / (fogFar - fogNear), 0.0, 1.0);
    rgb = mix(fogColor, rgb, fogFactor);

    finalColor = vec4(rgb, base.a);
}
`
