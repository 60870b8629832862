package render

// Scene vertex shader: standard MVP transform plus world-space position and
// normal for the lighting pass. UVscale tiles the texture coordinates.
const SceneVertexSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 vFragPos;
out vec3 vNormal;
out vec2 vUV;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    vFragPos = world.xyz;
    vNormal = mat3(transpose(inverse(model))) * aNormal;
    vUV = aUV * UVscale;
    gl_Position = projection * view * world;
}
` + "\x00"

// Scene fragment shader: fixed Phong accumulation over one directional
// light, a small point light array, and one spot light. When bUseLighting
// is off the base color/texture passes through unlit.
const SceneFragmentSrc = `#version 410 core

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
    bool bActive;
};

struct SpotLight {
    vec3 position;
    vec3 direction;
    float cutOff;
    float outerCutOff;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
    bool bActive;
};

#define NR_POINT_LIGHTS 4

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];
uniform SpotLight spotLight;

in vec3 vFragPos;
in vec3 vNormal;
in vec2 vUV;

out vec4 FragColor;

vec3 phong(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular, vec3 normal, vec3 viewDir, vec3 base) {
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    return ambient * base
        + diffuse * diff * base * material.diffuseColor
        + specular * spec * material.specularColor;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, vUV) : objectColor;
    if (!bUseLighting) {
        FragColor = base;
        return;
    }

    vec3 normal = normalize(vNormal);
    vec3 viewDir = normalize(viewPosition - vFragPos);
    vec3 result = vec3(0.0);

    if (directionalLight.bActive) {
        result += phong(normalize(-directionalLight.direction),
            directionalLight.ambient, directionalLight.diffuse, directionalLight.specular,
            normal, viewDir, base.rgb);
    }

    for (int i = 0; i < NR_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        vec3 lightDir = normalize(pointLights[i].position - vFragPos);
        float dist = length(pointLights[i].position - vFragPos);
        float attenuation = 1.0 / (pointLights[i].constant
            + pointLights[i].linear * dist
            + pointLights[i].quadratic * dist * dist);
        result += attenuation * phong(lightDir,
            pointLights[i].ambient, pointLights[i].diffuse, pointLights[i].specular,
            normal, viewDir, base.rgb);
    }

    if (spotLight.bActive) {
        vec3 lightDir = normalize(spotLight.position - vFragPos);
        float theta = dot(lightDir, normalize(-spotLight.direction));
        float epsilon = spotLight.cutOff - spotLight.outerCutOff;
        float intensity = clamp((theta - spotLight.outerCutOff) / epsilon, 0.0, 1.0);
        float dist = length(spotLight.position - vFragPos);
        float attenuation = 1.0 / (spotLight.constant
            + spotLight.linear * dist
            + spotLight.quadratic * dist * dist);
        result += attenuation * intensity * phong(lightDir,
            spotLight.ambient, spotLight.diffuse, spotLight.specular,
            normal, viewDir, base.rgb);
    }

    FragColor = vec4(result, base.a);
}
` + "\x00"
