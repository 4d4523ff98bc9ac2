// Package sceneconfig loads the JSON scene-configuration file format: an
// object mapping a name to either a {pos, rot} transform binding or a
// light's fields. It is a consumer of the core, never imported by raster,
// framebuffer, or tilescheduler - the core itself never parses configuration,
// it only receives the position/rotation/light values this package resolves
// and applies to already-constructed scene objects.
package sceneconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/oxy-go/swrast/engine/game_object"
	"github.com/oxy-go/swrast/engine/light"
)

// Entry is one named binding from a scene configuration file: either a
// transform to apply to a game object, a light descriptor, or both.
type Entry struct {
	HasPos bool
	Pos    [3]float32

	HasRot bool
	Rot    [3]float32

	Light *LightEntry
}

// LightEntry carries the light-specific fields a configuration entry may
// set, mirroring the fields engine/light.Light exposes via its builder.
type LightEntry struct {
	Type         string // "ambient", "directional", "point", "spot"
	Color        [3]float32
	Intensity    float32
	Range        float32
	InnerConeDeg float32
	OuterConeDeg float32
	Direction    [3]float32
}

// rawEntry mirrors Entry's JSON shape with json.Number fields so every
// numeric literal can be run through the source format's int-unless-decimal
// promotion rule before being coerced to float32 for binding.
type rawEntry struct {
	Pos *[3]json.Number `json:"pos"`
	Rot *[3]json.Number `json:"rot"`

	Type         *string         `json:"type"`
	Color        *[3]json.Number `json:"color"`
	Intensity    *json.Number    `json:"intensity"`
	Range        *json.Number    `json:"range"`
	InnerConeDeg *json.Number    `json:"innerConeDeg"`
	OuterConeDeg *json.Number    `json:"outerConeDeg"`
	Direction    *[3]json.Number `json:"direction"`
}

// Load parses a scene configuration document into its named entries.
// Every numeric literal is decoded through json.Number so numbers written
// without a decimal point or exponent resolve as integers before being
// coerced to float32, matching the source format's numeric promotion rule.
func Load(r io.Reader) (map[string]Entry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]rawEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("sceneconfig: decoding document: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for name, re := range raw {
		e := Entry{}
		if re.Pos != nil {
			e.HasPos = true
			e.Pos = vec3(*re.Pos)
		}
		if re.Rot != nil {
			e.HasRot = true
			e.Rot = vec3(*re.Rot)
		}
		if re.Type != nil {
			le := &LightEntry{Type: *re.Type}
			if re.Color != nil {
				le.Color = vec3(*re.Color)
			}
			if re.Intensity != nil {
				le.Intensity = asFloat32(*re.Intensity)
			}
			if re.Range != nil {
				le.Range = asFloat32(*re.Range)
			}
			if re.InnerConeDeg != nil {
				le.InnerConeDeg = asFloat32(*re.InnerConeDeg)
			}
			if re.OuterConeDeg != nil {
				le.OuterConeDeg = asFloat32(*re.OuterConeDeg)
			}
			if re.Direction != nil {
				le.Direction = vec3(*re.Direction)
			}
			e.Light = le
		}
		entries[name] = e
	}
	return entries, nil
}

func vec3(n [3]json.Number) [3]float32 {
	return [3]float32{asFloat32(n[0]), asFloat32(n[1]), asFloat32(n[2])}
}

// LoadFile is a convenience wrapper reading the configuration from bytes
// already read into memory (e.g. an embedded asset or a file read by the
// caller), avoiding a direct os.Open dependency in this package.
func LoadFile(data []byte) (map[string]Entry, error) {
	return Load(bytes.NewReader(data))
}

// ApplyTransform applies an entry's pos/rot fields (whichever are present)
// to an existing game object, leaving unset fields untouched.
func ApplyTransform(obj game_object.GameObject, e Entry) {
	if e.HasPos {
		obj.SetPosition(e.Pos[0], e.Pos[1], e.Pos[2])
	}
	if e.HasRot {
		obj.SetRotation(e.Rot[0], e.Rot[1], e.Rot[2])
	}
}

// BuildLight constructs a light.Light from an entry's light fields. Returns
// nil if the entry carries no light descriptor or names an unknown type.
func BuildLight(e Entry) light.Light {
	if e.Light == nil {
		return nil
	}
	le := e.Light

	var lightType light.LightType
	switch le.Type {
	case "ambient":
		lightType = light.LightTypeAmbient
	case "directional":
		lightType = light.LightTypeDirectional
	case "point":
		lightType = light.LightTypePoint
	case "spot":
		lightType = light.LightTypeSpot
	default:
		return nil
	}

	return light.NewLight(lightType,
		light.WithColor(le.Color[0], le.Color[1], le.Color[2]),
		light.WithIntensity(le.Intensity),
		light.WithRange(le.Range),
		light.WithDirection(le.Direction[0], le.Direction[1], le.Direction[2]),
		light.WithSpotCone(le.InnerConeDeg, le.OuterConeDeg),
	)
}
