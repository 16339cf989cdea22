package shader

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Mercury renders a cratered, arid surface lit hard by the nearby sun.
func Mercury() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		craterNoise := Turbulence(np.Scale(12), 4, NoisePerlin)
		craterFactor := Smoothstep(0.65, 0.75, craterNoise)

		baseColor := mathutil.Vec3{0.5, 0.45, 0.4}
		craterColor := mathutil.Vec3{0.35, 0.3, 0.28}
		surface := Mix(baseColor, craterColor, craterFactor*0.6)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Max(normal.Dot(lightDir), 0)*0.8 + 0.2

		return raster.ColorFromVec3(surface.Scale(diffuse * 1.1))
	}
}

// Venus renders a dense sulfuric cloud deck drifting with time.
func Venus() raster.Shader {
	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		cloud1 := Turbulence(np.Scale(4).Add(mathutil.Vec3{time * 0.05, 0, 0}), 3, NoiseSimplex)
		cloud2 := Turbulence(np.Scale(6).Sub(mathutil.Vec3{time * 0.08, time * 0.03, 0}), 4, NoiseSimplex)
		cloudPattern := (cloud1 + cloud2) * 0.5

		baseColor := mathutil.Vec3{0.9, 0.85, 0.6}
		cloudColor := mathutil.Vec3{0.95, 0.8, 0.5}
		atmosphere := Mix(baseColor, cloudColor, cloudPattern)

		lightDir := mathutil.Vec3{1, 0.3, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.5 + 0.5

		return raster.ColorFromVec3(atmosphere.Scale(diffuse))
	}
}

// Earth renders continents, oceans with specular highlights, polar-leaning
// terrain bands, and animated cloud cover.
func Earth() raster.Shader {
	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		height := np[1]
		continentNoise := Turbulence(np.Scale(3), 3, NoisePerlin)

		var baseColor mathutil.Vec3
		if continentNoise > 0.5 {
			switch {
			case height > 0.5:
				baseColor = mathutil.Vec3{0.7, 0.65, 0.5} // mountains
			case height > 0.2:
				baseColor = mathutil.Vec3{0.3, 0.6, 0.2} // forests
			default:
				baseColor = mathutil.Vec3{0.6, 0.7, 0.4} // plains
			}
		} else {
			baseColor = mathutil.Vec3{0.1, 0.3, 0.6} // ocean
		}

		cloudPattern := Turbulence(np.Scale(8).Add(mathutil.Vec3{time * 0.02, 0, time * 0.01}), 3, NoiseSimplex)
		clouds := Smoothstep(0.6, 0.7, cloudPattern)
		withClouds := Mix(baseColor, mathutil.Vec3{1, 1, 1}, clouds*0.8)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Max(normal.Dot(lightDir), 0)*0.7 + 0.3

		var specular float32
		if continentNoise <= 0.5 {
			viewDir := mathutil.Vec3{0, 0, 1}
			halfVec := lightDir.Add(viewDir).Normalize()
			specular = math32.Pow(math32.Max(normal.Dot(halfVec), 0), 32) * 0.4
		}

		final := withClouds.Scale(diffuse).Add(mathutil.Vec3{1, 1, 1}.Scale(specular))
		return raster.ColorFromVec3(final)
	}
}

// Mars renders rust terrain with polar ice caps and crater shadowing.
func Mars() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		terrainNoise := Turbulence(np.Scale(5), 4, NoisePerlin)
		baseColor := Mix(mathutil.Vec3{0.7, 0.3, 0.2}, mathutil.Vec3{0.5, 0.2, 0.15}, terrainNoise*0.5)

		polarIce := Smoothstep(0.7, 0.85, math32.Abs(np[1]))
		surface := Mix(baseColor, mathutil.Vec3{0.9, 0.9, 0.95}, polarIce*0.7)

		craterNoise := Turbulence(np.Scale(15), 3, NoisePerlin)
		craterFactor := Smoothstep(0.7, 0.8, craterNoise)
		cratered := Mix(surface, surface.Scale(0.6), craterFactor*0.4)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Max(normal.Dot(lightDir), 0)*0.7 + 0.3

		return raster.ColorFromVec3(cratered.Scale(diffuse))
	}
}

// Jupiter renders latitude bands, drifting turbulence, the Great Red Spot,
// and a soft terminator.
func Jupiter() raster.Shader {
	bandColors := []mathutil.Vec3{
		{0.8, 0.7, 0.6},
		{0.9, 0.8, 0.7},
		{0.7, 0.6, 0.5},
		{0.85, 0.75, 0.65},
	}
	spotCenter := mathutil.Vec3{0.5, -0.15, 0}.Normalize()

	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		latitude := np[1]
		const bandCount = 14
		band := int(math32.Floor((latitude + 1) * 0.5 * bandCount))
		baseColor := bandColors[band%len(bandColors)]

		longitude := math32.Atan2(np[2], np[0])
		turb := SimplexNoise(longitude*10+time*0.3, latitude*8, time*0.1)
		turbulent := Mix(baseColor, baseColor.Scale(1.15), turb*0.3)

		distToSpot := np.Sub(spotCenter).Len()
		spotFactor := Smoothstep(0.3, 0.15, distToSpot)
		withSpot := Mix(turbulent, mathutil.Vec3{0.8, 0.3, 0.2}, spotFactor*0.8)

		lightDir := mathutil.Vec3{1, 0.3, 1}.Normalize()
		terminator := Smoothstep(-0.2, 0.3, normal.Dot(lightDir))
		final := withSpot.Scale(0.3 + terminator*0.7)

		return raster.ColorFromVec3(final)
	}
}

// Saturn renders softer bands than Jupiter with subtle turbulence.
func Saturn() raster.Shader {
	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		bandPattern := math32.Sin(np[1]*10+time*0.1)*0.5 + 0.5
		baseColor := Mix(mathutil.Vec3{0.85, 0.8, 0.65}, mathutil.Vec3{0.9, 0.85, 0.7}, bandPattern)

		turb := SimplexNoise(np[0]*6+time*0.2, np[1]*6, np[2]*6)
		surface := baseColor.Scale(0.9 + turb*0.2)

		lightDir := mathutil.Vec3{1, 0.3, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.6 + 0.4

		return raster.ColorFromVec3(surface.Scale(diffuse))
	}
}

// Uranus renders the planet's flat methane cyan with faint variation.
func Uranus() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		atmosphereNoise := Turbulence(np.Scale(4), 3, NoiseSimplex)
		varied := mathutil.Vec3{0.6, 0.8, 0.85}.Scale(0.9 + atmosphereNoise*0.2)

		lightDir := mathutil.Vec3{1, 0.3, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.5 + 0.5

		return raster.ColorFromVec3(varied.Scale(diffuse))
	}
}

// Neptune renders deep blue with moving storms and the Great Dark Spot.
func Neptune() raster.Shader {
	spotCenter := mathutil.Vec3{0.3, 0.2, 0}.Normalize()

	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		storm := SimplexNoise(np[0]*8+time*0.15, np[1]*8, np[2]*8+time*0.1)
		atmosphere := Mix(mathutil.Vec3{0.3, 0.4, 0.8}, mathutil.Vec3{0.4, 0.5, 0.9}, storm*0.4)

		distToSpot := np.Sub(spotCenter).Len()
		spotFactor := Smoothstep(0.25, 0.15, distToSpot)
		withSpot := Mix(atmosphere, mathutil.Vec3{0.2, 0.25, 0.5}, spotFactor*0.6)

		lightDir := mathutil.Vec3{1, 0.3, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.6 + 0.4

		return raster.ColorFromVec3(withSpot.Scale(diffuse))
	}
}

// RockyPlanet is the fallback shader for unnamed terrestrial bodies.
func RockyPlanet() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		height := np[1]
		var baseColor mathutil.Vec3
		switch {
		case height > 0.4:
			baseColor = mathutil.Vec3{0.7, 0.5, 0.3}
		case height > 0:
			baseColor = mathutil.Vec3{0.4, 0.6, 0.3}
		case height > -0.3:
			baseColor = mathutil.Vec3{0.8, 0.7, 0.5}
		default:
			baseColor = mathutil.Vec3{0.1, 0.3, 0.6}
		}

		continentNoise := Turbulence(np.Scale(3), 3, NoisePerlin)
		varied := Mix(baseColor, baseColor.Scale(0.8), continentNoise*0.3)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.6 + 0.4

		return raster.ColorFromVec3(varied.Scale(diffuse))
	}
}

// Moon renders a gray cratered satellite with fine-grained detail noise.
func Moon() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		craterNoise := Turbulence(np.Scale(8), 3, NoisePerlin)
		crater := Smoothstep(0.6, 0.8, craterNoise)
		surface := Mix(mathutil.Vec3{0.4, 0.4, 0.45}, mathutil.Vec3{0.25, 0.25, 0.28}, crater*0.6)

		detail := PerlinNoise(np[0]*30, np[1]*30, np[2]*30)
		detailed := surface.Scale(0.9 + detail*0.2)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.7 + 0.3

		return raster.ColorFromVec3(detailed.Scale(diffuse))
	}
}

// Asteroid renders an irregular pitted rock.
func Asteroid() raster.Shader {
	return func(pos, normal mathutil.Vec3, _ float32) raster.Color {
		np := pos.Normalize()

		surfaceNoise := Turbulence(np.Scale(10), 4, NoisePerlin)
		pits := Smoothstep(0.55, 0.75, Turbulence(np.Scale(20), 3, NoiseCellular))

		baseColor := Mix(mathutil.Vec3{0.45, 0.4, 0.35}, mathutil.Vec3{0.3, 0.27, 0.24}, surfaceNoise*0.6)
		pitted := Mix(baseColor, baseColor.Scale(0.5), pits*0.5)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.7 + 0.3

		return raster.ColorFromVec3(pitted.Scale(diffuse))
	}
}

// PlanetRing shades a flat annulus mesh with alternating dust bands. The
// band and fade math treats the incoming position as ring-local (annulus
// radius 1.2 to 2.3), but the pipeline hands shaders the interpolated world
// position, so at planetary world distances the fade window never matches
// and the shader yields the given background color. Inherited behavior,
// kept as-is; the edge fade stands in for transparency the pipeline does
// not have.
func PlanetRing(background raster.Color) raster.Shader {
	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		distFromCenter := math32.Sqrt(pos[0]*pos[0] + pos[2]*pos[2])

		const bandCount = 15
		band := int(math32.Floor(distFromCenter * bandCount))

		baseColor := mathutil.Vec3{0.6, 0.5, 0.4}
		if band%2 == 0 {
			baseColor = mathutil.Vec3{0.8, 0.7, 0.6}
		}

		noiseVal := PerlinNoise(pos[0]*20, time*0.1, pos[2]*20)
		withNoise := baseColor.Scale(0.8 + noiseVal*0.4)

		lightDir := mathutil.Vec3{1, 0.5, 1}.Normalize()
		lit := withNoise.Scale(0.5 + math32.Abs(normal.Dot(lightDir))*0.5)

		alphaInner := Smoothstep(0, 0.05, distFromCenter-1.3)
		alphaOuter := Smoothstep(2.2, 2.0, distFromCenter)
		alpha := alphaInner * alphaOuter

		if alpha < 0.3 {
			return background
		}
		return raster.ColorFromVec3(lit.Scale(alpha))
	}
}

// Metallic is a simple specular hull shader for the ship model.
func Metallic() raster.Shader {
	return func(_, normal mathutil.Vec3, _ float32) raster.Color {
		baseColor := mathutil.Vec3{0.7, 0.75, 0.8}

		lightDir := mathutil.Vec3{1, 1, 1}.Normalize()
		diffuse := math32.Abs(normal.Dot(lightDir))*0.6 + 0.4

		viewDir := mathutil.Vec3{0, 0, 1}
		halfVec := lightDir.Add(viewDir).Normalize()
		specular := math32.Pow(math32.Max(normal.Dot(halfVec), 0), 32) * 0.5

		final := baseColor.Scale(diffuse).Add(mathutil.Vec3{1, 1, 1}.Scale(specular))
		return raster.ColorFromVec3(final)
	}
}
