// Command swrastdemo renders a single textured, lit triangle through the
// full pipeline (scene -> renderer -> tile scheduler -> rasterizer -> AA
// resolve) and writes the resolved frame to a PNG file. It exercises the
// core from the outside exactly as an embedding application would: build a
// scene, build a renderer, call Frame once, hand the resolved buffer to a
// present callback.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/engine/camera"
	"github.com/oxy-go/swrast/engine/game_object"
	"github.com/oxy-go/swrast/engine/light"
	"github.com/oxy-go/swrast/engine/model"
	"github.com/oxy-go/swrast/engine/scene"
	"github.com/oxy-go/swrast/engine/shading"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/renderer"
	"github.com/oxy-go/swrast/texture"
)

func main() {
	width := flag.Int("w", 640, "render width in pixels")
	height := flag.Int("h", 480, "render height in pixels")
	out := flag.String("out", "frame.png", "output PNG path")
	texPath := flag.String("texture", "", "optional texture file (png/jpeg/bmp); a procedural checker is used if unset")
	mode := flag.String("mode", "halfspace", "rasterization mode: halfspace, scanline")
	aa := flag.String("aa", "msaa4x", "antialiasing mode: off, ssaa2x, ssaa4x, msaa4x")
	mipmaps := flag.Bool("mipmaps", true, "enable derivative-based mip level selection")
	flag.Parse()

	tex := loadOrBuildTexture(*texPath)

	obj := buildTriangle(tex)
	sun := light.NewLight(light.LightTypeDirectional,
		light.WithDirection(-0.4, -1, -0.3),
		light.WithColor(1, 1, 0.95),
		light.WithIntensity(1.2),
	)
	ambient := light.NewLight(light.LightTypeAmbient,
		light.WithColor(0.15, 0.15, 0.2),
		light.WithIntensity(1),
	)

	cam := camera.NewCamera(
		camera.WithFov(0.9),
		camera.WithAspect(float32(*width)/float32(*height)),
		camera.WithNear(0.1),
		camera.WithFar(100),
		camera.WithController(camera.NewOrbitController(
			camera.WithRadius(4),
			camera.WithAzimuth(0.6),
			camera.WithElevation(0.3),
		)),
	)

	sc := scene.NewScene(
		scene.WithName("demo"),
		scene.WithActive(true),
		scene.WithSceneCamera(cam),
		scene.WithObjects(obj),
		scene.WithLights(sun, ambient),
	)

	rm := parseRasterizationMode(*mode)
	am := parseAntialiasingMode(*aa)
	r := renderer.New(*width, *height, 4, rm, am)
	defer r.Close()
	r.SetClearColor(colorformat.Color32{R: 20, G: 20, B: 28, A: 255})
	r.SetMipmapsEnabled(*mipmaps)

	var written bool
	r.Frame(sc, func(color *framebuffer.RenderBuffer[colorformat.Color32]) {
		if err := writePNG(*out, color); err != nil {
			log.Fatalf("writing frame: %v", err)
		}
		written = true
	})
	if !written {
		log.Fatal("renderer never invoked the present callback")
	}
	log.Printf("wrote %s (%dx%d)", *out, *width, *height)
}

func parseRasterizationMode(s string) renderer.RasterizationMode {
	switch s {
	case "scanline":
		return renderer.RasterizationScanline
	default:
		return renderer.RasterizationHalfspace
	}
}

func parseAntialiasingMode(s string) renderer.AntialiasingMode {
	switch s {
	case "off":
		return renderer.AntialiasingOff
	case "ssaa2x":
		return renderer.AntialiasingSSAA2x
	case "ssaa4x":
		return renderer.AntialiasingSSAA4x
	default:
		return renderer.AntialiasingMSAA4x
	}
}

// buildTriangle constructs a single flat, textured, lit triangle centered
// at the origin, large enough to fill most of the default camera frustum.
func buildTriangle(tex texture.Texture) game_object.GameObject {
	verts := []raster.Vertex{
		{Position: [4]float32{0, 1, 0, 1}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0.5, 0}},
		{Position: [4]float32{-1, -1, 0, 1}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 1}},
		{Position: [4]float32{1, -1, 0, 1}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 1}},
	}
	indices := []uint32{0, 1, 2}

	m := model.NewModel(
		model.WithName("triangle"),
		model.WithVertices(verts),
		model.WithIndices(indices),
		model.WithMaterial(common.ImportedMaterial{Name: "triangle-material"}),
		model.WithBoundingSphere(model.BoundingSphere{Radius: 1.5}),
	)

	return game_object.NewGameObject(
		game_object.WithEnabled(true),
		game_object.WithModel(m),
		game_object.WithShader(shading.NewLitShader()),
		game_object.WithTexture(tex),
		game_object.WithCullMode(raster.CullNone),
	)
}

func loadOrBuildTexture(path string) texture.Texture {
	if path == "" {
		return texture.NewTexture(checkerPixels(64, 64), 64, 64, texture.WithFilterMode(texture.Bilinear))
	}

	imported := &common.ImportedTexture{Name: "diffuse", Path: path}
	rgba, w, h, err := imported.Decode()
	if err != nil {
		log.Fatalf("decoding texture %s: %v", path, err)
	}

	pixels, err := texture.FromRGBA(rgba, int(w), int(h))
	if err != nil {
		log.Fatalf("converting texture %s: %v", path, err)
	}
	return texture.NewTexture(pixels, int(w), int(h), texture.WithFilterMode(texture.Bilinear))
}

func checkerPixels(w, h int) []colorformat.Color32 {
	pixels := make([]colorformat.Color32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/8+y/8)%2 == 0 {
				pixels[y*w+x] = colorformat.Color32{R: 230, G: 230, B: 230, A: 255}
			} else {
				pixels[y*w+x] = colorformat.Color32{R: 40, G: 40, B: 40, A: 255}
			}
		}
	}
	return pixels
}

func writePNG(path string, color *framebuffer.RenderBuffer[colorformat.Color32]) error {
	img := image.NewNRGBA(image.Rect(0, 0, color.Width(), color.Height()))
	data := color.Data()
	for y := 0; y < color.Height(); y++ {
		for x := 0; x < color.Width(); x++ {
			p := data[color.SampleOffset(x, y, 0)]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
