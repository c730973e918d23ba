package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fernlight/go-pathtracer/pkg/core"
	"github.com/fernlight/go-pathtracer/pkg/integrator"
)

// Options configures a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int // Defaults to NumCPU when <= 0
	Seed            int64
	Logger          *zap.Logger
}

// Renderer drives parallel evaluation of camera rays over an immutable
// scene graph. Rows are distributed across a worker pool; each worker owns
// a seeded sampler, so no two rays share a random sequence and no scene
// structure is ever locked.
type Renderer struct {
	world      core.Hittable
	lights     core.Hittable
	camera     *Camera
	integrator integrator.Integrator
}

// NewRenderer creates a renderer over the given scene components
func NewRenderer(world, lights core.Hittable, camera *Camera, integ integrator.Integrator) *Renderer {
	return &Renderer{
		world:      world,
		lights:     lights,
		camera:     camera,
		integrator: integ,
	}
}

// Render evaluates all pixels and returns the gamma-corrected image
func (r *Renderer) Render(opts Options) *image.RGBA {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("render started",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("samples", opts.SamplesPerPixel),
		zap.Int("workers", workers),
	)
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	rows := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerSeed := opts.Seed + int64(w)*104729
		go func(seed int64) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
			for y := range rows {
				r.renderRow(img, y, opts, sampler)
			}
		}(workerSeed)
	}

	for y := 0; y < opts.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	logger.Info("render finished", zap.Duration("elapsed", time.Since(start)))
	return img
}

// renderRow accumulates all samples for one row into the image
func (r *Renderer) renderRow(img *image.RGBA, y int, opts Options, sampler core.Sampler) {
	for x := 0; x < opts.Width; x++ {
		var sum core.Vec3
		for s := 0; s < opts.SamplesPerPixel; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(opts.Width-1)
			v := (float64(y) + jitter.Y) / float64(opts.Height-1)

			ray := r.camera.GetRay(u, v, sampler)
			sum = sum.Add(r.integrator.Li(ray, r.world, r.lights, sampler))
		}

		// Image origin is top-left, camera v axis points up
		img.SetRGBA(x, opts.Height-1-y, encodeColor(sum, opts.SamplesPerPixel))
	}
}

// encodeColor averages accumulated samples, gamma-corrects and clamps
func encodeColor(sum core.Vec3, samples int) color.RGBA {
	avg := sum.Multiply(1.0 / float64(samples))
	corrected := avg.GammaCorrect(2.0).Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}

// SavePNG writes an image to disk as PNG
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
