// Command landmark-augment runs a seeded augmentation pipeline over a single
// image and its landmark file, writing the augmented pair back to disk. It
// exists as a smoke-test harness and usage example for the library; training
// loops should drive the pipeline packages directly.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
	"github.com/ironsheep/landmark-augment/internal/pipeline"
	"github.com/ironsheep/landmark-augment/internal/transforms"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	var (
		inPath   = flag.String("in", "", "input image (png/jpeg/gif)")
		lmsPath  = flag.String("landmarks", "", "input landmarks JSON: [[x,y], ...]")
		outPath  = flag.String("out", "augmented.png", "output image path")
		outLms   = flag.String("out-landmarks", "augmented.json", "output landmarks JSON path")
		size     = flag.Int("size", 256, "target square size of the resize step")
		seed     = flag.Uint64("seed", 42, "random seed")
		showVer  = flag.Bool("version", false, "print version and exit")
		logLevel = flag.String("log-level", "info", "log level (debug|info|warn|error)")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("landmark-augment %s (commit %s)\n", Version, GitCommit)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if *inPath == "" || *lmsPath == "" {
		logger.Fatal("both -in and -landmarks are required")
	}

	img, err := imaging.Open(*inPath)
	if err != nil {
		logger.Fatal("failed to open image", "err", err)
	}
	lms, err := readLandmarks(*lmsPath)
	if err != nil {
		logger.Fatal("failed to read landmarks", "err", err)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0xdeadbeef))
	pipe, err := defaultPipeline(*size, rng, logger)
	if err != nil {
		logger.Fatal("failed to build pipeline", "err", err)
	}

	outImg, outPts := pipe.Apply(img, lms)
	logger.Info("pipeline complete", "steps", len(pipe.Flags()), "flags", pipe.Flags())

	if err := imaging.Save(outImg, *outPath); err != nil {
		logger.Fatal("failed to save image", "err", err)
	}
	if err := writeLandmarks(*outLms, outPts); err != nil {
		logger.Fatal("failed to write landmarks", "err", err)
	}
	logger.Info("wrote augmented pair", "image", *outPath, "landmarks", *outLms)
}

// defaultPipeline mirrors a typical training configuration: geometric
// jitter, photometric jitter, then a fixed-size resize.
func defaultPipeline(size int, rng *rand.Rand, logger *log.Logger) (*pipeline.Compose, error) {
	flip, err := transforms.NewRandomHorizontalFlip(0.5, transforms.WithRand(rng))
	if err != nil {
		return nil, err
	}
	scale, err := transforms.NewRandomScale(transforms.Sym(0.2), 0.5, true, transforms.WithRand(rng))
	if err != nil {
		return nil, err
	}
	rotate, err := transforms.NewRandomRotate(transforms.Sym(30), 0.5, 8, transforms.WithRand(rng))
	if err != nil {
		return nil, err
	}
	blur, err := transforms.NewRandomBlur(3, 11, nil, 0.3, transforms.WithRand(rng))
	if err != nil {
		return nil, err
	}
	bright, err := transforms.NewRandomBrightness(transforms.Range{Lo: -30, Hi: 30}, transforms.Range{Lo: 0.5, Hi: 1.5}, 0.3, transforms.WithRand(rng))
	if err != nil {
		return nil, err
	}
	resize, err := transforms.NewResize(size, size, true)
	if err != nil {
		return nil, err
	}

	return pipeline.New(
		[]transforms.Transform{flip, scale, rotate, blur, bright, resize},
		pipeline.WithLogger(logger),
	)
}

func readLandmarks(path string) ([]geometry.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pairs [][2]float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("landmarks must be a JSON array of [x, y] pairs: %w", err)
	}
	lms := make([]geometry.Point, len(pairs))
	for i, p := range pairs {
		lms[i] = geometry.Point{X: p[0], Y: p[1]}
	}
	return lms, nil
}

func writeLandmarks(path string, lms []geometry.Point) error {
	pairs := make([][2]float64, len(lms))
	for i, p := range lms {
		pairs[i] = [2]float64{p.X, p.Y}
	}
	raw, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
