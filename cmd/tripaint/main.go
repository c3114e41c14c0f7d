package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mzelazko/tripaint"
	"github.com/mzelazko/tripaint/utils"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination file or directory")
	points      = flag.Int("points", tripaint.DefaultContourPoints, "Boundary points per contour")
	density     = flag.Int("density", tripaint.DefaultInteriorDensity, "Interior point density")
	extractor   = flag.String("extractor", "edge", "Contour extractor: edge or trace")
	blurRadius  = flag.Int("blur", 4, "Blur radius (edge extractor)")
	sobel       = flag.Float64("sobel", 48, "Sobel filter threshold (edge extractor)")
	threshold   = flag.Int("threshold", 128, "Luminance threshold (trace extractor)")
	minArea     = flag.Float64("minarea", tripaint.DefaultMinContourArea, "Minimum contour area")
	lineWidth   = flag.Float64("width", 1, "Wireframe line width")
	markers     = flag.Bool("markers", false, "Mark interior sample points")
	grayscale   = flag.Bool("gray", false, "Convert the base image to grayscale")
	noise       = flag.Int("noise", 0, "Noise factor")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: tripaint -in input.jpg -out out.png")
	}

	if *verbose {
		tripaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := tripaint.Parameters{
		ContourPoints:   *points,
		InteriorDensity: *density,
	}.Clamp()

	ext, err := newExtractor()
	if err != nil {
		log.Fatal(err)
	}

	toProcess := make(map[string]string)

	// A URL source is fetched into a temporary file first.
	if strings.HasPrefix(*source, "http://") || strings.HasPrefix(*source, "https://") {
		file, err := utils.DownloadImage(*source)
		if err != nil {
			log.Fatalf("Unable to download image: %v", err)
		}
		defer os.Remove(file.Name())
		file.Close()
		toProcess[file.Name()] = *destination
	} else {
		fs, err := os.Stat(*source)
		if err != nil {
			log.Fatalf("Unable to open source: %v", err)
		}

		switch mode := fs.Mode(); {
		case mode.IsDir():
			// Supported image files.
			extensions := []string{".jpg", ".jpeg", ".png"}

			files, err := os.ReadDir(*source)
			if err != nil {
				log.Fatalf("Unable to read dir: %v", err)
			}

			dst, err := os.Stat(*destination)
			if err != nil {
				log.Fatalf("Unable to get dir stats: %v", err)
			}
			if dst.Mode().IsRegular() {
				log.Fatal("Please specify a directory as destination!")
			}
			output, err := filepath.Abs(*destination)
			if err != nil {
				log.Fatalf("Unable to get absolute path: %v", err)
			}

			for _, f := range files {
				fext := filepath.Ext(f.Name())
				for _, iex := range extensions {
					if fext == iex {
						name := strings.TrimSuffix(f.Name(), fext)
						in := filepath.Join(*source, f.Name())
						out := filepath.Join(output, name+".png")
						toProcess[in] = out
					}
				}
			}

		case mode.IsRegular():
			toProcess[*source] = *destination
		}
	}

	for in, out := range toProcess {
		if err := process(in, out, ext, params); err != nil {
			fmt.Fprintf(os.Stderr, "\nError converting image %s: %s\n", in, err)
		}
	}
}

func newExtractor() (tripaint.ContourExtractor, error) {
	switch *extractor {
	case "edge":
		e := tripaint.NewEdgeExtractor()
		e.BlurRadius = *blurRadius
		e.SobelThreshold = *sobel
		e.MinArea = *minArea
		return e, nil
	case "trace":
		t := tripaint.NewTraceExtractor()
		t.Threshold = uint8(*threshold)
		t.MinArea = *minArea
		return t, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q, expected edge or trace", *extractor)
	}
}

func process(in, out string, ext tripaint.ContourExtractor, params tripaint.Parameters) error {
	file, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("unable to open source file: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("unable to decode image: %w", err)
	}
	if *grayscale {
		src = tripaint.Grayscale(src)
	}

	s := utils.NewSpinner()
	s.Start("Generating paintable mesh...")
	start := time.Now()

	contours, err := ext.Extract(src)
	if err != nil {
		s.Stop()
		return err
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	mesh := tripaint.NewPaintableMesh(w, h)
	mesh.Rebuild(params, contours)

	r := tripaint.NewRenderer(src)
	r.LineWidth = *lineWidth
	r.DrawWireframe(mesh.Triangles())

	if *markers {
		for _, c := range contours {
			boundary := c.Resample(params.ContourPoints)
			r.DrawPoints(tripaint.InteriorPoints(boundary, w, h, params.InteriorDensity))
		}
	}
	s.Stop()

	if *noise > 0 {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, tripaint.Noise(*noise, r.Image())); err != nil {
			return fmt.Errorf("unable to encode output: %w", err)
		}
	} else if err := r.SavePNG(out); err != nil {
		return fmt.Errorf("unable to save output: %w", err)
	}

	fmt.Printf("\nGenerated in: %s%s%s\n",
		utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	fmt.Printf("Total of %s%d%s triangles generated out of %s%d%s contours\n",
		utils.SuccessColor, mesh.Len(), utils.DefaultColor,
		utils.SuccessColor, len(contours), utils.DefaultColor)
	fmt.Printf("Saved as: %s %s✓%s\n\n", path.Base(out), utils.SuccessColor, utils.DefaultColor)
	return nil
}
