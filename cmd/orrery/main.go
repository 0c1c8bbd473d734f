// Command orrery maps a catalog onto a heading offline, from a saved scale answer.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"orrery-api/internal/logger"
	"orrery-api/internal/models"
	"orrery-api/internal/orrery"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	FromLat float64 `long:"from-lat" description:"Origin latitude" required:"true"`
	FromLon float64 `long:"from-lon" description:"Origin longitude" required:"true"`
	ToLat   float64 `long:"to-lat"   description:"Destination latitude" required:"true"`
	ToLon   float64 `long:"to-lon"   description:"Destination longitude" required:"true"`

	ScaleAnswer string `short:"s" long:"scale-answer" description:"File holding the scale query answer, - for stdin" required:"true"`
	Catalog     string `short:"c" long:"catalog"      description:"Catalog file" default:"configs/data.out"`
	Format      string `short:"f" long:"format"       description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Out         string `short:"o" long:"out"          description:"Output file, stdout when empty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Mapping failed")
	}
}

func run(opts Options, stdin io.Reader, stdout io.Writer) error {
	if opts.ScaleAnswer == "-" && opts.Catalog == "-" {
		return errors.New("only one of --scale-answer and --catalog can read stdin")
	}

	answer, err := readInput(opts.ScaleAnswer, stdin)
	if err != nil {
		return fmt.Errorf("read scale answer: %w", err)
	}
	catalogText, err := readInput(opts.Catalog, stdin)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	from := models.GeoPoint{Latitude: opts.FromLat, Longitude: opts.FromLon}
	to := models.GeoPoint{Latitude: opts.ToLat, Longitude: opts.ToLon}

	report, err := orrery.NewMapper().Map(from, to, answer, catalogText)
	if err != nil {
		return err
	}

	log.Debug().
		Float64("distance", report.Distance).
		Float64("heading", report.Heading).
		Int("placements", len(report.Placements)).
		Msg("Mapped catalog")

	out := stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return encode(out, opts.Format, report)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func encode(w io.Writer, format string, report *models.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	case "", "text":
		return orrery.EncodeText(w, report)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
