package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fonline-tools/fomap/pkg/config"
	"github.com/fonline-tools/fomap/pkg/hexmap"
	"github.com/fonline-tools/fomap/pkg/version"

	"github.com/alecthomas/kong"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`
	Configs []string         `help:"Configuration files, merged in order." name:"config" short:"c" type:"file"`

	Coords struct {
		X    int  `arg:"" help:"Hex column."`
		Y    int  `arg:"" help:"Hex row."`
		Raw  bool `help:"Do not apply the configured origin."`
		Tile bool `help:"Print where a tile sprite on this hex is drawn."`
		Roof bool `help:"With --tile, place a roof instead of a ground tile."`
	} `cmd:"" help:"Convert a hex to pixel coordinates."`

	Pick struct {
		X float64 `arg:"" help:"Pixel x."`
		Y float64 `arg:"" help:"Pixel y."`
	} `cmd:"" help:"Find the hex under a pixel. Needs map.width and map.height."`

	Edge struct {
		Direction string   `arg:"" enum:"up,down,left,right" help:"One of up, down, left, right."`
		Hexes     []string `arg:"" help:"Hexes as x,y pairs."`
	} `cmd:"" help:"Find the outermost pixel position of a group of hexes."`

	Object struct {
		X      int `arg:"" help:"Hex column."`
		Y      int `arg:"" help:"Hex row."`
		Proto  int `arg:"" help:"Prototype id."`
		ShiftX int `help:"Instance shift on x."`
		ShiftY int `help:"Instance shift on y."`
	} `cmd:"" help:"Place an object sprite using the configured proto table."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func printPoint(point hexmap.Point) {
	fmt.Printf("%g %g\n", point.X, point.Y)
}

func parseHex(value string) (hexmap.Hex, error) {
	var hex hexmap.Hex
	_, err := fmt.Sscanf(value, "%d,%d", &hex.X, &hex.Y)
	if err != nil {
		return hex, fmt.Errorf("invalid hex %q, expected x,y", value)
	}
	return hex, nil
}

func edgeCommand(transform *hexmap.Transform) error {
	dir, err := hexmap.ParseDirection(CLI.Edge.Direction)
	if err != nil {
		return err
	}

	hexes := make([]hexmap.Hex, 0, len(CLI.Edge.Hexes))
	for _, value := range CLI.Edge.Hexes {
		hex, err := parseHex(value)
		if err != nil {
			return err
		}
		hexes = append(hexes, hex)
	}

	printPoint(transform.EdgeCoords(hexes, dir))
	return nil
}

func objectCommand(ctx context.Context, settings *config.Config, transform *hexmap.Transform) error {
	args := CLI.Object
	if args.Proto < 0 || args.Proto > 0xFFFF {
		return fmt.Errorf("proto id %d out of range", args.Proto)
	}

	resolver, err := settings.Resolver(ctx)
	if err != nil {
		return err
	}

	proto, err := resolver.Lookup(ctx, uint16(args.Proto))
	if err != nil {
		return fmt.Errorf("proto %d: %w", args.Proto, err)
	}

	printPoint(transform.ObjectCoords(
		hexmap.Hex{X: args.X, Y: args.Y},
		proto.Sprite,
		hexmap.Offset{X: args.ShiftX, Y: args.ShiftY},
		proto.Anchor,
	))
	return nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("fomap"),
		kong.Description("hex map geometry tools"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf(
				"fomap %s (commit %s, built %s)",
				version.Version,
				version.GitCommit,
				version.BuildTime,
			),
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	settings, err := config.Process(CLI.Configs)
	if err != nil {
		writeError(err)
	}
	transform := settings.Transform()

	switch ctx.Command() {
	case "coords <x> <y>":
		hex := hexmap.Hex{X: CLI.Coords.X, Y: CLI.Coords.Y}
		switch {
		case CLI.Coords.Tile:
			printPoint(transform.TileCoords(hex, CLI.Coords.Roof))
		default:
			printPoint(transform.ToPixel(hex, !CLI.Coords.Raw))
		}
	case "pick <x> <y>":
		if opt.IsNone(transform.Bounds()) {
			writeError(fmt.Errorf("picking needs map.width and map.height in the configuration"))
		}
		hex := transform.PixelToHex(
			hexmap.Point{X: CLI.Pick.X, Y: CLI.Pick.Y},
			transform.Bounds().Value.Width,
			transform.Bounds().Value.Height,
		)
		if hex == hexmap.NoHex {
			log.Debug().Msg("no hex under the point")
		}
		fmt.Printf("%d %d\n", hex.X, hex.Y)
	case "edge <direction> <hexes>":
		if err := edgeCommand(transform); err != nil {
			writeError(err)
		}
	case "object <x> <y> <proto>":
		if err := objectCommand(context.Background(), settings, transform); err != nil {
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.DEFAULT)
	}
}
