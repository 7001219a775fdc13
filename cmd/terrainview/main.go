// Command terrainview shows generated islands in a window. Enter generates a
// new island and X resets to a flat, empty field.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/z21kamon/Diamond-Square-Islands/terrain"

	"go.uber.org/multierr"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

const windowSize = 768

type viewer struct {
	terrain *terrain.Terrain
	texture *ebiten.Image
	dirty   bool
	status  string
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := v.terrain.Generate(); err != nil {
			return err
		}
		v.dirty = true
		v.status = fmt.Sprintf("seed %v water %.4g submerged %v",
			v.terrain.Seed(), v.terrain.WaterElevation(), v.terrain.Coverage())
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		if err := v.terrain.Reset(); err != nil {
			return err
		}
		v.dirty = true
		v.status = "reset"
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	}
	return nil
}

var errQuit = errors.New("quit")

func (v *viewer) Draw(screen *ebiten.Image) {
	colors := v.terrain.Colors()
	if v.texture == nil || v.texture.Bounds() != colors.Bounds() {
		v.texture = ebiten.NewImage(colors.Bounds().Dx(), colors.Bounds().Dy())
		v.dirty = true
	}
	if v.dirty {
		v.texture.WritePixels(colors.Pix)
		v.dirty = false
	}

	var op ebiten.DrawImageOptions
	size := screen.Bounds().Size()
	op.GeoM.Scale(
		float64(size.X)/float64(colors.Bounds().Dx()),
		float64(size.Y)/float64(colors.Bounds().Dy()),
	)
	screen.DrawImage(v.texture, &op)

	ebitenutil.DebugPrint(screen, "Enter: generate  X: reset  Esc: quit\n"+v.status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}

func main() {
	if err := run(); err != nil && !errors.Is(err, errQuit) {
		log.Fatalln(err)
	}
}

func run() error {
	cfg := terrain.DefaultConfig()
	var (
		configPath string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "JSON configuration file; flags override it")
	flag.StringVar(&logPath, "log", "terrainview.log", "file to log to")
	cfg.AddFlags(flag.CommandLine)
	flag.Parse()

	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	f, err := os.Create(logPath)
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)

	t, err := terrain.New(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowTitle("Diamond-Square Islands")
	return ebiten.RunGame(&viewer{
		terrain: t,
		dirty:   true,
		status:  "reset",
	})
}

// loadConfig reads a configuration file and applies every flag given on the
// command line over it.
func loadConfig(name string) (terrain.Config, error) {
	cfg, err := terrain.LoadConfig(osfs.New(""), name)
	if err != nil {
		return cfg, err
	}
	over := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.AddFlags(over)
	flag.Visit(func(f *flag.Flag) {
		if over.Lookup(f.Name) != nil {
			err = multierr.Append(err, over.Set(f.Name, f.Value.String()))
		}
	})
	return cfg, err
}
