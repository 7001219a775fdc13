// Command diamondsquare generates an island heightfield and writes it out as
// images, raw heights and a water elevation for a host engine to load.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/z21kamon/Diamond-Square-Islands/terrain"
	"github.com/z21kamon/Diamond-Square-Islands/terrainio"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		signal.Reset()
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err.Error())
		os.Exit(1)
	}
}

type options struct {
	out    string
	config string
	cfg    terrain.Config
}

func (opts *options) flags(stderr io.Writer) *flag.FlagSet {
	f := flag.NewFlagSet("diamondsquare", flag.ContinueOnError)
	f.SetOutput(stderr)
	f.StringVar(&opts.out, "out", opts.out, "directory to write artifacts into")
	f.StringVar(&opts.config, "config", opts.config, "JSON configuration file; flags override it")
	opts.cfg.AddFlags(f)
	return f
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return runFS(ctx, osfs.New(""), args, stdout, stderr)
}

func runFS(ctx context.Context, fs billy.Filesystem, args []string, stdout, stderr io.Writer) error {
	opts := options{out: ".", cfg: terrain.DefaultConfig()}
	if err := opts.flags(stderr).Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.config != "" {
		cfg, err := terrain.LoadConfig(fs, opts.config)
		if err != nil {
			return err
		}
		// Parse again over the loaded file so that explicit flags win.
		opts.cfg = cfg
		if err := opts.flags(stderr).Parse(args); err != nil {
			return err
		}
	}

	t, err := terrain.New(opts.cfg)
	if err != nil {
		return err
	}
	t.Logf = log.New(stderr, "", log.LstdFlags).Printf

	if err := t.Generate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := terrainio.WriteAll(fs, opts.out, terrainio.Artifacts{
		Field:  t.Field(),
		Colors: t.Colors(),
		Water:  t.WaterElevation(),
	}); err != nil {
		return err
	}

	for _, name := range []string{
		terrainio.HeightName,
		terrainio.ColorName,
		terrainio.RawName,
		terrainio.WaterName,
	} {
		fmt.Fprintln(stdout, path.Join(opts.out, name))
	}
	fmt.Fprintf(stdout, "seed %v water %g\n", t.Seed(), t.WaterElevation())
	return nil
}
