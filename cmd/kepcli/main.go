// Command kepcli prints mini-kep data as tables.
//
//	kepcli [-config path] freqs
//	kepcli [-config path] names <freq|index>
//	kepcli [-config path] series [-kind chart] [-from YYYY-MM-DD] [-to YYYY-MM-DD] <freq> <name>
//
// Without -from and -to, series is clipped to the time range of the chart preset.
//	kepcli [-config path] frame <freq> <name,name,...>
//	kepcli [-config path] infer <freq> <name>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"KepViz/internal/domain/models"
	"KepViz/internal/service/minikep"
	"KepViz/internal/usecase"
	"KepViz/pkg/config"
	xhttp "KepViz/pkg/http"
	applogger "KepViz/pkg/logger"
	"KepViz/pkg/util"
)

var errUsage = errors.New("usage: kepcli [-config path] <freqs|names|series|frame|infer> [args]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cli struct {
	out    io.Writer
	series *usecase.SeriesUseCase
	kind   models.ChartKind
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kepcli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file path (defaults when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     "stderr",
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		return err
	}
	kind, err := models.ParseChartKind(cfg.Viewer.ChartKind)
	if err != nil {
		return err
	}

	httpClient := xhttp.NewClient(
		xhttp.WithTimeout(cfg.API.Timeout),
		xhttp.WithUserAgent(cfg.API.UserAgent),
	)
	src := minikep.New(cfg.API.BaseURL, httpClient, nil, l)
	c := &cli{out: stdout, series: usecase.NewSeriesUseCase(src), kind: kind}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "freqs":
		return c.freqs()
	case "names":
		return c.names(ctx, rest)
	case "series":
		return c.seriesCmd(ctx, rest, stderr)
	case "frame":
		return c.frame(ctx, rest)
	case "infer":
		return c.infer(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

func (c *cli) freqs() error {
	renderOptions(c.out, "frequencies", models.FrequencyOptions())
	return nil
}

// names takes a frequency code or its position in the frequency list.
func (c *cli) names(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("names needs <freq|index>\n%w", errUsage)
	}
	freq := models.Frequency(args[0])
	if i, err := strconv.Atoi(args[0]); err == nil {
		if freq, err = models.FrequencyByIndex(i); err != nil {
			return err
		}
	}
	names, err := c.series.Names(ctx, freq)
	if err != nil {
		return err
	}
	renderOptions(c.out, "names ("+string(freq)+")", models.NameOptions(names))
	return nil
}

func (c *cli) seriesCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("series", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", string(c.kind), "chart preset: "+kindList())
	from := fs.String("from", "", "first date, YYYY-MM-DD")
	to := fs.String("to", "", "last date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("series needs <freq> <name>\n%w", errUsage)
	}

	k, err := models.ParseChartKind(*kind)
	if err != nil {
		return err
	}
	style, err := models.StyleFor(k)
	if err != nil {
		return err
	}

	params := usecase.GetSeriesParams{Freq: models.Frequency(fs.Arg(0)), Name: fs.Arg(1)}
	if *from == "" && *to == "" {
		params.Range = style.TimeRange
	}
	if *from != "" {
		if params.Range.Start, err = util.ParseDate(*from); err != nil {
			return fmt.Errorf("-from: %w", err)
		}
	}
	if *to != "" {
		if params.Range.End, err = util.ParseDate(*to); err != nil {
			return fmt.Errorf("-to: %w", err)
		}
	}

	s, err := c.series.GetSeries(ctx, params)
	if err != nil {
		return err
	}
	renderSeries(c.out, s, k, style)
	return nil
}

func (c *cli) frame(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("frame needs <freq> <name,name,...>\n%w", errUsage)
	}
	f, err := c.series.Frame(ctx, models.Frequency(args[0]), util.SplitCSV(args[1])...)
	if err != nil {
		return err
	}
	renderFrame(c.out, f)
	return nil
}

func (c *cli) infer(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("infer needs <freq> <name>\n%w", errUsage)
	}
	dates, _, err := c.series.Columns(ctx, models.Frequency(args[0]), args[1])
	if err != nil {
		return err
	}
	freq, ok := usecase.InferFrequency(dates)
	if !ok {
		fmt.Fprintf(c.out, "%s: frequency not inferred from %d dates\n", args[1], len(dates))
		return nil
	}
	fmt.Fprintf(c.out, "%s: %s (%s)\n", args[1], freq, freq.Label())
	return nil
}

func kindList() string {
	kinds := models.ChartKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return strings.Join(out, ", ")
}
