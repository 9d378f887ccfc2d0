package clicmds

import (
	"context"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/webpilot/driver"
	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/store"
	"gitlab.com/webpilot/webpilot"
)

// ProbeFlags for the probe command
func ProbeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "driver websocket endpoint",
			Value: "ws://localhost:9777",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config to use",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "selector",
			Usage: "selector to resolve",
			Value: "input, select, textarea",
		},
		&cli.StringFlag{
			Name:  "attr",
			Usage: "attribute to read from each match",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "tracedir",
			Usage: "record protocol traffic under this directory",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
			Value: false,
		},
	}
}

func loadConfig(ctx *cli.Context) (*webpilot.Config, error) {
	cfg := &webpilot.Config{
		Endpoint: ctx.String("endpoint"),
		TraceDir: ctx.String("tracedir"),
	}
	if ctx.String("config") == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	if err := toml.NewDecoder(strings.NewReader(string(data))).Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = ctx.String("endpoint")
	}
	return cfg, nil
}

// Probe connects to a driver, waits for a page and resolves a selector
// against it, printing the match count and per-match text.
func Probe(ctx *cli.Context) error {
	if ctx.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var recorder proto.Recorder
	if cfg.TraceDir != "" {
		traces := store.NewTraceStore(cfg.TraceDir)
		if err := traces.Init(); err != nil {
			log.Error().Err(err).Msg("failed to init trace store")
			return err
		}
		defer traces.Close()
		recorder = traces
	}

	transport, err := proto.DialWebSocket(cfg.Endpoint)
	if err != nil {
		log.Error().Err(err).Str("endpoint", cfg.Endpoint).Msg("failed to connect")
		return err
	}

	session := driver.NewSession(transport, recorder)
	defer session.Close()
	if cfg.TimeoutMS > 0 {
		session.SetDefaultTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond)
	}

	probeCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	page, err := session.WaitForPage(probeCtx)
	if err != nil {
		log.Error().Err(err).Msg("no page announced")
		return err
	}

	sel := ctx.String("selector")
	loc, err := page.Locator(sel)
	if err != nil {
		return err
	}

	count, err := loc.Count(probeCtx)
	if err != nil {
		return err
	}
	fmt.Printf("%q matched %d element(s)\n", sel, count)

	for i := 0; i < count; i++ {
		nth, err := loc.Nth(probeCtx, i)
		if err != nil {
			return err
		}
		if attr := ctx.String("attr"); attr != "" {
			value, err := nth.GetAttribute(probeCtx, attr, 0)
			if err != nil {
				return err
			}
			if value == nil {
				fmt.Printf("  [%d] %s=<absent>\n", i, attr)
			} else {
				fmt.Printf("  [%d] %s=%q\n", i, attr, *value)
			}
			continue
		}
		text, err := nth.TextContent(probeCtx, 0)
		if err != nil {
			return err
		}
		if text == nil {
			fmt.Printf("  [%d] <no text>\n", i)
		} else {
			fmt.Printf("  [%d] %q\n", i, *text)
		}
	}
	return nil
}
