package clicmds

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"gitlab.com/webpilot/store"
)

// TraceFlags for the trace command
func TraceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "tracedir",
			Usage: "trace store directory to read",
			Value: "webpilot-traces",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "dump full envelopes instead of a summary line",
			Value: false,
		},
	}
}

// Trace walks a recorded trace store and prints every envelope in
// capture order.
func Trace(ctx *cli.Context) error {
	traces := store.NewTraceStore(ctx.String("tracedir"))
	if err := traces.Init(); err != nil {
		return err
	}
	defer traces.Close()

	verbose := ctx.Bool("verbose")
	return traces.Walk(func(entry *store.TraceEntry) error {
		if verbose {
			spew.Dump(entry)
			return nil
		}
		env := entry.Envelope
		fmt.Printf("%06d %s %-4s id=%d guid=%s method=%s\n",
			entry.Seq,
			entry.Time.Format("15:04:05.000"),
			entry.Direction,
			env.ID,
			env.GUID,
			env.Method,
		)
		return nil
	})
}
