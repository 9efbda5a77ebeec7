package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"industrial-site-be/internal/config"
	"industrial-site-be/pkg/events"
	pktNats "industrial-site-be/pkg/nats"

	"github.com/fatih/color"
)

// EventsCmd groups the event subcommands.
type EventsCmd struct {
	Watch EventsWatchCmd `cmd:"" help:"Print content events as they arrive"`
}

// EventsWatchCmd implements 'events watch'.
type EventsWatchCmd struct {
	Subject string `default:"events.>" help:"JetStream subject filter"`
	Durable string `help:"Durable consumer name; empty replays nothing and only shows new events"`
}

func (c *EventsWatchCmd) Run(g *Global) error {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		return errors.New("NATS_URL is not set")
	}

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		return err
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Cyan("watching %s (ctrl-c to stop)", c.Subject)
	return sub.Subscribe(ctx, c.Subject, c.Durable, func(_ context.Context, evt events.Event) error {
		p := evt.Payload()
		line := fmt.Sprintf("%s %-24s kind=%v id=%v slug=%v",
			evt.Timestamp().Local().Format(time.TimeOnly), evt.EventType(), p["kind"], p["id"], p["slug"])
		if prev, ok := p["previous_slug"].(string); ok && prev != "" {
			line += " previous_slug=" + prev
		}
		_, err := fmt.Fprintln(g.Out, line)
		return err
	})
}
