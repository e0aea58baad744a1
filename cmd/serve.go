// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hyperion/internal/log"
	"hyperion/internal/transport"
	"hyperion/pkg/compare"
)

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve parse and compare requests over a websocket",
		Long: "Serve parse and compare requests over a websocket.\n\n" +
			"SIGHUP reloads the configuration and tells every connected client\n" +
			"with a reload event.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if addr == "" {
				addr = cfg.Server.Address
			}

			server := transport.NewServer(addr, newHandler(cfg.Epsilons()),
				transport.WithReadLimit(cfg.Server.ReadLimit),
				transport.WithWriteTimeout(cfg.Server.WriteTimeout),
			)
			if err := server.Start(); err != nil {
				return err
			}
			log.Infof("serve: ws://%s/ws", server.Addr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			reload := make(chan os.Signal, 1)
			signal.Notify(reload, syscall.SIGHUP)
			defer signal.Stop(reload)

			return serveUntil(ctx, server, reload, func() ([]compare.Epsilon, error) {
				if err := opts.load(cmd); err != nil {
					return nil, err
				}
				return opts.cfg.Epsilons(), nil
			})
		},
	}
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "",
		"Listen address. Defaults to server.address from the configuration.")

	return serveCmd
}

func newHandler(eps []compare.Epsilon) transport.Handler {
	return transport.NewLoggingHandler(transport.NewEvaluator(eps...))
}

// serveUntil blocks until ctx is done, then shuts the server down. Every
// value received on reload swaps in a handler built from the epsilons the
// callback returns and broadcasts an EventReload. A failed reload keeps the
// running handler.
func serveUntil(ctx context.Context, server *transport.Server, reload <-chan os.Signal, epsilons func() ([]compare.Epsilon, error)) error {
	for {
		select {
		case <-ctx.Done():
			log.Info("serve: shutting down")
			return server.Close()
		case <-reload:
			eps, err := epsilons()
			if err != nil {
				log.Errorf("serve: reload failed, keeping the running configuration: %v", err)
				continue
			}
			server.SetHandler(newHandler(eps))

			names := make([]string, len(eps))
			for i, e := range eps {
				names[i] = e.String()
			}
			if err := server.Send(transport.Event{Event: transport.EventReload, Epsilons: names}); err != nil {
				log.Warnf("serve: reload event not sent: %v", err)
			}
			log.Info("serve: configuration reloaded")
		}
	}
}
