package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frankli0324/go-rawhttp/internal/logging"
	"github.com/frankli0324/go-rawhttp/internal/testserver"
)

func main() {
	var addr, level string

	root := &cobra.Command{
		Use:   "testserver",
		Short: "Serve \"from home\" on / (and echo requests on /echo) for rawhttp to talk to",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("error starting server on %s: %w", addr, err)
			}
			log.Info().Str("addr", ln.Addr().String()).Msg("server running")

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return testserver.Run(ctx, testserver.New(addr, log), ln)
		},
	}
	root.Flags().StringVar(&addr, "addr", testserver.DefaultAddr, "listen address")
	root.Flags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
