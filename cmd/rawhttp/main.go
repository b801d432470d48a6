package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	rawhttp "github.com/frankli0324/go-rawhttp"
	"github.com/frankli0324/go-rawhttp/internal/cliconfig"
	"github.com/frankli0324/go-rawhttp/internal/logging"
)

var exampleUsage = strings.TrimSpace(`
  rawhttp /                                   # GET http://localhost:8888/
  rawhttp -a http://127.0.0.1:8080 -X post -d 'a=1' /form
  rawhttp -H 'Accept: text/plain' -H 'X-Trace: 1' --dump-only /echo
  rawhttp --config ./rawhttp.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "rawhttp [path]",
		Short:   "Send a hand-built HTTP/1.1 request and print the raw response",
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.Path = args[0]
				changed["path"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			color.NoColor = color.NoColor || cfg.NoColor
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, cfg, log, cmd.OutOrStdout())
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML config (default $HOME/.rawhttp/config.toml)")
	root.Flags().StringVarP(&cfg.Address, "addr", "a", cfg.Address, "base address, http://host:port")
	root.Flags().StringVarP(&cfg.Method, "method", "X", cfg.Method, "request method")
	root.Flags().DurationVar(&cfg.ReadTimeout, "timeout", cfg.ReadTimeout, "read timeout, 0 blocks until the server closes")
	root.Flags().StringArrayVarP(&cfg.Headers, "header", "H", nil, "extra header \"Name: value\", repeatable")
	root.Flags().StringVarP(&cfg.Data, "data", "d", "", "request body")
	root.Flags().BoolVar(&cfg.Close, "close", cfg.Close, "send Connection: close")
	root.Flags().BoolVar(&cfg.DumpOnly, "dump-only", false, "print the request without sending it")
	root.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger, out io.Writer) error {
	client := &rawhttp.Client{}
	client.SetAddress(cfg.Address)
	client.SetReadTimeout(cfg.ReadTimeout)

	req := cfg.Request()
	wire, err := client.Encode(req)
	if err != nil {
		return err
	}
	color.New(color.FgCyan).Fprint(out, string(wire))
	if cfg.DumpOnly {
		return nil
	}

	conn, err := client.CtxDo(ctx, req)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Debug().Str("remote", conn.Raw().RemoteAddr().String()).
		Str("sent", humanize.Bytes(uint64(len(wire)))).Msg("request written")

	resp, err := conn.ReadAll()
	var netErr net.Error
	switch {
	case err == nil:
	case errors.As(err, &netErr) && netErr.Timeout() && len(resp) > 0:
		// kept-alive connection, the server never closed it
		log.Warn().Dur("timeout", cfg.ReadTimeout).Msg("read timed out, printing what arrived")
	default:
		return err
	}
	log.Info().Str("received", humanize.Bytes(uint64(len(resp)))).Msg("response read")

	fmt.Fprintln(out)
	_, err = out.Write(resp)
	return err
}
