/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command apierrors serves the fixture endpoints and explains how each
// fixture failure is classified.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dirpx.dev/apierrors/internal/config"
	"dirpx.dev/apierrors/internal/logger"
	"github.com/alecthomas/kong"
)

// CLI is the command line grammar.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" env:"APIERRORS_CONFIG" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Serve struct {
		Addr     string `help:"HTTP listen address (overrides config)"`
		GRPCAddr string `name:"grpc-addr" help:"gRPC listen address (overrides config)"`
	} `cmd:"" help:"Serve the fixture endpoints over HTTP and gRPC"`

	Explain struct {
		Fixture []string `arg:"" optional:"" help:"Fixture names; all fixtures when omitted"`
	} `cmd:"" help:"Print the classification trace and body of fixture failures"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("apierrors"),
		kong.Description("Uniform API error responses."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apierrors: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.IsProduction(), cli.Verbose)

	switch strings.Fields(kctx.Command())[0] {
	case "serve":
		if cli.Serve.Addr != "" {
			cfg.Addr = cli.Serve.Addr
		}
		if cli.Serve.GRPCAddr != "" {
			cfg.GRPCAddr = cli.Serve.GRPCAddr
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err = serve(ctx, cfg, log)
	case "explain":
		err = explain(os.Stdout, cfg, cli.Explain.Fixture)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		log.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
