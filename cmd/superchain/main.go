// Copyright 2025 Superchain Network
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	superchain "github.com/superchain-network/go-superchain"
	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
)

type globalFlags struct {
	flagset  *flag.FlagSet
	endpoint string
	username string
	password string
	insecure bool
	useWs    bool
	chain    string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.endpoint,
		"endpoint",
		"",
		"host to connect to (defaults to the production endpoint)",
	)
	f.flagset.StringVar(&f.username, "username", "", "basic auth username")
	f.flagset.StringVar(&f.password, "password", "", "basic auth password")
	f.flagset.BoolVar(&f.insecure, "insecure", false, "disable TLS")
	f.flagset.BoolVar(
		&f.useWs,
		"ws",
		false,
		"use the websocket transport (defaults to HTTP)",
	)
	f.flagset.StringVar(
		&f.chain,
		"chain",
		"ETH",
		"chain to query, by code (ETH, BTC, FUEL, ...)",
	)
	return f
}

func (f *globalFlags) buildClient(ctx context.Context) *superchain.Client {
	builder := superchain.NewClientBuilder().FromEnv()
	if f.endpoint != "" {
		builder.Endpoint(f.endpoint)
	}
	if f.username != "" || f.password != "" {
		builder.Credentials(f.username, f.password)
	}
	if f.insecure {
		builder.Secure(false)
	}
	var client *superchain.Client
	var err error
	if f.useWs {
		client, err = builder.BuildWS(ctx)
	} else {
		client, err = builder.BuildHTTP()
	}
	if err != nil {
		fmt.Printf("failed to create client: %s\n", err)
		os.Exit(1)
	}
	return client
}

func main() {
	f := newGlobalFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	if len(f.flagset.Args()) == 0 {
		fmt.Printf("You must specify a subcommand (status, height or blocks)\n")
		os.Exit(1)
	}
	switch f.flagset.Arg(0) {
	case "status":
		runStatus(ctx, f)
	case "height":
		runHeight(ctx, f)
	case "blocks":
		runBlocks(ctx, f)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
		os.Exit(1)
	}
}

func runStatus(ctx context.Context, f *globalFlags) {
	client := f.buildClient(ctx)
	defer client.Close()
	statuses, err := client.GetStatus(ctx)
	if err != nil {
		fmt.Printf("failed to fetch status: %s\n", err)
		os.Exit(1)
	}
	for _, status := range statuses {
		fmt.Printf(
			"%-8s %-16s %-10s height=%d status=%s\n",
			status.ChainCode,
			status.Service,
			status.Entity,
			status.LatestBlockHeight,
			status.Status,
		)
	}
}

func runHeight(ctx context.Context, f *globalFlags) {
	client := f.buildClient(ctx)
	defer client.Close()
	height, err := client.GetHeight(ctx)
	if err != nil {
		fmt.Printf("failed to fetch height: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d\n", height)
}

func runBlocks(ctx context.Context, f *globalFlags) {
	id, err := chain.ChainFromCode(f.chain)
	if err != nil {
		fmt.Printf("invalid chain: %s\n", err)
		os.Exit(1)
	}
	client := f.buildClient(ctx)
	defer client.Close()

	blocks, err := client.GetBlocksByFormat(
		ctx,
		request.GetBlocks{Range: request.NewRange(id)},
		query.FormatJSONStream,
	)
	if err != nil {
		fmt.Printf("failed to subscribe to blocks: %s\n", err)
		os.Exit(1)
	}
	defer blocks.Close()

	for {
		select {
		case item, ok := <-blocks.Chan():
			if !ok {
				return
			}
			if item.Err != nil {
				fmt.Printf("stream error: %s\n", item.Err)
				continue
			}
			fmt.Print(string(item.Data))
		case <-ctx.Done():
			return
		}
	}
}
