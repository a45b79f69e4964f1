package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/interchain-gateway/pkg/app"
	"github.com/chainsafe/interchain-gateway/pkg/app/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
	issueToken = flag.String("issue-token", "", "Print a bearer token for the given sender address and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// contract senders such as the router cannot sign a login message
	if *issueToken != "" {
		sender, err := message.ParseAddress(*issueToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid sender: %v\n", err)
			os.Exit(1)
		}
		token, expiresAt, err := auth.NewTokenAuthority(&cfg.Auth).IssueToken(sender)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "token for %s expires at %s\n", sender, expiresAt.Format(time.RFC3339))
		fmt.Println(token)
		return
	}

	var runner app.Runner = gateway.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Gateway stopped with error: %v\n", err)
		os.Exit(1)
	}
}
