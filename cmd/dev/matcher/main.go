// Dev harness for the partner ranking oracle: runs the heuristic ranker
// over the demo fixtures and, when an Ollama endpoint is reachable, the
// model-backed ranker next to it for comparison.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/garnizeh/skillswap/internal/config"
	"github.com/garnizeh/skillswap/internal/match"
	"github.com/garnizeh/skillswap/internal/state"
)

var defaultClient = &http.Client{
	Transport: &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 15 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}

	users, _, _ := state.Fixtures()
	current := users[0]

	fmt.Printf("ranking partners for %s (%s)\n\n", current.Name, current.ID)

	heuristic, err := match.Heuristic{}.Recommend(ctx, current, users)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("heuristic:  %v\n", heuristic)

	if cfg.Match.BaseURL == "" {
		fmt.Println("model:      disabled (set SWAP_OLLAMA_URL to compare)")
		return
	}

	ranker, err := match.NewOllama(cfg.Match, defaultClient, match.Heuristic{})
	if err != nil {
		log.Fatal(err)
	}
	ids, err := ranker.Recommend(ctx, current, users)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("model:      %v\n", ids)
}
