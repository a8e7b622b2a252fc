package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/versus/internal/adapters/remote"
	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
	"github.com/vncsmyrnk/versus/internal/core/services"
)

const usage = `usage: versus [flags] <command> [args]

commands:
  list                            show all comparisons
  add <a> <b> [aImg] [bImg]       add a comparison
  vote <id> <A|B>                 cast a vote
  reset <id>                      reset both tallies to zero
  delete <id>                     remove a comparison

flags:
  -endpoint URL   store endpoint (default: VERSUS_ENDPOINT env)
  -y              assume yes on confirmation prompts
`

func main() {
	// missing .env is fine; the endpoint can come from the flag or the env
	godotenv.Load()

	var endpoint string
	var assumeYes bool
	flag.StringVar(&endpoint, "endpoint", os.Getenv("VERSUS_ENDPOINT"), "Comparison store endpoint URL")
	flag.BoolVar(&assumeYes, "y", false, "Assume yes on confirmation prompts")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if endpoint == "" {
		log.Fatal("an endpoint is required (-endpoint or VERSUS_ENDPOINT)")
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	confirm := terminalConfirm
	if assumeYes {
		confirm = func(string) bool { return true }
	}

	store := remote.NewWebAppStore(endpoint, nil)
	sync := services.NewSyncService(store, confirm, slog.Default())

	ctx := context.Background()
	if err := sync.Load(ctx); err != nil {
		// stale-but-usable: commands keep working on an empty local view
		slog.Warn("could not load comparisons from the store", "error", err)
	}

	if err := run(ctx, sync, args); err != nil {
		if errors.Is(err, domain.ErrConfirmationDeclined) {
			fmt.Println("aborted.")
			return
		}
		log.Fatal(err)
	}

	// pushes are fire-and-forget; drain them before the process exits
	sync.Wait()
}

func run(ctx context.Context, sync ports.Synchronizer, args []string) error {
	switch args[0] {
	case "list":
		printComparisons(sync.Comparisons())
		return nil

	case "add":
		if len(args) < 3 {
			return fmt.Errorf("add requires two item names")
		}
		input := ports.AddComparisonInput{A: args[1], B: args[2]}
		if len(args) > 3 {
			input.AImg = args[3]
		}
		if len(args) > 4 {
			input.BImg = args[4]
		}
		c, err := sync.Add(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("added %s (%s vs %s)\n", c.ID, c.A, c.B)
		return nil

	case "vote":
		if len(args) < 3 {
			return fmt.Errorf("vote requires an id and a side")
		}
		return sync.Vote(ctx, args[1], domain.Side(strings.ToUpper(args[2])))

	case "reset":
		if len(args) < 2 {
			return fmt.Errorf("reset requires an id")
		}
		return sync.ResetVotes(ctx, args[1])

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete requires an id")
		}
		return sync.Delete(ctx, args[1])

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printComparisons(items []domain.Comparison) {
	if len(items) == 0 {
		fmt.Println("no comparisons yet.")
		return
	}
	for _, c := range items {
		pa, pb := c.Percentages()
		fmt.Printf("%s  %s vs %s  %d:%d (%.1f%% / %.1f%%)\n", c.ID, c.A, c.B, c.VotesA, c.VotesB, pa, pb)
	}
}

func terminalConfirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
