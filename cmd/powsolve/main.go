// Command powsolve solves the admission puzzle for one purchase and prints
// the memo to attach to the payment transaction.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/StudioLIQ/tickasting-sub000/internal/payload"
	"github.com/StudioLIQ/tickasting-sub000/internal/pow"
)

type config struct {
	SaleID        string `long:"sale-id" description:"sale id (uuid)" required:"true"`
	BuyerAddress  string `long:"buyer-address" description:"payer address the buyer hash is derived from" required:"true"`
	Difficulty    uint8  `long:"difficulty" description:"required leading zero bits" required:"true"`
	Start         uint64 `long:"start" description:"starting nonce" default:"0"`
	MaxIterations uint64 `long:"max-iterations" description:"nonce search cap (0 uses the default)" default:"0"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	saleID, err := uuid.Parse(cfg.SaleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid sale id: %v\n", err)
		os.Exit(1)
	}

	buyerHash := payload.BuyerIDHash(cfg.BuyerAddress)
	buyerHashHex := hex.EncodeToString(buyerHash[:])

	solution, err := pow.Solve(saleID.String(), buyerHashHex, cfg.Difficulty, pow.SolveParams{
		Start:         cfg.Start,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve failed: %v\n", err)
		os.Exit(1)
	}

	memo := payload.Encode(payload.Memo{
		SaleID:      saleID,
		BuyerIDHash: buyerHash,
		ClientTime:  time.Now().Unix(),
		AlgorithmID: pow.AlgorithmID,
		Difficulty:  cfg.Difficulty,
		Nonce:       solution.Nonce,
	})

	fmt.Printf("buyer hash: %s\n", buyerHashHex)
	fmt.Printf("nonce:      %d\n", solution.Nonce)
	fmt.Printf("digest:     %s\n", hex.EncodeToString(solution.Digest[:]))
	fmt.Printf("memo:       %s\n", hex.EncodeToString(memo))
}
