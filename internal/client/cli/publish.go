package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dkrasnov/inkpress/internal/client/services"
	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/pricing"
	"github.com/dkrasnov/inkpress/internal/unlock"
)

// Quote prompts for a document body and prints its publishing cost without
// broadcasting anything.
func (a *App) Quote(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter document text", os.Stdout)
	if err != nil {
		return err
	}

	encAnswer, err := getSimpleText(a.reader, "Encrypted? [y/N]", os.Stdout)
	if err != nil {
		return err
	}
	encrypted := strings.EqualFold(encAnswer, "y")

	printQuote(a.publishService.Quote([]byte(text), encrypted))
	return nil
}

func printQuote(q pricing.Quote) {
	fmt.Printf("Words: %d, bytes: %d\n", q.WordCount, q.ByteSize)
	fmt.Printf("Miner fee: %d units, service fee: %d units, total: %d units\n", q.MinerFeeUnits, q.ServiceFeeUnits, q.TotalUnits)
	fmt.Printf("Total: $%.6f ($%.8f per word)\n", q.TotalUSD, q.CostPerWord)
	if q.Budget.RequiresIncrease {
		fmt.Printf("Exceeds your $%.2f budget", q.Budget.CurrentLimit)
		if q.Budget.SuggestedLimit > 0 {
			fmt.Printf("; suggested limit $%.2f", q.Budget.SuggestedLimit)
		}
		fmt.Println()
	}
}

// promptProtection asks which encryption to apply and gathers its inputs.
func (a *App) promptProtection() (services.Protection, error) {
	choice, err := getSimpleText(a.reader, "Protection [none/password/identity/timelock/multiparty]", os.Stdout)
	if err != nil {
		return services.Protection{}, err
	}

	switch strings.ToLower(choice) {
	case "", "none":
		return services.Protection{}, nil
	case "password":
		password, err := getPassword(os.Stdout)
		if err != nil {
			return services.Protection{}, err
		}
		return services.Protection{Method: cryptox.MethodPassword, Password: password}, nil
	case "identity":
		return services.Protection{Method: cryptox.MethodIdentity}, nil
	case "timelock":
		at, err := a.promptTime("Unlock time (RFC3339, e.g. 2026-12-31T00:00:00Z)")
		if err != nil {
			return services.Protection{}, err
		}
		return services.Protection{Method: cryptox.MethodTimelock, UnlockTime: at}, nil
	case "multiparty":
		n, err := a.promptInt("Number of key shares")
		if err != nil {
			return services.Protection{}, err
		}
		return services.Protection{Method: cryptox.MethodMultiparty, RequiredKeys: n}, nil
	default:
		return services.Protection{}, fmt.Errorf("unknown protection: %s", choice)
	}
}

// promptConditions asks for the unlock policy and gathers its inputs.
func (a *App) promptConditions() (unlock.Conditions, error) {
	choice, err := getSimpleText(a.reader, "Unlock policy [immediate/timed/priced/timedAndPriced/multiparty]", os.Stdout)
	if err != nil {
		return unlock.Conditions{}, err
	}

	cond := unlock.Conditions{Method: unlock.Method(choice)}
	if choice == "" {
		cond.Method = unlock.MethodImmediate
	}

	switch cond.Method {
	case unlock.MethodImmediate:
	case unlock.MethodTimed:
		if cond.UnlockTime, err = a.promptTime("Unlock time (RFC3339)"); err != nil {
			return unlock.Conditions{}, err
		}
	case unlock.MethodPriced:
		if cond.UnlockPrice, err = a.promptFloat("Unlock price (USD)"); err != nil {
			return unlock.Conditions{}, err
		}
	case unlock.MethodTimedAndPriced:
		if cond.UnlockTime, err = a.promptTime("Unlock time (RFC3339)"); err != nil {
			return unlock.Conditions{}, err
		}
		if cond.UnlockPrice, err = a.promptFloat("Price to skip the wait (USD)"); err != nil {
			return unlock.Conditions{}, err
		}
	case unlock.MethodMultiparty:
		if cond.RequiredKeys, err = a.promptInt("Required key count"); err != nil {
			return unlock.Conditions{}, err
		}
	default:
		return unlock.Conditions{}, unlock.ErrUnknownMethod
	}
	return cond, nil
}

func (a *App) promptTime(prompt string) (time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s)
}

func (a *App) promptInt(prompt string) (int, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func (a *App) promptFloat(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

// Publish walks the user through title, body, protection and unlock policy,
// shows the quote, and broadcasts. A quote above the spending ceiling needs
// an explicit confirmation; a failed broadcast is parked for 'retry'.
func (a *App) Publish(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter document text", os.Stdout)
	if err != nil {
		return err
	}

	prot, err := a.promptProtection()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(prot.Password)

	cond, err := a.promptConditions()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	res, err := a.publishService.Publish(ctx, title, []byte(text), cond, prot, false)
	if errors.Is(err, common.ErrBudgetExceeded) {
		printQuote(res.Quote)
		answer, err := getSimpleText(a.reader, "Publish anyway? [y/N]", os.Stdout)
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") {
			fmt.Println("Cancelled.")
			return nil
		}
		res, err = a.publishService.Publish(ctx, title, []byte(text), cond, prot, true)
		if err != nil {
			return a.reportPublishError(err)
		}
	} else if err != nil {
		return a.reportPublishError(err)
	}

	fmt.Printf("Published! Transaction: %s\n", res.TxID)
	printQuote(res.Quote)
	for i, share := range res.KeyShares {
		fmt.Printf("Key share %d: %s\n", i+1, hex.EncodeToString(share))
	}
	return nil
}

func (a *App) reportPublishError(err error) error {
	if errors.Is(err, common.ErrBroadcastFailure) {
		log.Printf("Broadcast failed, draft parked in outbox; use 'retry' later: %v", err)
	} else {
		log.Printf("Publish unsuccessful: %v", err)
	}
	return err
}

// Retry re-broadcasts every parked draft once and reports the outcome.
func (a *App) Retry(ctx context.Context) error {
	report, err := a.publishService.RetryPending(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Sent: %d, still pending: %d\n", report.Sent, report.Failed)
	return nil
}

// List prints the local catalog of published works.
func (a *App) List(ctx context.Context) error {
	works, err := a.publishService.ListPublished(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, w := range works {
		enc := ""
		if w.Encrypted {
			enc = " [encrypted]"
		}
		fmt.Printf("%s  %s  %d words  $%.6f%s\n", w.TxID, w.Title, w.WordCount, w.TotalUSD, enc)
	}
	return nil
}

// Pending prints the parked drafts awaiting a retry.
func (a *App) Pending(ctx context.Context) error {
	drafts, err := a.publishService.ListPending(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, d := range drafts {
		fmt.Printf("%s  %s  attempts: %d\n", d.ID, d.Title, d.Attempts)
	}
	return nil
}
