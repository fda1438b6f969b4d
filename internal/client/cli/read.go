package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkrasnov/inkpress/internal/client/services"
	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/filex"
	"github.com/dkrasnov/inkpress/internal/unlock"
)

// Read fetches a published document by transaction id, reports its lock
// status, and prints the content once the policy and envelope allow it.
func (a *App) Read(ctx context.Context) error {
	txID, err := getSimpleText(a.reader, "Enter transaction id", os.Stdout)
	if err != nil {
		return err
	}

	secrets, err := a.promptSecrets()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secrets.Password)

	res, err := a.readService.Read(ctx, txID, secrets)
	if err != nil {
		log.Printf("Read unsuccessful: %v", err)
		return err
	}

	if res.Status.State == unlock.Locked {
		printLockStatus(res.Status)
		return nil
	}

	fmt.Printf("--- %s by %s ---\n", res.Package.Title, res.Package.Author)
	fmt.Println(string(res.Plaintext))

	answer, err := getSimpleText(a.reader, "Save to file? [y/N]", os.Stdout)
	if err == nil && strings.EqualFold(answer, "y") {
		if err := exportPlaintext(txID, res.Plaintext); err != nil {
			log.Printf("error saving file: %v", err)
		}
	}
	return nil
}

// exportPlaintext writes recovered content into ./exports/<txid>.txt.
func exportPlaintext(txID string, plaintext []byte) error {
	dir, err := filex.EnsureSubDir("exports")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, txID+".txt")
	if err := os.WriteFile(path, plaintext, 0o600); err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", path)
	return nil
}

// promptSecrets collects the optional reader-side secrets. Empty answers
// skip a secret.
func (a *App) promptSecrets() (services.Secrets, error) {
	var secrets services.Secrets

	answer, err := getSimpleText(a.reader, "Password protected? [y/N]", os.Stdout)
	if err != nil {
		return secrets, err
	}
	if strings.EqualFold(answer, "y") {
		if secrets.Password, err = getPassword(os.Stdout); err != nil {
			return secrets, err
		}
	}

	sharesLine, err := getSimpleText(a.reader, "Key shares (hex, space separated, empty to skip)", os.Stdout)
	if err != nil {
		return secrets, err
	}
	for _, s := range strings.Fields(sharesLine) {
		share, err := hex.DecodeString(s)
		if err != nil {
			return secrets, fmt.Errorf("invalid key share: %w", err)
		}
		secrets.Shares = append(secrets.Shares, share)
	}
	return secrets, nil
}

func printLockStatus(st unlock.Status) {
	fmt.Printf("Locked (%s)\n", st.Reason)
	if st.Remaining > 0 {
		fmt.Printf("Unlocks in %s\n", unlock.FormatRemaining(st.Remaining))
	}
	if st.Price > 0 {
		fmt.Printf("Unlock price: $%.6f (use 'pay')\n", st.Price)
	}
	if st.RemainingKeys > 0 {
		fmt.Printf("Missing key shares: %d\n", st.RemainingKeys)
	}
}

// statusPollInterval is how often the status watch re-checks the ledger.
const statusPollInterval = 15 * time.Second

// Status reports a document's unlock state without decrypting it. For locked
// documents the user can keep watching until the policy opens.
func (a *App) Status(ctx context.Context) error {
	txID, err := getSimpleText(a.reader, "Enter transaction id", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.readService.Status(ctx, txID)
	if err != nil {
		log.Printf("Status check unsuccessful: %v", err)
		return err
	}

	fmt.Printf("--- %s by %s ---\n", res.Package.Title, res.Package.Author)
	if res.Status.State != unlock.Locked {
		fmt.Println("Unlocked.")
		return nil
	}
	printLockStatus(res.Status)

	answer, err := getSimpleText(a.reader, "Watch until unlocked? [y/N]", os.Stdout)
	if err != nil || !strings.EqualFold(answer, "y") {
		return nil
	}

	fmt.Println("Watching... (Ctrl+C to stop)")
	poller := services.NewPoller(a.readService, statusPollInterval)
	if _, err := poller.Wait(ctx, txID); err != nil {
		log.Printf("Watch stopped: %v", err)
		return err
	}
	fmt.Println("Unlocked.")
	return nil
}

// Pay settles the unlock price for a document.
func (a *App) Pay(ctx context.Context) error {
	txID, err := getSimpleText(a.reader, "Enter transaction id", os.Stdout)
	if err != nil {
		return err
	}

	amount, err := a.promptFloat("Amount (USD)")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.readService.Pay(ctx, txID, amount); err != nil {
		log.Printf("Payment unsuccessful: %v", err)
		return err
	}

	fmt.Println("Payment recorded.")
	return nil
}
