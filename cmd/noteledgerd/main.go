// main.go - Demo driver for the commitment-based note ledger.
//
// This exercises the full transaction lifecycle against an in-memory ledger:
//   - Identities from the config are registered with fresh ed25519 keys
//   - Initial supply is created with explicit mints
//   - A transfer with change, a double-spend attempt, an unknown recipient,
//     and an unbalanced transfer are submitted and their outcomes logged
//   - Final balances and the metrics summary are printed
//
// Usage:
//
//	go run ./cmd/noteledgerd
//
// The ledger lives for the process lifetime only; nothing is persisted
// except the log and audit files.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"noteledger/internal/ledger"
)

const configPath = "noteledgerd.json"

// wallet holds the driver-side keys for the registered identities.
type wallet map[string]*ledger.KeyPair

// rejectionReason maps an apply error to a stable metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrSourceNotFound):
		return "source_not_found"
	case errors.Is(err, ledger.ErrSourceAlreadySpent):
		return "source_already_spent"
	case errors.Is(err, ledger.ErrRecipientNotFound):
		return "recipient_not_found"
	case errors.Is(err, ledger.ErrUnauthorizedSender):
		return "unauthorized_sender"
	case errors.Is(err, ledger.ErrUnbalancedTransaction):
		return "unbalanced_transaction"
	default:
		return "other"
	}
}

// submit signs and applies one transfer, enforcing the per-sender rate limit
// and recording the outcome. A rejection is a normal, logged outcome; the
// ledger is untouched by it.
func submit(l *ledger.Ledger, w wallet, limiter *SenderRateLimiter, mc *MetricsCollector,
	log *zap.SugaredLogger, sender string, source *ledger.Note, recipient string, dest *ledger.Note) error {

	if !limiter.Allow(sender) {
		log.Warnw("submission throttled", "sender", sender)
		return fmt.Errorf("sender %q rate limited", sender)
	}

	tx := ledger.NewTransaction(source, recipient, dest)
	tx.Sign(w[sender].Priv)

	start := time.Now()
	err := l.Apply(tx)
	elapsed := time.Since(start)

	if err != nil {
		mc.RecordRejected(rejectionReason(err), elapsed)
		log.Warnw("transaction rejected",
			"sender", sender,
			"recipient", recipient,
			"source", tx.SourceCommitment.String(),
			"reason", rejectionReason(err),
			"err", err)
		return err
	}
	mc.RecordAccepted(elapsed)
	log.Infow("transaction applied",
		"sender", sender,
		"recipient", recipient,
		"source", tx.SourceCommitment.String(),
		"asset", dest.AssetType,
		"amount", dest.Amount)
	return nil
}

func run() error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	auditPath := ""
	if config.EnableAudit {
		auditPath = config.AuditLogPath
	}
	log, closeLog, err := NewLogger(config.LogLevel, config.LogFile, auditPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	metrics := NewMetricsCollector()
	limiter := NewSenderRateLimiter(config.RateMaxTokens, config.RateRefillRate,
		time.Duration(config.RateRefillSeconds)*time.Second)

	// 1. Register identities and seed supply with explicit mints.
	l := ledger.NewLedger()
	keys := make(wallet)
	var sourceNote *ledger.Note
	for _, seed := range config.Seeds {
		kp, err := ledger.GenerateKeyPair()
		if err != nil {
			return fmt.Errorf("keys for %q: %w", seed.Identity, err)
		}
		keys[seed.Identity] = kp
		if _, err := l.InsertAccount(seed.Identity, kp.Pub); err != nil {
			return fmt.Errorf("register %q: %w", seed.Identity, err)
		}
		if seed.Amount == 0 {
			continue
		}
		note, err := l.Mint(seed.Identity, config.AssetType, seed.Amount)
		if err != nil {
			return fmt.Errorf("mint for %q: %w", seed.Identity, err)
		}
		metrics.RecordMint()
		log.Infow("minted", "identity", seed.Identity, "asset", config.AssetType,
			"amount", seed.Amount, "commitment", note.Commitment().String())
		if sourceNote == nil {
			sourceNote = note
		}
	}
	if sourceNote == nil || len(config.Seeds) < 2 {
		return fmt.Errorf("config must seed at least two identities and some supply")
	}
	sender := config.Seeds[0].Identity
	recipient := config.Seeds[1].Identity
	supplyBefore := l.TotalSupply(config.AssetType)

	// 2. Transfer half the seed note; the engine returns the rest as change.
	half := sourceNote.Amount / 2
	if err := submit(l, keys, limiter, metrics, log,
		sender, sourceNote, recipient, ledger.NewNote(config.AssetType, half)); err != nil {
		return err
	}

	// 3. Attempt to spend the same note again; rejected, ledger unchanged.
	_ = submit(l, keys, limiter, metrics, log,
		sender, sourceNote, recipient, ledger.NewNote(config.AssetType, half))

	// 4. Unknown recipient and uncovered amount are likewise rejected.
	changeNotes, err := l.Notes(sender)
	if err != nil {
		return err
	}
	if len(changeNotes) > 0 {
		_ = submit(l, keys, limiter, metrics, log,
			sender, changeNotes[0], "nobody", ledger.NewNote(config.AssetType, 1))
		_ = submit(l, keys, limiter, metrics, log,
			sender, changeNotes[0], recipient,
			ledger.NewNote(config.AssetType, changeNotes[0].Amount+1))
	}

	// 5. Consolidate the recipient's notes.
	merged, err := l.MergeNotes(recipient, config.AssetType)
	if err != nil {
		return err
	}
	if merged != nil {
		log.Infow("notes merged", "identity", recipient,
			"asset", config.AssetType, "amount", merged.Amount,
			"commitment", merged.Commitment().String())
	}

	// 6. Report balances and conservation.
	for _, id := range l.Identities() {
		bal, err := l.Balance(id, config.AssetType)
		if err != nil {
			return err
		}
		log.Infow("balance", "identity", id, "asset", config.AssetType, "amount", bal)
	}
	metrics.SetGauge(MetricLiveNotes, float64(l.LiveNoteCount()))
	metrics.SetGauge(MetricAssetSupply, float64(l.TotalSupply(config.AssetType)))
	if got := l.TotalSupply(config.AssetType); got != supplyBefore {
		return fmt.Errorf("supply drift: had %d, now %d", supplyBefore, got)
	}
	log.Infow("supply conserved", "asset", config.AssetType, "supply", supplyBefore)
	log.Infow("metrics", "summary", metrics.Summary())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "noteledgerd: %v\n", err)
		os.Exit(1)
	}
}
