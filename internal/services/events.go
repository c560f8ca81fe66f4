package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishTransactions publishes committed ledger rows to Kafka, keyed by the
// account they belong to so per-account ordering is kept within a partition.
// Publishing is best effort and never fails the settlement that produced the rows.
func publishTransactions(ctx context.Context, w KafkaWriter, txs ...models.TransactionDB) {
	if len(txs) == 0 {
		return
	}
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txs[0].ID)
		return
	}

	msgs := make([]kafka.Message, 0, len(txs))
	for _, t := range txs {
		ev := toEvent(t)
		data, err := json.Marshal(ev)
		if err != nil {
			logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", t.ID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.AccountID),
			Value: data,
		})
	}

	if err := w.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish transactions to Kafka", "transaction_id", txs[0].ID, "count", len(msgs), "error", err)
		return
	}
	logger.Log.Infow("Transactions published to Kafka", "transaction_id", txs[0].ID, "count", len(msgs))
}

func toEvent(t models.TransactionDB) models.TransactionEvent {
	account := t.FromAccountID
	if t.Type == models.TxDeposit || t.Type == models.TxSale || t.Type == models.TxRefund || !account.Valid {
		account = t.ToAccountID
	}
	ev := models.TransactionEvent{
		TransactionID: t.ID.String(),
		Timestamp:     t.CreatedAt.Unix(),
		Type:          t.Type,
		Status:        t.Status,
		Amount:        t.Amount,
		Reference:     t.Ref(),
	}
	if account.Valid {
		ev.AccountID = account.UUID.String()
	}
	return ev
}
