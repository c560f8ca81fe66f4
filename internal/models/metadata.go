package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/shopspring/decimal"
)

// PaymentMethod tags the metadata variant attached to a transaction.
type PaymentMethod string

const (
	MethodInstant    PaymentMethod = "instant"
	MethodCard       PaymentMethod = "card"
	MethodCrypto     PaymentMethod = "crypto"
	MethodWithdrawal PaymentMethod = "withdrawal"
)

// Metadata is one of InstantMetadata, CardMetadata, CryptoMetadata or WithdrawalMetadata.
type Metadata interface {
	PaymentMethod() PaymentMethod
}

// InstantMetadata describes a directly credited deposit.
type InstantMetadata struct {
	Source   string `json:"source"`
	Currency string `json:"currency"`
}

func (InstantMetadata) PaymentMethod() PaymentMethod { return MethodInstant }

// CardMetadata describes a deposit funded through a card payment intent.
type CardMetadata struct {
	Currency        string `json:"currency"`
	PaymentIntentID string `json:"payment_intent_id"`
	ChargeID        string `json:"charge_id,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty"`
}

func (CardMetadata) PaymentMethod() PaymentMethod { return MethodCard }

// CryptoMetadata describes a simulated crypto deposit awaiting payment.
type CryptoMetadata struct {
	Currency       string          `json:"currency"`
	Address        string          `json:"address"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	PaymentID      string          `json:"payment_id"`
	USDAmount      money.Amount    `json:"usd_amount"`
	ExpiresAt      time.Time       `json:"expires_at"`
	FailureReason  string          `json:"failure_reason,omitempty"`
}

func (CryptoMetadata) PaymentMethod() PaymentMethod { return MethodCrypto }

// WithdrawalMetadata describes where withdrawn funds go and how they were split.
type WithdrawalMetadata struct {
	Destination string       `json:"destination"`
	Fee         money.Amount `json:"fee"`
	NetAmount   money.Amount `json:"net_amount"`
}

func (WithdrawalMetadata) PaymentMethod() PaymentMethod { return MethodWithdrawal }

// MetadataColumn stores a Metadata value as a JSONB envelope
// {"payment_method": ..., "data": {...}}.
type MetadataColumn struct {
	Metadata
}

type metadataEnvelope struct {
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Data          json.RawMessage `json:"data"`
}

// NewMetadata wraps a variant for storage.
func NewMetadata(m Metadata) MetadataColumn {
	return MetadataColumn{Metadata: m}
}

func (c MetadataColumn) MarshalJSON() ([]byte, error) {
	if c.Metadata == nil {
		return []byte("null"), nil
	}
	data, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, err
	}
	return json.Marshal(metadataEnvelope{PaymentMethod: c.Metadata.PaymentMethod(), Data: data})
}

func (c *MetadataColumn) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		c.Metadata = nil
		return nil
	}
	var env metadataEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	var m Metadata
	var err error
	switch env.PaymentMethod {
	case MethodInstant:
		var v InstantMetadata
		err = json.Unmarshal(env.Data, &v)
		m = v
	case MethodCard:
		var v CardMetadata
		err = json.Unmarshal(env.Data, &v)
		m = v
	case MethodCrypto:
		var v CryptoMetadata
		err = json.Unmarshal(env.Data, &v)
		m = v
	case MethodWithdrawal:
		var v WithdrawalMetadata
		err = json.Unmarshal(env.Data, &v)
		m = v
	default:
		return fmt.Errorf("unknown payment method %q", env.PaymentMethod)
	}
	if err != nil {
		return err
	}
	c.Metadata = m
	return nil
}

func (c MetadataColumn) Value() (driver.Value, error) {
	if c.Metadata == nil {
		return nil, nil
	}
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *MetadataColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.Metadata = nil
		return nil
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into MetadataColumn", src)
	}
}
