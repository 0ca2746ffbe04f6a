// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"encoding/json"
	"time"
)

// Info represents general information about the service.
type Info struct {
	ServiceName  string    `json:"service_name"`
	Version      string    `json:"version"`
	UptimeSince  time.Time `json:"uptime_since"`
	PaymentInfos int64     `json:"payment_infos"`
}

// PaymentInfo is the document a merchant publishes for a payment request.
// It is returned verbatim by GET /payments/{referenceId}.
type PaymentInfo struct {
	ReferenceID       string                 `json:"referenceId" yaml:"referenceId"`
	Description       string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Receiver          Receiver               `json:"receiver" yaml:"receiver"`
	Action            PaymentAction          `json:"action" yaml:"action"`
	RequiredPayerData map[string]interface{} `json:"requiredPayerData,omitempty" yaml:"requiredPayerData,omitempty" swaggertype:"object"`
}

// Receiver identifies who gets paid.
type Receiver struct {
	AccountAddress string       `json:"accountAddress" yaml:"accountAddress"`
	BusinessData   BusinessData `json:"businessData" yaml:"businessData"`
}

// BusinessData describes the merchant shown to the payer.
type BusinessData struct {
	Name      string   `json:"name" yaml:"name"`
	LegalName string   `json:"legalName,omitempty" yaml:"legalName,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Address   *Address `json:"address,omitempty" yaml:"address,omitempty"`
}

// Address is a postal address.
type Address struct {
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
	Line1      string `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" yaml:"line2,omitempty"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
}

// PaymentAction is what the payer is asked to do.
type PaymentAction struct {
	Amount    string `json:"amount" yaml:"amount"` // decimal string, e.g. "10.50"
	Currency  string `json:"currency" yaml:"currency"`
	Action    string `json:"action" yaml:"action"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
}

// Supported currencies and actions.
const (
	CurrencyCUSD  = "cUSD"
	CurrencyCEUR  = "cEUR"
	CurrencyCREAL = "cREAL"
	CurrencyCELO  = "CELO"

	ActionCharge = "charge"
)

// StoredPaymentInfo is a payment info as persisted by the repository.
// Document is the canonical JSON encoding of the PaymentInfo.
type StoredPaymentInfo struct {
	ReferenceID string
	Document    json.RawMessage
	CreatedAt   time.Time
	ExpiresAt   *time.Time
}

// PaymentInfoImport is the layout of files accepted by the import command.
type PaymentInfoImport struct {
	PaymentInfos []PaymentInfo `json:"payment_infos" yaml:"payment_infos"`
}

// HousekeepingReport summarizes a single expiry purge.
type HousekeepingReport struct {
	Deleted int64     `json:"deleted"`
	RanAt   time.Time `json:"ran_at"`
	Message string    `json:"message"`
}
