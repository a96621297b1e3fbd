package model

import "github.com/shopspring/decimal"

// Movimiento is one posting inside a póliza.
type Movimiento struct {
	Concept     string
	AccountDesc string // DesCta: display name of the account
	AccountCode string // NumCta: raw code reference, normalized at emit time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Attachments []string // CFDI UUIDs from nested CompNal elements
}

// Poliza is a journal entry header with its postings, as exported by
// the source system. Date keeps the raw attribute value; reformatting
// happens in the row emitter so unparseable dates can degrade instead
// of failing the entry.
type Poliza struct {
	Date     string
	Concept  string
	SourceID string // NumUnIdenPol
	Movs     []Movimiento
}
