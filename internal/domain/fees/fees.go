// Package fees holds fee challans and the read side of the fees ledger.
package fees

import (
	"github.com/shopspring/decimal"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// ChallanStatus of an issued challan.
type ChallanStatus string

const (
	Unpaid ChallanStatus = "Unpaid"
	Paid   ChallanStatus = "Paid"
)

// ChallanArity is the persisted field count of a challan line.
const ChallanArity = 6

// Challan is one issued fee challan. Challans are ledger entries: issued by
// appending, never rewritten.
type Challan struct {
	StudentID string
	Name      string
	ClassName string
	MonthYear string // MM-YYYY
	Amount    decimal.Decimal
	Status    ChallanStatus
}

// Fields returns the persisted field values in file order.
func (c Challan) Fields() []string {
	return []string{c.StudentID, c.Name, c.ClassName, c.MonthYear, c.Amount.String(), string(c.Status)}
}

// DecodeChallan builds a challan from decoded fields.
func DecodeChallan(fields []string) (Challan, error) {
	if len(fields) < ChallanArity {
		return Challan{}, shared.NewDomainError("fees", "DecodeChallan",
			shared.ErrShortRecord, "challan line has too few fields")
	}
	amount, err := decimal.NewFromString(fields[4])
	if err != nil {
		return Challan{}, shared.WrapError("fees", "DecodeChallan",
			shared.ErrMalformedField, "challan amount is not a decimal", err)
	}
	return Challan{
		StudentID: fields[0],
		Name:      fields[1],
		ClassName: fields[2],
		MonthYear: fields[3],
		Amount:    amount,
		Status:    ChallanStatus(fields[5]),
	}, nil
}

// NewSectionHeader builds the challan batch header:
// "[FEE CHALLANS <MM-YYYY>]".
func NewSectionHeader(monthYear string) ledger.Header {
	return ledger.NewHeader(ledger.TagFeeChallans, monthYear)
}

// LedgerEntryArity is the persisted field count of a fees-ledger line.
const LedgerEntryArity = 4

// LedgerEntry is one historical fee payment record in the fees ledger. The
// ledger is read-only here; an external billing process appends to it.
type LedgerEntry struct {
	StudentID string
	Month     string
	Amount    string
	Status    string
}

// DecodeLedgerEntry builds a fees-ledger entry from decoded fields.
func DecodeLedgerEntry(fields []string) (LedgerEntry, error) {
	if len(fields) < LedgerEntryArity {
		return LedgerEntry{}, shared.NewDomainError("fees", "DecodeLedgerEntry",
			shared.ErrShortRecord, "fees ledger line has too few fields")
	}
	return LedgerEntry{
		StudentID: fields[0],
		Month:     fields[1],
		Amount:    fields[2],
		Status:    fields[3],
	}, nil
}
