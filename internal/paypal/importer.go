package paypal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
	"github.com/jakobhellermann/beancount-paypal/internal/locale"
)

// archivalName is the suggested filename for archived PayPal exports.
const archivalName = "paypal.csv"

// Config wires one importer instance to a locale and a set of accounts.
// Built once, immutable afterwards.
type Config struct {
	// Account is the PayPal processor account every posting pivots on.
	Account string
	// CheckingAccount receives the counter-leg of bank deposits.
	CheckingAccount string
	// CommissionAccount receives PayPal fees.
	CommissionAccount string
	// FixmeAccount, if set, absorbs the unknown counter-leg of generic
	// transactions via an amount-less posting.
	FixmeAccount string
	// Locale selects the CSV schema variant.
	Locale *locale.Profile
	// Metadata maps output metadata keys to canonical field names. Entries
	// whose source field is absent or blank are skipped.
	Metadata map[string]locale.Field
}

// Importer converts PayPal activity CSV exports into ledger directives.
type Importer struct {
	cfg    Config
	logger *log.Logger
}

// New creates an Importer. The logger must not be nil.
func New(cfg Config, logger *log.Logger) *Importer {
	return &Importer{cfg: cfg, logger: logger}
}

// Account returns the configured PayPal account, regardless of path.
func (imp *Importer) Account(path string) string { return imp.cfg.Account }

// Filename returns the archival filename for a matched export.
func (imp *Importer) Filename(path string) string { return archivalName }

// Identify reports whether path looks like a PayPal export in this
// importer's locale. Only the header row is read; an empty or unreadable
// file is a negative match, not an error.
func (imp *Importer) Identify(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header, err := csv.NewReader(bomReader(f)).Read()
	if err != nil {
		return false
	}
	ok := imp.cfg.Locale.Matches(header)
	imp.logger.Debug("probed file", "path", path, "locale", imp.cfg.Locale.Code, "match", ok)
	return ok
}

// Extract converts every row of the export into directives: one transaction
// per row, plus a trailing balance assertion when the last row carries a
// running balance. The existing directives hint is accepted for the host
// contract but not used. A malformed date, gross, fee or net aborts the
// whole file with no partial output.
func (imp *Importer) Extract(path string, existing []ledger.Directive) ([]ledger.Directive, error) {
	_ = existing

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return imp.extract(f, path)
}

func (imp *Importer) extract(r io.Reader, source string) ([]ledger.Directive, error) {
	cr := csv.NewReader(bomReader(r))

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var (
		entries  []ledger.Directive
		lastRow  map[string]string
		lastDate time.Time
		lastIdx  int
	)

	for index := 0; ; index++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}

		normalized := imp.cfg.Locale.Normalize(zip(header, rec))

		txnDate, err := imp.cfg.Locale.ParseDate(normalized[locale.FieldDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		gross, err := imp.amount(normalized, locale.FieldGross)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		fee, err := imp.amount(normalized, locale.FieldFee)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		net, err := imp.amount(normalized, locale.FieldNet)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}

		// Optional numeric fields feed metadata only; normalize in place.
		for _, field := range []locale.Field{locale.FieldVAT, locale.FieldShippingFee} {
			if v, ok := normalized[field]; ok {
				normalized[field] = imp.cfg.Locale.Decimal(v)
			}
		}

		currency := normalized[locale.FieldCurrency]
		txn := &ledger.Transaction{
			Date:       txnDate,
			Flag:       ledger.FlagOkay,
			Payee:      normalized[locale.FieldName],
			Narration:  normalized[locale.FieldDescription],
			Meta:       imp.projectMetadata(normalized),
			SourceFile: source,
			SourceLine: index,
		}

		if txn.Narration == imp.cfg.Locale.BankDepositMarker {
			txn.Postings = bankDepositPostings(imp.cfg, gross, net, currency)
		} else {
			txn.Postings = genericPostings(imp.cfg, fee, net, currency)
		}

		entries = append(entries, txn)
		lastRow, lastDate, lastIdx = normalized, txnDate, index
	}

	if assertion := imp.balanceAssertion(lastRow, lastDate, lastIdx, source); assertion != nil {
		entries = append(entries, assertion)
	}

	imp.logger.Debug("extracted file", "path", source, "directives", len(entries))
	return entries, nil
}

// bankDepositPostings builds the self-transfer pair: negated gross out of
// checking, net into PayPal. When gross and net differ the residual is a
// fee, surfaced as an explicit commission posting so the transaction stays
// zero-sum instead of silently unbalancing.
func bankDepositPostings(cfg Config, gross, net decimal.Decimal, currency string) []ledger.Posting {
	postings := []ledger.Posting{
		{Account: cfg.CheckingAccount, Amount: ledger.NewAmount(gross.Neg(), currency)},
		{Account: cfg.Account, Amount: ledger.NewAmount(net, currency)},
	}
	if residual := gross.Sub(net); !residual.IsZero() {
		postings = append(postings, ledger.Posting{
			Account: cfg.CommissionAccount,
			Amount:  ledger.NewAmount(residual, currency),
		})
	}
	return postings
}

// genericPostings builds the one-sided form: net into PayPal, the fee (if
// any) against commission, and an amount-less fixme posting for the unknown
// counter-leg when one is configured.
func genericPostings(cfg Config, fee, net decimal.Decimal, currency string) []ledger.Posting {
	postings := []ledger.Posting{
		{Account: cfg.Account, Amount: ledger.NewAmount(net, currency)},
	}
	if !fee.IsZero() {
		postings = append(postings, ledger.Posting{
			Account: cfg.CommissionAccount,
			Amount:  ledger.NewAmount(fee, currency),
		})
	}
	if cfg.FixmeAccount != "" {
		postings = append(postings, ledger.Posting{Account: cfg.FixmeAccount})
	}
	return postings
}

// balanceAssertion builds the trailing assertion from the last row, dated
// one day after its transaction date. Returns nil when there was no row, no
// balance column, or the balance does not parse (best-effort feature).
func (imp *Importer) balanceAssertion(lastRow map[string]string, lastDate time.Time, lastIdx int, source string) *ledger.Balance {
	if lastRow == nil {
		return nil
	}
	raw, ok := lastRow[locale.FieldBalance]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	number, err := decimal.NewFromString(imp.cfg.Locale.Decimal(raw))
	if err != nil {
		imp.logger.Warn("skipping balance assertion", "balance", raw, "error", err)
		return nil
	}
	return &ledger.Balance{
		Date:       lastDate.AddDate(0, 0, 1),
		Account:    imp.cfg.Account,
		Amount:     ledger.Amount{Number: number, Currency: lastRow[locale.FieldCurrency]},
		SourceFile: source,
		SourceLine: lastIdx + 1,
	}
}

// projectMetadata applies the configured metadata projection, dropping
// entries whose source field is absent, blank, or a zero amount.
func (imp *Importer) projectMetadata(normalized map[string]string) map[string]string {
	meta := make(map[string]string)
	for key, field := range imp.cfg.Metadata {
		value, ok := normalized[field]
		if !ok || !truthy(value) {
			continue
		}
		meta[key] = value
	}
	return meta
}

// truthy reports whether a field value should survive metadata projection:
// non-blank, and for numeric strings, non-zero.
func truthy(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if d, err := decimal.NewFromString(s); err == nil && d.IsZero() {
		return false
	}
	return true
}

// Date returns the newest directive date in the file, for archival naming.
// Best-effort: any failure degrades to "no date".
func (imp *Importer) Date(path string) (time.Time, bool) {
	entries, err := imp.Extract(path, nil)
	if err != nil || len(entries) == 0 {
		return time.Time{}, false
	}
	newest := entries[0].DirectiveDate()
	for _, e := range entries[1:] {
		if d := e.DirectiveDate(); d.After(newest) {
			newest = d
		}
	}
	return newest, true
}

// amount parses a required canonical field through the locale's decimal
// rewrite.
func (imp *Importer) amount(normalized map[string]string, field locale.Field) (decimal.Decimal, error) {
	raw, ok := normalized[field]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("missing %s column", field)
	}
	d, err := decimal.NewFromString(imp.cfg.Locale.Decimal(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s %q: %w", field, raw, err)
	}
	return d, nil
}

// bomReader strips an optional UTF-8 byte-order mark before CSV parsing.
func bomReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}

// zip pairs header names with record values. Extra values are dropped,
// missing ones left out; encoding/csv enforces a consistent width anyway.
func zip(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(record) {
			row[h] = record[i]
		}
	}
	return row
}
