package ledger

import (
	"fmt"
	"io"
	"sort"
)

const dateFormat = "2006-01-02"

// Render writes directives as beancount text, one blank line between records.
func Render(w io.Writer, directives []Directive) error {
	for i, d := range directives {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		var err error
		switch d := d.(type) {
		case *Transaction:
			err = renderTransaction(w, d)
		case *Balance:
			err = renderBalance(w, d)
		default:
			err = fmt.Errorf("unknown directive type %T", d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderTransaction(w io.Writer, t *Transaction) error {
	flag := t.Flag
	if flag == "" {
		flag = FlagOkay
	}
	if _, err := fmt.Fprintf(w, "%s %s %q %q\n", t.Date.Format(dateFormat), flag, t.Payee, t.Narration); err != nil {
		return err
	}

	// Metadata keys sorted for stable output.
	keys := make([]string, 0, len(t.Meta))
	for k := range t.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "  %s: %q\n", k, t.Meta[k]); err != nil {
			return err
		}
	}

	for _, p := range t.Postings {
		if p.Amount == nil {
			if _, err := fmt.Fprintf(w, "  %s\n", p.Account); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s  %s %s\n", p.Account, p.Amount.Number.StringFixed(2), p.Amount.Currency); err != nil {
			return err
		}
	}
	return nil
}

func renderBalance(w io.Writer, b *Balance) error {
	_, err := fmt.Fprintf(w, "%s balance %s  %s %s\n",
		b.Date.Format(dateFormat), b.Account, b.Amount.Number.StringFixed(2), b.Amount.Currency)
	return err
}
