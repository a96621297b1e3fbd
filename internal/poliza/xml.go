// Package poliza reads the exported póliza XML and emits the
// P/M1/AM/AD rows of the CONTPAQi import layout.
package poliza

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contport-dev/contport/internal/model"
)

// uuidAttrs are the attribute spellings under which an attached CFDI
// identifier may appear, tried in order.
var uuidAttrs = []string{"UUID_CFDI", "UUID", "uuid", "uuid_cfdi"}

// Parse reads pólizas from XML. Elements are matched by lowercase tag
// suffix (Poliza, Transaccion, CompNal), so namespace prefixes do not
// matter. Attachments without a recognizable identifier attribute are
// omitted silently.
func Parse(r io.Reader) ([]model.Poliza, error) {
	dec := xml.NewDecoder(r)

	var polizas []model.Poliza
	var cur *model.Poliza

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing póliza XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			name := strings.ToLower(el.Name.Local)
			switch {
			case strings.HasSuffix(name, "poliza"):
				cur = &model.Poliza{
					Date:     attr(el, "Fecha"),
					Concept:  attr(el, "Concepto"),
					SourceID: attr(el, "NumUnIdenPol"),
				}
			case strings.HasSuffix(name, "transaccion") && cur != nil:
				cur.Movs = append(cur.Movs, model.Movimiento{
					Concept:     attr(el, "Concepto"),
					AccountDesc: attr(el, "DesCta"),
					AccountCode: attr(el, "NumCta"),
					Debit:       safeDecimal(attr(el, "Debe")),
					Credit:      safeDecimal(attr(el, "Haber")),
				})
			case strings.HasSuffix(name, "compnal") && cur != nil && len(cur.Movs) > 0:
				if id := attachmentID(el); id != "" {
					mov := &cur.Movs[len(cur.Movs)-1]
					mov.Attachments = append(mov.Attachments, id)
				}
			}
		case xml.EndElement:
			if strings.HasSuffix(strings.ToLower(el.Name.Local), "poliza") && cur != nil {
				polizas = append(polizas, *cur)
				cur = nil
			}
		}
	}
	return polizas, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attachmentID(el xml.StartElement) string {
	for _, name := range uuidAttrs {
		if v := attr(el, name); v != "" {
			return v
		}
	}
	return ""
}

// safeDecimal parses a magnitude, defaulting to zero on anything
// unparseable rather than failing the entry.
func safeDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
