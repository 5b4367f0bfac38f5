package extract

import (
	"bytes"
	"compress/zlib"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	"btp-catalogue/constants"
	"btp-catalogue/internal/catalog"
)

// ErrNotFacturX signals that the bytes carry no parseable embedded invoice
// XML. It is the expected outcome for most uploads and routes the pipeline
// to AI extraction.
var ErrNotFacturX = errors.New("no factur-x document found")

const ciiMarker = "CrossIndustryInvoice"

// maxEmbeddedXML caps how much of an inflated stream we keep. Factur-X
// payloads are tens of KB; anything bigger is page content, not the XML.
const maxEmbeddedXML = 4 << 20

// FacturX parses the CII XML business document embedded in Factur-X/ZUGFeRD
// PDFs, bypassing AI entirely for invoices that carry it.
type FacturX struct {
	log *zap.SugaredLogger
}

func NewFacturX(log *zap.SugaredLogger) *FacturX {
	return &FacturX{log: log}
}

// Extract attempts deterministic extraction. Every parsed line gets
// confidence high and zero token cost. A match that fails mid-parse is
// demoted to ErrNotFacturX so the caller falls through to AI.
func (f *FacturX) Extract(pdf []byte) (*Result, error) {
	if !bytes.HasPrefix(pdf, magicPDF) {
		return nil, ErrNotFacturX
	}

	xmlBytes := findEmbeddedCII(pdf)
	if xmlBytes == nil {
		return nil, ErrNotFacturX
	}

	var inv ciiInvoice
	if err := xml.Unmarshal(xmlBytes, &inv); err != nil {
		f.log.Debugw("facturx.parse_failed", "error", err)
		return nil, ErrNotFacturX
	}

	fournisseur := inv.sellerName()
	if fournisseur == "" {
		fournisseur = "Fournisseur"
	}
	numero := inv.invoiceNumber()
	date := formatCIIDate(inv.Document.IssueDateTime.DateTimeString)

	var produits []catalog.Product
	for _, line := range inv.Transaction.Lines {
		p, ok := line.toProduct(fournisseur, numero, date)
		if !ok {
			continue
		}
		produits = append(produits, p)
	}

	if len(produits) == 0 {
		return nil, ErrNotFacturX
	}

	f.log.Infow("facturx.ok", "lines", len(produits), "fournisseur", fournisseur, "numero", numero)
	return &Result{
		Products:      produits,
		Fournisseur:   fournisseur,
		NumeroFacture: numero,
		DateFacture:   date,
		Langue:        "fr",
		RawLineCount:  len(produits),
	}, nil
}

// findEmbeddedCII walks the PDF's stream objects, inflating FlateDecode
// content, until one contains the CII invoice root element.
func findEmbeddedCII(pdf []byte) []byte {
	rest := pdf
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			return nil
		}
		body := rest[i+len("stream"):]
		body = bytes.TrimPrefix(body, []byte("\r"))
		body = bytes.TrimPrefix(body, []byte("\n"))

		end := bytes.Index(body, []byte("endstream"))
		if end < 0 {
			return nil
		}
		candidate := inflate(body[:end])
		if candidate != nil && bytes.Contains(candidate, []byte(ciiMarker)) {
			return candidate
		}

		rest = body[end:]
	}
}

func inflate(stream []byte) []byte {
	zr, err := zlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		// Embedded files are occasionally stored unencoded.
		if bytes.Contains(stream, []byte(ciiMarker)) {
			return stream
		}
		return nil
	}
	defer zr.Close()
	out, err := io.ReadAll(io.LimitReader(zr, maxEmbeddedXML))
	if err != nil && len(out) == 0 {
		return nil
	}
	return out
}

// CII document model. encoding/xml matches on local names, so the rsm/ram/udt
// prefixes used by emitters are irrelevant here.
type ciiInvoice struct {
	Document struct {
		ID            string `xml:"ID"`
		IssueDateTime struct {
			DateTimeString string `xml:"DateTimeString"`
		} `xml:"IssueDateTime"`
	} `xml:"ExchangedDocument"`
	Transaction struct {
		Lines     []ciiLine `xml:"IncludedSupplyChainTradeLineItem"`
		Agreement struct {
			Seller struct {
				Name     string `xml:"Name"`
				LegalOrg struct {
					RegistrationName string `xml:"RegistrationName"`
				} `xml:"SpecifiedLegalOrganization"`
			} `xml:"SellerTradeParty"`
			BuyerOrderRef struct {
				IssuerAssignedID string `xml:"IssuerAssignedID"`
			} `xml:"BuyerOrderReferencedDocument"`
		} `xml:"ApplicableHeaderTradeAgreement"`
	} `xml:"SupplyChainTradeTransaction"`
}

func (inv *ciiInvoice) sellerName() string {
	if name := strings.TrimSpace(inv.Transaction.Agreement.Seller.Name); name != "" {
		return name
	}
	return strings.TrimSpace(inv.Transaction.Agreement.Seller.LegalOrg.RegistrationName)
}

func (inv *ciiInvoice) invoiceNumber() string {
	if id := strings.TrimSpace(inv.Transaction.Agreement.BuyerOrderRef.IssuerAssignedID); id != "" {
		return id
	}
	return strings.TrimSpace(inv.Document.ID)
}

type ciiLine struct {
	Product struct {
		Name        string `xml:"Name"`
		Description string `xml:"Description"`
	} `xml:"SpecifiedTradeProduct"`
	Agreement struct {
		NetPrice struct {
			ChargeAmount string `xml:"ChargeAmount"`
		} `xml:"NetPriceProductTradePrice"`
	} `xml:"SpecifiedLineTradeAgreement"`
	Delivery struct {
		BilledQuantity string `xml:"BilledQuantity"`
	} `xml:"SpecifiedLineTradeDelivery"`
	Settlement struct {
		Summation struct {
			LineTotalAmount string `xml:"LineTotalAmount"`
		} `xml:"SpecifiedTradeSettlementLineMonetarySummation"`
		AllowanceCharges []struct {
			ChargeIndicator struct {
				Indicator string `xml:"Indicator"`
			} `xml:"ChargeIndicator"`
			ActualAmount string `xml:"ActualAmount"`
		} `xml:"SpecifiedTradeAllowanceCharge"`
	} `xml:"SpecifiedLineTradeSettlement"`
}

// toProduct maps one CII line onto a catalogue product. Lines with neither
// a name nor a description are skipped.
func (l *ciiLine) toProduct(fournisseur, numero, date string) (catalog.Product, bool) {
	designation := strings.TrimSpace(l.Product.Name)
	if designation == "" {
		designation = strings.TrimSpace(l.Product.Description)
	}
	if designation == "" {
		return catalog.Product{}, false
	}

	designationFR := designation
	if len(designationFR) > 80 {
		designationFR = designationFR[:80]
	}

	unitPrice := catalog.CoerceFloat(l.Agreement.NetPrice.ChargeAmount, 0)
	qty := catalog.CoerceFloat(l.Delivery.BilledQuantity, 1)
	if qty <= 0 {
		qty = 1
	}

	lineAmount := catalog.CoerceFloat(l.Settlement.Summation.LineTotalAmount, 0)
	if lineAmount == 0 && unitPrice > 0 {
		lineAmount = unitPrice * qty
	}
	remiseHT := unitPrice
	if qty > 0 {
		remiseHT = lineAmount / qty
	}

	var allowance float64
	for _, ac := range l.Settlement.AllowanceCharges {
		if strings.TrimSpace(ac.ChargeIndicator.Indicator) == "false" {
			allowance += catalog.CoerceFloat(ac.ActualAmount, 0)
		}
	}

	// Re-derive the gross price algebraically when a discount applies.
	brut := unitPrice
	var remisePct float64
	if allowance > 0 && lineAmount+allowance > 0 {
		remisePct = math.Round(allowance/(lineAmount+allowance)*100*100) / 100
		if remisePct < 100 {
			brut = unitPrice / (1 - remisePct/100)
		}
	}

	return catalog.Product{
		Fournisseur:    fournisseur,
		DesignationRaw: designation,
		DesignationFR:  designationFR,
		Famille:        string(constants.FamilleAutre),
		Unite:          "unité",
		PrixBrutHT:     round4(brut),
		RemisePct:      remisePct,
		PrixRemiseHT:   round4(remiseHT),
		PrixTTCIVA21:   round4(remiseHT * catalog.IVAMultiplier),
		NumeroFacture:  numero,
		DateFacture:    date,
		Confidence:     string(constants.ConfidenceHigh),
	}, true
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// formatCIIDate converts the CII format-102 date (YYYYMMDD) into the
// DD/MM/YYYY form the rest of the catalogue uses.
func formatCIIDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return s[6:8] + "/" + s[4:6] + "/" + s[0:4]
}
