package extract

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCII = `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice
    xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
    xmlns:ram="urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
    xmlns:udt="urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100">
  <rsm:ExchangedDocument>
    <ram:ID>FA-2026-0042</ram:ID>
    <ram:IssueDateTime><udt:DateTimeString format="102">20260312</udt:DateTimeString></ram:IssueDateTime>
  </rsm:ExchangedDocument>
  <rsm:SupplyChainTradeTransaction>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:SpecifiedTradeProduct><ram:Name>Ciment gris CEM II 25kg</ram:Name></ram:SpecifiedTradeProduct>
      <ram:SpecifiedLineTradeAgreement>
        <ram:NetPriceProductTradePrice><ram:ChargeAmount>9.00</ram:ChargeAmount></ram:NetPriceProductTradePrice>
      </ram:SpecifiedLineTradeAgreement>
      <ram:SpecifiedLineTradeDelivery><ram:BilledQuantity unitCode="C62">10</ram:BilledQuantity></ram:SpecifiedLineTradeDelivery>
      <ram:SpecifiedLineTradeSettlement>
        <ram:SpecifiedTradeAllowanceCharge>
          <ram:ChargeIndicator><udt:Indicator>false</udt:Indicator></ram:ChargeIndicator>
          <ram:ActualAmount>10.00</ram:ActualAmount>
        </ram:SpecifiedTradeAllowanceCharge>
        <ram:SpecifiedTradeSettlementLineMonetarySummation>
          <ram:LineTotalAmount>90.00</ram:LineTotalAmount>
        </ram:SpecifiedTradeSettlementLineMonetarySummation>
      </ram:SpecifiedLineTradeSettlement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:SpecifiedTradeProduct><ram:Description>Sac mortier colle</ram:Description></ram:SpecifiedTradeProduct>
      <ram:SpecifiedLineTradeAgreement>
        <ram:NetPriceProductTradePrice><ram:ChargeAmount>4.50</ram:ChargeAmount></ram:NetPriceProductTradePrice>
      </ram:SpecifiedLineTradeAgreement>
      <ram:SpecifiedLineTradeDelivery><ram:BilledQuantity>0</ram:BilledQuantity></ram:SpecifiedLineTradeDelivery>
      <ram:SpecifiedLineTradeSettlement>
        <ram:SpecifiedTradeSettlementLineMonetarySummation>
          <ram:LineTotalAmount>4.50</ram:LineTotalAmount>
        </ram:SpecifiedTradeSettlementLineMonetarySummation>
      </ram:SpecifiedLineTradeSettlement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:SpecifiedTradeProduct></ram:SpecifiedTradeProduct>
      <ram:SpecifiedLineTradeAgreement>
        <ram:NetPriceProductTradePrice><ram:ChargeAmount>1.00</ram:ChargeAmount></ram:NetPriceProductTradePrice>
      </ram:SpecifiedLineTradeAgreement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:ApplicableHeaderTradeAgreement>
      <ram:SellerTradeParty><ram:Name>BigMat Girona</ram:Name></ram:SellerTradeParty>
    </ram:ApplicableHeaderTradeAgreement>
  </rsm:SupplyChainTradeTransaction>
</rsm:CrossIndustryInvoice>`

// wrapInPDF builds a minimal PDF whose single stream object holds the
// zlib-compressed XML, the way Factur-X writers attach it.
func wrapInPDF(t *testing.T, xmlDoc string) []byte {
	t.Helper()
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write([]byte(xmlDoc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var pdf bytes.Buffer
	pdf.WriteString("%PDF-1.7\n")
	pdf.WriteString("1 0 obj\n<< /Type /EmbeddedFile /Filter /FlateDecode >>\nstream\n")
	pdf.Write(compressed.Bytes())
	pdf.WriteString("\nendstream\nendobj\n%%EOF\n")
	return pdf.Bytes()
}

func TestFacturXExtractsLinesWithoutAI(t *testing.T) {
	fx := NewFacturX(zap.NewNop().Sugar())

	res, err := fx.Extract(wrapInPDF(t, sampleCII))
	require.NoError(t, err)

	// third line has neither name nor description and must be skipped
	require.Len(t, res.Products, 2)
	assert.Zero(t, res.Usage.TotalTokens)
	assert.Equal(t, "BigMat Girona", res.Fournisseur)
	assert.Equal(t, "FA-2026-0042", res.NumeroFacture)
	assert.Equal(t, "12/03/2026", res.DateFacture)

	first := res.Products[0]
	assert.Equal(t, "Ciment gris CEM II 25kg", first.DesignationRaw)
	assert.Equal(t, "high", first.Confidence)
	// allowance 10 on a 90 line total -> 10% discount, brut re-derived
	assert.InDelta(t, 10.0, first.RemisePct, 0.01)
	assert.InDelta(t, 9.0, first.PrixRemiseHT, 1e-9)
	assert.InDelta(t, 10.0, first.PrixBrutHT, 0.01)

	second := res.Products[1]
	// quantity 0 defaults to 1
	assert.InDelta(t, 4.5, second.PrixRemiseHT, 1e-9)
	assert.Zero(t, second.RemisePct)
}

func TestFacturXNotApplicable(t *testing.T) {
	fx := NewFacturX(zap.NewNop().Sugar())

	_, err := fx.Extract([]byte("plain text, not a pdf"))
	assert.ErrorIs(t, err, ErrNotFacturX)

	_, err = fx.Extract([]byte("%PDF-1.4\nno embedded invoice here\n%%EOF"))
	assert.ErrorIs(t, err, ErrNotFacturX)

	// well-formed PDF wrapper, broken XML inside: demoted, not an error
	_, err = fx.Extract(wrapInPDF(t, "<rsm:CrossIndustryInvoice><broken"))
	assert.ErrorIs(t, err, ErrNotFacturX)
}

func TestFacturXAllLinesSkippedIsNotApplicable(t *testing.T) {
	empty := `<CrossIndustryInvoice><SupplyChainTradeTransaction>
	<IncludedSupplyChainTradeLineItem><SpecifiedTradeProduct></SpecifiedTradeProduct></IncludedSupplyChainTradeLineItem>
	</SupplyChainTradeTransaction></CrossIndustryInvoice>`
	fx := NewFacturX(zap.NewNop().Sugar())
	_, err := fx.Extract(wrapInPDF(t, empty))
	assert.ErrorIs(t, err, ErrNotFacturX)
}
