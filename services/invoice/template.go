package invoice

import "html/template"

type documentData struct {
	Reference     string
	IssueDate     string
	SellerName    string
	SellerAddress string
	SellerSIRET   string
	SellerVAT     string
	IssuerName    string
	IssuerAddress string
	IssuerSIRET   string
	IssuerVAT     string
	BuyerName     string
	BuyerEmail    string
	LineItem      string
	Amount        string
	SellerContact string
}

// Fixed single-page layout. Seller and issuer blocks sit side by side so the
// mandate relationship is visually explicit on the document itself.
var documentTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 40px; }
h1 { font-size: 22px; margin-bottom: 0; }
.meta { color: #555; margin-top: 4px; }
.parties { display: flex; gap: 40px; margin-top: 32px; }
.party { flex: 1; border: 1px solid #ddd; padding: 16px; }
.party h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 1px; color: #777; margin-top: 0; }
.buyer { margin-top: 24px; }
table { width: 100%; border-collapse: collapse; margin-top: 32px; }
th, td { text-align: left; padding: 10px 8px; border-bottom: 1px solid #ddd; }
td.amount, th.amount { text-align: right; }
tr.total td { font-weight: bold; border-top: 2px solid #1a1a1a; }
.footer { margin-top: 48px; font-size: 11px; color: #555; line-height: 1.5; }
</style>
</head>
<body>
<h1>Invoice {{.Reference}}</h1>
<p class="meta">Issued on {{.IssueDate}}</p>

<div class="parties">
  <div class="party">
    <h2>Seller</h2>
    <p>{{.SellerName}}<br>{{.SellerAddress}}</p>
    <p>SIRET: {{.SellerSIRET}}<br>VAT: {{.SellerVAT}}</p>
  </div>
  <div class="party">
    <h2>Issuer / Mandatary</h2>
    <p>{{.IssuerName}}<br>{{.IssuerAddress}}</p>
    <p>SIRET: {{.IssuerSIRET}}<br>VAT: {{.IssuerVAT}}</p>
  </div>
</div>

<div class="buyer">
  <strong>Billed to:</strong> {{.BuyerName}}{{if .BuyerEmail}} ({{.BuyerEmail}}){{end}}
</div>

<table>
  <tr><th>Description</th><th class="amount">Amount</th></tr>
  <tr><td>{{.LineItem}}</td><td class="amount">{{.Amount}}</td></tr>
  <tr class="total"><td>Total</td><td class="amount">{{.Amount}}</td></tr>
</table>

<p class="footer">
This invoice is issued by {{.IssuerName}} in the name and on behalf of
{{.SellerName}} under a billing mandate. {{.SellerName}} remains the seller of
record for the service listed above. For questions about the service itself,
contact the seller{{if .SellerContact}} at {{.SellerContact}}{{end}}; for
questions about payment or this document, contact {{.IssuerName}}.
</p>
</body>
</html>
`))
