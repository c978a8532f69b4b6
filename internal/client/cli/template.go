package cli

const cartTemplate = `{{define "cart"}}=== Cart ===
{{if .Error}}Warning: {{.Error}}
{{end}}{{if eq (len .Items) 0}}
Cart is empty.

Use 'cartsync add <product-id>' to add your first item.
{{else}}{{range .Items}}
- {{.Name}} x{{.Quantity}}  {{money .Price}}
   Line:    {{.ID}}
   Product: {{.ProductID}}
{{if .ComparePrice}}   Was:     {{money (deref .ComparePrice)}}
{{end}}{{end}}
Items: {{.Count}}
Total: {{.Total}}
{{end}}{{end}}`

const totalTemplate = `{{define "total"}}Items: {{.Count}}
Total: {{.Total}}
{{end}}`

const syncTemplate = `{{define "sync"}}=== Sync Report ===
{{with .Flush}}Delivered: {{.Delivered}}
Deferred:  {{.Deferred}}
Dead:      {{.Dead}}
{{end}}{{with .Pull}}Remote items: {{.RemoteItems}}
Skipped:      {{.Skipped}}
Kept local:   {{.KeptLocal}}
{{if .Applied}}Local cart replaced with remote cart.{{else if .ClearPending}}Local cart unchanged: cart clear not delivered yet.{{else}}Local cart unchanged.{{end}}
{{end}}{{end}}`

const statusTemplate = `{{define "status"}}=== Sync Status ===
Last pull: {{if .LastPull}}{{.LastPull}}{{else}}never{{end}}
Pending:   {{.Pending}}
Dead:      {{.Dead}}
{{range .Ops}}- #{{.Seq}} {{.Kind}} {{.Status}}{{if .ProductID}} product={{.ProductID}} qty={{.Quantity}}{{end}} attempts={{.Attempts}}
{{if .LastError}}  last error: {{.LastError}}
{{end}}{{end}}{{if eq .Pending 0}}All changes synchronized with server.{{else}}Run 'cartsync sync' to push pending changes.{{end}}
{{end}}`
