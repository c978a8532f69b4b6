package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/template"
	"time"

	"github.com/iudanet/cartsync/internal/client/sync"
	"github.com/iudanet/cartsync/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON}

func validateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
	return nil
}

var templates = template.Must(template.New("cli").Funcs(template.FuncMap{
	"money": money,
	"deref": func(p *float64) float64 { return *p },
}).Parse(cartTemplate + totalTemplate + syncTemplate + statusTemplate))

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// render writes v as indented JSON or through the named text template.
func (c *Cli) render(name string, v any) error {
	if c.json() {
		return c.writeJSON(v)
	}
	if err := templates.ExecuteTemplate(c.io, name, v); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func (c *Cli) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')
	if _, err := c.io.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// cartView то, что печатают list и watch
type cartView struct {
	Error     string            `json:"error,omitempty"`
	Total     string            `json:"total"`
	Items     []models.CartItem `json:"items"`
	Count     int               `json:"count"`
	IsLoading bool              `json:"isLoading"`
}

func newCartView(state models.CartState) cartView {
	items := state.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartView{
		Items:     items,
		Count:     models.Count(items),
		Total:     models.Total(items).StringFixed(2),
		Error:     state.Error,
		IsLoading: state.IsLoading,
	}
}

type totalView struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

type flushView struct {
	Delivered int `json:"delivered"`
	Dead      int `json:"dead"`
	Deferred  int `json:"deferred"`
}

type pullView struct {
	RemoteItems  int  `json:"remoteItems"`
	Skipped      int  `json:"skipped"`
	KeptLocal    int  `json:"keptLocal"`
	Applied      bool `json:"applied"`
	ClearPending bool `json:"clearPending,omitempty"`
}

type syncView struct {
	Flush *flushView `json:"flush,omitempty"`
	Pull  *pullView  `json:"pull,omitempty"`
}

func newSyncView(f *sync.FlushResult, p *sync.PullResult) syncView {
	var v syncView
	if f != nil {
		v.Flush = &flushView{Delivered: f.Delivered, Dead: f.Dead, Deferred: f.Deferred}
	}
	if p != nil {
		v.Pull = &pullView{RemoteItems: p.RemoteItems, Skipped: p.Skipped, KeptLocal: p.KeptLocal, Applied: p.Applied, ClearPending: p.ClearPending}
	}
	return v
}

type statusView struct {
	LastPull string             `json:"lastPull,omitempty"`
	Ops      []*models.OutboxOp `json:"ops"`
	Pending  int                `json:"pending"`
	Dead     int                `json:"dead"`
}

func newStatusView(s *sync.Status) statusView {
	v := statusView{Ops: s.Ops, Pending: s.Pending, Dead: s.Dead}
	if v.Ops == nil {
		v.Ops = []*models.OutboxOp{}
	}
	if !s.LastPull.IsZero() {
		v.LastPull = s.LastPull.UTC().Format(time.RFC3339)
	}
	return v
}
