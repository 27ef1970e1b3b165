package model

import "time"

// ChecklistItem is one entry on a pre-trade checklist. Checked state is
// advisory and lives in the local key-value store, not on the server.
type ChecklistItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Required bool   `json:"required"`
	Checked  bool   `json:"checked"`
}

// Checklist groups items under one id and one progress bar.
type Checklist struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Items []ChecklistItem `json:"items"`
}

// Item returns a pointer into Items by id, or nil.
func (c *Checklist) Item(id string) *ChecklistItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// NewsAlert is the server's view of one news entry. The journal server owns
// this data; we only list unread alerts and flip them to read.
type NewsAlert struct {
	ID          int64
	Title       string
	Summary     string
	Symbol      string
	Impact      string
	Source      string
	PublishedAt time.Time
	IsRead      bool
}

// PlotPoint is one trade on the risk-reward scatter: reward/risk ratio
// against realized profit.
type PlotPoint struct {
	RRR    float64 `json:"rrr"`
	Profit float64 `json:"profit"`
	Symbol string  `json:"symbol,omitempty"`
	Win    bool    `json:"win,omitempty"`
}
