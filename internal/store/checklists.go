package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pretrade/internal/model"
)

const checklistsFileName = "checklists.json"

// DefaultChecklists seeds a first run. Mirrors the default pre-trade
// checklist the journal server ships to new users.
func DefaultChecklists() []model.Checklist {
	return []model.Checklist{
		{
			ID:   "pre-trade",
			Name: "Pre-Trade Checklist",
			Items: []model.ChecklistItem{
				{ID: "trend", Text: "Trend direction confirmed on higher timeframe", Required: true},
				{ID: "rrr", Text: "Risk-reward ratio is at least 1:1.5", Required: true},
				{ID: "size", Text: "Position size within risk limit", Required: true},
				{ID: "news", Text: "No high-impact news in the next hour", Required: false},
				{ID: "journal", Text: "Setup noted in journal", Required: false},
			},
		},
	}
}

func checklistsPath(dir string) string {
	return filepath.Join(dir, checklistsFileName)
}

// LoadChecklists reads the checklist definitions from the data dir, writing
// the defaults on first use so the file is editable afterwards.
func LoadChecklists(dir string) ([]model.Checklist, error) {
	b, err := os.ReadFile(checklistsPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			lists := DefaultChecklists()
			if err := SaveChecklists(dir, lists); err != nil {
				return nil, err
			}
			return lists, nil
		}
		return nil, fmt.Errorf("read checklists: %w", err)
	}
	var lists []model.Checklist
	if err := json.Unmarshal(b, &lists); err != nil {
		return nil, fmt.Errorf("parse checklists: %w", err)
	}
	return lists, nil
}

// SaveChecklists writes checklist definitions back to the data dir.
func SaveChecklists(dir string, lists []model.Checklist) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(checklistsPath(dir), b, 0o644); err != nil {
		return fmt.Errorf("write checklists: %w", err)
	}
	return nil
}
