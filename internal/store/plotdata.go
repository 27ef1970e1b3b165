package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pretrade/internal/model"
)

const plotDataFileName = "plotdata.json"

// LoadPlotPoints reads the risk-reward scatter data exported from the
// journal. The file is optional: absence means no chart, and callers treat a
// nil slice as "chart not configured".
func LoadPlotPoints(dir string) ([]model.PlotPoint, error) {
	b, err := os.ReadFile(filepath.Join(dir, plotDataFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plot data: %w", err)
	}
	var points []model.PlotPoint
	if err := json.Unmarshal(b, &points); err != nil {
		return nil, fmt.Errorf("parse plot data: %w", err)
	}
	if points == nil {
		points = []model.PlotPoint{}
	}
	return points, nil
}
