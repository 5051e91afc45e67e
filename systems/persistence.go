package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressItem = "progress"

// SavedProgress is what survives between runs.
type SavedProgress struct {
	LevelID string `json:"levelId"`
}

// Progress stores SavedProgress in the per-user data directory.
type Progress struct {
	manager *gdata.Manager
}

// OpenProgress opens the data store for appName.
func OpenProgress(appName string) (*Progress, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	return &Progress{manager: m}, nil
}

// Load returns the saved progress, or nil when nothing was saved yet.
func (p *Progress) Load() (*SavedProgress, error) {
	if p == nil || p.manager == nil {
		return nil, nil
	}

	data, err := p.manager.LoadItem(progressItem)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &progress, nil
}

// Save writes progress, replacing what was there.
func (p *Progress) Save(progress SavedProgress) error {
	if p == nil || p.manager == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := p.manager.SaveItem(progressItem, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// StartLevel picks the level to start in: the saved one when it is still in
// ids, otherwise the first id.
func StartLevel(saved *SavedProgress, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	if saved != nil {
		for _, id := range ids {
			if id == saved.LevelID {
				log.Printf("Resuming in level %s", id)
				return id
			}
		}
	}
	return ids[0]
}
