package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/HaPhanBaoMinh/ktoast/help"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
)

// Repo fetches snapshots from the aggregated metrics feed. The chain is
// remote URL, then local fallback file, then an empty snapshot marked
// "none". Fetch never returns an error; every failure degrades.
type Repo struct {
	url      string
	fallback string
	client   *http.Client
}

func New(url, fallbackPath string) *Repo {
	return &Repo{
		url:      url,
		fallback: fallbackPath,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Repo) Fetch(ctx context.Context) (domain.Snapshot, error) {
	if r.url != "" {
		snap, err := r.fetchRemote(ctx)
		if err == nil {
			snap.Source = domain.SourceRemote
			return snap, nil
		}
		help.Dbg("feed: remote fetch failed, trying local: %v", err)
	}

	if r.fallback != "" {
		snap, err := r.fetchLocal()
		if err == nil {
			snap.Source = domain.SourceLocal
			return snap, nil
		}
		help.Dbg("feed: local fallback failed: %v", err)
	}

	return domain.Snapshot{Source: domain.SourceNone}, nil
}

func (r *Repo) fetchRemote(ctx context.Context) (domain.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return domain.Snapshot{}, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Snapshot{}, fmt.Errorf("feed: unexpected status %d", resp.StatusCode)
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func (r *Repo) fetchLocal() (domain.Snapshot, error) {
	b, err := os.ReadFile(r.fallback)
	if err != nil {
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
