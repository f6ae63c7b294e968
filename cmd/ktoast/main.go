package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/HaPhanBaoMinh/ktoast/help"
	"github.com/HaPhanBaoMinh/ktoast/internal/app"
	"github.com/HaPhanBaoMinh/ktoast/internal/config"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
	"github.com/HaPhanBaoMinh/ktoast/internal/infrastructure/feed"
	kk "github.com/HaPhanBaoMinh/ktoast/internal/infrastructure/k8s"
	"github.com/HaPhanBaoMinh/ktoast/internal/infrastructure/mock"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		configPath  string
		feedURL     string
		fallback    string
		source      string
		kubeconfig  string
		contextName string
		theme       string
		seed        int64
	)
	flag.StringVar(&configPath, "config", "ktoast.json", "path to JSON config overrides")
	flag.StringVar(&feedURL, "feed", "", "metrics feed URL (overrides config)")
	flag.StringVar(&fallback, "fallback", "", "local fallback metrics file (overrides config)")
	flag.StringVar(&source, "source", "feed", "snapshot source: feed|k8s|mock")
	flag.StringVar(&kubeconfig, "kubeconfig", filepath.Join(help.HomeDir(), ".kube", "config"), "path to kubeconfig (k8s source)")
	flag.StringVar(&contextName, "context", "", "kube context (k8s source)")
	flag.StringVar(&theme, "theme", "", "seasonal theme, e.g. xmas (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "rng seed, 0 = time-based")
	flag.Parse()

	cfg := config.Load(configPath)
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}
	if fallback != "" {
		cfg.FallbackFile = fallback
	}
	if theme != "" {
		cfg.Theme = theme
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var repo domain.SnapshotRepo
	switch source {
	case "mock":
		repo = mock.New()
	case "k8s":
		r, err := kk.New(kubeconfig, contextName)
		if err != nil {
			log.Fatal(err)
		}
		repo = r
	default:
		repo = feed.New(cfg.FeedURL, cfg.FallbackFile)
	}

	m := app.New(cfg, repo, rng)
	if err := tea.NewProgram(m, tea.WithAltScreen()).Start(); err != nil {
		log.Fatal(err)
	}
}
