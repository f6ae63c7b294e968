package assets

import (
	"embed"
	"strings"

	"github.com/HaPhanBaoMinh/ktoast/help"
)

//go:embed art/*.txt
var artFS embed.FS

// Art is one loadable sprite image: raw lines plus measured bounds.
type Art struct {
	Name   string
	Lines  []string
	Width  int
	Height int
}

// Registry maps variant names to art. Load resolves the whole catalogue
// up front; a variant that fails to load is logged and simply absent,
// surfacing later as a blank sprite rather than a crash.
type Registry struct {
	arts   map[string]Art
	failed []string
	ready  bool
}

func baseCatalogue() []string {
	return []string{
		"toast1", "toast2", "toast3", "toast4", "toast-missing",
		"toaster1", "toaster2", "toaster3", "toaster4", "toaster-missing",
		"butter", "cop",
	}
}

func themedCatalogue() []string {
	return []string{"santa", "gingerbread", "candycane", "snowman"}
}

// Load resolves the base catalogue, plus the themed extras when theming
// is on. Ready flips true once every name has either loaded or failed.
func Load(themed bool) *Registry {
	names := baseCatalogue()
	if themed {
		names = append(names, themedCatalogue()...)
	}

	r := &Registry{arts: make(map[string]Art, len(names))}
	for _, name := range names {
		b, err := artFS.ReadFile("art/" + name + ".txt")
		if err != nil {
			help.Dbg("assets: %s failed to load: %v", name, err)
			r.failed = append(r.failed, name)
			continue
		}
		r.arts[name] = parseArt(name, string(b))
	}
	r.ready = true
	return r
}

func parseArt(name, raw string) Art {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	width := 0
	for _, ln := range lines {
		if n := len([]rune(ln)); n > width {
			width = n
		}
	}
	return Art{Name: name, Lines: lines, Width: width, Height: len(lines)}
}

// Ready reports whether every catalogue entry has resolved one way or
// the other.
func (r *Registry) Ready() bool { return r.ready }

// Failed lists the names that did not load.
func (r *Registry) Failed() []string { return r.failed }

// Lookup returns the art for a variant name. The selector contract says
// the name should exist; a miss means a failed or unmapped asset and the
// sprite's main image simply does not render.
func (r *Registry) Lookup(name string) (Art, bool) {
	a, ok := r.arts[name]
	return a, ok
}
