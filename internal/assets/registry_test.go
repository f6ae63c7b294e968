package assets

import "testing"

func TestLoadBaseCatalogue(t *testing.T) {
	r := Load(false)

	if !r.Ready() {
		t.Fatal("registry not ready after Load")
	}
	if len(r.Failed()) != 0 {
		t.Fatalf("embedded assets failed to load: %v", r.Failed())
	}

	// every name the selector can produce outside themed mode
	for _, name := range []string{
		"toast1", "toast2", "toast3", "toast4", "toast-missing",
		"toaster1", "toaster2", "toaster3", "toaster4", "toaster-missing",
		"butter", "cop",
	} {
		art, ok := r.Lookup(name)
		if !ok {
			t.Errorf("missing art for %q", name)
			continue
		}
		if art.Height == 0 || art.Width == 0 {
			t.Errorf("%q has empty bounds: %dx%d", name, art.Width, art.Height)
		}
	}

	if _, ok := r.Lookup("santa"); ok {
		t.Error("themed art loaded without theming")
	}
}

func TestLoadThemedExtras(t *testing.T) {
	r := Load(true)
	for _, name := range []string{"santa", "gingerbread", "candycane", "snowman"} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("missing themed art for %q", name)
		}
	}
}

func TestLookupUnknownIsNotFatal(t *testing.T) {
	r := Load(false)
	if _, ok := r.Lookup("croissant"); ok {
		t.Error("unknown variant resolved")
	}
}
