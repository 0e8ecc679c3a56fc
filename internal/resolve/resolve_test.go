package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
)

// fakeParser treats each "import x.y" / "import x.y as z" line as an
// Import statement and ignores everything else, so resolve tests can
// exercise the DFS without a real tree-sitter grammar.
type fakeParser struct{}

func (fakeParser) Parse(file source.FileID, content []byte, fs *source.FileSet) (*ast.Module, bool) {
	mod := &ast.Module{File: file}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "import ") {
			continue
		}
		dotted := strings.TrimSpace(strings.TrimPrefix(line, "import "))
		local := dotted
		if i := strings.Index(dotted, " as "); i >= 0 {
			local = dotted[i+4:]
			dotted = dotted[:i]
		}
		mod.Body = append(mod.Body, &ast.Import{
			Names: map[string]string{local: dotted},
			Order: []string{local},
			Span:  source.Span{File: file},
		})
	}
	return mod, true
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveLinearImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "util.py", "x: int = 1\n")
	writeFile(t, dir, "lib.py", "import util\n")
	entry := filepath.Join(dir, "main.py")
	writeFile(t, dir, "main.py", "import lib\n")

	fs := source.NewFileSet()
	bag := diag.NewBag(50)
	rep := diag.BagReporter{Bag: bag}

	res, ok := Resolve(entry, []byte("import lib\n"), fakeParser{}, fs, SearchPath{}, rep)
	if !ok {
		t.Fatalf("unexpected resolve failure, diagnostics: %v", bag.Items())
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(res.Order) != 3 {
		t.Fatalf("expected 3 modules, got %d: %v", len(res.Order), res.Order)
	}
	pos := make(map[string]int, len(res.Order))
	for i, p := range res.Order {
		pos[p] = i
	}
	if pos["util"] > pos["lib"] || pos["lib"] > pos["main"] {
		t.Fatalf("expected dependency-first order, got %v", res.Order)
	}
}

func TestResolveDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "import b\n")
	writeFile(t, dir, "b.py", "import a\n")
	entry := filepath.Join(dir, "a.py")

	fs := source.NewFileSet()
	bag := diag.NewBag(50)
	rep := diag.BagReporter{Bag: bag}

	content, err := os.ReadFile(entry)
	if err != nil {
		t.Fatal(err)
	}
	_, ok := Resolve(entry, content, fakeParser{}, fs, SearchPath{}, rep)
	if ok {
		t.Fatalf("expected resolve to report a cycle")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ResImportCycle {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a ResImportCycle diagnostic, got %v", bag.Items())
	}
}

func TestResolveReportsMissingModule(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "main.py")
	writeFile(t, dir, "main.py", "import nope\n")

	fs := source.NewFileSet()
	bag := diag.NewBag(50)
	rep := diag.BagReporter{Bag: bag}

	_, ok := Resolve(entry, []byte("import nope\n"), fakeParser{}, fs, SearchPath{}, rep)
	if ok {
		t.Fatalf("expected resolve to fail on a missing module")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ResModuleNotFound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a ResModuleNotFound diagnostic, got %v", bag.Items())
	}
}

func TestGraphMirrorsResolvedImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "util.py", "x: int = 1\n")
	entry := filepath.Join(dir, "main.py")
	writeFile(t, dir, "main.py", "import util\n")

	fs := source.NewFileSet()
	bag := diag.NewBag(50)
	rep := diag.BagReporter{Bag: bag}
	res, ok := Resolve(entry, []byte("import util\n"), fakeParser{}, fs, SearchPath{}, rep)
	if !ok {
		t.Fatalf("resolve failed: %v", bag.Items())
	}

	g, idx := Graph(res)
	fromID, ok := idx.NameToID["main"]
	if !ok {
		t.Fatalf("expected main in index")
	}
	toID, ok := idx.NameToID["util"]
	if !ok {
		t.Fatalf("expected util in index")
	}
	if len(g.Edges[fromID]) != 1 || g.Edges[fromID][0] != toID {
		t.Fatalf("expected main -> util edge, got %v", g.Edges[fromID])
	}
}
