// Package resolve implements the Import Resolver: it turns an entry
// module's "import"/"from...import" statements into an ordered list of
// parsed modules, detecting cycles and missing modules along the way.
//
// Traversal is a recursive DFS over a gray/black coloring, the
// same shape the original Tython driver used for its module walk: a
// module turns gray on entry, black once every one of its imports has
// been fully resolved, and seeing gray again closes a cycle.
package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/resolve/dag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
)

type color uint8

const (
	white color = iota
	gray
	black
)

// Module is one resolved, parsed source file plus its import edges.
type Module struct {
	Path    string // logical dotted path, e.g. "pkg.mod"
	AbsPath string // resolved filesystem path
	File    source.FileID
	AST     *ast.Module
	Imports []string // resolved logical paths of direct imports, in source order
}

// Result is the resolver's output: modules in dependency order (every
// module appears after all of its imports) plus their logical paths
// in the same order. Graph rebuilds the dependency graph from it.
type Result struct {
	Modules []Module
	Order   []string // logical paths, entry module last
}

// SearchPath lists directories probed for a dotted import path, in
// priority order: the importing file's own directory, the entry
// module's directory, then any bundled library roots.
type SearchPath struct {
	Dirs []string
}

// Resolve walks entry (and everything it imports, transitively)
// starting from entryContent (already read from entryPath), registering
// each module's content in fs, parsing each module with parser and
// reporting diagnostics through rep.
func Resolve(entryPath string, entryContent []byte, parser ast.Parser, fs *source.FileSet, search SearchPath, rep diag.Reporter) (*Result, bool) {
	entryAbs, err := filepath.Abs(entryPath)
	if err != nil {
		entryAbs = entryPath
	}
	entryDir := filepath.Dir(entryAbs)
	if search.Dirs == nil || len(search.Dirs) == 0 || search.Dirs[0] != entryDir {
		search.Dirs = append([]string{entryDir}, search.Dirs...)
	}

	r := &resolver{
		parser: parser,
		fs:     fs,
		search: search,
		rep:    rep,
		colors: make(map[string]color),
		byPath: make(map[string]*Module),
	}

	entryLogical := modulePathFor(entryAbs, entryDir)
	if !r.enter(entryLogical, entryAbs, entryContent) {
		return nil, false
	}

	return r.result(), !r.hadError
}

type resolver struct {
	parser   ast.Parser
	fs       *source.FileSet
	search   SearchPath
	rep      diag.Reporter
	hadError bool

	colors map[string]color
	order  []string
	byPath map[string]*Module
	stack  []string // for cycle message construction
}

// enter runs the DFS from logical module path `path`, whose source is
// at absPath with the given (already-read) content. It returns false
// only on an unrecoverable error (unreadable entry, parse failure);
// cycles and missing imports are reported as diagnostics and do not
// abort the walk.
func (r *resolver) enter(path, absPath string, content []byte) bool {
	switch r.colors[path] {
	case black:
		return true
	case gray:
		r.reportCycle(path)
		r.hadError = true
		return true
	}
	r.colors[path] = gray
	r.stack = append(r.stack, path)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	file := r.fs.Add(absPath, content)
	mod, ok := r.parser.Parse(file, content, r.fs)
	if !ok {
		r.colors[path] = black
		return false
	}
	mod.Path = path

	m := &Module{Path: path, AbsPath: absPath, File: file, AST: mod}
	r.byPath[path] = m

	refs := mod.Imports()
	type probe struct {
		idx  int
		ref  ast.ImportRef
		path string
		abs  string
	}
	g, _ := errgroup.WithContext(context.Background())
	probes := make([]probe, len(refs))
	for i, ref := range refs {
		i, ref := i, ref
		probes[i] = probe{idx: i, ref: ref}
		g.Go(func() error {
			abs, found := r.probe(filepath.Dir(absPath), ref.Path)
			if found {
				probes[i].abs = abs
				probes[i].path = dottedToLogical(ref.Path)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range probes {
		if p.abs == "" {
			diag.Error(r.rep, diag.ResModuleNotFound, p.ref.Span,
				fmt.Sprintf("module %q not found on the search path", p.ref.Path))
			r.hadError = true
			continue
		}
		content, err := os.ReadFile(p.abs)
		if err != nil {
			diag.Error(r.rep, diag.ResEntryUnreadable, p.ref.Span,
				fmt.Sprintf("cannot read module %q: %v", p.ref.Path, err))
			r.hadError = true
			continue
		}
		m.Imports = append(m.Imports, p.path)
		r.enter(p.path, p.abs, content)
	}

	r.colors[path] = black
	r.order = append(r.order, path)
	return true
}

// probe checks fromDir (the importing file's own directory) and every
// entry in search.Dirs for dotted as a "<segment>/.../<leaf>.py" file.
// Every candidate's os.Stat runs concurrently to hide I/O latency, but
// the winner is always the first existing candidate in priority
// order, never whichever Stat call happens to finish first.
func (r *resolver) probe(fromDir, dotted string) (string, bool) {
	rel := filepath.Join(strings.Split(dotted, ".")...) + ".py"
	dirs := append([]string{fromDir}, r.search.Dirs...)

	exists := make([]bool, len(dirs))
	candidates := make([]string, len(dirs))
	g, _ := errgroup.WithContext(context.Background())
	for i, dir := range dirs {
		i, dir := i, dir
		candidates[i] = filepath.Join(dir, rel)
		g.Go(func() error {
			info, err := os.Stat(candidates[i])
			exists[i] = err == nil && !info.IsDir()
			return nil
		})
	}
	_ = g.Wait()

	for i, ok := range exists {
		if ok {
			return candidates[i], true
		}
	}
	return "", false
}

func (r *resolver) reportCycle(closingPath string) {
	start := 0
	for i, p := range r.stack {
		if p == closingPath {
			start = i
			break
		}
	}
	cycle := append(append([]string{}, r.stack[start:]...), closingPath)
	msg := fmt.Sprintf("import cycle detected: %s", strings.Join(cycle, " -> "))
	if m, ok := r.byPath[closingPath]; ok {
		diag.Error(r.rep, diag.ResImportCycle, source.Span{File: m.File}, msg)
	} else {
		diag.Error(r.rep, diag.ResImportCycle, source.Span{}, msg)
	}
}

func (r *resolver) result() *Result {
	out := &Result{Order: r.order}
	for _, p := range r.order {
		out.Modules = append(out.Modules, *r.byPath[p])
	}
	return out
}

func modulePathFor(absPath, baseDir string) string {
	rel, err := filepath.Rel(baseDir, absPath)
	if err != nil {
		rel = filepath.Base(absPath)
	}
	return dottedToLogical(strings.TrimSuffix(rel, ".py"))
}

func dottedToLogical(p string) string {
	p = strings.ReplaceAll(p, string(filepath.Separator), ".")
	return strings.ReplaceAll(p, "/", ".")
}

// Graph rebuilds a dag.Graph over a Result's modules, for callers that
// want their own toposort or cycle diagnostics independent of the
// resolver's own DFS-order output. Unlike Result.Order (already
// dependency-first from the resolver's post-order DFS), dag.Toposort's
// Order lists importers before their imports; walk it in reverse for
// compile order.
func Graph(res *Result) (*dag.Graph, dag.Index) {
	paths := make([]string, len(res.Modules))
	for i, m := range res.Modules {
		paths[i] = m.Path
	}
	idx := dag.NewIndex(paths)
	g := dag.NewGraph(idx)
	for _, m := range res.Modules {
		from := idx.NameToID[m.Path]
		for _, dep := range m.Imports {
			to, ok := idx.NameToID[dep]
			if !ok {
				continue
			}
			g.AddEdge(from, to)
		}
	}
	return g, idx
}
