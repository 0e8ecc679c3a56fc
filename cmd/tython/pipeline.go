// Package main implements the tython CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cla7aye15I4nd/Tython/internal/ast/pyparse"
	"github.com/cla7aye15I4nd/Tython/internal/buildcache"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/lower"
	"github.com/cla7aye15I4nd/Tython/internal/resolve"
	"github.com/cla7aye15I4nd/Tython/internal/source"
	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// pipelineResult is what resolve+lower produced for one invocation.
type pipelineResult struct {
	bag   *diag.Bag
	fs    *source.FileSet
	clean bool
}

// runPipeline resolves entryPath's import graph and runs Typed
// Lowering over every resolved module, in the teacher's "collect
// everything into one Bag" style rather than aborting at the first
// diagnostic. cache may be nil, in which case every module is lowered
// unconditionally.
func runPipeline(entryPath string, maxDiagnostics int, stdlibDir string, cache *buildcache.Cache) (*pipelineResult, error) {
	content, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", entryPath, err)
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	parser, err := pyparse.New(bag)
	if err != nil {
		return nil, fmt.Errorf("initializing parser: %w", err)
	}
	defer parser.Close()

	search := resolve.SearchPath{}
	if stdlibDir != "" {
		search.Dirs = append(search.Dirs, stdlibDir)
	}

	res, resolved := resolve.Resolve(entryPath, content, parser, fs, search, diag.BagReporter{Bag: bag})
	if !resolved {
		return &pipelineResult{bag: bag, fs: fs, clean: false}, nil
	}

	in := types.NewInterner()
	clean := true
	for _, m := range res.Modules {
		moduleContent := fs.Get(m.File).Content
		key := buildcache.HashContent(moduleContent)

		if entry, hit := cache.Get(key); hit {
			replayDiagnostics(bag, entry.Diagnostics, m.Path, m.File)
			clean = clean && entry.Clean
			continue
		}

		before := bag.Len()
		rep := diag.BagReporter{Bag: bag, Module: m.Path}
		lw := lower.NewLowerer(in, rep, m.Path)
		_, moduleClean := lw.Lower(m.AST)
		clean = clean && moduleClean

		if cache != nil {
			items := bag.Items()[before:]
			entry := buildcache.Entry{Clean: moduleClean, Diagnostics: make([]buildcache.Diagnostic, len(items))}
			for i, d := range items {
				entry.Diagnostics[i] = buildcache.Diagnostic{
					Severity: uint8(d.Severity),
					Code:     uint16(d.Code),
					Message:  d.Message,
					Start:    d.Primary.Start,
					End:      d.Primary.End,
				}
			}
			_ = cache.Put(key, entry)
		}
	}

	return &pipelineResult{bag: bag, fs: fs, clean: clean}, nil
}

// replayDiagnostics re-reports a cache hit's diagnostics into bag
// without re-running Typed Lowering. file is the FileID this run's
// resolver walk already assigned the module (from resolve.Module.File),
// so the replayed spans resolve correctly against this run's FileSet
// even though the cache entry itself carries no FileSet-specific data.
func replayDiagnostics(bag *diag.Bag, items []buildcache.Diagnostic, module string, file source.FileID) {
	for _, it := range items {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(it.Severity),
			Code:     diag.Code(it.Code),
			Message:  it.Message,
			Primary:  source.Span{File: file, Start: it.Start, End: it.End},
			Module:   module,
		})
	}
}

func defaultCachePath() string {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "tython", "build.cache")
}

func openCache(path string) *buildcache.Cache {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	c, err := buildcache.Open(path)
	if err != nil {
		return nil
	}
	return c
}
