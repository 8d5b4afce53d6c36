package main

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/callsite"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"vendor":       true,
}

// scanSourceFiles walks the source roots and returns file paths matching
// the given extensions. A root may also be a single file.
func scanSourceFiles(roots []string, exts []string) ([]string, error) {
	var files []string
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if path != root && skipDirs[name] {
					return filepath.SkipDir
				}
				return nil
			}
			if extSet[filepath.Ext(name)] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// findCalls scans files concurrently and returns their translation calls in
// file order, then source order. Locations are relative to base.
func findCalls(ctx context.Context, base string, files []string, opts callsite.Options, jobs int) ([]callsite.Call, error) {
	results := make([][]callsite.Call, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			fileOpts := opts
			fileOpts.File = file
			if rel, err := filepath.Rel(base, file); err == nil {
				fileOpts.File = rel
			}
			results[i] = callsite.Scan(data, fileOpts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var calls []callsite.Call
	for _, r := range results {
		calls = append(calls, r...)
	}
	return calls, nil
}
