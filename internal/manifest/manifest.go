// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Manifest structure, the root container for all
// registry declarations loaded from a user's .hcl files.
//
// Why have a Manifest?
//
// Declarations may be split across many files and directories, typically one
// file per subsystem. The loader discovers all of them and consolidates the
// blocks into a single unified view, so the inspector can reason about the
// whole binary at once and duplicate declarations across files are caught at
// load time rather than producing two conflicting expectations.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/sync/errgroup"

	"github.com/vk/stockpile/internal/ctxlog"
	"github.com/vk/stockpile/internal/fsutil"
)

// Manifest is the merged set of registry declarations from every loaded file.
type Manifest struct {
	Registries map[string]*RegistryDecl
}

// hclManifestFile represents the top-level structure of a manifest file for
// decoding.
type hclManifestFile struct {
	Registries []*hclRegistry `hcl:"registry,block"`
}

// newDeclsFromFile parses a single HCL file and returns the registry
// declarations found within it. Each call uses its own parser because
// hclparse.Parser is not safe for concurrent use.
func newDeclsFromFile(filePath string) ([]*RegistryDecl, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsedFile hclManifestFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	decls := make([]*RegistryDecl, 0, len(parsedFile.Registries))
	for _, block := range parsedFile.Registries {
		decl, declDiags := newRegistryDeclFromHCL(block, filePath)
		if declDiags.HasErrors() {
			return nil, fmt.Errorf("error in registry %q in file %s: %w", block.Name, filePath, declDiags)
		}
		decls = append(decls, decl)
	}

	return decls, nil
}

// LoadDir finds and parses all HCL files under path into a Manifest. Files
// are parsed concurrently; merging is sequential so duplicate detection is
// deterministic.
func LoadDir(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifests from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
	}

	m := &Manifest{Registries: make(map[string]*RegistryDecl)}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found in path, returning empty manifest.", "path", path)
		return m, nil
	}

	perFile := make([][]*RegistryDecl, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			decls, err := newDeclsFromFile(file)
			if err != nil {
				return err
			}
			perFile[i] = decls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, decls := range perFile {
		for _, decl := range decls {
			if prev, exists := m.Registries[decl.Name]; exists {
				return nil, fmt.Errorf("registry %q declared in both %s and %s", decl.Name, prev.FilePath, decl.FilePath)
			}
			m.Registries[decl.Name] = decl
		}
	}

	logger.Info("Manifest loaded successfully.", "files", len(files), "registries", len(m.Registries))
	return m, nil
}
