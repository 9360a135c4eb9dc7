// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the model for a single 'registry' block and its
// translation from HCL.
//
// Why evaluate field types eagerly?
//
// Field types are written as HCL type expressions (string, number,
// list(string), any). Evaluating them into cty.Type at load time means a
// typo like 'strng' fails with the file and range that contains it, instead
// of surfacing later as a confusing mismatch during inspection.
package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/zclconf/go-cty/cty"
)

// RegistryDecl describes one registry the manifest expects the binary to
// carry. Name matches the registry's declared name ("pkg.Type").
type RegistryDecl struct {
	Name        string
	Description string
	Expect      Expect
	Fields      map[string]*FieldDecl

	// FilePath records the manifest file the block came from, for diagnostics.
	FilePath string
}

// Expect holds the quantitative expectations for a registry.
type Expect struct {
	MinEntries int
}

// FieldDecl describes one field the registry's value type must expose.
type FieldDecl struct {
	Name string
	Type cty.Type
}

// hclRegistry mirrors a 'registry' block for gohcl decoding.
type hclRegistry struct {
	Name        string      `hcl:"name,label"`
	Description string      `hcl:"description,optional"`
	Expect      *hclExpect  `hcl:"expect,block"`
	Fields      []*hclField `hcl:"field,block"`
}

type hclExpect struct {
	MinEntries int `hcl:"min_entries,optional"`
}

type hclField struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// newRegistryDeclFromHCL translates one decoded block into the model.
func newRegistryDeclFromHCL(block *hclRegistry, filePath string) (*RegistryDecl, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	decl := &RegistryDecl{
		Name:        block.Name,
		Description: block.Description,
		Fields:      make(map[string]*FieldDecl, len(block.Fields)),
		FilePath:    filePath,
	}
	if block.Expect != nil {
		decl.Expect = Expect{MinEntries: block.Expect.MinEntries}
	}

	for _, f := range block.Fields {
		if _, exists := decl.Fields[f.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate field declaration",
				Detail:   "Field \"" + f.Name + "\" is declared more than once in registry \"" + block.Name + "\".",
			})
			continue
		}

		if f.Type == nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing field type",
				Detail:   "Field \"" + f.Name + "\" in registry \"" + block.Name + "\" requires a type attribute.",
			})
			continue
		}

		fieldType, typeDiags := typeexpr.TypeConstraint(f.Type)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		decl.Fields[f.Name] = &FieldDecl{Name: f.Name, Type: fieldType}
	}

	return decl, diags
}
