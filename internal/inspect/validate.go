package inspect

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/stockpile"
	"github.com/vk/stockpile/internal/ctxlog"
	"github.com/vk/stockpile/internal/manifest"
)

// Validate performs a strict parity check between the manifest and the
// registries linked into this binary. It checks registry presence, entry
// count expectations, field presence in both directions, and the
// compatibility of manifest field types with the registered Go type.
func Validate(ctx context.Context, m *manifest.Manifest) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(m.Registries))
	for name := range m.Registries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decl := m.Registries[name]

		view, ok := stockpile.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("registry '%s': declared in manifest %s but not linked into this binary", name, decl.FilePath))
			continue
		}

		if got := view.Len(); got < decl.Expect.MinEntries {
			errs = append(errs, fmt.Sprintf("registry '%s': manifest expects at least %d entries, binary carries %d", name, decl.Expect.MinEntries, got))
		}

		if len(decl.Fields) == 0 {
			continue
		}

		valueType := view.Type()
		if valueType.Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("registry '%s': manifest declares fields, but registered type %s is not a struct", name, valueType))
			continue
		}

		goFields := taggedFields(valueType)

		// Check for presence mismatches
		for fieldName := range goFields {
			if _, ok := decl.Fields[fieldName]; !ok {
				errs = append(errs, fmt.Sprintf("registry '%s': Go struct has field '%s' which is not declared in manifest", name, fieldName))
			}
		}
		for fieldName := range decl.Fields {
			if _, ok := goFields[fieldName]; !ok {
				errs = append(errs, fmt.Sprintf("registry '%s': manifest declares field '%s' which is not found in Go struct", name, fieldName))
			}
		}

		// Check for type mismatches
		fieldNames := make([]string, 0, len(decl.Fields))
		for fieldName := range decl.Fields {
			fieldNames = append(fieldNames, fieldName)
		}
		sort.Strings(fieldNames)

		for _, fieldName := range fieldNames {
			goField, ok := goFields[fieldName]
			if !ok {
				continue // Already handled by presence check
			}

			declType := decl.Fields[fieldName].Type
			if declType.Equals(cty.DynamicPseudoType) {
				logger.Warn("Manifest field uses 'type = any', which disables static type checking. Consider a specific type like 'string', 'number', or 'bool'.", "registry", name, "field", fieldName)
				continue
			}

			goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("registry '%s', field '%s': could not imply cty type from Go field type %s: %v", name, fieldName, goField.Type, err))
				continue
			}

			if !declType.Equals(goFieldType) {
				errs = append(errs, fmt.Sprintf("registry '%s', field '%s': type mismatch. Manifest requires '%s' but Go field '%s' provides '%s'",
					name, fieldName, declType.FriendlyName(), goField.Name, goFieldType.FriendlyName()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// taggedFields maps a struct's exported fields by their manifest names. The
// stockpile tag names a field explicitly and "-" excludes it; untagged
// fields default to the lowercased Go name.
func taggedFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("stockpile")
		name := strings.Split(tag, ",")[0]
		switch name {
		case "-":
			continue
		case "":
			name = strings.ToLower(field.Name)
		}
		fields[name] = field
	}
	return fields
}
