package analyze

import (
	"strings"

	"rdf-mapper/internal/common"
)

// TypePath builds a readable path to a field for error messages.
// Examples:
//   - "Article" for a struct
//   - "Article.Author" for a nested field
//   - "Article.Tags[]" for slice elements
//   - "Article.*Editor.Name" for a field behind a pointer
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice marks the last element as a slice.
func (p *TypePath) Slice() *TypePath {
	return p.mapLast(func(s string) string { return s + "[]" })
}

// Pointer marks the last element as a pointer.
func (p *TypePath) Pointer() *TypePath {
	return p.mapLast(func(s string) string { return "*" + s })
}

func (p *TypePath) mapLast(fn func(string) string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{fn("")}}
	}

	parts := append([]string{}, p.parts...)
	parts[len(parts)-1] = fn(parts[len(parts)-1])

	return &TypePath{parts: parts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString returns a human-readable representation of a TypeInfo.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}

		return "struct{...}"

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}

		return TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() && t.ID.PkgPath != "" {
			return common.PkgAlias(t.ID.PkgPath) + "." + t.ID.Name
		}

		return t.GoType.String()

	default:
		return t.GoType.String()
	}
}
