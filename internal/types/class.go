package types

import "github.com/cla7aye15I4nd/Tython/internal/source"

// ClassID identifies a user-defined class registered with an Interner.
// 0 is reserved as invalid, mirroring TypeID's NoTypeID convention.
type ClassID uint32

// Field describes one instance attribute of a class.
type Field struct {
	Name string
	Type TypeID
	Decl source.Span
}

// Method describes one method's signature, keyed by name on ClassInfo.
type Method struct {
	Name    string
	Params  []TypeID
	Returns TypeID
	Decl    source.Span
}

// ClassInfo holds a registered class's fields and methods. Tython
// classes cannot extend a non-object base (spec.md's rejection matrix
// flags RejectInheritance), so there is no base-class link here.
type ClassInfo struct {
	Name    string
	Decl    source.Span
	Fields  []Field
	Methods map[string]Method
}

// RegisterClass allocates a class slot and returns its ClassID. The
// caller fills in fields/methods afterward via SetFields/AddMethod as
// lowering walks the class body.
func (in *Interner) RegisterClass(name string, decl source.Span) ClassID {
	id := ClassID(len(in.classes))
	in.classes = append(in.classes, ClassInfo{Name: name, Decl: decl, Methods: map[string]Method{}})
	return id
}

// Class returns metadata for id.
func (in *Interner) Class(id ClassID) (*ClassInfo, bool) {
	if id == 0 || int(id) >= len(in.classes) {
		return nil, false
	}
	return &in.classes[id], true
}

// SetFields stores the resolved instance fields for a class, in
// declaration order (spec.md's RDM layout contract requires a stable
// field order per class).
func (in *Interner) SetFields(id ClassID, fields []Field) {
	info, ok := in.Class(id)
	if !ok {
		return
	}
	info.Fields = fields
}

// AddMethod registers one method on a class.
func (in *Interner) AddMethod(id ClassID, m Method) {
	info, ok := in.Class(id)
	if !ok {
		return
	}
	if info.Methods == nil {
		info.Methods = map[string]Method{}
	}
	info.Methods[m.Name] = m
}

// FieldIndex returns the declaration-order index of a named field, or
// -1 if the class has no such field. Field index is exactly the RDM
// slot index used by the runtime's Instance layout.
func (in *Interner) FieldIndex(id ClassID, name string) int {
	info, ok := in.Class(id)
	if !ok {
		return -1
	}
	for i, f := range info.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
