package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"gloss/internal/source"
)

// StructField describes a single field inside a nominal struct type.
type StructField struct {
	Name string
	Type TypeID
}

// StructInfo stores metadata for a struct type.
type StructInfo struct {
	Name   string
	Decl   source.Span
	Fields []StructField
}

// RegisterStruct allocates a nominal struct type slot and returns its TypeID.
// Each registration is a distinct type even under the same name.
func (in *Interner) RegisterStruct(name string, decl source.Span) TypeID {
	slot := in.appendStructInfo(StructInfo{Name: name, Decl: decl})
	return in.internRaw(Type{Kind: KindStruct, Payload: slot})
}

// SetStructFields stores the resolved field descriptors for the struct type.
func (in *Interner) SetStructFields(typeID TypeID, fields []StructField) {
	info := in.structInfo(typeID)
	if info == nil {
		return
	}
	info.Fields = cloneStructFields(fields)
}

// StructInfo returns metadata for the provided struct TypeID.
func (in *Interner) StructInfo(typeID TypeID) (*StructInfo, bool) {
	info := in.structInfo(typeID)
	if info == nil {
		return nil, false
	}
	return info, true
}

// StructFields returns a copy of struct fields for the TypeID.
func (in *Interner) StructFields(typeID TypeID) []StructField {
	info := in.structInfo(typeID)
	if info == nil || len(info.Fields) == 0 {
		return nil
	}
	return cloneStructFields(info.Fields)
}

// StructName returns the declared name of a struct type, or "" if typeID is
// not a struct.
func (in *Interner) StructName(typeID TypeID) string {
	info := in.structInfo(typeID)
	if info == nil {
		return ""
	}
	return info.Name
}

func (in *Interner) structInfo(typeID TypeID) *StructInfo {
	if typeID == NoTypeID {
		return nil
	}
	tt, ok := in.Lookup(typeID)
	if !ok || tt.Kind != KindStruct {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.structs) {
		return nil
	}
	return &in.structs[tt.Payload]
}

func (in *Interner) appendStructInfo(info StructInfo) uint32 {
	in.structs = append(in.structs, StructInfo{
		Name:   info.Name,
		Decl:   info.Decl,
		Fields: cloneStructFields(info.Fields),
	})
	slot, err := safecast.Conv[uint32](len(in.structs) - 1)
	if err != nil {
		panic(fmt.Errorf("struct info overflow: %w", err))
	}
	return slot
}

func cloneStructFields(fields []StructField) []StructField {
	if len(fields) == 0 {
		return nil
	}
	return slices.Clone(fields)
}
