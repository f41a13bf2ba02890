package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// GenericInfo stores metadata for a bounded generic family. Candidates is
// the ordered list of concrete types the family stands for; the order is
// load-bearing (first coercible candidate wins during resolution).
type GenericInfo struct {
	Name       string
	Candidates []TypeID
}

// GenericInfo returns metadata for the provided generic TypeID.
func (in *Interner) GenericInfo(typeID TypeID) (*GenericInfo, bool) {
	info := in.genericInfo(typeID)
	if info == nil {
		return nil, false
	}
	return info, true
}

// CoercibleTypes returns a copy of the candidate list for a generic family,
// or nil for concrete types.
func (in *Interner) CoercibleTypes(typeID TypeID) []TypeID {
	info := in.genericInfo(typeID)
	if info == nil || len(info.Candidates) == 0 {
		return nil
	}
	return slices.Clone(info.Candidates)
}

// GenericName returns the family's declared name ("$genType"), or "".
func (in *Interner) GenericName(typeID TypeID) string {
	info := in.genericInfo(typeID)
	if info == nil {
		return ""
	}
	return info.Name
}

func (in *Interner) registerGeneric(name string, candidates []TypeID) TypeID {
	in.generics = append(in.generics, GenericInfo{
		Name:       name,
		Candidates: slices.Clone(candidates),
	})
	slot, err := safecast.Conv[uint32](len(in.generics) - 1)
	if err != nil {
		panic(fmt.Errorf("generic info overflow: %w", err))
	}
	id := in.internRaw(Type{Kind: KindGeneric, Payload: slot})
	in.names[name] = id
	return id
}

func (in *Interner) genericInfo(typeID TypeID) *GenericInfo {
	if typeID == NoTypeID {
		return nil
	}
	tt, ok := in.Lookup(typeID)
	if !ok || tt.Kind != KindGeneric {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.generics) {
		return nil
	}
	return &in.generics[tt.Payload]
}
