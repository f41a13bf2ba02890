package ast

import "fmt"

// ProgramKind selects the compilation flavor. It decides the entry-point
// calling convention and which builtin surface is available.
type ProgramKind uint8

const (
	KindColorFilter ProgramKind = iota
	KindShader
	KindPrivateShader
	KindBlender
	KindMeshVertex
	KindMeshFragment
	KindGeneric
	KindFragment
	KindPipelineFragment
	KindVertex
	KindPipelineVertex
	KindCompute
)

var programKindNames = [...]string{
	KindColorFilter:      "colorFilter",
	KindShader:           "shader",
	KindPrivateShader:    "privateShader",
	KindBlender:          "blender",
	KindMeshVertex:       "meshVertex",
	KindMeshFragment:     "meshFragment",
	KindGeneric:          "generic",
	KindFragment:         "fragment",
	KindPipelineFragment: "pipelineFragment",
	KindVertex:           "vertex",
	KindPipelineVertex:   "pipelineVertex",
	KindCompute:          "compute",
}

func (k ProgramKind) String() string {
	if int(k) < len(programKindNames) {
		return programKindNames[k]
	}
	return fmt.Sprintf("ProgramKind(%d)", k)
}

// ParseProgramKind resolves the manifest/flag spelling of a kind.
func ParseProgramKind(s string) (ProgramKind, bool) {
	for k, name := range programKindNames {
		if name == s {
			return ProgramKind(k), true
		}
	}
	return KindGeneric, false
}

// ProgramKindNames lists every accepted spelling, for error messages.
func ProgramKindNames() []string {
	out := make([]string, len(programKindNames))
	copy(out, programKindNames[:])
	return out
}

// IsRuntimeEffect reports whether the kind compiles a runtime effect
// (color filter, shader, blender, mesh stages).
func (k ProgramKind) IsRuntimeEffect() bool {
	switch k {
	case KindColorFilter, KindShader, KindPrivateShader, KindBlender,
		KindMeshVertex, KindMeshFragment:
		return true
	default:
		return false
	}
}

// IsFragment reports whether the kind is a fragment-stage program.
func (k ProgramKind) IsFragment() bool {
	return k == KindFragment || k == KindPipelineFragment
}

// IsVertex reports whether the kind is a vertex-stage program.
func (k ProgramKind) IsVertex() bool {
	return k == KindVertex || k == KindPipelineVertex
}
