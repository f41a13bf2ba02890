package ast

import "testing"

func TestParseProgramKind(t *testing.T) {
	for k, name := range programKindNames {
		got, ok := ParseProgramKind(name)
		if !ok || got != ProgramKind(k) {
			t.Errorf("ParseProgramKind(%q) = %v, %v", name, got, ok)
		}
		if got.String() != name {
			t.Errorf("String() = %q, want %q", got.String(), name)
		}
	}
	if _, ok := ParseProgramKind("raster"); ok {
		t.Errorf("unknown kind should not parse")
	}
}

func TestProgramKindClassification(t *testing.T) {
	effects := []ProgramKind{
		KindColorFilter, KindShader, KindPrivateShader, KindBlender,
		KindMeshVertex, KindMeshFragment,
	}
	for _, k := range effects {
		if !k.IsRuntimeEffect() {
			t.Errorf("%v should be a runtime effect", k)
		}
	}
	for _, k := range []ProgramKind{KindGeneric, KindFragment, KindVertex, KindCompute} {
		if k.IsRuntimeEffect() {
			t.Errorf("%v should not be a runtime effect", k)
		}
	}
	if !KindFragment.IsFragment() || !KindPipelineFragment.IsFragment() {
		t.Errorf("fragment kinds misclassified")
	}
	if !KindVertex.IsVertex() || !KindPipelineVertex.IsVertex() {
		t.Errorf("vertex kinds misclassified")
	}
	if KindShader.IsFragment() || KindShader.IsVertex() {
		t.Errorf("shader is neither fragment- nor vertex-stage")
	}
}
