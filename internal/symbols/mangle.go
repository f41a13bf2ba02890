package symbols

import (
	"strings"

	"gloss/internal/types"
)

// MangledName produces the collision-free backend identifier for the
// declaration. Builtins without a definition (like `sin` or `sqrt`) and the
// entry point keep their literal names: those must stay stable for
// host-environment linkage. Everything else becomes
// name + splitter + marker + abbreviated return and parameter types.
//
// The '$' namespace prefix on builtin helpers is replaced by a "Q" marker
// after the splitter; "Q" never appears in a splitter position for user
// functions, so user code cannot collide with a re-mangled builtin. The
// splitter itself is "x_" instead of "_" when the name already ends in an
// underscore, since target grammars forbid doubled underscores.
func (fd *FunctionDeclaration) MangledName(typesIn *types.Interner) string {
	if (fd.Builtin && !fd.HasDefinition) || fd.IsEntryPoint {
		return fd.Name
	}
	name := fd.Name
	marker := ""
	if strings.HasPrefix(name, "$") {
		name = name[1:]
		marker = "Q"
	}
	splitter := "_"
	if strings.HasSuffix(name, "_") {
		splitter = "x_"
	}
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(splitter)
	sb.WriteString(marker)
	sb.WriteString(types.AbbreviatedName(typesIn, fd.ReturnType))
	for i := range fd.Params {
		sb.WriteString(types.AbbreviatedName(typesIn, fd.Params[i].Type))
	}
	return sb.String()
}

// Description renders the declaration the way diagnostics quote it:
// return type, name, and the parameter list with display-form types.
func (fd *FunctionDeclaration) Description(typesIn *types.Interner) string {
	var sb strings.Builder
	sb.WriteString(types.DisplayName(typesIn, fd.ReturnType))
	sb.WriteByte(' ')
	sb.WriteString(fd.Name)
	sb.WriteByte('(')
	for i := range fd.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(types.DisplayName(typesIn, fd.Params[i].Type))
		if fd.Params[i].Name != "" {
			sb.WriteByte(' ')
			sb.WriteString(fd.Params[i].Name)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
