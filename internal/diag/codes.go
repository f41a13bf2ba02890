package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexBadNumber                Code = 1003

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectType        Code = 2003
	SynExpectSemicolon   Code = 2004
	SynUnclosedParen     Code = 2005
	SynUnclosedBrace     Code = 2006
	SynUnclosedBracket   Code = 2007
	SynBadArraySize      Code = 2008
	SynDuplicateModifier Code = 2009
	SynUnexpectedTopLevel Code = 2010

	// Semantic
	SemaInfo                  Code = 3000
	SemaUnknownType           Code = 3001
	SemaSymbolRedefined       Code = 3002
	SemaModifierNotPermitted  Code = 3003
	SemaInlineConflict        Code = 3004
	SemaLayoutNotPermitted    Code = 3005
	SemaReturnTypeArray       Code = 3006
	SemaReturnStructWithArray Code = 3007
	SemaReturnTypeOpaque      Code = 3008
	SemaEffectChildParam      Code = 3009
	SemaEntryReturnType       Code = 3010
	SemaEntryParams           Code = 3011
	SemaReturnTypeOnlyDiffers Code = 3012
	SemaParamModifierMismatch Code = 3013
	SemaDuplicateDefinition   Code = 3014
	SemaPrivateName           Code = 3015
	SemaBadArraySize          Code = 3016
	SemaDuplicateStructField  Code = 3017
	SemaVoidVariable          Code = 3018
	SemaOpaqueNeedsUniform    Code = 3019
	SemaBadArrayElement       Code = 3020
	SemaOpaqueStructField     Code = 3021
	SemaEmptyStruct           Code = 3022

	// I/O
	IOLoadFileError Code = 4001
	IOBadInputPath  Code = 4002

	// Project / manifest
	ProjInfo            Code = 5000
	ProjManifestSyntax  Code = 5001
	ProjBadProgramKind  Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectType:               "Expect type",
	SynExpectSemicolon:          "Expect semicolon",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynBadArraySize:             "Bad array size",
	SynDuplicateModifier:        "Duplicate modifier",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SemaInfo:                    "Semantic information",
	SemaUnknownType:             "Unknown type",
	SemaSymbolRedefined:         "Symbol already defined",
	SemaModifierNotPermitted:    "Modifier not permitted here",
	SemaInlineConflict:          "Conflicting inline modifiers",
	SemaLayoutNotPermitted:      "Layout qualifier not permitted here",
	SemaReturnTypeArray:         "Functions may not return arrays",
	SemaReturnStructWithArray:   "Functions may not return structs containing arrays",
	SemaReturnTypeOpaque:        "Functions may not return opaque types",
	SemaEffectChildParam:        "Effect-child parameter not allowed",
	SemaEntryReturnType:         "Invalid entry point return type",
	SemaEntryParams:             "Invalid entry point parameters",
	SemaReturnTypeOnlyDiffers:   "Overloads differ only in return type",
	SemaParamModifierMismatch:   "Parameter modifiers differ between declarations",
	SemaDuplicateDefinition:     "Duplicate function definition",
	SemaPrivateName:             "Private name in user code",
	SemaBadArraySize:            "Bad array size",
	SemaDuplicateStructField:    "Duplicate struct field",
	SemaVoidVariable:            "Variable of type void",
	SemaOpaqueNeedsUniform:      "Opaque global must be uniform",
	SemaBadArrayElement:         "Invalid array element type",
	SemaOpaqueStructField:       "Opaque type in struct",
	SemaEmptyStruct:             "Struct has no fields",
	IOLoadFileError:             "I/O load file error",
	IOBadInputPath:              "Input path is neither a file nor a directory",
	ProjInfo:                    "Project information",
	ProjManifestSyntax:          "Manifest syntax error",
	ProjBadProgramKind:          "Unknown program kind",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
