package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Declare phase: building the module tree and namespace registry.
	DeclInfo                 Code = 1000
	DeclDuplicateDefinition  Code = 1001
	DeclDuplicateModule      Code = 1002
	DeclDuplicateConstructor Code = 1003
	DeclDuplicateEffect      Code = 1004

	// Resolve phase: rewriting names into qualified references.
	ResInfo                        Code = 2000
	ResNotFound                    Code = 2001
	ResInvalidPath                 Code = 2002
	ResPrivateDefinition           Code = 2003
	ResCannotFindModule            Code = 2004
	ResCannotFind                  Code = 2005
	ResAmbiguousImport             Code = 2006
	ResDuplicatePattern            Code = 2007
	ResVariableNotBoundOnBothSides Code = 2008
	ResExpectedConstructor         Code = 2009
	ResExpectedEffect              Code = 2010
	ResExpectedFunction            Code = 2011
	ResExpectedRecordType          Code = 2012
	ResScopeMismatch               Code = 2013

	// Project and driver level.
	ProjInfo            Code = 3000
	ProjManifestInvalid Code = 3001
	ProjDuplicateUnit   Code = 3002

	// IO boundary.
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	DeclInfo:                 "Declare information",
	DeclDuplicateDefinition:  "Duplicate definition in module",
	DeclDuplicateModule:      "Duplicate module declaration",
	DeclDuplicateConstructor: "Duplicate constructor in module",
	DeclDuplicateEffect:      "Duplicate effect operation in module",

	ResInfo:                        "Resolve information",
	ResNotFound:                    "Definition not found",
	ResInvalidPath:                 "Invalid module path",
	ResPrivateDefinition:           "Private definition is not accessible",
	ResCannotFindModule:            "Cannot find imported module",
	ResCannotFind:                  "Cannot find imported name",
	ResAmbiguousImport:             "Name is imported from multiple modules",
	ResDuplicatePattern:            "Pattern binds a variable twice",
	ResVariableNotBoundOnBothSides: "Or-pattern branches bind different variables",
	ResExpectedConstructor:         "Expected a constructor",
	ResExpectedEffect:              "Expected an effect",
	ResExpectedFunction:            "Expected a function",
	ResExpectedRecordType:          "Expected a record type",
	ResScopeMismatch:               "Scope stack mismatch",

	ProjInfo:            "Project information",
	ProjManifestInvalid: "Invalid project manifest",
	ProjDuplicateUnit:   "Duplicate compilation unit",

	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DCL%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
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
