package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Compiler findings reported by libclang
	ClgInfo          Code = 1000
	ClgDiagnostic    Code = 1001
	ClgParseFailed   Code = 1002
	ClgASTReadError  Code = 1003
	ClgReparseFailed Code = 1004
	ClgSaveFailed    Code = 1005
	ClgUnsupported   Code = 1006
	ClgFatal         Code = 1007

	// Documentation lints
	DocInfo           Code = 2000
	DocMissingComment Code = 2001
	DocUnknownParam   Code = 2002
	DocMissingParam   Code = 2003
	DocEmptyBrief     Code = 2004

	// Binding
	BndInfo        Code = 3000
	BndUnknownKind Code = 3001
	BndReleased    Code = 3002

	// IO
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOWatchError    Code = 4002
	IOCacheError    Code = 4003

	// Configuration
	CfgInfo       Code = 5000
	CfgUnknownKey Code = 5001
	CfgBadGlob    Code = 5002
	CfgNoSources  Code = 5003
	CfgBadCompDB  Code = 5004
	CfgNoCommand  Code = 5005

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	ClgInfo:           "Compiler information",
	ClgDiagnostic:     "Compiler diagnostic",
	ClgParseFailed:    "Translation unit could not be parsed",
	ClgASTReadError:   "AST file could not be read",
	ClgReparseFailed:  "Translation unit could not be reparsed",
	ClgSaveFailed:     "Translation unit could not be saved",
	ClgUnsupported:    "Not supported by the loaded libclang",
	ClgFatal:          "Fatal compiler error",
	DocInfo:           "Documentation information",
	DocMissingComment: "Public declaration has no documentation comment",
	DocUnknownParam:   "Documented parameter does not exist",
	DocMissingParam:   "Parameter is not documented",
	DocEmptyBrief:     "Documentation comment has no brief",
	BndInfo:           "Binding information",
	BndUnknownKind:    "Unknown kind tag",
	BndReleased:       "Use of a released resource",
	IOInfo:            "IO information",
	IOLoadFileError:   "File could not be loaded",
	IOWatchError:      "File watch failed",
	IOCacheError:      "Cache entry could not be used",
	CfgInfo:           "Configuration information",
	CfgUnknownKey:     "Unknown configuration key",
	CfgBadGlob:        "Invalid source pattern",
	CfgNoSources:      "No source files matched",
	CfgBadCompDB:      "Compilation database could not be loaded",
	CfgNoCommand:      "File has no compile command",
	ObsInfo:           "Observability information",
	ObsTimings:        "Timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CLG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("BND%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
