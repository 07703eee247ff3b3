package libver

import "strings"

// Feature names an accessor family that only exists in some libclang releases.
type Feature uint8

const (
	// FeatureFilePosition covers clang_getFileLocation.
	FeatureFilePosition Feature = iota
	// FeatureFileUniqueID covers clang_getFileUniqueID.
	FeatureFileUniqueID
	// FeatureVisitFields covers clang_Type_visitFields.
	FeatureVisitFields
	// FeatureCompileCommandFilename covers clang_CompileCommand_getFilename.
	FeatureCompileCommandFilename
	FeatureTargetInfo
	FeatureTypedefName
	FeaturePrintingPolicy
	FeatureNamedType
	FeatureAnonymousRecord
	FeatureVarDeclInitializer
	FeatureUnqualifiedType
	featureCount
)

var featureNames = [...]string{
	FeatureFilePosition:           "file-location",
	FeatureFileUniqueID:           "file-unique-id",
	FeatureVisitFields:            "visit-fields",
	FeatureCompileCommandFilename: "compile-command-filename",
	FeatureTargetInfo:             "target-info",
	FeatureTypedefName:            "typedef-name",
	FeaturePrintingPolicy:         "printing-policy",
	FeatureNamedType:              "named-type",
	FeatureAnonymousRecord:        "anonymous-record",
	FeatureVarDeclInitializer:     "var-decl-initializer",
	FeatureUnqualifiedType:        "unqualified-type",
}

func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "unknown"
}

// introduced lists the first release that exports each feature.
var introduced = [featureCount]Version{
	FeatureFilePosition:           {Major: 3, Minor: 3},
	FeatureFileUniqueID:           {Major: 3, Minor: 3},
	FeatureVisitFields:            {Major: 3, Minor: 7},
	FeatureCompileCommandFilename: {Major: 3, Minor: 8},
	FeatureTargetInfo:             {Major: 5, Minor: 0},
	FeatureTypedefName:            {Major: 5, Minor: 0},
	FeaturePrintingPolicy:         {Major: 7, Minor: 0},
	FeatureNamedType:              {Major: 8, Minor: 0},
	FeatureAnonymousRecord:        {Major: 9, Minor: 0},
	FeatureVarDeclInitializer:     {Major: 16, Minor: 0},
	FeatureUnqualifiedType:        {Major: 16, Minor: 0},
}

// Introduced returns the first release exporting f.
func Introduced(f Feature) Version {
	if f >= featureCount {
		return Version{}
	}
	return introduced[f]
}

// Translation-unit cursor tags before and after the renumbering in LLVM 15.
const (
	TranslationUnitTagLegacy int32 = 300
	TranslationUnitTagModern int32 = 350
)

// Capabilities is the immutable per-library table every call site consults
// instead of re-checking the version.
type Capabilities struct {
	Version Version
	// TranslationUnitTag is the numeric CXCursor_TranslationUnit for this release.
	TranslationUnitTag int32
	// OpenMPMasked reports whether tags 300-305 denote OpenMP directives.
	OpenMPMasked bool
	features     [featureCount]bool
}

// For builds the capability table of a release.
func For(v Version) Capabilities {
	c := Capabilities{Version: v, TranslationUnitTag: TranslationUnitTagLegacy}
	if v.AtLeast(15, 0) {
		c.TranslationUnitTag = TranslationUnitTagModern
		c.OpenMPMasked = true
	}
	for f := Feature(0); f < featureCount; f++ {
		c.features[f] = v.Compare(introduced[f]) >= 0
	}
	return c
}

// Has reports whether f can be called on this release.
func (c Capabilities) Has(f Feature) bool {
	if f >= featureCount {
		return false
	}
	return c.features[f]
}

// Features lists the available features by name.
func (c Capabilities) Features() []string {
	out := make([]string, 0, featureCount)
	for f := Feature(0); f < featureCount; f++ {
		if c.features[f] {
			out = append(out, f.String())
		}
	}
	return out
}

func (c Capabilities) String() string {
	return "libclang " + c.Version.String() + " [" + strings.Join(c.Features(), " ") + "]"
}
