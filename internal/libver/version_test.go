package libver_test

import (
	"testing"

	"clangview/internal/libver"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		major int
		minor int
		pre   bool
	}{
		{"clang version 3.4 (tags/RELEASE_34/final)", 3, 4, false},
		{"clang version 17.0.6", 17, 0, false},
		{"Ubuntu clang version 14.0.0-1ubuntu1.1", 14, 0, false},
		{"Debian clang version 16.0.6 (15)", 16, 0, false},
		{"Apple LLVM version 10.0.0 (clang-1000.11.45.5) (based on LLVM 6.0svn)", 5, 9, true},
		{"Apple LLVM version 5.0 (clang-500.2.79) (based on LLVM 3.3svn)", 3, 2, true},
		{"clang version 3.5svn", 3, 4, true},
		{"clang version 19.0.0git (https://github.com/llvm/llvm-project abc)", 18, 9, true},
	}
	for _, tc := range cases {
		v, err := libver.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if v.Major != tc.major || v.Minor != tc.minor || v.Prerelease != tc.pre {
			t.Fatalf("Parse(%q) = %+v, want %d.%d pre=%v", tc.in, v, tc.major, tc.minor, tc.pre)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "gcc version 12.2.0", "clang version x.y"} {
		if _, err := libver.Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestTranslationUnitTag(t *testing.T) {
	old := libver.For(libver.MustParse("clang version 14.0.0"))
	if old.TranslationUnitTag != libver.TranslationUnitTagLegacy || old.OpenMPMasked {
		t.Fatalf("14.0: got tag %d masked=%v", old.TranslationUnitTag, old.OpenMPMasked)
	}
	cur := libver.For(libver.MustParse("clang version 15.0.7"))
	if cur.TranslationUnitTag != libver.TranslationUnitTagModern || !cur.OpenMPMasked {
		t.Fatalf("15.0: got tag %d masked=%v", cur.TranslationUnitTag, cur.OpenMPMasked)
	}
	pre := libver.For(libver.MustParse("clang version 15.0.0svn"))
	if pre.TranslationUnitTag != libver.TranslationUnitTagLegacy {
		t.Fatalf("15.0svn should still use the legacy tag, got %d", pre.TranslationUnitTag)
	}
}

func TestFeatures(t *testing.T) {
	c := libver.For(libver.Version{Major: 7, Minor: 0})
	if !c.Has(libver.FeaturePrintingPolicy) {
		t.Fatalf("7.0 should have printing policy")
	}
	if c.Has(libver.FeatureNamedType) {
		t.Fatalf("7.0 must not have named type")
	}
	if c.Has(libver.FeatureVarDeclInitializer) {
		t.Fatalf("7.0 must not have var decl initializer")
	}
	if got := libver.Introduced(libver.FeatureUnqualifiedType); got.Major != 16 {
		t.Fatalf("unqualified type introduced in %v", got)
	}
}

func TestCompare(t *testing.T) {
	a := libver.Version{Major: 3, Minor: 9}
	b := libver.Version{Major: 4, Minor: 0}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("compare broken")
	}
	if !b.AtLeast(3, 9) || a.AtLeast(4, 0) {
		t.Fatalf("AtLeast broken")
	}
}
