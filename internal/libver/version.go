package libver

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version is the parsed major/minor release of the native library.
type Version struct {
	Major int
	Minor int
	Patch int
	// Prerelease is set when the version string carried an svn/git/rc suffix.
	Prerelease bool
}

var (
	basedOnRe = regexp.MustCompile(`based on LLVM (\d+)\.(\d+)(?:\.(\d+))?(svn|git|rc\d*)?`)
	clangRe   = regexp.MustCompile(`clang version (\d+)\.(\d+)(?:\.(\d+))?(svn|git|rc\d*)?`)
)

// Parse extracts the version from a clang_getClangVersion string.
//
// Apple toolchains report their own version first and the upstream one in a
// "based on LLVM X.Y" clause; the upstream one wins. A prerelease suffix means
// the build predates the stated release, so the result is one minor version
// lower (X.0svn becomes (X-1).9).
func Parse(s string) (Version, error) {
	m := basedOnRe.FindStringSubmatch(s)
	if m == nil {
		m = clangRe.FindStringSubmatch(s)
	}
	if m == nil {
		return Version{}, fmt.Errorf("unrecognized libclang version string %q", s)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("bad major version in %q: %w", s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("bad minor version in %q: %w", s, err)
	}
	patch := 0
	if m[3] != "" {
		if patch, err = strconv.Atoi(m[3]); err != nil {
			return Version{}, fmt.Errorf("bad patch version in %q: %w", s, err)
		}
	}
	v := Version{Major: major, Minor: minor, Patch: patch}
	if m[4] != "" {
		v = v.previousMinor()
		v.Prerelease = true
	}
	return v, nil
}

// MustParse is Parse for constant inputs; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) previousMinor() Version {
	if v.Minor > 0 {
		return Version{Major: v.Major, Minor: v.Minor - 1}
	}
	if v.Major == 0 {
		return v
	}
	return Version{Major: v.Major - 1, Minor: 9}
}

// Compare returns -1, 0 or 1. Patch levels are ignored.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major < o.Major:
		return -1
	case v.Major > o.Major:
		return 1
	case v.Minor < o.Minor:
		return -1
	case v.Minor > o.Minor:
		return 1
	}
	return 0
}

// AtLeast reports whether v >= major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Compare(Version{Major: major, Minor: minor}) >= 0
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Patch > 0 {
		s += "." + strconv.Itoa(v.Patch)
	}
	if v.Prerelease {
		s += "-pre"
	}
	return s
}
