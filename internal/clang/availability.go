package clang

import (
	"fmt"

	"clangview/internal/native"
)

// Version is an availability version. Missing components are -1.
type Version struct {
	Major    int
	Minor    int
	Subminor int
}

func (v Version) IsZero() bool { return v.Major < 0 }

func (v Version) String() string {
	switch {
	case v.Major < 0:
		return ""
	case v.Minor < 0:
		return fmt.Sprintf("%d", v.Major)
	case v.Subminor < 0:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Subminor)
}

func availVersion(v native.Version) Version {
	return Version{Major: int(v.Major), Minor: int(v.Minor), Subminor: int(v.Subminor)}
}

// PlatformAvailability is one availability attribute of a declaration.
type PlatformAvailability struct {
	Platform    string
	Introduced  Version
	Deprecated  Version
	Obsoleted   Version
	Unavailable bool
	Message     string
}

type availBuf struct {
	buf native.Handle
	n   int
}

// PlatformAvailabilities is the availability of a declaration on every
// platform it names, plus the platform independent deprecation state.
type PlatformAvailabilities struct {
	header  native.AvailabilityHeader
	lib     native.Library
	own     *owned[availBuf]
	n       int
	release func()
}

// PlatformAvailability reads the availability attributes of c. Close the
// result.
func (c Cursor) PlatformAvailability() (*PlatformAvailabilities, error) {
	lib := c.lib()
	header, buf, n := lib.CursorPlatformAvailability(c.c)
	pa := &PlatformAvailabilities{header: header, lib: lib, n: n}
	if n == 0 {
		return pa, nil
	}
	own, err := acquire(availBuf{buf: buf, n: n}, func(a availBuf) { lib.DisposePlatformAvailability(a.buf, a.n) })
	if err != nil {
		return nil, &ConstructionError{Op: "platform availability", Input: c.Spelling()}
	}
	pa.own = own
	pa.release = c.tu.own.retain()
	return pa, nil
}

func (p *PlatformAvailabilities) AlwaysDeprecated() bool     { return p.header.AlwaysDeprecated }
func (p *PlatformAvailabilities) DeprecatedMessage() string  { return p.header.DeprecatedMessage }
func (p *PlatformAvailabilities) AlwaysUnavailable() bool    { return p.header.AlwaysUnavailable }
func (p *PlatformAvailabilities) UnavailableMessage() string { return p.header.UnavailableMessage }
func (p *PlatformAvailabilities) Len() int                   { return p.n }

func (p *PlatformAvailabilities) At(i int) (PlatformAvailability, error) {
	if i < 0 || i >= p.n {
		return PlatformAvailability{}, outOfRange(i, p.n)
	}
	a := p.lib.PlatformAvailabilityAt(p.own.borrow().buf, i)
	return PlatformAvailability{
		Platform:    a.Platform,
		Introduced:  availVersion(a.Introduced),
		Deprecated:  availVersion(a.Deprecated),
		Obsoleted:   availVersion(a.Obsoleted),
		Unavailable: a.Unavailable,
		Message:     a.Message,
	}, nil
}

func (p *PlatformAvailabilities) All() []PlatformAvailability {
	out := make([]PlatformAvailability, 0, p.n)
	for i := range p.n {
		a, _ := p.At(i)
		out = append(out, a)
	}
	return out
}

// Close disposes every element and the array itself.
func (p *PlatformAvailabilities) Close() error {
	if p.own == nil {
		return nil
	}
	err := p.own.Close()
	p.release()
	return err
}
