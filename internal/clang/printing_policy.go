package clang

import (
	"fmt"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// PrintingPolicy controls how PrettyPrint renders declarations.
type PrintingPolicy struct {
	tu      *TranslationUnit
	own     *owned[native.Handle]
	release func()
}

// PrintingPolicy returns the default policy for c's unit. Close it.
func (c Cursor) PrintingPolicy() (*PrintingPolicy, error) {
	if err := c.tu.b.require(libver.FeaturePrintingPolicy); err != nil {
		return nil, err
	}
	lib := c.lib()
	own, err := acquire(lib.CursorPrintingPolicy(c.c), lib.DisposePrintingPolicy)
	if err != nil {
		return nil, &ConstructionError{Op: "printing policy", Input: c.Spelling()}
	}
	return &PrintingPolicy{tu: c.tu, own: own, release: c.tu.own.retain()}, nil
}

func validProperty(p kinds.PolicyProperty) error {
	if p < 0 || p > kinds.PolicyLastProperty {
		return fmt.Errorf("%w: printing policy property %d", ErrOutOfRange, int32(p))
	}
	return nil
}

func (p *PrintingPolicy) Get(prop kinds.PolicyProperty) (uint32, error) {
	if err := validProperty(prop); err != nil {
		return 0, err
	}
	return p.tu.b.lib.PrintingPolicyProperty(p.own.borrow(), int32(prop)), nil
}

func (p *PrintingPolicy) Set(prop kinds.PolicyProperty, v uint32) error {
	if err := validProperty(prop); err != nil {
		return err
	}
	p.tu.b.lib.SetPrintingPolicyProperty(p.own.borrow(), int32(prop), v)
	return nil
}

// SetBool is Set with 1 for true and 0 for false.
func (p *PrintingPolicy) SetBool(prop kinds.PolicyProperty, on bool) error {
	var v uint32
	if on {
		v = 1
	}
	return p.Set(prop, v)
}

// PrettyPrint renders c under the policy.
func (p *PrintingPolicy) PrettyPrint(c Cursor) string {
	return c.lib().CursorPrettyPrinted(c.c, p.own.borrow())
}

func (p *PrintingPolicy) Close() error {
	err := p.own.Close()
	p.release()
	return err
}

// PrettyPrint renders c with policy, or with the default policy when
// policy is nil.
func (c Cursor) PrettyPrint(policy *PrintingPolicy) (string, error) {
	if policy != nil {
		return policy.PrettyPrint(c), nil
	}
	p, err := c.PrintingPolicy()
	if err != nil {
		return "", err
	}
	defer p.Close()
	return p.PrettyPrint(c), nil
}
