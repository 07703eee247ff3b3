package fakeclang

// Source fixtures shared by the tests of the binding and of the host tools.
// Line numbers matter: tests assert on them.

// ListC declares a struct and then refers to it with the wrong tag, which
// produces one error diagnostic.
const ListC = `struct List {
    struct List *next;
    int value;
};

int sum(union List *L) {
    return 0;
}
`

// DocsH holds a single documented prototype.
const DocsH = `/** Brief.
  Longer line 1
 Longer line 2 */
void f(void);
`

// ShapesH is a guarded header included by SampleC.
const ShapesH = `#ifndef SHAPES_H
#define SHAPES_H

/// A point in the plane.
typedef struct Point {
    int x;
    int y;
} Point;

enum Color { RED, GREEN = 4, BLUE };

#endif
`

// SampleC exercises most of what the fake understands: includes, macros,
// typedefs, bit-fields, anonymous members, availability attributes,
// structured doc comments, calls and locals.
const SampleC = `#include <stddef.h>
#include "shapes.h"

#define MAX_ITEMS 16

/**
 * \brief Adds two numbers.
 *
 * Uses \b integer arithmetic on <em>signed</em> values.
 *
 * \param[in] a first operand
 * \param b second operand
 * \returns the sum
 */
int add(int a, int b);

struct Flags {
    unsigned int ready : 1;
    unsigned int mode : 3;
    union {
        int i;
        float f;
    };
    char name[8];
};

int legacy(void) __attribute__((deprecated("use add")));

int modern(void) __attribute__((availability(macos, introduced=10.12, deprecated=10.14, message="gone")));

static int counter = 0;

int add(int a, int b) {
    int total = a + b;
    counter++;
    return total;
}

int main(void) {
    Point p = {1, 2};
    int values[16];
    size_t n = sizeof(values);
    for (int i = 0; i < 4; i++) {
        values[i] = add(p.x, i);
    }
    return legacy() + (int)n;
}
`

// StddefH is the system header SampleC includes.
const StddefH = `typedef unsigned long size_t;
`

// Sample returns a library reporting version that knows SampleC as
// "sample.c", ShapesH as "shapes.h" and StddefH as a system header.
func Sample(version string) *Lib {
	l := New(version)
	l.AddFile("sample.c", SampleC)
	l.AddFile("shapes.h", ShapesH)
	l.AddSystemHeader("stddef.h", StddefH)
	return l
}
