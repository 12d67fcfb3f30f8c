// Copyright (c) 2024
//
// MIT License

/*
Package ddnnf defines a concrete type for deterministic Decomposable Negation
Normal Form (d-DNNF) knowledge compilation artifacts: a rooted directed
acyclic graph over Boolean variables whose internal nodes are AND/OR gates
and whose leaves are literals or one of the two Boolean constants.

Basics

A Graph owns a dense, id-addressed table of nodes. Each node is either an AND
gate, an OR gate, a signed literal, or a constant. Edges are recorded twice,
once as a child set on the parent and once as a parent set on the child, and
the two views are kept as exact converses by every mutating operation.

Canonical form

A Graph returned by a reader, or by Condition/ConditionAll, always satisfies
the invariants enforced by Simplify: no gate has a child that would collapse
it to a constant, no gate has exactly one child, no gate has a child of its
own kind, and node ids are dense, assigned by a postorder traversal from the
root so that the root always receives the highest id.

Conditioning

Condition and ConditionAll specialize a graph under an assignment to one or
more variables, producing a canonical graph whose models are exactly the
models of the original formula that agree with the assignment, restricted to
the remaining variables.

File formats

Three textual encodings are supported for both reading and writing: the
library's own "ddnnf" format, the stricter "c2d" dialect (binary-fanout OR
gates only), and the "d4" compiler's format. See ReadDDNNF, ReadC2D, ReadD4
and WriteDDNNF, WriteC2D, WriteD4.

Use of build tags

Compiling with the `debug` build tag unlocks verbose tracing of the
simplifier's three phases and of each conditioning step to standard error. This has no effect on the
result of any operation, only on what gets logged along the way.
*/
package ddnnf
