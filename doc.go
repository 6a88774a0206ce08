/*
Package immutable is the root of a small library of immutable collections:
ordered sequences, sets and insertion-ordered maps (package collection), together
with the option- and sum-types they use to report absent values and alternate
outcomes (packages maybe, either and result).

Every operation which looks like a mutation returns a new value and leaves the
receiver untouched. Sequences come in three flavours, which differ only in when
values are computed:

■ eager sequences hold their values in a persistent vector,

■ deferred sequences pull values from a one-shot source at most once and memoize them,

■ lazy sequences re-run a generator for every traversal and let the generator
register cleanup code for traversals which are stopped early.

This package itself holds a handful of helpers shared by the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package immutable
