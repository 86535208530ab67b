/*
Package selection provides partial-sort primitives for slices.

Select places the element of rank k at index k, partitioning the
surrounding range around it, in average linear time (Floyd–Rivest).
MultiSelect uses it to cut a range into contiguous groups that are fully
ordered between groups but unordered within a group, which is the
primitive the boxtree bulk loader needs to tile data without paying for a
full sort.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package selection
