// Package stp reads Steiner tree instances in the SteinLib STP format and
// writes solutions.
//
// Input (keywords are case-insensitive, node IDs are 1-based):
//
//	33D32945 STP File, STP Format Version 1.0
//	SECTION Comment
//	Name "example"
//	END
//	SECTION Graph
//	Nodes 4
//	Edges 3
//	E 1 2 1
//	E 2 3 1
//	E 3 4 1
//	END
//	SECTION Terminals
//	Terminals 2
//	T 1
//	T 4
//	END
//	EOF
//
// Unknown sections are skipped. Nodes are converted to 0-based indices of a
// core.Graph that accepts parallel edges; repeated terminals are dropped.
//
// Output formats:
//
//	text – "VALUE <cost>" followed by one "u v" line per tree edge (1-based)
//	json – Solution encoded with jsoniter
//	yaml – Solution encoded with yaml.v2
package stp
