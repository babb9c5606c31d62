// Package separator enumerates minimal vertex separators of a
// graph.Subgraph for the branch-and-bound engine's separator loop
// (spec §4.5). Generator implements the Berry-Bordat-Cogis
// closed-neighborhood method ("Generating All the Minimal Separators of
// a Graph", 2000): seed candidates from N(C) for each component C of
// H minus a closed vertex neighborhood, then repeatedly expand every
// separator S found, for each vertex x of S, into the N(C) of each
// component C of H minus S ∪ N(x). Every minimal separator is reachable this way, and nothing
// that isn't a minimal separator is ever produced.
package separator
