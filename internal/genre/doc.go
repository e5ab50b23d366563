// Package genre assigns a genre label to (artist, title) pairs.
//
// Classification is deterministic and side-effect free: an exact
// artist-to-genre table is consulted first (including learned mappings),
// then priority-ordered keyword rules matched with an Aho-Corasick
// automaton, then a bidirectional substring check against each rule's
// known-artist list. Unmatched input gets the configured sentinel label.
//
// Rules are plain data injected through the constructor; there is no
// import-time global state.
package genre
