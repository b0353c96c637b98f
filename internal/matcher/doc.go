// Package matcher pairs candidate URLs with catalog entries.
//
// Matching is greedy and one-to-one: URLs are visited in load order and each
// one consumes the first still-unmatched catalog name whose folded form plus
// an archive extension appears in the decoded, folded URL. The extension
// anchor keeps "Game" from claiming a URL for "Game 2.zip". Consumed names are
// removed from the working list, so ties always go to the earliest name in
// the current remaining order.
package matcher
