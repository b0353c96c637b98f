// Package urllist loads candidate download URLs.
//
// Two sources are supported: a plain text list with one URL per line, and a
// saved HTML directory listing whose anchors are harvested with goquery. Both
// drop duplicates by exact string match (first occurrence wins) and preserve
// input order, which is the order URLs are later matched in.
package urllist
