// Package catalog reads ROM management dat files (Logiqx-style XML) into an
// ordered, de-duplicated list of entry names.
//
// Only direct children of the document root whose element name is one of the
// configured record tags are considered; anything else is ignored. Names are
// trimmed of trailing whitespace and the first occurrence of each name wins,
// so the returned order is the order of first appearance in the file.
package catalog
