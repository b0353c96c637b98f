// Package fileutil holds the file-system helpers used when publishing result
// lists: temp-file-and-rename writes and the per-directory run lock.
package fileutil
