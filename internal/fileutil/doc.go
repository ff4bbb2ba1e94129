// Package fileutil provides directory scanning for locating principle
// catalog files on disk.
package fileutil
