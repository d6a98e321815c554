// Package episode derives episode numbers and titles from transcript file
// names.
//
// Transcript files are conventionally named "<n>-#<n> - <title>.txt". The
// leading digit run becomes the episode number and the human title is taken
// from after the hash marker. Names that do not follow the convention still
// parse: the number falls back to a caller-supplied position and the title
// falls back to the name without its extension.
package episode
