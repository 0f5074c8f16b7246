// Package tags implements the tag verbs: listing, interactive annotated tag creation
// and local or remote tag deletion.
package tags
