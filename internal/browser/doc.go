// Package browser opens compare URLs in the operator's default browser and falls
// back to printing the URL and copying it to the clipboard.
package browser
