// Package shared declares the collaborator interfaces the workflow services depend on.
package shared
