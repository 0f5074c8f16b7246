// Package prompt reads confirmations and free-form answers from the operator.
package prompt
