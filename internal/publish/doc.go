// Package publish implements the verbs that move work towards the remote: commit
// and push, opening a pull request compare page and proposing a deploy.
package publish
