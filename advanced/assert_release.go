//go:build !calipersdebug

package advanced

const assertionsEnabled = false
