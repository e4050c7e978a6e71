//go:build calipersdebug

package advanced

const assertionsEnabled = true
