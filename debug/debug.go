// Package debug holds the build-time debug flag and cheap invariant assertions
// used by the solving engines.
package debug

// Assert panics with message if condition is false. It does nothing unless the
// debug build tag is set.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
