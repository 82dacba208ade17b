//go:build xmas

package variant

const current = Xmas
