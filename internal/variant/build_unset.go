//go:build !classic && !xmas

package variant

const current = Unset
