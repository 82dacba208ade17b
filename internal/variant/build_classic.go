//go:build classic && !xmas

package variant

const current = Classic
