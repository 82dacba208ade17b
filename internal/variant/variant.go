// Package variant identifies which game edition this launcher binary was
// built for.
//
// The edition is chosen at build time with a build tag, never at runtime:
//
//	go build -tags classic ./cmd/launcher   -> classic
//	go build -tags xmas ./cmd/launcher      -> xmas
//	go build ./cmd/launcher                 -> unset
//
// When both tags are given, xmas wins.
package variant

// Variant is the mode label handed to the game script.
type Variant string

const (
	// Classic is the original edition.
	Classic Variant = "classic"
	// Xmas is the Christmas edition.
	Xmas Variant = "xmas"
	// Unset is used when the binary was built without an edition tag.
	Unset Variant = "unset"
)

// Current returns the variant compiled into this binary.
func Current() Variant {
	return current
}

// All returns every variant in a stable order.
func All() []Variant {
	return []Variant{Classic, Xmas, Unset}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case Classic, Xmas, Unset:
		return true
	}
	return false
}

func (v Variant) String() string {
	return string(v)
}

// DataDir returns the asset directory the game script reads for this
// variant, relative to the script's working directory.
func (v Variant) DataDir() string {
	if v == Xmas {
		return "Data.XMas"
	}
	return "Data"
}

// SaveDir returns the directory name the game script keeps settings under.
func (v Variant) SaveDir() string {
	if v == Xmas {
		return "xmas"
	}
	return "classic"
}
