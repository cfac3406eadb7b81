package uuidv6

// StringLen is the length of a canonical identifier string.
const StringLen = 36

// StringGenerator produces canonical 36-character UUIDv6 strings. It owns
// its raw generator exclusively and carries no further state.
type StringGenerator struct {
	raw RawGenerator
}

// NewStringGenerator creates a string generator for the given node.
func NewStringGenerator(node Node) (StringGenerator, error) {
	raw, err := NewRawGenerator(node)
	if err != nil {
		return StringGenerator{}, err
	}
	return StringGenerator{raw: raw}, nil
}

// Create returns the next identifier rendered as
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx in lowercase hex.
func (g *StringGenerator) Create() (string, error) {
	buf, err := g.raw.Create()
	if err != nil {
		return "", err
	}
	return Format(buf), nil
}

// Sequence returns an unbounded view over this generator. Pulling from the
// sequence mutates the generator; a fresh sequence needs a fresh generator.
func (g *StringGenerator) Sequence() *StringSequence {
	return &StringSequence{gen: g}
}

// Format renders a raw identifier in the canonical hyphenated form.
func Format(id [Size]byte) string {
	var out [StringLen]byte
	out[8], out[13], out[18], out[23] = '-', '-', '-', '-'
	hexFormat(out[0:], id[0:4])
	hexFormat(out[9:], id[4:6])
	hexFormat(out[14:], id[6:8])
	hexFormat(out[19:], id[8:10])
	hexFormat(out[24:], id[10:16])
	return string(out[:])
}

// hexFormat is a small, allocation-lean hex encoder for fixed-size fields.
func hexFormat(out, bin []byte) {
	const hexdigits = "0123456789abcdef"
	j := 0
	for _, b := range bin {
		out[j] = hexdigits[b>>4]
		out[j+1] = hexdigits[b&0x0f]
		j += 2
	}
}
