// Package codec provides the reversible text transforms applied to message rows.
//
// Every Transform satisfies the round-trip law Decode(Encode(t)) == t for all
// text t. Decode may reject input that Encode could never have produced.
package codec

import (
	"encoding/base64"
	"sort"
	"strings"

	"github.com/zhubert/msgcodec/internal/errors"
)

// Transform is a named, reversible text transform.
type Transform interface {
	Name() string
	Encode(text string) string
	Decode(text string) (string, error)
}

// DefaultTransform is the transform used when none is configured.
const DefaultTransform = "reverse"

var registry = map[string]Transform{
	"reverse": Reverse{},
	"rot13":   Rot13{},
	"base64":  Base64{},
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Transform, error) {
	if t, ok := registry[name]; ok {
		return t, nil
	}
	return nil, errors.TransformNotFound(name)
}

// Names returns the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reverse reverses the rune sequence. It is its own inverse.
type Reverse struct{}

func (Reverse) Name() string { return "reverse" }

func (Reverse) Encode(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (r Reverse) Decode(text string) (string, error) {
	return r.Encode(text), nil
}

// Rot13 rotates ASCII letters by 13 places and leaves everything else alone.
type Rot13 struct{}

func (Rot13) Name() string { return "rot13" }

func (Rot13) Encode(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		}
		return r
	}, text)
}

func (r Rot13) Decode(text string) (string, error) {
	return r.Encode(text), nil
}

// Base64 encodes the UTF-8 bytes with the standard padded alphabet.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

func (b Base64) Decode(text string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", errors.DecodeFailed(b.Name(), err)
	}
	return string(data), nil
}
