// Package variants defines the concrete variant families casegen ships
// with. Every family registers itself with the domain registry from init, so
// importing this package is all a caller needs to pick them up.
package variants

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"iter"

	"github.com/casegen-dev/casegen/internal/domain"
	m "github.com/casegen-dev/casegen/internal/model"
)

// constantTimeFile is the data file basename shared by every constant-time
// family; their outputs merge into one suite.
const constantTimeFile = "test_suite_constant_time"

// memcmpVariant builds one case for the constant-time buffer compare: the
// function returns zero for equal operands and nonzero otherwise, in time
// independent of where the operands differ.
type memcmpVariant struct {
	domain.Base
	a, b []byte
}

func newMemcmpVariant(c *domain.Counter, desc string, a, b []byte) memcmpVariant {
	return memcmpVariant{
		Base: domain.Base{
			Title: "Constant-time memcmp",
			Func:  "mbedtls_ct_memcmp",
			Desc:  desc,
			Count: c.Next(),
		},
		a: a,
		b: b,
	}
}

// Args returns both operands as quoted hex plus the expected difference flag.
func (v memcmpVariant) Args() []string {
	diff := "0"
	if !bytes.Equal(v.a, v.b) {
		diff = "1"
	}

	return []string{hexArg(v.a), hexArg(v.b), diff}
}

func generateMemcmpTests(c *domain.Counter) iter.Seq[m.TestCase] {
	return func(yield func(m.TestCase) bool) {
		for _, v := range memcmpVariants(c) {
			if !yield(domain.MakeCase(v)) {
				return
			}
		}
	}
}

func memcmpVariants(c *domain.Counter) []memcmpVariant {
	equal := [][]byte{nil, {0x00}, {0xa5, 0x5a}, byteRamp(16), byteRamp(64)}

	variants := make([]memcmpVariant, 0, len(equal)+3)

	for _, buf := range equal {
		desc := fmt.Sprintf("equal, %d bytes", len(buf))
		variants = append(variants, newMemcmpVariant(c, desc, buf, bytes.Clone(buf)))
	}

	base := byteRamp(16)
	for _, pos := range []int{0, 7, 15} {
		mutated := bytes.Clone(base)
		mutated[pos] ^= 0x01

		desc := fmt.Sprintf("differ at byte %d of %d", pos, len(base))
		variants = append(variants, newMemcmpVariant(c, desc, base, mutated))
	}

	return variants
}

// byteRamp returns n bytes counting up from zero.
func byteRamp(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}

	return buf
}

// hexArg renders a byte string the way the runner's suites expect hex
// arguments: hex digits wrapped in double quotes.
func hexArg(b []byte) string {
	return fmt.Sprintf("%q", hex.EncodeToString(b))
}

func init() {
	domain.RegisterFamily("MemcmpConstantTime", constantTimeFile, generateMemcmpTests)
}
