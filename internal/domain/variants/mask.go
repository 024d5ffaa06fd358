package variants

import (
	"fmt"
	"iter"

	"github.com/casegen-dev/casegen/internal/domain"
	m "github.com/casegen-dev/casegen/internal/model"
)

// maskVariant builds one case for the all-or-nothing mask: zero maps to zero,
// any nonzero value maps to all bits set.
type maskVariant struct {
	domain.Base
	value uint32
}

func newMaskVariant(c *domain.Counter, desc string, value uint32) maskVariant {
	return maskVariant{
		Base: domain.Base{
			Title: "Constant-time uint mask",
			Func:  "mbedtls_ct_uint_mask",
			Desc:  desc,
			Count: c.Next(),
		},
		value: value,
	}
}

// Args returns the input value and the expected mask.
func (v maskVariant) Args() []string {
	var mask uint32
	if v.value != 0 {
		mask = 0xffffffff
	}

	return []string{
		fmt.Sprintf("0x%08x", v.value),
		fmt.Sprintf("0x%08x", mask),
	}
}

func generateMaskTests(c *domain.Counter) iter.Seq[m.TestCase] {
	inputs := []struct {
		desc  string
		value uint32
	}{
		{"zero", 0},
		{"one", 1},
		{"high bit only", 0x80000000},
		{"middle bit only", 0x00010000},
		{"all bits", 0xffffffff},
	}

	return func(yield func(m.TestCase) bool) {
		for _, in := range inputs {
			if !yield(domain.MakeCase(newMaskVariant(c, in.desc, in.value))) {
				return
			}
		}
	}
}

// boolEqVariant builds one case for the constant-time size equality check:
// the function returns 1 when both operands are equal and 0 otherwise.
type boolEqVariant struct {
	domain.Base
	x, y uint
}

func newBoolEqVariant(c *domain.Counter, desc string, x, y uint) boolEqVariant {
	return boolEqVariant{
		Base: domain.Base{
			Title: "Constant-time size equality",
			Func:  "mbedtls_ct_size_bool_eq",
			Desc:  desc,
			Count: c.Next(),
		},
		x: x,
		y: y,
	}
}

// Args returns both operands and the expected boolean result.
func (v boolEqVariant) Args() []string {
	eq := "0"
	if v.x == v.y {
		eq = "1"
	}

	return []string{
		fmt.Sprintf("%d", v.x),
		fmt.Sprintf("%d", v.y),
		eq,
	}
}

func generateBoolEqTests(c *domain.Counter) iter.Seq[m.TestCase] {
	inputs := []struct {
		desc string
		x, y uint
	}{
		{"both zero", 0, 0},
		{"both one", 1, 1},
		{"zero vs one", 0, 1},
		{"adjacent large values", 0xfffffffe, 0xffffffff},
		{"equal large values", 0x10000000, 0x10000000},
	}

	return func(yield func(m.TestCase) bool) {
		for _, in := range inputs {
			if !yield(domain.MakeCase(newBoolEqVariant(c, in.desc, in.x, in.y))) {
				return
			}
		}
	}
}

func init() {
	domain.RegisterFamily("MaskConstantTime", constantTimeFile, generateMaskTests)
	domain.RegisterFamily("SizeBoolEqConstantTime", constantTimeFile, generateBoolEqTests)
}
