// Package fixpoint provides binary fixed-point numeric representations with a
// fixed integer/fraction bit split, named by their Q format (I16F16 is a
// signed value with 16 integer and 16 fractional bits, U32F32 an unsigned one
// with 32 of each).
//
// Addition and subtraction are the native machine operators and wrap on
// overflow. Mul rounds toward negative infinity, Div rounds toward zero, and
// both wrap when the result does not fit the format, except that the 64-bit
// formats fault when a quotient exceeds the machine word. Division by zero
// faults with the runtime's integer-divide panic. None of these conditions
// are detected or corrected here.
package fixpoint

import (
	"math"
	"math/bits"
	"strconv"
)

// Value constrains a type parameter to one of the fixed-point representations
// of this package. The type terms let generic code use the wrapping additive
// operators, comparisons and the zero value directly; the methods carry the
// operations that depend on the fractional scale.
type Value[T any] interface {
	~int32 | ~int64 | ~uint32 | ~uint64
	Mul(T) T
	Div(T) T
	One() T
	Float64() float64
}

// Largest representable value of each format.
const (
	MaxI8F24  I8F24  = math.MaxInt32
	MaxI16F16 I16F16 = math.MaxInt32
	MaxI32F32 I32F32 = math.MaxInt64
	MaxU16F16 U16F16 = math.MaxUint32
	MaxU32F32 U32F32 = math.MaxUint64
)

// I8F24 is a signed fixed-point value with 8 integer and 24 fractional bits.
type I8F24 int32

// I8F24FromFloat returns the I8F24 nearest to f.
func I8F24FromFloat(f float64) I8F24 { return I8F24(math.Round(f * (1 << 24))) }

// I8F24FromBits reinterprets raw as an I8F24.
func I8F24FromBits(raw int32) I8F24 { return I8F24(raw) }

// Mul returns the product x×y.
func (x I8F24) Mul(y I8F24) I8F24 { return I8F24((int64(x) * int64(y)) >> 24) }

// Div returns the quotient x/y.
func (x I8F24) Div(y I8F24) I8F24 { return I8F24((int64(x) << 24) / int64(y)) }

// One returns 1 in this format.
func (I8F24) One() I8F24 { return 1 << 24 }

// Float64 returns the value as a float64.
func (x I8F24) Float64() float64 { return float64(x) / (1 << 24) }

// Bits returns the raw representation.
func (x I8F24) Bits() int32 { return int32(x) }

func (x I8F24) String() string { return formatFixed(x.Float64()) }

// I16F16 is a signed fixed-point value with 16 integer and 16 fractional bits.
type I16F16 int32

// I16F16FromFloat returns the I16F16 nearest to f.
func I16F16FromFloat(f float64) I16F16 { return I16F16(math.Round(f * (1 << 16))) }

// I16F16FromBits reinterprets raw as an I16F16.
func I16F16FromBits(raw int32) I16F16 { return I16F16(raw) }

// Mul returns the product x×y.
func (x I16F16) Mul(y I16F16) I16F16 { return I16F16((int64(x) * int64(y)) >> 16) }

// Div returns the quotient x/y.
func (x I16F16) Div(y I16F16) I16F16 { return I16F16((int64(x) << 16) / int64(y)) }

// One returns 1 in this format.
func (I16F16) One() I16F16 { return 1 << 16 }

// Float64 returns the value as a float64.
func (x I16F16) Float64() float64 { return float64(x) / (1 << 16) }

// Bits returns the raw representation.
func (x I16F16) Bits() int32 { return int32(x) }

func (x I16F16) String() string { return formatFixed(x.Float64()) }

// I32F32 is a signed fixed-point value with 32 integer and 32 fractional bits.
type I32F32 int64

// I32F32FromFloat returns the I32F32 nearest to f.
func I32F32FromFloat(f float64) I32F32 { return I32F32(math.Round(f * (1 << 32))) }

// I32F32FromBits reinterprets raw as an I32F32.
func I32F32FromBits(raw int64) I32F32 { return I32F32(raw) }

// Mul returns the product x×y. The 128-bit intermediate product is computed
// on magnitudes, with a floor adjustment so rounding matches the arithmetic
// shift of the narrower formats.
func (x I32F32) Mul(y I32F32) I32F32 {
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(mag64(int64(x)), mag64(int64(y)))
	m := hi<<32 | lo>>32
	if neg {
		if lo&0xffffffff != 0 {
			m++
		}
		return I32F32(-int64(m))
	}
	return I32F32(int64(m))
}

// Div returns the quotient x/y.
func (x I32F32) Div(y I32F32) I32F32 {
	neg := (x < 0) != (y < 0)
	a := mag64(int64(x))
	q, _ := bits.Div64(a>>32, a<<32, mag64(int64(y)))
	if neg {
		return I32F32(-int64(q))
	}
	return I32F32(int64(q))
}

// One returns 1 in this format.
func (I32F32) One() I32F32 { return 1 << 32 }

// Float64 returns the value as a float64.
func (x I32F32) Float64() float64 { return float64(x) / (1 << 32) }

// Bits returns the raw representation.
func (x I32F32) Bits() int64 { return int64(x) }

func (x I32F32) String() string { return formatFixed(x.Float64()) }

// U16F16 is an unsigned fixed-point value with 16 integer and 16 fractional bits.
type U16F16 uint32

// U16F16FromFloat returns the U16F16 nearest to f.
func U16F16FromFloat(f float64) U16F16 { return U16F16(math.Round(f * (1 << 16))) }

// U16F16FromBits reinterprets raw as a U16F16.
func U16F16FromBits(raw uint32) U16F16 { return U16F16(raw) }

// Mul returns the product x×y.
func (x U16F16) Mul(y U16F16) U16F16 { return U16F16((uint64(x) * uint64(y)) >> 16) }

// Div returns the quotient x/y.
func (x U16F16) Div(y U16F16) U16F16 { return U16F16((uint64(x) << 16) / uint64(y)) }

// One returns 1 in this format.
func (U16F16) One() U16F16 { return 1 << 16 }

// Float64 returns the value as a float64.
func (x U16F16) Float64() float64 { return float64(x) / (1 << 16) }

// Bits returns the raw representation.
func (x U16F16) Bits() uint32 { return uint32(x) }

func (x U16F16) String() string { return formatFixed(x.Float64()) }

// U32F32 is an unsigned fixed-point value with 32 integer and 32 fractional bits.
type U32F32 uint64

// U32F32FromFloat returns the U32F32 nearest to f.
func U32F32FromFloat(f float64) U32F32 { return U32F32(math.Round(f * (1 << 32))) }

// U32F32FromBits reinterprets raw as a U32F32.
func U32F32FromBits(raw uint64) U32F32 { return U32F32(raw) }

// Mul returns the product x×y.
func (x U32F32) Mul(y U32F32) U32F32 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return U32F32(hi<<32 | lo>>32)
}

// Div returns the quotient x/y.
func (x U32F32) Div(y U32F32) U32F32 {
	q, _ := bits.Div64(uint64(x)>>32, uint64(x)<<32, uint64(y))
	return U32F32(q)
}

// One returns 1 in this format.
func (U32F32) One() U32F32 { return 1 << 32 }

// Float64 returns the value as a float64.
func (x U32F32) Float64() float64 { return float64(x) / (1 << 32) }

// Bits returns the raw representation.
func (x U32F32) Bits() uint64 { return uint64(x) }

func (x U32F32) String() string { return formatFixed(x.Float64()) }

// mag64 returns the magnitude of v modulo 2^64, which is exact even for the
// most negative value.
func mag64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func formatFixed(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
