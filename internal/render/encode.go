// Package render turns readings into 4-digit 7-segment frames and
// picks which reading drives the display when both channels run.
package render

import (
	"thermocode-go/drivers/tm1637"
	"thermocode-go/types"
	"thermocode-go/x/mathx"
)

// Segment glyphs beyond the digit font.
const (
	segBlank = 0x00
	segMinus = 0x40 // G only
	segO     = 0x3F
	segF     = 0x71
	segS     = 0x6D
	segE     = 0x79
	segR     = 0x50 // lowercase r
)

// ErrFrame reads "Err " and is shown whenever no valid reading exists.
var ErrFrame = types.Frame{segE, segR, segR, segBlank}

// OffFrame reads "OFF " for the all-channels-disabled state.
var OffFrame = types.Frame{segO, segF, segF, segBlank}

// FlashFrame is the short status frame shown when a channel toggles:
// "S1" or "S2", followed by a dash when the channel was switched off.
func FlashFrame(channel int, enabled bool) types.Frame {
	mark := uint8(segMinus)
	if enabled {
		mark = segBlank
	}
	return types.Frame{segS, tm1637.EncodeDigit(uint8(channel)), mark, segBlank}
}

// Encode renders a temperature right-aligned on four digits. Values
// that fit show one decimal place with the point on the third digit;
// wider values drop the decimal and show a plain integer. An invalid
// reading renders ErrFrame.
//
//	23.45  ->  " 23.5"  (rounded)
//	-3.21  ->  "- 3.2"
//	150.0  ->  "  150"
func Encode(r types.Reading) types.Frame {
	if !r.Valid {
		return ErrFrame
	}
	if mathx.Between(r.MilliC, -9_999, 99_999) {
		return encodeOneDecimal(r.MilliC)
	}
	return encodeInteger(r.MilliC)
}

// encodeOneDecimal covers (-10.0, 100.0) as "sdd.d": sign or blank,
// tens, units with the decimal point, tenths. The tens cell keeps its
// zero so the point never moves.
func encodeOneDecimal(milliC int32) types.Frame {
	v10 := mathx.RoundDiv(milliC, 100) // tenths of a degree
	if v10 >= 1000 {
		return encodeInteger(milliC) // 99.95 and up round out of range
	}
	neg := v10 < 0
	v10 = mathx.Abs(v10)

	var f types.Frame
	if neg {
		f[0] = segMinus
	} else {
		f[0] = segBlank
	}
	f[1] = tm1637.EncodeDigit(uint8(v10 / 100 % 10))
	f[2] = tm1637.EncodeDigit(uint8(v10/10%10)) | tm1637.DP
	f[3] = tm1637.EncodeDigit(uint8(v10 % 10))
	return f
}

// encodeInteger renders a whole-degree value with leading zeros
// blanked and the minus sign, when present, packed against the most
// significant digit.
func encodeInteger(milliC int32) types.Frame {
	v := mathx.RoundDiv(milliC, 1000)
	neg := v < 0
	v = mathx.Abs(v)
	if v > 9999 {
		return ErrFrame
	}

	f := types.Frame{segBlank, segBlank, segBlank, segBlank}
	pos := 3
	for {
		f[pos] = tm1637.EncodeDigit(uint8(v % 10))
		v /= 10
		pos--
		if v == 0 || pos < 0 {
			break
		}
	}
	if neg {
		if pos < 0 {
			return ErrFrame // -9999 does not fit with its sign
		}
		f[pos] = segMinus
	}
	return f
}
