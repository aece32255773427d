package glctx

import (
	"strconv"
	"strings"
)

// formatNode is one parsed token of a vertex binding format string: a
// window of count scalars of the given GL-typed element, optionally
// normalized, advancing per-vertex or per-instance.
type formatNode struct {
	count       int
	elementSize int
	glType      uint32
	normalize   bool
	perInstance bool
	pad         bool
}

// parsedFormat is the result of parsing one binding's format string:
// node list plus the computed stride and instancing divisor (0 = per
// vertex, 1 = per instance; mixed per-node rates are not supported by a
// single buffer binding).
type parsedFormat struct {
	nodes   []formatNode
	stride  int
	divisor uint32
}

// parseVertexFormat parses the whitespace-separated binding format
// grammar `count·code[/i|/v]`, e.g. "3f 3f 2f" or "4f/i 1i/i", where code is one
// of f,f1,f2,f4,u1,u2,u4,i1,i2,i4,d2,d3,d4 (bare "f"/"i"/"u" default to
// the 4-byte width) or "x" for a byte of padding. "/i" marks the whole
// binding as per-instance; "/v" (the default) marks it per-vertex. A format
// string that mixes /i and /v tokens is rejected with an error.
func parseVertexFormat(format string) (parsedFormat, error) {
	fields := strings.Fields(format)
	if len(fields) == 0 {
		return parsedFormat{}, newError(KindInvalidArgument, "empty vertex format string")
	}
	var pf parsedFormat
	sawInstance, sawVertex := false, false
	for _, tok := range fields {
		rate := byte('v')
		if idx := strings.IndexByte(tok, '/'); idx >= 0 {
			suffix := tok[idx+1:]
			tok = tok[:idx]
			switch suffix {
			case "i":
				rate = 'i'
			case "v":
				rate = 'v'
			default:
				return parsedFormat{}, newErrorf(KindInvalidArgument, "unknown format rate suffix %q", suffix)
			}
		}
		if rate == 'i' {
			sawInstance = true
		} else {
			sawVertex = true
		}

		i := 0
		for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			i++
		}
		count := 1
		if i > 0 {
			n, err := strconv.Atoi(tok[:i])
			if err != nil || n < 1 {
				return parsedFormat{}, newErrorf(KindInvalidArgument, "bad repeat count in format token %q", tok)
			}
			count = n
		}
		code := tok[i:]
		if code == "x" {
			pf.nodes = append(pf.nodes, formatNode{count: count, elementSize: 1, pad: true, perInstance: rate == 'i'})
			pf.stride += count
			continue
		}
		dt, glType, elemSize, err := lookupAttribCode(code)
		if err != nil {
			return parsedFormat{}, err
		}
		pf.nodes = append(pf.nodes, formatNode{
			count: count, elementSize: elemSize, glType: glType,
			normalize: dt == 'n', perInstance: rate == 'i',
		})
		pf.stride += count * elemSize
	}
	if sawInstance && sawVertex {
		return parsedFormat{}, newError(KindInvalidArgument, "a single binding cannot mix /i and /v rates")
	}
	if sawInstance {
		pf.divisor = 1
	}
	return pf, nil
}

// lookupAttribCode resolves a format code to {shape, gl type, element
// size}. "f"/"i"/"u" alone default to 4-byte float/int/uint; "n1"/"n2"/"n4"
// select normalized unsigned byte/short/int.
func lookupAttribCode(code string) (shape byte, glType uint32, size int, err error) {
	switch code {
	case "f":
		code = "f4"
	case "i":
		code = "i4"
	case "u":
		code = "u4"
	}
	if strings.HasPrefix(code, "n") {
		dt, err := LookupDType("u" + code[1:])
		if err != nil {
			return 0, 0, 0, err
		}
		return 'n', dt.GLType, dt.ElementSize, nil
	}
	dt, err := LookupDType(code)
	if err != nil {
		return 0, 0, 0, err
	}
	return dt.Shape, dt.GLType, dt.ElementSize, nil
}
