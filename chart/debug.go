package chart

import "bytes"

// DumpSet logs every item in s at debug level, one per line.
func DumpSet(s *Set) {
	tracer().Debugf("--- set %04d ------------------------------------", s.Pos)
	for i := 0; i < s.Len(); i++ {
		tracer().Debugf("[%2d] %s", i, s.At(i))
	}
}

// SetString renders a Set's contents for error messages and tests.
func SetString(s *Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmtItem(&b, s.At(i))
	}
	b.WriteString("}")
	return b.String()
}

func fmtItem(b *bytes.Buffer, it Item) {
	b.WriteString(it.String())
}
