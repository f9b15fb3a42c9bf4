// Package sml renders SECS-II message items as SML (SECS Message Language)
// text, the indented bracketed form used in equipment logs and test
// fixtures.
//
// A leaf renders on one line as "<TAG [count] elem elem ...>"; a list opens
// a block with each child on its own line, indented one level deeper:
//
//	<L [2]
//	    <U1 [2] 1 2>
//	    <A [3] "msg">
//	>
package sml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/secs2/format"
	"github.com/arloliu/secs2/internal/options"
	"github.com/arloliu/secs2/item"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 4

const upperhex = "0123456789ABCDEF"

type config struct {
	indentWidth int
}

// Option configures a Render or RenderTo call.
type Option = options.Option[*config]

// WithIndentWidth sets the number of spaces per nesting level. Width must
// not be negative.
func WithIndentWidth(width int) Option {
	return options.New(func(cfg *config) error {
		if width < 0 {
			return fmt.Errorf("indent width must not be negative, got %d", width)
		}
		cfg.indentWidth = width

		return nil
	})
}

// Render returns the SML text for it. Rendering cannot fail; an option
// error panics, as it indicates caller misuse rather than bad data.
func Render(it item.Item, opts ...Option) string {
	cfg := config{indentWidth: DefaultIndentWidth}
	if err := options.Apply(&cfg, opts...); err != nil {
		panic(err)
	}

	var b strings.Builder
	writeItem(&b, it, 0, cfg.indentWidth)

	return b.String()
}

// RenderTo writes the SML text for it to w.
func RenderTo(w io.Writer, it item.Item, opts ...Option) error {
	cfg := config{indentWidth: DefaultIndentWidth}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	var b strings.Builder
	writeItem(&b, it, 0, cfg.indentWidth)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeItem(b *strings.Builder, it item.Item, level, indentWidth int) {
	writeIndent(b, level*indentWidth)
	b.WriteByte('<')
	b.WriteString(it.Type().Tag())
	b.WriteString(" [")
	b.WriteString(strconv.Itoa(it.Size()))
	b.WriteByte(']')

	if it.Type() == format.TypeList {
		// Each child occupies its own line; the closing bracket sits at the
		// list's own indent. An empty list still spans two lines.
		b.WriteByte('\n')

		children, _ := it.Children()
		for _, child := range children {
			writeItem(b, child, level+1, indentWidth)
			b.WriteByte('\n')
		}

		writeIndent(b, level*indentWidth)
		b.WriteByte('>')

		return
	}

	if it.Size() > 0 {
		b.WriteByte(' ')
		writeElements(b, it)
	}

	b.WriteByte('>')
}

func writeElements(b *strings.Builder, it item.Item) {
	switch it.Type() {
	case format.TypeBinary:
		values, _ := it.BinaryValues()
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("0x")
			b.WriteByte(upperhex[v>>4])
			b.WriteByte(upperhex[v&0x0F])
		}

	case format.TypeBoolean:
		values, _ := it.BooleanValues()
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatBool(v))
		}

	case format.TypeASCII:
		// The whole string is one quoted token; bytes pass through verbatim.
		text, _ := it.ASCIIValue()
		b.WriteByte('"')
		b.WriteString(text)
		b.WriteByte('"')

	case format.TypeI1, format.TypeI2, format.TypeI4, format.TypeI8:
		values, _ := it.IntValues()
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(v, 10))
		}

	case format.TypeU1, format.TypeU2, format.TypeU4, format.TypeU8:
		values, _ := it.UintValues()
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatUint(v, 10))
		}

	default: // F4, F8
		bitSize := 64
		if it.Type() == format.TypeF4 {
			bitSize = 32
		}

		values, _ := it.FloatValues()
		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, bitSize))
		}
	}
}

func writeIndent(b *strings.Builder, spaces int) {
	for range spaces {
		b.WriteByte(' ')
	}
}
