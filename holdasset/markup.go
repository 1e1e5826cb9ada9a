package holdasset

import (
	"bytes"
	"encoding/xml"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// recording serializes the subtree of one visual element.
type recording struct {
	buf   bytes.Buffer
	open  int // nested elements currently open below the recorded one
	elem  Element
	shape bool
}

// qualifiedAttr returns the name to emit for attr, or false
// for namespace declarations and attributes of foreign namespaces.
func qualifiedAttr(attr xml.Attr) (string, bool) {
	switch attr.Name.Space {
	case "":
		if attr.Name.Local == "xmlns" {
			return "", false
		}
		return attr.Name.Local, true
	case xlinkNamespace, "xlink":
		return "xlink:" + attr.Name.Local, true
	case svgNamespace:
		return attr.Name.Local, true
	}
	return "", false
}

func (r *recording) writeStart(se xml.StartElement) {
	r.buf.WriteByte('<')
	r.buf.WriteString(se.Name.Local)
	for _, attr := range se.Attr {
		name, ok := qualifiedAttr(attr)
		if !ok {
			continue
		}
		r.buf.WriteByte(' ')
		r.buf.WriteString(name)
		r.buf.WriteString(`="`)
		xml.EscapeText(&r.buf, []byte(attr.Value))
		r.buf.WriteByte('"')
	}
	r.buf.WriteByte('>')
}

func (r *recording) writeEnd(ee xml.EndElement) {
	r.buf.WriteString("</")
	r.buf.WriteString(ee.Name.Local)
	r.buf.WriteByte('>')
}

func (r *recording) writeText(data xml.CharData) {
	xml.EscapeText(&r.buf, data)
}
