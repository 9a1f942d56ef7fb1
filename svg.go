package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Path is an SVG XML path element
type Path struct {
	ID    string `xml:"id,attr"`
	D     string `xml:"d,attr"`
	group *Group
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID       string
	Elements []any // *Path or *Group, in document order
	Parent   *Group
	Owner    *Svg
}

// Svg represents an SVG file containing groups and paths
type Svg struct {
	Title    string
	Name     string
	Elements []any // *Path or *Group, in document order
}

// Data parses the path data of p.
func (p *Path) Data() PathData {
	return ParsePathData(p.D)
}

// Minify minifies the path data of p. p is not modified.
func (p *Path) Minify() Result {
	return MinifyResult(p.D)
}

// Label names p by the ids of its enclosing groups and its own id, joined
// with '/'. Groups without an id are left out.
func (p *Path) Label() string {
	var parts []string
	if p.ID != "" {
		parts = append(parts, p.ID)
	}
	for g := p.group; g != nil; g = g.Parent {
		if g.ID != "" {
			parts = append(parts, g.ID)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Group returns the group p belongs to, or nil at the top level.
func (p *Path) Group() *Group {
	return p.group
}

// Paths returns all paths of g and its subgroups in document order.
func (g *Group) Paths() []*Path {
	return collectPaths(nil, g.Elements)
}

// Paths returns all paths of the document in document order.
func (s *Svg) Paths() []*Path {
	return collectPaths(nil, s.Elements)
}

func collectPaths(dst []*Path, elements []any) []*Path {
	for _, e := range elements {
		switch e := e.(type) {
		case *Path:
			dst = append(dst, e)
		case *Group:
			dst = collectPaths(dst, e.Elements)
		}
	}
	return dst
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			g.ID = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var element any

			switch tok.Name.Local {
			case "g":
				element = &Group{Parent: g, Owner: g.Owner}
			case "path":
				element = &Path{group: g}
			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(element, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %w", err)
			}
			g.Elements = append(g.Elements, element)

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
//
// Elements other than groups and paths are not skipped, so paths nested in
// defs, symbol or a elements are found as top level paths.
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var element any

			switch tok.Name.Local {
			case "title":
				if s.Title == "" {
					if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
						return fmt.Errorf("error decoding title of SVG struct: %w", err)
					}
				} else if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			case "g":
				element = &Group{Owner: s}
			case "path":
				element = &Path{}
			default:
				continue
			}

			if err = decoder.DecodeElement(element, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			s.Elements = append(s.Elements, element)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string) (*Svg, error) {
	svg := Svg{Name: name}
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return &svg, nil
}
