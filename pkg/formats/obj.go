// Package formats provides readers and writers for mesh file formats.
// OBJ (Wavefront) format parser and writer for static meshes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJ format errors.
var (
	ErrInvalidOBJ    = errors.New("invalid OBJ data")
	ErrOBJIndexRange = errors.New("OBJ index out of range")
)

// OBJCorner references the attributes of one face corner.
// Indices are zero-based; -1 marks an absent attribute.
type OBJCorner struct {
	V  int // Position index
	VT int // Texture coordinate index
	VN int // Normal index
}

// OBJFace is a polygon with three or more corners.
type OBJFace struct {
	Corners []OBJCorner
}

// OBJ holds the geometry of a Wavefront OBJ file.
type OBJ struct {
	Name      string       // First object or group name
	Positions []mgl32.Vec3 // v
	TexCoords []mgl32.Vec2 // vt
	Normals   []mgl32.Vec3 // vn
	Faces     []OBJFace    // f
}

// TriangleCount returns the number of triangles after fan triangulation.
func (o *OBJ) TriangleCount() int {
	n := 0
	for _, f := range o.Faces {
		n += len(f.Corners) - 2
	}
	return n
}

// ParseOBJ parses OBJ text. Materials, smoothing groups and free-form
// geometry are ignored.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		var err error
		switch fields[0] {
		case "v":
			var v mgl32.Vec3
			v, err = parseVec3(fields[1:])
			obj.Positions = append(obj.Positions, v)
		case "vn":
			var n mgl32.Vec3
			n, err = parseVec3(fields[1:])
			obj.Normals = append(obj.Normals, n)
		case "vt":
			var uv mgl32.Vec2
			uv, err = parseVec2(fields[1:])
			obj.TexCoords = append(obj.TexCoords, uv)
		case "f":
			var face OBJFace
			face, err = obj.parseFace(fields[1:])
			obj.Faces = append(obj.Faces, face)
		case "o", "g":
			if obj.Name == "" && len(fields) > 1 {
				obj.Name = strings.Join(fields[1:], " ")
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOBJ, err)
	}

	if err := obj.validate(); err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: expected %d components, got %d", ErrInvalidOBJ, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOBJ, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	f, err := parseFloats(fields, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{f[0], f[1], f[2]}, nil
}

func parseVec2(fields []string) (mgl32.Vec2, error) {
	f, err := parseFloats(fields, 2)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	return mgl32.Vec2{f[0], f[1]}, nil
}

// parseFace parses the corners of an "f" statement. Negative indices
// count back from the most recent element.
func (o *OBJ) parseFace(fields []string) (OBJFace, error) {
	if len(fields) < 3 {
		return OBJFace{}, fmt.Errorf("%w: face needs at least 3 corners, got %d", ErrInvalidOBJ, len(fields))
	}
	face := OBJFace{Corners: make([]OBJCorner, len(fields))}
	for i, tok := range fields {
		parts := strings.Split(tok, "/")
		if len(parts) > 3 || parts[0] == "" {
			return OBJFace{}, fmt.Errorf("%w: bad face corner %q", ErrInvalidOBJ, tok)
		}
		c := OBJCorner{V: -1, VT: -1, VN: -1}
		var err error
		if c.V, err = resolveIndex(parts[0], len(o.Positions)); err != nil {
			return OBJFace{}, err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.VT, err = resolveIndex(parts[1], len(o.TexCoords)); err != nil {
				return OBJFace{}, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.VN, err = resolveIndex(parts[2], len(o.Normals)); err != nil {
				return OBJFace{}, err
			}
		}
		face.Corners[i] = c
	}
	return face, nil
}

func resolveIndex(tok string, count int) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrInvalidOBJ, tok)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0 && count+n >= 0:
		return count + n, nil
	case n < 0:
		return 0, fmt.Errorf("%w: relative index %d with %d elements", ErrOBJIndexRange, n, count)
	default:
		return 0, fmt.Errorf("%w: index 0", ErrOBJIndexRange)
	}
}

// validate checks every face corner against the attribute counts.
func (o *OBJ) validate() error {
	for fi, f := range o.Faces {
		for _, c := range f.Corners {
			if c.V < 0 || c.V >= len(o.Positions) {
				return fmt.Errorf("%w: face %d position %d (have %d)", ErrOBJIndexRange, fi, c.V+1, len(o.Positions))
			}
			if c.VT >= len(o.TexCoords) {
				return fmt.Errorf("%w: face %d texcoord %d (have %d)", ErrOBJIndexRange, fi, c.VT+1, len(o.TexCoords))
			}
			if c.VN >= len(o.Normals) {
				return fmt.Errorf("%w: face %d normal %d (have %d)", ErrOBJIndexRange, fi, c.VN+1, len(o.Normals))
			}
		}
	}
	return nil
}

// WriteOBJ writes obj as OBJ text. Attribute indices are written only when
// the corresponding corner index is set.
func WriteOBJ(w io.Writer, obj *OBJ) error {
	bw := bufio.NewWriter(w)

	if obj.Name != "" {
		fmt.Fprintf(bw, "o %s\n", obj.Name)
	}
	for _, v := range obj.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]))
	}
	for _, uv := range obj.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(uv[0]), ftoa(uv[1]))
	}
	for _, n := range obj.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n[0]), ftoa(n[1]), ftoa(n[2]))
	}
	for _, f := range obj.Faces {
		bw.WriteString("f")
		for _, c := range f.Corners {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(c.V + 1))
			switch {
			case c.VT >= 0 && c.VN >= 0:
				fmt.Fprintf(bw, "/%d/%d", c.VT+1, c.VN+1)
			case c.VT >= 0:
				fmt.Fprintf(bw, "/%d", c.VT+1)
			case c.VN >= 0:
				fmt.Fprintf(bw, "//%d", c.VN+1)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteOBJFile writes obj to path.
func WriteOBJFile(path string, obj *OBJ) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, obj); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
