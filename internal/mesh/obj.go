package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"solar-raster/internal/logging"
	"solar-raster/internal/mathutil"
	"solar-raster/internal/shade"
)

// LoadOBJ reads a Wavefront OBJ file. Material libraries named by mtllib are
// read relative to the OBJ; a missing library only loses the colors.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, libs, err := parseOBJ(f, path)
	if err != nil {
		return nil, err
	}
	for _, lib := range libs {
		libPath := filepath.Join(filepath.Dir(path), lib)
		if err := m.loadMTL(libPath); err != nil {
			logging.Logger().Warn("material library skipped", "path", libPath, "err", err)
		}
	}
	return m, nil
}

// ParseOBJ reads OBJ text from r. name is used in error messages. mtllib
// statements are ignored.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	m, _, err := parseOBJ(r, name)
	return m, err
}

func parseOBJ(r io.Reader, name string) (*Mesh, []string, error) {
	m := &Mesh{
		Name:      strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
		Materials: map[string]shade.Color{},
	}
	var libs []string
	var material string

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		args := fields[1:]

		switch fields[0] {
		case "v":
			p, err := parseFloats(args, 3)
			if err != nil {
				return nil, nil, fmt.Errorf("mesh: %s:%d: vertex: %w", name, lineNo, err)
			}
			m.Positions = append(m.Positions, mathutil.Vec3{p[0], p[1], p[2]})
		case "vn":
			p, err := parseFloats(args, 3)
			if err != nil {
				return nil, nil, fmt.Errorf("mesh: %s:%d: normal: %w", name, lineNo, err)
			}
			m.Normals = append(m.Normals, mathutil.Vec3{p[0], p[1], p[2]}.Normalize())
		case "vt":
			p, err := parseFloats(args, 2)
			if err != nil {
				return nil, nil, fmt.Errorf("mesh: %s:%d: texcoord: %w", name, lineNo, err)
			}
			m.TexCoords = append(m.TexCoords, [2]float64{p[0], p[1]})
		case "f":
			if err := m.addPolygon(args, material); err != nil {
				return nil, nil, fmt.Errorf("mesh: %s:%d: face: %w", name, lineNo, err)
			}
		case "usemtl":
			material = strings.Join(args, " ")
		case "mtllib":
			libs = append(libs, args...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("mesh: read %s: %w", name, err)
	}
	return m, libs, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// corner is one v/vt/vn reference of a face.
type corner struct{ v, t, n int }

// addPolygon fan-triangulates an n-gon. OBJ polygons wind counter-clockwise
// seen from outside, so the second and third corners of every triangle are
// swapped to match the stored convention.
func (m *Mesh) addPolygon(args []string, material string) error {
	if len(args) < 3 {
		return fmt.Errorf("need at least 3 vertices, got %d", len(args))
	}
	corners := make([]corner, len(args))
	for i, a := range args {
		c, err := m.parseCorner(a)
		if err != nil {
			return err
		}
		corners[i] = c
	}
	for i := 1; i+1 < len(corners); i++ {
		c0, c1, c2 := corners[0], corners[i+1], corners[i]
		m.Faces = append(m.Faces, Face{
			V:        [3]int{c0.v, c1.v, c2.v},
			T:        [3]int{c0.t, c1.t, c2.t},
			N:        [3]int{c0.n, c1.n, c2.n},
			Material: material,
		})
	}
	return nil
}

// parseCorner accepts v, v/vt, v//vn and v/vt/vn with 1-based or negative
// (relative to the end) indices.
func (m *Mesh) parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("bad vertex reference %q", s)
	}
	c := corner{t: -1, n: -1}

	var err error
	if c.v, err = resolveIndex(parts[0], len(m.Positions)); err != nil {
		return corner{}, fmt.Errorf("position %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.t, err = resolveIndex(parts[1], len(m.TexCoords)); err != nil {
			return corner{}, fmt.Errorf("texcoord %q: %w", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.n, err = resolveIndex(parts[2], len(m.Normals)); err != nil {
			return corner{}, fmt.Errorf("normal %q: %w", s, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index out of range (have %d)", count)
	}
	return i, nil
}

// loadMTL reads the Kd diffuse color of each newmtl block.
func (m *Mesh) loadMTL(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()
	return m.parseMTL(f, path)
}

func (m *Mesh) parseMTL(r io.Reader, name string) error {
	sc := bufio.NewScanner(r)
	var current string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "newmtl":
			current = strings.Join(fields[1:], " ")
		case "Kd":
			kd, err := parseFloats(fields[1:], 3)
			if err != nil {
				return fmt.Errorf("mesh: %s:%d: Kd: %w", name, lineNo, err)
			}
			if current != "" {
				m.Materials[current] = shade.RGB(kd[0], kd[1], kd[2])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("mesh: read %s: %w", name, err)
	}
	return nil
}
