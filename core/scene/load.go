package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"segview/core/geom"

	"gopkg.in/yaml.v3"
)

// file is the on-disk override. Absent keys keep their Default values.
type file struct {
	Camera struct {
		Translate *[3]geom.Scalar `yaml:"translate"`
		Rotate    *[3]geom.Scalar `yaml:"rotate"`
	} `yaml:"camera"`
	Segment struct {
		Origin *[3]geom.Scalar `yaml:"origin"`
		Diff   *[3]geom.Scalar `yaml:"diff"`
	} `yaml:"segment"`
	Point *[3]geom.Scalar `yaml:"point"`
}

// LoadYAML decodes a scene override from r on top of Default.
//
// Example:
//
//	camera:
//	  translate: [0.2, -8.0, 20.0]
//	segment:
//	  diff: [3.0, -2.0, 2.0]
//	point: [-1.5, -0.3, 0.6]
func LoadYAML(r io.Reader) (State, error) {
	st := Default()

	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return State{}, fmt.Errorf("decode scene: %w", err)
	}

	apply(&st.Camera.Translate, f.Camera.Translate)
	apply(&st.Camera.Rotate, f.Camera.Rotate)
	apply(&st.Segment.Origin, f.Segment.Origin)
	apply(&st.Segment.Diff, f.Segment.Diff)
	apply(&st.Point, f.Point)
	return st, nil
}

// LoadFile reads a scene override from path. An empty path returns Default.
func LoadFile(path string) (State, error) {
	if path == "" {
		return Default(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("open scene: %w", err)
	}
	defer fh.Close()
	return LoadYAML(fh)
}

func apply(dst *geom.Vector3, v *[3]geom.Scalar) {
	if v == nil {
		return
	}
	*dst = geom.V3(v[0], v[1], v[2])
}
