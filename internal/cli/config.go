package cli

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	chart "github.com/gogpu/gg-chart"
)

// baseOptions holds the flags every chart command accepts.
type baseOptions struct {
	configPath string
	output     string
	width      int
	height     int
	title      string
	background string
}

func (o *baseOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Path to a YAML chart config")
	f.StringVarP(&o.output, "output", "o", "", "Output file (.png or .svg)")
	f.IntVar(&o.width, "width", 0, "Canvas width in pixels")
	f.IntVar(&o.height, "height", 0, "Canvas height in pixels")
	f.StringVarP(&o.title, "title", "t", "", "Chart title")
	f.StringVar(&o.background, "background", "", "Background color as #RRGGBB or #AARRGGBB")
}

// apply copies the flags the user set onto b.
func (o *baseOptions) apply(cmd *cobra.Command, b *chart.Base) {
	f := cmd.Flags()
	if f.Changed("output") {
		b.Path = o.output
	}
	if f.Changed("width") {
		b.Width = o.width
	}
	if f.Changed("height") {
		b.Height = o.height
	}
	if f.Changed("title") {
		b.Title = o.title
	}
	if f.Changed("background") {
		b.BackgroundColor = o.background
	}
}

// loadConfig decodes the YAML file at path into cfg. Keys no field
// recognizes are collected into the config's Base.Extra.
func loadConfig[T any](path string, cfg *T) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	v := reflect.ValueOf(cfg).Elem()
	known := yamlKeys(v.Type())
	extra := v.FieldByName("Extra")
	if !extra.IsValid() {
		return nil
	}
	for k, val := range doc {
		if known[k] {
			continue
		}
		if extra.IsNil() {
			extra.Set(reflect.MakeMap(extra.Type()))
		}
		extra.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(&val).Elem())
	}
	return nil
}

// yamlKeys returns the mapping keys the struct type t decodes, following
// inline fields.
func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("yaml")
		name, opts, _ := strings.Cut(tag, ",")
		if opts == "inline" {
			if f.Type.Kind() == reflect.Struct {
				for k := range yamlKeys(f.Type) {
					keys[k] = true
				}
			}
			continue
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		keys[name] = true
	}
	return keys
}

// parsePoints parses "x,y" pairs.
func parsePoints(items []string) ([]chart.DataPoint, error) {
	out := make([]chart.DataPoint, 0, len(items))
	for _, item := range items {
		xs, ys, ok := strings.Cut(item, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", item)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", item, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", item, err)
		}
		out = append(out, chart.DataPoint{X: x, Y: y})
	}
	return out, nil
}

// parseItems parses "label=value" pairs.
func parseItems(items []string) ([]chart.CategoryDatum, error) {
	out := make([]chart.CategoryDatum, 0, len(items))
	for _, item := range items {
		label, vs, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("item %q: want label=value", item)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item, err)
		}
		out = append(out, chart.CategoryDatum{Label: strings.TrimSpace(label), Value: v})
	}
	return out, nil
}
