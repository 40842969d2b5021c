package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/ordo/pkg/omap"
)

// loadDataset reads one dataset file into an ordered array. The format
// follows the extension (.json, .toml, .yaml/.yml), with an optional
// outer .zst layer for zstd-compressed files. Key order in the file is
// preserved exactly; it is the insertion order of the result.
func loadDataset(path string) (*omap.Array, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	name := path
	if strings.EqualFold(filepath.Ext(name), ".zst") {
		data, err = decompressZstd(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: zstd: %w", path, err)
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	var a *omap.Array
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		a, err = decodeJSON(bytes.NewReader(data))
	case ".toml":
		a, err = decodeTOML(data)
	case ".yaml", ".yml":
		a, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("load %s: unsupported format %q", path, filepath.Ext(name))
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}

// decompressZstd decompresses zstd-compressed data.
func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// decodeJSON decodes a top-level JSON object or array through the token
// stream so that object key order survives. Values must be scalars;
// the engine compares them, and nested containers have no ordering.
func decodeJSON(r io.Reader) (*omap.Array, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("json: top-level value must be an object or array")
	}

	a := omap.New()
	switch delim {
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("json: %w", err)
			}
			key := keyTok.(string)
			v, err := scalarJSON(dec)
			if err != nil {
				return nil, err
			}
			a.Set(datasetKey(key), v)
		}
	case '[':
		for dec.More() {
			v, err := scalarJSON(dec)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
	default:
		return nil, fmt.Errorf("json: top-level value must be an object or array")
	}

	// Consume the closing delimiter.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return a, nil
}

func scalarJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		return nil, fmt.Errorf("json: nested containers are not supported")
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("json: number %q: %w", v.String(), err)
		}
		return f, nil
	default:
		// string, bool, or nil.
		return v, nil
	}
}

// decodeTOML decodes a flat TOML document. BurntSushi's MetaData keeps
// the keys in file order.
func decodeTOML(data []byte) (*omap.Array, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	a := omap.New()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			return nil, fmt.Errorf("toml: nested tables are not supported (%s)", key)
		}
		v, err := scalarTOML(raw[key[0]])
		if err != nil {
			return nil, err
		}
		a.Set(datasetKey(key[0]), v)
	}
	return a, nil
}

func scalarTOML(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, int64, float64, string:
		return x, nil
	default:
		return nil, fmt.Errorf("toml: unsupported value type %T", v)
	}
}

// decodeYAML decodes a top-level YAML mapping or sequence through the
// node API so that mapping key order survives.
func decodeYAML(data []byte) (*omap.Array, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("yaml: expected a single document")
	}

	root := doc.Content[0]
	a := omap.New()
	switch root.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			v, err := scalarYAML(root.Content[i+1])
			if err != nil {
				return nil, err
			}
			a.Set(datasetKey(root.Content[i].Value), v)
		}
	case yaml.SequenceNode:
		for _, n := range root.Content {
			v, err := scalarYAML(n)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
	default:
		return nil, fmt.Errorf("yaml: top-level value must be a mapping or sequence")
	}
	return a, nil
}

func scalarYAML(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("yaml: nested containers are not supported")
	}
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

// datasetKey canonicalizes one textual key: text that spells a canonical
// decimal integer becomes an integer key, everything else stays a string
// key.
func datasetKey(s string) omap.Key {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil && strconv.FormatInt(i, 10) == s {
		return omap.IntKey(i)
	}
	return omap.StringKey(s)
}

// writeJSON emits the array as order-preserving JSON: an array when the
// keys are exactly the list positions 0..n-1, an object otherwise.
func writeJSON(w io.Writer, a *omap.Array) error {
	if isList(a) {
		vals := a.Values()
		out, err := json.Marshal(vals)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		e := a.At(i)
		k, err := json.Marshal(e.Key.String())
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func isList(a *omap.Array) bool {
	for i := 0; i < a.Len(); i++ {
		k := a.At(i).Key
		if k.IsString() || k.Int() != int64(i) {
			return false
		}
	}
	return true
}
