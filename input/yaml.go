// Copyright © 2026 The clang-complete authors

package input

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/luthersystems/clang-complete/completion"
	"gopkg.in/yaml.v3"
)

// yamlChunk mirrors completion.Chunk. Chunks is only valid for the
// optional kind.
type yamlChunk struct {
	Kind   string      `yaml:"kind"`
	Text   string      `yaml:"text,omitempty"`
	Chunks []yamlChunk `yaml:"chunks,omitempty"`
}

type yamlCandidate struct {
	Chunks []yamlChunk `yaml:"chunks"`
}

type yamlDocument struct {
	Candidates []yamlCandidate `yaml:"candidates"`
}

// DecodeYAML reads a stream of YAML documents. Each document is either a
// sequence of candidates or a mapping with a "candidates" key. Since JSON is
// valid YAML, JSON input is accepted as well.
func DecodeYAML(r io.Reader, name string) ([]completion.Candidate, error) {
	var out []completion.Candidate
	dec := yaml.NewDecoder(r)
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: document %d", name, doc)
		}
		candidates, err := decodeYAMLNode(&node)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: document %d", name, doc)
		}
		out = append(out, candidates...)
	}
}

func decodeYAMLNode(node *yaml.Node) ([]completion.Candidate, error) {
	content := node
	if content.Kind == yaml.DocumentNode && len(content.Content) > 0 {
		content = content.Content[0]
	}
	var raw []yamlCandidate
	switch content.Kind {
	case yaml.SequenceNode:
		if err := content.Decode(&raw); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc yamlDocument
		if err := content.Decode(&doc); err != nil {
			return nil, err
		}
		raw = doc.Candidates
	default:
		return nil, errors.WithHint(
			errors.Newf("line %d: expected a sequence or mapping of candidates", content.Line),
			"each candidate looks like {chunks: [{kind: typed-text, text: name}]}")
	}
	out := make([]completion.Candidate, 0, len(raw))
	for i, rc := range raw {
		c, err := convertChunks(rc.Chunks)
		if err != nil {
			return nil, errors.Wrapf(err, "candidate %d", i)
		}
		out = append(out, c)
	}
	return out, nil
}

func convertChunks(in []yamlChunk) (completion.Candidate, error) {
	out := make(completion.Candidate, 0, len(in))
	for _, yc := range in {
		kind := completion.ParseKind(yc.Kind)
		if kind != completion.KindOptional {
			if len(yc.Chunks) > 0 {
				return nil, errors.Newf("chunk of kind %q cannot have nested chunks", yc.Kind)
			}
			out = append(out, completion.Chunk{Kind: kind, Text: yc.Text})
			continue
		}
		nested, err := convertChunks(yc.Chunks)
		if err != nil {
			return nil, err
		}
		out = append(out, completion.Chunk{Kind: kind, Nested: nested})
	}
	return out, nil
}

// EncodeYAML writes candidates in the format read by DecodeYAML.
func EncodeYAML(w io.Writer, candidates []completion.Candidate) error {
	raw := make([]yamlCandidate, 0, len(candidates))
	for _, c := range candidates {
		raw = append(raw, yamlCandidate{Chunks: toYAMLChunks(c)})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return errors.Wrap(err, "encoding candidates")
	}
	return errors.Wrap(enc.Close(), "encoding candidates")
}

func toYAMLChunks(c completion.Candidate) []yamlChunk {
	out := make([]yamlChunk, 0, len(c))
	for _, chunk := range c {
		yc := yamlChunk{Kind: chunk.Kind.String()}
		if chunk.Kind == completion.KindOptional {
			yc.Chunks = toYAMLChunks(chunk.Nested)
		} else {
			yc.Text = chunk.Text
		}
		out = append(out, yc)
	}
	return out
}
