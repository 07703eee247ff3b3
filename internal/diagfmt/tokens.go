package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"clangview/internal/clang"
)

type TokenOutput struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	EndLine int    `json:"end_line"`
	EndCol  int    `json:"end_col"`
	Cursor  string `json:"cursor,omitempty"`
}

// CollectTokens copies toks out of native memory. cursors, when not nil,
// holds the annotation of each token.
func CollectTokens(toks *clang.Tokens, cursors []clang.Cursor) ([]TokenOutput, error) {
	out := make([]TokenOutput, 0, toks.Len())
	for i, tok := range toks.All() {
		k, err := tok.Kind()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		ext := tok.Extent()
		start, end := ext.Start(), ext.End()
		t := TokenOutput{
			Kind:    k.String(),
			Text:    tok.Spelling(),
			Line:    start.Line(),
			Col:     start.Column(),
			EndLine: end.Line(),
			EndCol:  end.Column(),
		}
		if i < len(cursors) && !cursors[i].IsNull() {
			t.Cursor = cursors[i].Kind().String()
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatTokensPretty writes one token per line.
func FormatTokensPretty(w io.Writer, tokens []TokenOutput) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-20q at %d:%d-%d:%d", i+1, tok.Kind, tok.Text,
			tok.Line, tok.Col, tok.EndLine, tok.EndCol); err != nil {
			return err
		}
		if tok.Cursor != "" {
			fmt.Fprintf(w, " (%s)", tok.Cursor)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []TokenOutput) error {
	if tokens == nil {
		tokens = []TokenOutput{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokens)
}
