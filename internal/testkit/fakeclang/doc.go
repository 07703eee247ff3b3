package fakeclang

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"clangview/internal/kinds"
)

var blockCommands = map[string]bool{
	"brief": true, "short": true, "return": true, "returns": true, "result": true,
	"note": true, "warning": true, "see": true, "sa": true, "author": true,
	"authors": true, "since": true, "version": true, "deprecated": true,
	"details": true, "par": true, "pre": true, "post": true, "todo": true,
	"invariant": true, "remark": true, "remarks": true, "throws": true,
	"throw": true, "exception": true, "retval": true,
}

var verbatimBlocks = map[string]string{
	"verbatim": "endverbatim",
	"code":     "endcode",
}

var verbatimLines = map[string]bool{
	"fn": true, "var": true, "def": true, "typedef": true, "struct": true,
	"union": true, "enum": true, "file": true, "class": true,
	"namespace": true, "property": true, "function": true,
}

var inlineRender = map[string]kinds.InlineRenderKind{
	"b":      kinds.InlineRenderBold,
	"c":      kinds.InlineRenderMonospaced,
	"p":      kinds.InlineRenderMonospaced,
	"a":      kinds.InlineRenderEmphasized,
	"e":      kinds.InlineRenderEmphasized,
	"em":     kinds.InlineRenderEmphasized,
	"anchor": kinds.InlineRenderAnchor,
	"ref":    kinds.InlineRenderNormal,
}

// docLines strips comment markers and line decorations from a raw
// documentation comment.
func docLines(raw string) []string {
	if strings.HasPrefix(strings.TrimLeft(raw, " \t"), "/*") {
		return blockLines(raw)
	}
	var out []string
	for _, chunk := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(chunk, " \t")
		switch {
		case strings.HasPrefix(trimmed, "///"), strings.HasPrefix(trimmed, "//!"):
			out = append(out, trimmed[3:])
		case strings.HasPrefix(trimmed, "//"):
			out = append(out, trimmed[2:])
		default:
			out = append(out, chunk)
		}
	}
	return out
}

func blockLines(raw string) []string {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "/*")
	if strings.HasPrefix(body, "*") || strings.HasPrefix(body, "!") {
		body = body[1:]
	}
	body = strings.TrimSuffix(body, "*/")
	lines := strings.Split(body, "\n")
	for i := 1; i < len(lines); i++ {
		l := lines[i]
		rest := strings.TrimLeft(l, " \t")
		if strings.HasPrefix(rest, "*") {
			lines[i] = rest[1:]
		}
	}
	return lines
}

type docParser struct {
	u        *unit
	params   []string
	full     int
	para     int
	owner    int
	verbatim int
	endName  string
}

// parseDoc builds the comment tree of raw and returns its FullComment.
func (u *unit) parseDoc(owner int, raw string, params []string) int {
	d := &docParser{u: u, params: params}
	d.full = u.addComment(fcomment{kind: kinds.CommentFull, owner: owner})
	lines := docLines(raw)
	for i, line := range lines {
		last := d.line(line)
		if last != 0 && i < len(lines)-1 {
			u.comments[last].trailing = true
		}
	}
	return d.full
}

func (d *docParser) add(parent int, c fcomment) int {
	id := d.u.addComment(c)
	d.u.comments[parent].children = append(d.u.comments[parent].children, id)
	return id
}

func (d *docParser) openPara() int {
	if d.para != 0 {
		return d.para
	}
	if d.owner != 0 && d.u.comments[d.owner].paragraph == 0 {
		d.para = d.add(d.owner, fcomment{kind: kinds.CommentParagraph})
		d.u.comments[d.owner].paragraph = d.para
		return d.para
	}
	d.owner = 0
	d.para = d.add(d.full, fcomment{kind: kinds.CommentParagraph})
	return d.para
}

func (d *docParser) closePara() {
	d.para = 0
	d.owner = 0
}

func (d *docParser) block(c fcomment) int {
	d.closePara()
	id := d.add(d.full, c)
	d.owner = id
	return id
}

// line consumes one comment line and returns the last inline node it added.
func (d *docParser) line(line string) int {
	if d.verbatim != 0 {
		if i := endMarker(line, d.endName); i >= 0 {
			if pre := line[:i]; strings.TrimSpace(pre) != "" {
				d.add(d.verbatim, fcomment{kind: kinds.CommentVerbatimBlockLine, text: pre})
			}
			d.verbatim = 0
			return 0
		}
		d.add(d.verbatim, fcomment{kind: kinds.CommentVerbatimBlockLine, text: line})
		return 0
	}
	if strings.TrimSpace(line) == "" {
		d.closePara()
		return 0
	}
	last := 0
	text := func(s string) {
		if s != "" {
			last = d.add(d.openPara(), fcomment{kind: kinds.CommentText, text: s})
		}
	}
	i := 0
	for i < len(line) {
		j := markupStart(line, i)
		if j < 0 {
			text(line[i:])
			break
		}
		text(line[i:j])
		if line[j] == '<' {
			n, end := d.htmlTag(line, j)
			if n == nil {
				text(line[j : j+1])
				i = j + 1
				continue
			}
			last = d.add(d.openPara(), *n)
			i = end
			continue
		}
		k := j + 1
		for k < len(line) && isIdentContinue(line[k]) {
			k++
		}
		name := line[j+1 : k]
		switch {
		case name == "param":
			i = d.param(line, k)
			last = 0
		case name == "tparam":
			w, end := word(line, k)
			d.block(fcomment{kind: kinds.CommentTParamCommand, name: name, args: []string{w}, index: -1})
			i = end
			last = 0
		case blockCommands[name]:
			d.block(fcomment{kind: kinds.CommentBlockCommand, name: name})
			i = k
			last = 0
		case verbatimBlocks[name] != "":
			d.closePara()
			d.verbatim = d.add(d.full, fcomment{kind: kinds.CommentVerbatimBlockCommand, name: name})
			d.endName = verbatimBlocks[name]
			rest := line[k:]
			if e := endMarker(rest, d.endName); e >= 0 {
				if strings.TrimSpace(rest[:e]) != "" {
					d.add(d.verbatim, fcomment{kind: kinds.CommentVerbatimBlockLine, text: rest[:e]})
				}
				d.verbatim = 0
			} else if strings.TrimSpace(rest) != "" {
				d.add(d.verbatim, fcomment{kind: kinds.CommentVerbatimBlockLine, text: rest})
			}
			return 0
		case verbatimLines[name]:
			d.closePara()
			d.add(d.full, fcomment{kind: kinds.CommentVerbatimLine, name: name, text: line[k:]})
			return 0
		default:
			render, known := inlineRender[name]
			c := fcomment{kind: kinds.CommentInlineCommand, name: name, render: render}
			end := k
			if known {
				var w string
				w, end = word(line, k)
				if w != "" {
					c.args = []string{w}
				}
			}
			last = d.add(d.openPara(), c)
			i = end
		}
	}
	return last
}

func (d *docParser) param(line string, k int) int {
	c := fcomment{kind: kinds.CommentParamCommand, name: "param", index: -1}
	if strings.HasPrefix(line[k:], "[") {
		if e := strings.IndexByte(line[k:], ']'); e > 0 {
			switch strings.ReplaceAll(line[k+1:k+e], " ", "") {
			case "in":
				c.direction = kinds.ParamDirectionIn
			case "out":
				c.direction = kinds.ParamDirectionOut
			case "in,out", "out,in":
				c.direction = kinds.ParamDirectionInOut
			}
			c.explicit = true
			k += e + 1
		}
	}
	w, end := word(line, k)
	c.args = []string{w}
	c.index = slices.Index(d.params, w)
	d.block(c)
	return end
}

// word skips blanks after i and returns the following word.
func word(line string, i int) (string, int) {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	j := i
	for j < len(line) && line[j] != ' ' && line[j] != '\t' {
		j++
	}
	return line[i:j], j
}

func markupStart(line string, from int) int {
	for i := from; i < len(line)-1; i++ {
		c, n := line[i], line[i+1]
		if (c == '\\' || c == '@') && isIdentStart(n) {
			return i
		}
		if c == '<' && (isIdentStart(n) || n == '/') {
			return i
		}
	}
	return -1
}

func endMarker(line, name string) int {
	for _, p := range []string{`\`, "@"} {
		if i := strings.Index(line, p+name); i >= 0 {
			return i
		}
	}
	return -1
}

// htmlTag parses an HTML start or end tag at line[i].
func (d *docParser) htmlTag(line string, i int) (*fcomment, int) {
	end := strings.IndexByte(line[i:], '>')
	if end < 0 {
		return nil, i
	}
	inner := line[i+1 : i+end]
	if strings.HasPrefix(inner, "/") {
		return &fcomment{kind: kinds.CommentHTMLEndTag, name: strings.TrimSpace(inner[1:])}, i + end + 1
	}
	c := &fcomment{kind: kinds.CommentHTMLStartTag}
	if strings.HasSuffix(inner, "/") {
		c.selfClose = true
		inner = strings.TrimSuffix(inner, "/")
	}
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return nil, i
	}
	c.name = fields[0]
	for _, f := range fields[1:] {
		k, v, _ := strings.Cut(f, "=")
		c.attrs = append(c.attrs, [2]string{k, strings.Trim(v, `"'`)})
	}
	return c, i + end + 1
}

// commentText concatenates the inline text below c.
func (u *unit) commentText(id int) string {
	c := &u.comments[id]
	switch c.kind {
	case kinds.CommentText:
		return c.text
	case kinds.CommentInlineCommand:
		return strings.Join(c.args, " ")
	case kinds.CommentVerbatimBlockLine, kinds.CommentVerbatimLine:
		return c.text
	}
	var parts []string
	for _, ch := range c.children {
		parts = append(parts, u.commentText(ch))
	}
	return strings.Join(parts, "")
}

func (u *unit) isWhitespace(id int) bool {
	c := &u.comments[id]
	switch c.kind {
	case kinds.CommentText:
		return strings.TrimSpace(c.text) == ""
	case kinds.CommentParagraph:
		for _, ch := range c.children {
			if !u.isWhitespace(ch) {
				return false
			}
		}
		return true
	}
	return false
}

// brief returns the text clang reports as the brief comment of a full
// comment: the \brief paragraph, or the first non-empty paragraph.
func (u *unit) brief(full int) string {
	if full == 0 {
		return ""
	}
	var first string
	for _, ch := range u.comments[full].children {
		c := &u.comments[ch]
		switch {
		case c.kind == kinds.CommentBlockCommand && (c.name == "brief" || c.name == "short"):
			return collapse(u.commentText(c.paragraph))
		case c.kind == kinds.CommentParagraph && first == "" && !u.isWhitespace(ch):
			first = collapse(u.commentText(ch))
		}
	}
	return first
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func (u *unit) tagString(id int) string {
	c := &u.comments[id]
	if c.kind == kinds.CommentHTMLEndTag {
		return "</" + c.name + ">"
	}
	var b strings.Builder
	b.WriteString("<" + c.name)
	for _, a := range c.attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a[0], a[1])
	}
	if c.selfClose {
		b.WriteString("/")
	}
	b.WriteString(">")
	return b.String()
}

func (u *unit) inlineHTML(id int) string {
	var b strings.Builder
	for _, ch := range u.comments[id].children {
		c := &u.comments[ch]
		switch c.kind {
		case kinds.CommentText:
			b.WriteString(html.EscapeString(c.text))
		case kinds.CommentInlineCommand:
			arg := html.EscapeString(strings.Join(c.args, " "))
			switch c.render {
			case kinds.InlineRenderBold:
				b.WriteString("<b>" + arg + "</b>")
			case kinds.InlineRenderMonospaced:
				b.WriteString("<tt>" + arg + "</tt>")
			case kinds.InlineRenderEmphasized:
				b.WriteString("<em>" + arg + "</em>")
			case kinds.InlineRenderAnchor:
				b.WriteString(`<span id="` + arg + `"></span>`)
			default:
				b.WriteString(arg)
			}
		case kinds.CommentHTMLStartTag, kinds.CommentHTMLEndTag:
			b.WriteString(u.tagString(ch))
		}
	}
	return strings.TrimSpace(b.String())
}

func (u *unit) commentHTML(full int) string {
	var b strings.Builder
	briefDone := false
	var params []int
	for _, ch := range u.comments[full].children {
		c := &u.comments[ch]
		switch c.kind {
		case kinds.CommentParagraph:
			if u.isWhitespace(ch) {
				continue
			}
			if !briefDone {
				b.WriteString(`<p class="para-brief">` + u.inlineHTML(ch) + "</p>")
				briefDone = true
				continue
			}
			b.WriteString("<p>" + u.inlineHTML(ch) + "</p>")
		case kinds.CommentBlockCommand:
			switch c.name {
			case "brief", "short":
				b.WriteString(`<p class="para-brief">` + u.inlineHTML(c.paragraph) + "</p>")
				briefDone = true
			case "return", "returns", "result":
				b.WriteString(`<div class="result-discussion"><p class="para-returns"><span class="word-returns">Returns</span> ` + u.inlineHTML(c.paragraph) + "</p></div>")
			default:
				b.WriteString("<p>" + u.inlineHTML(c.paragraph) + "</p>")
			}
		case kinds.CommentParamCommand:
			params = append(params, ch)
		case kinds.CommentVerbatimBlockCommand:
			var lines []string
			for _, l := range c.children {
				lines = append(lines, html.EscapeString(u.comments[l].text))
			}
			b.WriteString("<pre>" + strings.Join(lines, "\n") + "</pre>")
		}
	}
	if len(params) > 0 {
		b.WriteString("<dl>")
		for _, ch := range params {
			c := &u.comments[ch]
			idx := "invalid"
			if c.index >= 0 {
				idx = fmt.Sprintf("index-%d", c.index)
			}
			fmt.Fprintf(&b, `<dt class="param-name-%s">%s</dt><dd class="param-descr-%s">%s</dd>`,
				idx, html.EscapeString(c.args[0]), idx, u.inlineHTML(c.paragraph))
		}
		b.WriteString("</dl>")
	}
	return b.String()
}

func (u *unit) commentXML(full int) string {
	c := &u.comments[full]
	n := &u.nodes[c.owner]
	root := "Other"
	switch {
	case n.kind == kinds.CursorFunctionDecl:
		root = "Function"
	case n.kind == kinds.CursorVarDecl || n.kind == kinds.CursorFieldDecl:
		root = "Variable"
	case n.kind == kinds.CursorTypedefDecl:
		root = "Typedef"
	case n.kind == kinds.CursorEnumDecl:
		root = "Enum"
	case n.kind.IsRecord():
		root = "Class"
	}
	f := u.files[n.file]
	line, col := f.lineCol(n.loc)
	var b strings.Builder
	fmt.Fprintf(&b, `<%s file="%s" line="%d" column="%d">`, root, html.EscapeString(f.path), line, col)
	fmt.Fprintf(&b, "<Name>%s</Name><USR>%s</USR>", html.EscapeString(n.name), html.EscapeString(u.usr(c.owner)))
	if brief := u.brief(full); brief != "" {
		b.WriteString("<Abstract><Para>" + html.EscapeString(brief) + "</Para></Abstract>")
	}
	var params, result []string
	for _, ch := range c.children {
		cc := &u.comments[ch]
		switch {
		case cc.kind == kinds.CommentParamCommand:
			params = append(params, fmt.Sprintf("<Parameter><Name>%s</Name><Direction isExplicit=\"%d\">%s</Direction><Discussion><Para>%s</Para></Discussion></Parameter>",
				html.EscapeString(cc.args[0]), boolInt(cc.explicit), cc.direction, html.EscapeString(collapse(u.commentText(cc.paragraph)))))
		case cc.kind == kinds.CommentBlockCommand && (cc.name == "return" || cc.name == "returns" || cc.name == "result"):
			result = append(result, "<Para>"+html.EscapeString(collapse(u.commentText(cc.paragraph)))+"</Para>")
		}
	}
	if len(params) > 0 {
		b.WriteString("<Parameters>" + strings.Join(params, "") + "</Parameters>")
	}
	if len(result) > 0 {
		b.WriteString("<ResultDiscussion>" + strings.Join(result, "") + "</ResultDiscussion>")
	}
	fmt.Fprintf(&b, "</%s>", root)
	return b.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
