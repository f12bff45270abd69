package mscl

import (
	"strings"

	"golang.org/x/net/html"
)

// statTable 页面表格的文本内容
type statTable struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

func (t *statTable) col(names []string) (int, bool) {
	for _, name := range names {
		if i, ok := t.index[name]; ok {
			return i, true
		}
	}
	return 0, false
}

func (t *statTable) has(names []string) bool {
	_, ok := t.col(names)
	return ok
}

// get 取行中对应列的值；列不存在或该行列数不足时为空
func (t *statTable) get(row []string, names []string) string {
	i, ok := t.col(names)
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// findTable 返回第一个 id 包含 idPart 的 table 元素
func findTable(doc *html.Node, idPart string) *html.Node {
	var found *html.Node
	walk(doc, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == "table" && strings.Contains(attr(n, "id"), idPart) {
			found = n
		}
	})
	return found
}

// parseTable 表头取全部 th，数据行取含 td 的 tr
func parseTable(table *html.Node) *statTable {
	t := &statTable{index: make(map[string]int)}
	walk(table, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "th":
			name := textOf(n)
			if _, dup := t.index[name]; !dup {
				t.index[name] = len(t.headers)
			}
			t.headers = append(t.headers, name)
		case "tr":
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "td" {
					cells = append(cells, textOf(c))
				}
			}
			if len(cells) > 0 {
				t.rows = append(t.rows, cells)
			}
		}
	})
	return t
}

// walk 先序遍历
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textOf 拼接节点下全部文本，空白折叠为单个空格
func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
