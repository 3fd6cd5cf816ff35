package viz

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/structures"
)

// View selects how a step is drawn.
type View string

const (
	ViewArray View = "array"
	ViewBars  View = "bars"
	ViewGraph View = "graph"
	ViewTree  View = "tree"
	ViewLoops View = "loops"
	ViewStack View = "stack"
	ViewQueue View = "queue"
	ViewList  View = "list"
)

// ViewFor maps an algorithm category to its view.
func ViewFor(category string) View {
	switch category {
	case "sorting":
		return ViewBars
	case "graph":
		return ViewGraph
	case "tree":
		return ViewTree
	case "loops":
		return ViewLoops
	}
	return ViewArray
}

func ViewForKind(kind structures.Kind) View {
	switch kind {
	case structures.KindStack:
		return ViewStack
	case structures.KindSinglyList, structures.KindDoublyList, structures.KindCircularList:
		return ViewList
	case structures.KindArray:
		return ViewArray
	case structures.KindBST:
		return ViewTree
	case structures.KindGraph:
		return ViewGraph
	}
	return ViewQueue
}

// Render draws s in view v. Width bounds the graph canvas; other views size
// themselves from the data.
func Render(s step.Step, v View, width int) string {
	var parts []string
	switch v {
	case ViewBars:
		parts = append(parts, BarsView(s, 8), ArrayView(s))
		if len(s.Buckets) > 0 {
			parts = append(parts, BucketsView(s))
		}
		if aux := AuxView(s); aux != "" {
			parts = append(parts, aux)
		}
	case ViewGraph:
		parts = append(parts, GraphView(s, max(width/2, 24), 12))
	case ViewTree:
		parts = append(parts, TreeView(s))
	case ViewLoops:
		parts = append(parts, LoopView(s))
	case ViewStack:
		parts = append(parts, StackView(s))
	case ViewQueue:
		parts = append(parts, ItemsView(s))
	default:
		parts = append(parts, ArrayView(s))
	}
	return strings.Join(parts, "\n\n")
}

// RenderStructure draws a container snapshot for its kind.
func RenderStructure(s step.Step, kind structures.Kind) string {
	if ViewForKind(kind) == ViewList {
		return ListView(s, kind)
	}
	return Render(s, ViewForKind(kind), 64)
}

func cellWidth(items []string) int {
	w := 2
	for _, it := range items {
		w = max(w, len(it))
	}
	return w
}

// cells draws boxed cells with an index row and an optional pointer row.
// roleAt returns the highlight for position i.
func cells(items []string, roleAt func(int) step.Role, pointers map[int][]string) string {
	if len(items) == 0 {
		return mutedStyle().Render("(empty)")
	}
	w := cellWidth(items)
	slot := w + 3

	var top, idx strings.Builder
	for i, it := range items {
		cell := "[" + fmt.Sprintf("%*s", w, it) + "]"
		top.WriteString(roleStyle(roleAt(i)).Render(cell) + " ")
		idx.WriteString(fmt.Sprintf("%*d ", w+2, i))
	}

	lines := []string{strings.TrimRight(top.String(), " "), mutedStyle().Render(strings.TrimRight(idx.String(), " "))}
	if len(pointers) > 0 {
		row := []rune(strings.Repeat(" ", slot*len(items)+8))
		for i := range items {
			labels := pointers[i]
			if len(labels) == 0 {
				continue
			}
			text := strings.Join(labels, "/")
			for k, r := range text {
				if p := i*slot + k; p < len(row) {
					row[p] = r
				}
			}
		}
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	return strings.Join(lines, "\n")
}

var markPointers = []struct {
	role  step.Role
	label string
}{
	{step.RoleLow, "lo"},
	{step.RoleMid, "mid"},
	{step.RoleHigh, "hi"},
	{step.RolePivot, "pivot"},
	{step.RoleKey, "key"},
	{step.RoleMin, "min"},
}

// pointerLabels collects labels from index-pointing roles and the step's
// named pointers. Negative positions are dropped.
func pointerLabels(s step.Step, n int) map[int][]string {
	out := make(map[int][]string)
	for _, mp := range markPointers {
		for _, i := range s.Marks[mp.role] {
			if i >= 0 && i < n {
				out[i] = append(out[i], mp.label)
			}
		}
	}
	names := make([]string, 0, len(s.Pointers))
	for name := range s.Pointers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if i := s.Pointers[name]; i >= 0 && i < n {
			out[i] = append(out[i], name)
		}
	}
	return out
}

func roleAt(s step.Step) func(int) step.Role {
	return func(i int) step.Role {
		r, _ := s.RoleOf(i, rolePriority...)
		return r
	}
}

// ArrayView draws the step's array as cells with pointer labels underneath.
func ArrayView(s step.Step) string {
	items := make([]string, len(s.Array))
	for i, v := range s.Array {
		items[i] = strconv.Itoa(v)
	}
	if s.Items != nil && s.Array == nil {
		items = s.Items
	}
	return cells(items, roleAt(s), pointerLabels(s, len(items)))
}

// ItemsView draws container slots. Queues label front and rear.
func ItemsView(s step.Step) string {
	out := cells(s.Items, roleAt(s), pointerLabels(s, len(s.Items)))
	if c, ok := s.Vars["capacity"]; ok {
		out += "\n" + mutedStyle().Render(fmt.Sprintf("size %d/%d", s.Vars["size"], c))
	}
	return out
}

// BarsView draws one vertical bar per element, scaled to height rows.
func BarsView(s step.Step, height int) string {
	if len(s.Array) == 0 || height < 1 {
		return ""
	}
	lo, hi := slices.Min(s.Array), slices.Max(s.Array)
	lo = min(lo, 0)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	w := cellWidth(itemStrings(s.Array)) + 3
	role := roleAt(s)

	heights := make([]int, len(s.Array))
	for i, v := range s.Array {
		heights[i] = 1 + (v-lo)*(height-1)/span
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		var line strings.Builder
		for i := range s.Array {
			cell := strings.Repeat(" ", w)
			if heights[i] >= row {
				cell = " " + strings.Repeat("█", w-2) + " "
			}
			line.WriteString(roleStyle(role(i)).Render(cell))
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func itemStrings(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// AuxView lists auxiliary arrays such as the merge halves and buffer.
func AuxView(s step.Step) string {
	keys := make([]string, 0, len(s.Aux))
	for k := range s.Aux {
		switch k {
		case "nodes", "tree", "path":
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = labelStyle.Render(k) + valueStyle.Render("["+strings.Join(itemStrings(s.Aux[k]), " ")+"]")
	}
	return strings.Join(lines, "\n")
}

// BucketsView lists the radix buckets 0..9.
func BucketsView(s step.Step) string {
	lines := make([]string, len(s.Buckets))
	for d, b := range s.Buckets {
		lines[d] = mutedStyle().Render(fmt.Sprintf("%d |", d)) + " " + strings.Join(itemStrings(b), " ")
	}
	if exp, ok := s.Vars["exp"]; ok {
		lines = append([]string{mutedStyle().Render(fmt.Sprintf("digit place %d", exp))}, lines...)
	}
	return strings.Join(lines, "\n")
}

// GraphView lays nodes on an ellipse and draws edges on a braille canvas
// of w by h cells. Traversal state is listed underneath.
func GraphView(s step.Step, w, h int) string {
	nodes := s.Aux["nodes"]
	if len(nodes) == 0 {
		return mutedStyle().Render("(no nodes)")
	}
	c := NewCanvas(w, h)
	dotW, dotH := w*2, h*4
	pos := make(map[int][2]int, len(nodes))
	for k, id := range nodes {
		angle := 2*math.Pi*float64(k)/float64(len(nodes)) - math.Pi/2
		x := float64(dotW)/2 + float64(dotW-8)/2*math.Cos(angle)
		y := float64(dotH)/2 + float64(dotH-8)/2*math.Sin(angle)
		pos[id] = [2]int{int(x), int(y)}
	}

	for _, id := range nodes {
		label := strconv.Itoa(id)
		p := pos[id]
		c.Label(p[0]/2-len(label)/2, p[1]/4, label)
	}
	for _, e := range s.Edges {
		a, b := pos[e[0]], pos[e[1]]
		c.DrawLine(a[0], a[1], b[0], b[1])
	}

	lines := []string{strings.TrimRight(c.String(), "\n")}
	legend := make([]string, len(nodes))
	role := roleAt(s)
	for i, id := range nodes {
		legend[i] = roleStyle(role(id)).Render("(" + strconv.Itoa(id) + ")")
	}
	lines = append(lines, strings.Join(legend, " "))
	lines = append(lines, labelStyle.Render("visited")+valueStyle.Render(strings.Join(itemStrings(s.Visited), " ")))
	lines = append(lines, labelStyle.Render("frontier")+valueStyle.Render(strings.Join(itemStrings(s.Frontier), " ")))
	if path := s.Aux["path"]; len(path) > 0 {
		lines = append(lines, labelStyle.Render("path")+valueStyle.Render(strings.Join(itemStrings(path), " -> ")))
	}
	return strings.Join(lines, "\n")
}

// TreeView draws a laid-out tree with one text row per depth and a
// connector row between depths.
func TreeView(s step.Step) string {
	if len(s.Tree) == 0 {
		return mutedStyle().Render("(empty tree)")
	}
	w := 2
	byID := make(map[int]step.TreeNode, len(s.Tree))
	depth := 0
	for _, n := range s.Tree {
		w = max(w, len(strconv.Itoa(n.Value)))
		byID[n.ID] = n
		depth = max(depth, n.Depth)
	}
	w++
	center := func(n step.TreeNode) int { return n.Col*w + w/2 }

	levels := make([][]step.TreeNode, depth+1)
	for _, n := range s.Tree {
		levels[n.Depth] = append(levels[n.Depth], n)
	}
	role := roleAt(s)

	var lines []string
	for d, level := range levels {
		slices.SortFunc(level, func(a, b step.TreeNode) int { return a.Col - b.Col })

		var row strings.Builder
		cursor := 0
		for _, n := range level {
			text := strconv.Itoa(n.Value)
			start := n.Col*w + (w-len(text))/2
			if start > cursor {
				row.WriteString(strings.Repeat(" ", start-cursor))
				cursor = start
			}
			row.WriteString(roleStyle(role(n.ID)).Render(text))
			cursor += len(text)
		}
		lines = append(lines, row.String())

		if d == depth {
			break
		}
		conn := []rune(strings.Repeat(" ", len(s.Tree)*w+1))
		for _, n := range level {
			if l, ok := byID[n.Left]; ok && n.Left != 0 {
				conn[(center(l)+center(n))/2] = '/'
			}
			if r, ok := byID[n.Right]; ok && n.Right != 0 {
				conn[(center(r)+center(n)+1)/2] = '\\'
			}
		}
		lines = append(lines, strings.TrimRight(string(conn), " "))
	}
	return strings.Join(lines, "\n")
}

// StackView draws the stack vertically with the top first.
func StackView(s step.Step) string {
	capacity := s.Vars["capacity"]
	w := cellWidth(s.Items)
	top := len(s.Items) - 1
	role := roleAt(s)

	var lines []string
	for i := max(capacity, len(s.Items)) - 1; i >= 0; i-- {
		cell := "|" + strings.Repeat(" ", w+2) + "|"
		if i < len(s.Items) {
			cell = roleStyle(role(i)).Render("| " + fmt.Sprintf("%*s", w, s.Items[i]) + " |")
		}
		if i == top {
			cell += " <- top"
		}
		lines = append(lines, cell)
	}
	lines = append(lines, "+"+strings.Repeat("-", w+2)+"+")
	if capacity > 0 {
		lines = append(lines, mutedStyle().Render(fmt.Sprintf("size %d/%d", len(s.Items), capacity)))
	}
	return strings.Join(lines, "\n")
}

// ListView draws linked nodes with arrows matching the list kind.
func ListView(s step.Step, kind structures.Kind) string {
	if len(s.Items) == 0 {
		return "head -> nil"
	}
	link := " -> "
	if kind == structures.KindDoublyList {
		link = " <-> "
	}
	role := roleAt(s)
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		parts[i] = roleStyle(role(i)).Render("[" + it + "]")
	}
	tail := link + "nil"
	if kind == structures.KindCircularList {
		tail = link + "(head)"
	}
	out := "head" + link + strings.Join(parts, link) + tail
	if labels := pointerLabels(s, len(s.Items)); len(labels) > 0 {
		var notes []string
		for i := range s.Items {
			for _, l := range labels[i] {
				notes = append(notes, fmt.Sprintf("%s=%d", l, i))
			}
		}
		out += "\n" + mutedStyle().Render(strings.Join(notes, " "))
	}
	return out
}

// LoopView shows loop variables and the output printed so far.
func LoopView(s step.Step) string {
	keys := make([]string, 0, len(s.Vars))
	for k := range s.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vars := make([]string, len(keys))
	for i, k := range keys {
		vars[i] = fmt.Sprintf("%s = %d", k, s.Vars[k])
	}

	out := s.Output
	if out == "" {
		out = " "
	}
	return strings.Join([]string{
		valueStyle.Render(strings.Join(vars, "   ")),
		panelStyle.Render(strings.TrimRight(out, "\n")),
	}, "\n")
}

// CountersView lists the non-zero counters of s.
func CountersView(s step.Step) string {
	c := s.Counters
	fields := []struct {
		name string
		v    int
	}{
		{"pass", c.Pass},
		{"comparisons", c.Comparisons},
		{"swaps", c.Swaps},
		{"writes", c.Writes},
		{"probes", c.Probes},
	}
	lines := []string{labelStyle.Render("step") + valueStyle.Render(strconv.Itoa(s.Index))}
	for _, f := range fields {
		if f.v == 0 {
			continue
		}
		lines = append(lines, labelStyle.Render(f.name)+valueStyle.Render(strconv.Itoa(f.v)))
	}
	if s.Done() && s.Result >= 0 {
		lines = append(lines, labelStyle.Render("result")+valueStyle.Render(strconv.Itoa(s.Result)))
	}
	return strings.Join(lines, "\n")
}
