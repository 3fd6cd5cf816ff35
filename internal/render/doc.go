// Package render converts tree and graph steps to Graphviz DOT and renders
// them to SVG.
//
// Highlights follow the step's marks: the current node is yellow, found and
// path nodes green, visited nodes blue and queued nodes grey. The DOT text is
// deterministic so it can be diffed and tested without Graphviz.
package render
