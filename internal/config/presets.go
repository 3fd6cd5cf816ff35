package config

import "sort"

// Presets are keyed by algorithm category, then preset name.
var Presets = map[string]map[string]*Config{
	"sorting": {
		"classic": {
			Algorithm: "bubble", Values: []int{5, 3, 8, 4, 2}, DelayMs: DefaultDelayMs,
		},
		"radix": {
			Algorithm: "radix", Values: []int{170, 45, 75, 90, 802, 24, 2, 66}, DelayMs: DefaultDelayMs,
		},
		"reversed": {
			Algorithm: "insertion", Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, DelayMs: 300,
		},
		"sorted": {
			Algorithm: "bubble", Values: []int{1, 2, 3, 4, 5, 6}, DelayMs: DefaultDelayMs,
		},
		"duplicates": {
			Algorithm: "quick", Values: []int{4, 1, 4, 2, 1, 4, 3}, DelayMs: DefaultDelayMs,
		},
	},
	"search": {
		"hit": {
			Algorithm: "binary", Values: []int{11, 23, 35, 47, 59, 61, 73, 85, 97}, Target: 61, DelayMs: 800,
		},
		"miss": {
			Algorithm: "binary", Values: []int{11, 23, 35, 47, 59, 61, 73, 85, 97}, Target: 50, DelayMs: 800,
		},
		"linear": {
			Algorithm: "linear", Values: []int{42, 17, 88, 23, 64, 5}, Target: 64, DelayMs: DefaultDelayMs,
		},
	},
	"graph": {
		"diamond": {
			Algorithm: "bfs", Nodes: 5, Edges: "0-1,0-2,1-3,2-3,3-4", DelayMs: 700,
		},
		"path": {
			Algorithm: "shortest-path", Nodes: 6, Edges: "0-1,1-2,2-5,0-3,3-4,4-5", End: endAt(5), DelayMs: 700,
		},
		"disconnected": {
			Algorithm: "shortest-path", Nodes: 5, Edges: "0-1,1-2,3-4", End: endAt(4), DelayMs: 700,
		},
	},
	"tree": {
		"balanced": {
			Algorithm: "bst-search", Values: []int{50, 30, 70, 20, 40, 60, 80}, Target: 60, DelayMs: 700,
		},
		"successor": {
			Algorithm: "bst-delete", Values: []int{50, 30, 70, 60, 80, 65}, Target: 50, DelayMs: 700,
		},
	},
	"loops": {
		"table": {
			Algorithm: "nested", Limit: 3, Inner: 4, DelayMs: 400,
		},
		"pyramid": {
			Algorithm: "pattern", Pattern: "triangle", Limit: 5, DelayMs: 300,
		},
	},
}

func endAt(n int) *int { return &n }

func GetPreset(category, name string) *Config {
	if presets, ok := Presets[category]; ok {
		if cfg, ok := presets[name]; ok {
			c := *cfg
			if c.Capacity == 0 {
				c.Capacity = DefaultCapacity
			}
			return &c
		}
	}
	return nil
}

func ListPresets(category string) []string {
	presets, ok := Presets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
