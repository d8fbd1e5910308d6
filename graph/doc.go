// Package graph provides a snapshot of a resolver's namespace tree and
// renders it for humans and tools.
//
// It supports:
//
//   - Visualizing every namespace, leaf and registered version
//   - Explaining which version a versioned lookup selects and why
//   - Summary statistics such as the deepest namespace path
//   - Diffing two trees to spot registrations that break old callers
//
// # Building a Tree
//
// A Tree is built from any Source; *goapiver.Resolver provides one:
//
//	tree, _ := resolver.Tree()
//	fmt.Print(tree.ToText())
//
// # Explaining a Lookup
//
//	explanation, _ := tree.Explain("api.test_v5")
//	fmt.Print(explanation.ToText())
//
// # Comparing Trees
//
//	d := graph.DiffTrees(before, after)
//	fmt.Println(d.Breaking())
//	fmt.Print(graph.TextDiff(before, after))
package graph
