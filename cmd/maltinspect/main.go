// Command maltinspect is a small example program demonstrating how to use
// package collection and package matlab together: add a root to the
// search path, look up an identifier, and print what was found.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"

	"github.com/go-malt/malt/collection"
	"github.com/go-malt/malt/config"
	"github.com/go-malt/malt/matlab"
)

func main() {
	root := flag.String("root", ".", "root directory to add to the search path")
	identifier := flag.String("id", "", "dotted identifier to look up, e.g. mypkg.MyClass")
	configPath := flag.String("config", "", "optional YAML config file")
	export := flag.Bool("export", false, "print the full member tree instead of one level")
	flag.Parse()

	if *identifier == "" {
		fmt.Fprintln(os.Stderr, "usage: maltinspect -root <dir> -id <identifier>")
		os.Exit(2)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx := context.Background()
	fs := afs.New()

	pc, err := collection.New(ctx, fs, cfg.WorkingDirectory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating collection: %v\n", err)
		os.Exit(1)
	}
	if err := pc.AddPath(*root, true, cfg.Recursive); err != nil {
		fmt.Fprintf(os.Stderr, "addpath %s: %v\n", *root, err)
		os.Exit(1)
	}

	member, err := pc.GetMember(*identifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *identifier, err)
		os.Exit(1)
	}

	if *export {
		out, err := collection.NewExporter().Emit(*identifier, member)
		if err != nil {
			fmt.Fprintf(os.Stderr, "export %s: %v\n", *identifier, err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	printMember(*identifier, member, 0)
}

func printMember(name string, m matlab.Member, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s (%s)\n", indent, name, kindName(m.Kind()))
	if doc := m.Docstring(); doc != "" {
		fmt.Printf("%s  %s\n", indent, firstLine(doc))
	}
	if depth >= 1 {
		return
	}
	for _, child := range m.AllMembers() {
		printMember(child.Name(), child, depth+1)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func kindName(k matlab.Kind) string {
	switch k {
	case matlab.KindFolder:
		return "folder"
	case matlab.KindNamespace:
		return "namespace"
	case matlab.KindClass:
		return "class"
	case matlab.KindFunction:
		return "function"
	case matlab.KindScript:
		return "script"
	case matlab.KindProperty:
		return "property"
	case matlab.KindEnumeration:
		return "enumeration"
	case matlab.KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}
