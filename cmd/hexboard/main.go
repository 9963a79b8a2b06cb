// Command hexboard builds a seeded standard board and prints its tiles,
// vertices or edges together with their planar coordinates.
//
//	hexboard -seed 42 -show tiles
//	hexboard -show edges -verbosity 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/resource"
)

func main() {
	var (
		seed = flag.Int64("seed", 0, "assignment seed (0 = default seed)")
		show = flag.String("show", "tiles", "what to print: tiles, vertices or edges")
		verb = flag.String("verbosity", "0", "klog verbosity level")
	)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()
	fset.Set("v", *verb)
	defer klog.Flush()

	klog.V(2).Infof("building board seed=%d", *seed)
	b, err := board.New(board.WithSeed(*seed))
	if err != nil {
		klog.Errorf("build failed: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.V(2).Infof("board ready: %d tiles, %d vertices, %d edges, desert=%d",
		len(b.Tiles()), len(b.Vertices()), len(b.Edges()), b.Desert().ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	switch strings.ToLower(*show) {
	case "tiles":
		printTiles(w, b)
	case "vertices":
		printVertices(w, b)
	case "edges":
		printEdges(w, b)
	default:
		klog.Errorf("unknown -show value %q", *show)
		klog.Flush()
		os.Exit(2)
	}
	if err := w.Flush(); err != nil {
		klog.Errorf("write: %v", err)
	}
}

func printTiles(w *tabwriter.Writer, b *board.Board) {
	fmt.Fprintln(w, "ID\tRESOURCE\tNUMBER\tX\tY\tCOLOR\tVERTICES")
	for _, t := range b.Tiles() {
		p, _ := b.TileCoords(t.ID)
		number := "-"
		if resource.ConsumesNumber(t.Resource) {
			number = fmt.Sprint(t.Number)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%.3f\t%s\t%v\n",
			t.ID, t.Resource, number, p.X, p.Y, t.Resource.Color(), t.Vertices)
	}
}

func printVertices(w *tabwriter.Writer, b *board.Board) {
	fmt.Fprintln(w, "ID\tX\tY\tTILES\tNEIGHBOURS")
	for _, v := range b.Vertices() {
		p, _ := b.VertexCoords(v.ID)
		nbrs, _ := b.VertexNeighbors(v.ID)
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%v\t%v\n", v.ID, p.X, p.Y, v.Tiles, nbrs)
	}
}

func printEdges(w *tabwriter.Writer, b *board.Board) {
	fmt.Fprintln(w, "ID\tA\tB\tTILES\tFROM\tTO")
	for _, e := range b.Edges() {
		from, to, _ := b.EdgeCoords(e.ID)
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t(%.3f, %.3f)\t(%.3f, %.3f)\n",
			e.ID, e.A, e.B, e.Tiles, from.X, from.Y, to.X, to.Y)
	}
}
