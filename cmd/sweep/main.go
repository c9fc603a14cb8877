package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweep"
)

type FindOptions struct {
	Input string   `short:"i" desc:"GeoJSON input file"`
	Args  []string `index:"*" name:"files" desc:"GeoJSON input file"`
}

type CheckOptions struct {
	Input string   `short:"i" desc:"GeoJSON input file"`
	Args  []string `index:"*" name:"files" desc:"GeoJSON input file"`
}

var (
	findOptions  FindOptions
	checkOptions CheckOptions
)

func main() {
	root := argp.New("Planar sweep over line work in GeoJSON files")
	root.AddCmd(&findOptions, "find", "Report all crossings between the input geometries")
	root.AddCmd(&checkOptions, "check", "Check that the input geometries have no crossings")

	root.Parse()
	root.PrintHelp()
}

func (opts *FindOptions) Run() error {
	seqs, err := load(opts.Input, opts.Args)
	if err != nil {
		return err
	}

	for _, z := range sweep.NewSweepLine(seqs...).Run() {
		fmt.Printf("edge %d x edge %d at %v\n", z.A, z.B, z.Point)
	}
	return nil
}

func (opts *CheckOptions) Run() error {
	seqs, err := load(opts.Input, opts.Args)
	if err != nil {
		return err
	}

	if zs := sweep.NewSweepLine(seqs...).Run(); 0 < len(zs) {
		return fmt.Errorf("found %d crossings", len(zs))
	}
	fmt.Println("no crossings")
	return nil
}

// load reads GeoJSON features and converts all line work into coordinate
// sequences.
func load(input string, args []string) ([][]sweep.Point, error) {
	if input == "" && 0 < len(args) {
		input = args[0]
	}
	if input == "" {
		return nil, fmt.Errorf("must pass a GeoJSON file")
	}

	b, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, err
	}

	var seqs [][]sweep.Point
	for _, f := range fc.Features {
		seqs = append(seqs, sequences(f.Geometry)...)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("no line work in %s", input)
	}
	return seqs, nil
}

// sequences converts the line work of a geometry into coordinate sequences;
// polygon rings become closed sequences.
func sequences(g orb.Geometry) [][]sweep.Point {
	var seqs [][]sweep.Point
	switch g := g.(type) {
	case orb.LineString:
		seqs = append(seqs, line(g))
	case orb.MultiLineString:
		for _, ls := range g {
			seqs = append(seqs, line(ls))
		}
	case orb.Ring:
		seqs = append(seqs, line(orb.LineString(g)))
	case orb.Polygon:
		for _, r := range g {
			seqs = append(seqs, line(orb.LineString(r)))
		}
	case orb.MultiPolygon:
		for _, p := range g {
			seqs = append(seqs, sequences(orb.Polygon(p))...)
		}
	case orb.Collection:
		for _, sub := range g {
			seqs = append(seqs, sequences(sub)...)
		}
	}
	return seqs
}

func line(ls orb.LineString) []sweep.Point {
	seq := make([]sweep.Point, len(ls))
	for i, p := range ls {
		seq[i] = sweep.Point{X: p[0], Y: p[1]}
	}
	return seq
}
