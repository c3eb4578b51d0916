package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/feagen/core"
	"github.com/npillmayer/feagen/core/font"
	"github.com/npillmayer/feagen/fea/assemble"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'feagen.fea'
func tracer() tracing.Trace {
	return tracing.Select("feagen.fea")
}

// fontDesc is the YAML description of a font's kerning-relevant data:
// named glyph groups, per-pair kerning, and hand-written feature source
// (inline or as a path to a .fea file).
type fontDesc struct {
	Groups      map[string][]string `yaml:"groups"`
	Kerning     []kernEntry         `yaml:"kerning"`
	Features    string              `yaml:"features"`
	FeatureFile string              `yaml:"featureFile"`
}

type kernEntry struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Value int    `yaml:"value"`
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.feagen.fea": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "Font description to load (YAML)")
	outfile := flag.String("out", "-", "Output file, '-' for stdout")
	overwrite := flag.Bool("overwrite", false, "Replace a hand-written kern feature")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	if *fontfile == "" {
		pterm.Error.Println("no font description given, use -font")
		os.Exit(2)
	}
	f, featdir, err := loadFontDesc(*fontfile)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	//
	asm := assemble.Assembler{Font: f, Overwrite: *overwrite}
	featxt, err := asm.Features("\n")
	if err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	if featxt == "" {
		pterm.Info.Println("no kerning data, nothing to generate")
		return
	}
	featxt = assemble.AbsoluteIncludes(featxt, featdir)
	if err := writeOutput(*outfile, featxt); err != nil {
		core.UserError(err)
		os.Exit(5)
	}
	pterm.Info.Printfln("kern feature written to %s", *outfile)
}

func traceLevel(name string) tracing.TraceLevel {
	switch name {
	case "Debug":
		return tracing.LevelDebug
	case "Error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadFontDesc reads a YAML font description and builds the font model
// from it. It returns the directory against which relative include paths
// are resolved: the feature file's directory if one is referenced, the
// description's directory otherwise.
func loadFontDesc(path string) (*font.Font, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", core.WrapError(err, core.EMISSING, "cannot read font description %s", path)
	}
	var desc fontDesc
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, "", core.WrapError(err, core.EINVALID, "malformed font description %s", path)
	}
	featxt := desc.Features
	featdir := filepath.Dir(path)
	if desc.FeatureFile != "" {
		feapath := desc.FeatureFile
		if !filepath.IsAbs(feapath) {
			feapath = filepath.Join(featdir, feapath)
		}
		feadata, err := os.ReadFile(feapath)
		if err != nil {
			return nil, "", core.WrapError(err, core.EMISSING, "cannot read feature file %s", feapath)
		}
		featxt = string(feadata)
		featdir = filepath.Dir(feapath)
	}
	kerning := make(map[font.Pair]int, len(desc.Kerning))
	for _, entry := range desc.Kerning {
		kerning[font.Pair{Left: entry.Left, Right: entry.Right}] = entry.Value
	}
	return font.NewFont(kerning, desc.Groups, featxt), featdir, nil
}

func writeOutput(path, featxt string) error {
	if path == "-" {
		fmt.Println(featxt)
		return nil
	}
	if err := os.WriteFile(path, []byte(featxt+"\n"), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %s", path)
	}
	return nil
}
