package app

import (
	"github.com/rotmanmi/segmentation.evaluation/nlp/format/dataset"
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"

	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// CoderSummary aggregates the codings of one coder over a dataset
type CoderSummary struct {
	Coder     string
	Items     int
	Morphemes int
	Mass      int
}

func Summarize(ds *nlp.Dataset) []CoderSummary {
	coders := ds.Coders()
	index := make(map[string]int, len(coders))
	retval := make([]CoderSummary, len(coders))
	for i, coder := range coders {
		index[coder] = i
		retval[i].Coder = coder
	}
	for _, codings := range ds.Items {
		for coder, masses := range codings {
			s := &retval[index[coder]]
			s.Items++
			s.Morphemes += len(masses)
			s.Mass += masses.Sum()
		}
	}
	return retval
}

func WriteSummary(writer io.Writer, ds *nlp.Dataset) error {
	fmt.Fprintf(writer, "Items:\t%d\n", ds.Len())
	fmt.Fprintf(writer, "Reference coder:\t%v\n", ds.Properties.HasReferenceCoder)
	fmt.Fprintln(writer)
	table := tabwriter.NewWriter(writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(table, "CODER\tITEMS\tMORPHEMES\tMASS")
	for _, s := range Summarize(ds) {
		fmt.Fprintf(table, "%s\t%d\t%d\t%d\n", s.Coder, s.Items, s.Morphemes, s.Mass)
	}
	return table.Flush()
}

func Summary(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"f"}

	c, done, err := configureRun(cmd, REQUIRED_FLAGS)
	if err != nil {
		return err
	}
	defer done()

	if allOut {
		log.Println("Configuration")
		log.Printf("Input format:\t\t%s", inFormat)
		log.Printf("Delimiter:\t\t%q", c.Delimiter)
		log.Printf("Reference coder:\t%v", c.Reference)
		log.Println()
		log.Printf("Input file:\t\t%s", input)
	}
	if !VerifyExists(input) {
		return fmt.Errorf("input file %s not accessible", input)
	}
	ds, err := LoadDataset(c, input, inFormat)
	if err != nil {
		return err
	}
	return WriteSummary(Out, ds)
}

func SummaryCmd() *commander.Command {
	inputs := append([]string{INPUT_MORPH, INPUT_SEG}, dataset.FORMATS...)
	cmd := &commander.Command{
		Run:       Summary,
		UsageLine: "summary <file options> [arguments]",
		Short:     "prints item and coder counts of a segmentation dataset",
		Long: `
prints item and coder counts of a segmentation dataset

	$ ./segeval summary -f <file> [-i morph|seg|json|yaml] [-r] [-d <delimiter>] [options]

`,
		Flag: *flag.NewFlagSet("summary", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "f", "", "Input file")
	cmd.Flag.StringVar(&inFormat, "i", INPUT_MORPH, "Input format: ["+strings.Join(inputs, ", ")+"]")
	cmd.Flag.BoolVar(&referenceCoder, "r", false, "Attribute segmentations to the reference coder (morph input)")
	cmd.Flag.StringVar(&delimiter, "d", "tab", "Field delimiter of morph input")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration file")
	cmd.Flag.StringVar(&logFile, "log", "", "Also write log output to this (rotated) file")
	return cmd
}
