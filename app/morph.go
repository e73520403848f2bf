package app

import (
	"github.com/rotmanmi/segmentation.evaluation/nlp/format/dataset"
	"github.com/rotmanmi/segmentation.evaluation/util"
	"github.com/rotmanmi/segmentation.evaluation/util/conf"

	"fmt"
	"log"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func MorphConfigOut(c *conf.Conf) error {
	log.Println("Configuration")
	log.Printf("Delimiter:\t\t%q", c.Delimiter)
	log.Printf("Reference coder:\t%v", c.Reference)
	log.Printf("Output format:\t\t%s", c.Format)
	if c.Log != "" {
		log.Printf("Log file:\t\t%s", c.Log)
	}

	log.Println()
	log.Println("Data")
	log.Printf("Morpheme file:\t\t%s", input)
	if !VerifyExists(input) {
		return fmt.Errorf("input file %s not accessible", input)
	}
	digest, err := util.DigestFile(input)
	if err != nil {
		return err
	}
	log.Printf("Input:\t\t\t%v", digest)
	return nil
}

func Morph(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"f"}

	c, done, err := configureRun(cmd, REQUIRED_FLAGS)
	if err != nil {
		return err
	}
	defer done()

	if err := MorphConfigOut(c); err != nil {
		return err
	}

	if allOut {
		log.Println()
		log.Println("Reading morphological segmentations from", input)
	}
	ds, err := LoadDataset(c, input, INPUT_MORPH)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", ds.Len(), "items coded by", strings.Join(ds.Coders(), ", "))
		log.Println("Writing", c.Format, "dataset")
	}
	if err := dataset.Write(Out, ds, c.Format); err != nil {
		return err
	}
	log.Println("Done")
	return nil
}

func MorphCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Morph,
		UsageLine: "morph <file options> [arguments]",
		Short:     "converts a morphological segmentation file to segmentation masses",
		Long: `
converts a morphological segmentation file to segmentation masses

Each input line holds a word and a comma separated list of segmentations,
morphemes separated by single spaces:

	cats	ca ts,cat s

The first segmentation is attributed to the coder named after the file (or
"reference" with -r), further ones to the coder name suffixed 2, 3, ...

	$ ./segeval morph -f <morpheme file> [-r] [-d <delimiter>] [-format json|yaml] [options]

`,
		Flag: *flag.NewFlagSet("morph", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "f", "", "Morphological segmentation file")
	cmd.Flag.BoolVar(&referenceCoder, "r", false, "Attribute segmentations to the reference coder")
	cmd.Flag.StringVar(&delimiter, "d", "tab", "Field delimiter: a single character, tab, comma or space")
	cmd.Flag.StringVar(&outFormat, "format", dataset.FORMAT_JSON, "Output format: ["+strings.Join(dataset.FORMATS, ", ")+"]")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration file")
	cmd.Flag.StringVar(&logFile, "log", "", "Also write log output to this (rotated) file")
	return cmd
}
