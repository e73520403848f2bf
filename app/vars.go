package app

import (
	"github.com/rotmanmi/segmentation.evaluation/nlp/format/dataset"
	"github.com/rotmanmi/segmentation.evaluation/nlp/format/morpheme"
	"github.com/rotmanmi/segmentation.evaluation/nlp/format/segmentation"
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"
	"github.com/rotmanmi/segmentation.evaluation/util/conf"

	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const (
	INPUT_MORPH = "morph"
	INPUT_SEG   = "seg"
)

var (
	allOut bool = true

	// output destination of the commands
	Out io.Writer = os.Stdout

	// file names
	input    string
	confFile string
	logFile  string

	// processing options
	delimiter      string
	referenceCoder bool
	outFormat      string
	inFormat       string
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

// setFlags returns the names of the flags given on the command line
func setFlags(fs *flag.FlagSet) map[string]bool {
	retval := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		retval[f.Name] = true
	})
	return retval
}

// ResolveConf reads the -conf file, if any, and overrides its values with
// the flags given explicitly on the command line
func ResolveConf(cmd *commander.Command) (*conf.Conf, error) {
	c := &conf.Conf{
		Delimiter: delimiter,
		Reference: referenceCoder,
		Format:    outFormat,
		Log:       logFile,
	}
	if confFile == "" {
		return c, nil
	}
	fromFile, err := conf.ReadFile(confFile)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", confFile, err)
	}
	given := setFlags(&cmd.Flag)
	if given["d"] {
		fromFile.Delimiter = c.Delimiter
	}
	if given["r"] {
		fromFile.Reference = c.Reference
	}
	if given["format"] || fromFile.Format == "" {
		fromFile.Format = c.Format
	}
	if given["log"] {
		fromFile.Log = c.Log
	}
	return fromFile, nil
}

// configureRun checks required flags, resolves the configuration and starts
// logging; the returned func releases the log file
func configureRun(cmd *commander.Command, required []string) (*conf.Conf, func(), error) {
	if err := VerifyFlags(cmd, required); err != nil {
		return nil, nil, err
	}
	c, err := ResolveConf(cmd)
	if err != nil {
		return nil, nil, err
	}
	closer := SetupLogging(c.Log)
	return c, func() {
		log.SetOutput(os.Stderr)
		closer.Close()
	}, nil
}

// LoadDataset reads filename as a morphological segmentation file, a
// segmentation output file or a dataset previously written by the morph
// command
func LoadDataset(c *conf.Conf, filename, format string) (*nlp.Dataset, error) {
	if format == INPUT_SEG {
		return segmentation.ReadFile(filename, c.Reference)
	}
	if format == "" || format == INPUT_MORPH {
		delim, err := c.ParsedDelimiter()
		if err != nil {
			return nil, err
		}
		return morpheme.ReadFile(filename, c.Reference, delim)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	defer file.Close()
	ds, err := dataset.Read(file, format)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	return ds, nil
}
