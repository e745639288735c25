// tview is a simple CLI tool for browsing the code points of a text file.
//
// Usage:
//
//	tview <filename>             # interactive mode
//	tview -l <filename>          # list mode (print all)
//	tview -l -n 20 <filename>    # list first 20 code points
//	tview -l -r <filename>       # list from the end
//	tview -e latin1 <filename>   # force an encoding
//
// Without -e the encoding is detected from a byte order mark or an HTML
// meta declaration, falling back to windows-1252.
//
// Interactive mode:
//
//	j/↓    scroll down
//	k/↑    scroll up
//	g      jump to first
//	G      jump to last
//	/      jump to unit offset
//	q/Esc  quit
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
	"github.com/dacapoday/itext/view"
)

const (
	nameASCII   = "ascii"
	nameUTF32LE = "utf-32le"
	nameUTF32BE = "utf-32be"
)

type config struct {
	filename string
	label    string
	list     bool
	count    int
	reverse  bool
	log      *zap.Logger
}

func main() {
	encFlag := flag.String("e", "", "encoding label (default: detect)")
	listFlag := flag.Bool("l", false, "list mode (non-interactive)")
	countFlag := flag.Int("n", 0, "number of code points (0 = all)")
	reverseFlag := flag.Bool("r", false, "list from the end")
	verboseFlag := flag.Bool("v", false, "log skipped malformed input")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tview [-e encoding] [-l] [-n count] [-r] [-v] <filename>")
		os.Exit(1)
	}

	log, err := newLogger(*verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config{
		filename: flag.Arg(0),
		label:    *encFlag,
		list:     *listFlag,
		count:    *countFlag,
		reverse:  *reverseFlag,
		log:      log,
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes warnings to stderr, or everything down to debug when
// verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		conf = zap.NewDevelopmentConfig()
		conf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	conf.OutputPaths = []string{"stderr"}
	return conf.Build()
}

func run(cfg config) error {
	f, err := os.Open(cfg.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	name, err := resolve(r, cfg)
	if err != nil {
		return err
	}
	cfg.log.Debug("opened",
		zap.String("file", cfg.filename),
		zap.String("encoding", name),
	)

	opt := view.WithLogger(cfg.log)
	switch name {
	case encoding.NameUTF16LE, encoding.NameUTF16BE:
		units, err := readUnits[uint16](r, name == encoding.NameUTF16LE, cfg.log)
		if err != nil {
			return err
		}
		return exec(newUnitsSource(name, units, view.New(encoding.UTF16{}, units, encoding.Stateless{}, opt)), cfg)
	case nameUTF32LE, nameUTF32BE:
		units, err := readUnits[uint32](r, name == nameUTF32LE, cfg.log)
		if err != nil {
			return err
		}
		return exec(newUnitsSource(name, units, view.New(encoding.UTF32{}, units, encoding.Stateless{}, opt)), cfg)
	}

	var buf seq.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}
	segs := buf.Segments()
	switch name {
	case encoding.NameUTF8:
		return exec(newBufferSource(name, segs, view.New(encoding.UTF8{}, segs, encoding.Stateless{}, opt)), cfg)
	case nameASCII:
		return exec(newBufferSource(name, segs, view.New(encoding.ASCII{}, segs, encoding.Stateless{}, opt)), cfg)
	case encoding.NameISO2022JP:
		return exec(newBufferSource(name, segs, view.New(encoding.ISO2022JP{}, segs, encoding.ISO2022JPState{}, opt)), cfg)
	}
	cm, err := encoding.LookupCharmap(name)
	if err != nil {
		return err
	}
	return exec(newBufferSource(name, segs, view.New(cm, segs, encoding.Stateless{}, opt)), cfg)
}

// resolve returns the canonical encoding name. A detected byte order mark
// is consumed from r.
func resolve(r *bufio.Reader, cfg config) (string, error) {
	switch label := strings.ToLower(strings.TrimSpace(cfg.label)); label {
	case "":
	case nameASCII, nameUTF32LE, nameUTF32BE:
		return label, nil
	default:
		return encoding.Lookup(label)
	}
	prefix, err := r.Peek(1024)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", err
	}
	name, bom, certain := encoding.Detect(prefix)
	if !certain {
		cfg.log.Info("encoding guessed", zap.String("encoding", name))
	}
	if _, err := r.Discard(bom); err != nil {
		return "", err
	}
	return name, nil
}

func readUnits[U itext.Unit](r io.Reader, little bool, log *zap.Logger) (seq.Units[U], error) {
	var order binary.ByteOrder = binary.BigEndian
	if little {
		order = binary.LittleEndian
	}
	units, err := seq.Read[U](r, order)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		log.Warn("dropped trailing partial code unit")
		err = nil
	}
	return units, err
}
