package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huff"
	"github.com/chronos-tachyon/huff/internal/baseline"
)

var log = logging.MustGetLogger("huff/cmd")

const progName = "huff"
const usageMessageRaw = `
Usage: huff OPTIONS COMMAND ARGS...

Options:
  --debug, -d
	Log each stage to standard error.
  --verbose, -v
	With --debug, also dump the frequency table, tree, and
	code table.

Commands:
  compress IN OUT
	Compress the file IN into the file OUT.
  decompress IN OUT
	Decompress the file IN into the file OUT.
  stats IN
	Compress IN with every available codec ($codecs)
	and report the sizes, checking each round trip.
`

var ourFlags *flag.FlagSet

func codecsReadable() string {
	var names []string
	for _, codec := range baseline.All() {
		names = append(names, codec.Name())
	}
	return strings.Join(names, ", ")
}

func usageMessage() string {
	template := strings.TrimLeft(usageMessageRaw, "\n")
	return strings.NewReplacer("$codecs", codecsReadable()).Replace(template)
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// writeFile runs fn against a freshly created file at path.  If fn fails, the
// file is removed, so that no partial output is left behind.
func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = fn(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(path); removeErr != nil {
			log.Warningf("failed to remove %s: %v", path, removeErr)
		}
		return err
	}
	return nil
}

func compressCommand(p *huff.Processor) func() error {
	inPath := nextArg("IN")
	outPath := nextArg("OUT")
	endOfArgs()

	return func() error {
		in, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer in.Close()

		return writeFile(outPath, func(w io.Writer) error {
			st, err := p.CompressStream(w, in)
			if err != nil {
				return err
			}
			log.Infof("%s: %d bytes -> %d bytes (%d header bits, %d body bits)",
				inPath, st.InputBytes, st.OutputBytes(), st.HeaderBits, st.BodyBits)
			return nil
		})
	}
}

func decompressCommand(p *huff.Processor) func() error {
	inPath := nextArg("IN")
	outPath := nextArg("OUT")
	endOfArgs()

	return func() error {
		in, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer in.Close()

		return writeFile(outPath, func(w io.Writer) error {
			n, err := p.DecompressStream(w, in)
			if err != nil {
				return err
			}
			log.Infof("%s: decompressed %d bytes", inPath, n)
			return nil
		})
	}
}

func statsCommand() func() error {
	inPath := nextArg("IN")
	endOfArgs()

	return func() error {
		data, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}

		fmt.Printf("%-8s %12s %12s %9s %12s %12s\n", "CODEC", "ORIGINAL", "COMPRESSED", "SAVED", "COMPRESS", "DECOMPRESS")
		for _, codec := range baseline.All() {
			res, err := baseline.Measure(codec, data)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %12d %12d %8.2f%% %12v %12v\n",
				res.Codec, res.OriginalSize, res.CompressedSize, res.SpaceSavings(),
				res.CompressTime, res.DecompressTime)
		}
		return nil
	}
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	var verbose bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&verbose, "verbose", false, "")
	ourFlags.BoolVar(&verbose, "v", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	debugLevel := huff.DebugNone
	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
		debugLevel = huff.DebugLow
		if verbose {
			debugLevel = huff.DebugHigh
		}
	}
	p := huff.NewProcessor(huff.WithDebugLevel(debugLevel))

	var requestedCommand func() error
	cmdArg := nextArg("COMMAND")
	switch cmdArg {
	default:
		usageErrorf("bad command \"%s\"", cmdArg)
	case "compress":
		requestedCommand = compressCommand(p)
	case "decompress":
		requestedCommand = decompressCommand(p)
	case "stats":
		requestedCommand = statsCommand()
	}

	if err := requestedCommand(); err != nil {
		exitError(err)
	}
}
