package main

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/ustr/blob"
	"github.com/arloliu/ustr/format"
	"github.com/arloliu/ustr/sequence"
)

const (
	success = 0
	failure = 1
)

const (
	modeInspect  = "inspect"
	modePack     = "pack"
	modeUnpack   = "unpack"
	modeValidate = "validate"
)

const (
	blobExt = ".u8b"
	textExt = ".txt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {

	// Parse the command line arguments.
	var (
		flagBigEndian   bool
		flagCompression string
		flagJobs        int
		flagLevel       string
		flagMode        string
		flagOut         string
		flagPolicy      string
		flagTerminator  bool
	)

	flags := pflag.NewFlagSet("ustr", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&flagBigEndian, "big-endian", false, "write blob headers in big-endian byte order")
	flags.StringVarP(&flagCompression, "compression", "c", "none", "payload compression for packing (\"none\", \"zstd\", \"s2\" or \"lz4\")")
	flags.IntVarP(&flagJobs, "jobs", "j", 4, "maximum number of files processed concurrently")
	flags.StringVarP(&flagLevel, "log", "l", "info", "log output level")
	flags.StringVarP(&flagMode, "mode", "m", modeInspect, "operation mode (\"inspect\", \"pack\", \"unpack\" or \"validate\")")
	flags.StringVarP(&flagOut, "out", "o", "", "output directory, \"-\" writes unpacked text to stdout (default: next to the input)")
	flags.StringVarP(&flagPolicy, "policy", "p", "stop", "invalid byte policy (\"stop\", \"skip\", \"replace\" or \"escape\")")
	flags.BoolVar(&flagTerminator, "terminator", false, "append a NUL terminator to packed payloads")

	err := flags.Parse(args)
	if err != nil {
		return failure
	}

	// Initialize the logger.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Check the configuration.
	files := flags.Args()
	if len(files) == 0 {
		log.Error().Msg("no input files specified")
		return failure
	}
	if flagJobs < 1 {
		log.Error().Int("jobs", flagJobs).Msg("number of jobs must be positive")
		return failure
	}

	policy, err := format.ParseInvalidPolicy(flagPolicy)
	if err != nil {
		log.Error().Str("policy", flagPolicy).Err(err).Msg("invalid byte policy is not supported")
		return failure
	}

	proc := processor{
		log:      log,
		out:      flagOut,
		stdout:   &lockedWriter{w: stdout},
		decoding: []sequence.DecodeOption{sequence.WithInvalidPolicy(policy)},
	}

	switch flagMode {
	case modeInspect:
		proc.process = proc.inspect
	case modeValidate:
		proc.process = proc.validate
	case modeUnpack:
		proc.process = proc.unpack
	case modePack:
		compression, err := format.ParseCompressionType(flagCompression)
		if err != nil {
			log.Error().Str("compression", flagCompression).Err(err).Msg("compression is not supported")
			return failure
		}

		opts := []blob.EncoderOption{
			blob.WithCompression(compression),
			blob.WithTerminator(flagTerminator),
		}
		if flagBigEndian {
			opts = append(opts, blob.WithBigEndian())
		}
		proc.encoder, err = blob.NewEncoder(opts...)
		if err != nil {
			log.Error().Err(err).Msg("could not create blob encoder")
			return failure
		}
		proc.process = proc.pack
	default:
		log.Error().Str("mode", flagMode).Msg("invalid operation mode specified")
		return failure
	}

	// Process every file; a failing file does not stop the others.
	var group errgroup.Group
	group.SetLimit(flagJobs)
	for _, file := range files {
		group.Go(func() error {
			err := proc.process(file)
			if err != nil {
				log.Error().Str("file", file).Str("mode", flagMode).Err(err).Msg("could not process file")
			}

			return err
		})
	}

	err = group.Wait()
	if err != nil {
		return failure
	}

	log.Info().Int("files", len(files)).Str("mode", flagMode).Msg("processing complete")

	return success
}

// lockedWriter serializes writes of concurrently processed files.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(p)
}
