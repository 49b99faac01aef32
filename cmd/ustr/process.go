package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/arloliu/ustr/blob"
	"github.com/arloliu/ustr/codec"
	"github.com/arloliu/ustr/sequence"
)

// processor holds the configuration shared by all files of one run.
type processor struct {
	log      zerolog.Logger
	out      string
	stdout   *lockedWriter
	decoding []sequence.DecodeOption
	encoder  *blob.Encoder
	process  func(file string) error
}

// inspect logs one line per character of a text file.
func (p *processor) inspect(file string) error {
	s, err := p.decodeFile(file)
	if err != nil {
		return err
	}

	for i, c := range s.All() {
		p.log.Info().
			Str("file", file).
			Int("index", i).
			Str("code_point", fmt.Sprintf("U+%04X", codec.CodePoint(c))).
			Int("width", c.Width()).
			Str("octets", hex.EncodeToString(c.Bytes())).
			Msg("character")
	}

	p.log.Info().
		Str("file", file).
		Int("characters", s.Len()).
		Int("bytes", s.ByteLen()).
		Str("hash", fmt.Sprintf("%016x", s.Hash())).
		Msg("sequence inspected")

	return nil
}

// validate logs every malformed position of a text file.
func (p *processor) validate(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	err = codec.Validate(data)
	if err == nil {
		p.log.Info().Str("file", file).Int("bytes", len(data)).Msg("file is valid UTF-8")
		return nil
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			var derr *codec.DecodeError
			if errors.As(e, &derr) {
				p.log.Warn().Str("file", file).Int("offset", derr.Offset).Str("byte", fmt.Sprintf("0x%02x", derr.Byte)).Err(derr.Err).Msg("malformed position")
			}
		}
	}

	return fmt.Errorf("file is not valid UTF-8: %w", err)
}

// pack frames a text file into a blob written next to it, or into the output directory.
func (p *processor) pack(file string) error {
	s, err := p.decodeFile(file)
	if err != nil {
		return err
	}

	b, err := p.encoder.Encode(s)
	if err != nil {
		return fmt.Errorf("could not encode blob: %w", err)
	}

	target := p.outputPath(file, filepath.Base(file)+blobExt)
	err = os.WriteFile(target, b.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("could not write blob: %w", err)
	}

	p.log.Debug().
		Str("file", file).
		Str("blob", target).
		Int("characters", b.CharCount()).
		Uint32("raw_size", b.Header().RawSize).
		Uint32("payload_size", b.Header().PayloadSize).
		Str("compression", b.Compression().String()).
		Msg("file packed")

	return nil
}

// unpack decodes a blob and writes its text to a file or to stdout.
func (p *processor) unpack(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	s, err := blob.Decode(data, p.decoding...)
	if err != nil {
		return fmt.Errorf("could not decode blob: %w", err)
	}

	compressed := sequence.Compress(s)
	if p.out == "-" {
		_, err = compressed.WriteTo(p.stdout)
		if err != nil {
			return fmt.Errorf("could not write text: %w", err)
		}

		return nil
	}

	target := p.outputPath(file, strings.TrimSuffix(filepath.Base(file), blobExt)+textExt)
	err = os.WriteFile(target, compressed.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("could not write text: %w", err)
	}

	p.log.Debug().Str("file", file).Str("text", target).Int("characters", s.Len()).Msg("file unpacked")

	return nil
}

func (p *processor) decodeFile(file string) (*sequence.Sequence, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	s, err := sequence.Decode(data, p.decoding...)
	if err != nil {
		return nil, fmt.Errorf("could not decode file: %w", err)
	}

	return s, nil
}

func (p *processor) outputPath(file string, name string) string {
	if p.out == "" || p.out == "-" {
		return filepath.Join(filepath.Dir(file), name)
	}

	return filepath.Join(p.out, name)
}
