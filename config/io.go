// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// Encoder is an interface for standard encoder types
type Encoder interface {
	// Encode encodes to io.Writer specified at creation
	Encode(v any) error
}

// decoderFor returns the decoder for the given filename's extension,
// or an error if the format is not supported.
func decoderFor(filename string, r io.Reader) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return toml.NewDecoder(r), nil
	case ".yaml", ".yml":
		return yaml.NewDecoder(r), nil
	}
	return nil, fmt.Errorf("unsupported config file format: %q", filepath.Ext(filename))
}

// encoderFor returns the encoder for the given filename's extension,
// or an error if the format is not supported.
func encoderFor(filename string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return toml.NewEncoder(w), nil
	case ".yaml", ".yml":
		return yaml.NewEncoder(w), nil
	}
	return nil, fmt.Errorf("unsupported config file format: %q", filepath.Ext(filename))
}

// Open reads the object from the given filename, with the format
// determined by the filename extension (.toml, .yaml, or .yml).
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	defer fp.Close()
	if err != nil {
		return err
	}
	d, err := decoderFor(filename, bufio.NewReader(fp))
	if err != nil {
		return err
	}
	return d.Decode(v)
}

// Save writes the object to the given filename, with the format
// determined by the filename extension (.toml, .yaml, or .yml).
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	defer fp.Close()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	e, err := encoderFor(filename, bw)
	if err != nil {
		return err
	}
	if err := e.Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}
