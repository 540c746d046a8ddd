// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

// Command substoredump loads a serialized Store from disk and prints
// a human-readable tree for one of its variables, the way a
// compiler author inspects a frozen type-checking cache without
// wiring up the whole inferencer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vela-lang/substore"
)

func main() {
	var (
		path = flag.String("file", "", "path to a file produced by subs.Serialize")
		root = flag.Uint("var", uint(subs.FirstUserSpaceVar), "variable id to render")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "substoredump: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *path == "" {
		logger.Fatal("missing required -file flag")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		logger.Fatal("reading store file", zap.String("path", *path), zap.Error(err))
	}

	st, err := subs.Deserialize(data)
	if err != nil {
		logger.Fatal("decoding store", zap.String("path", *path), zap.Error(err))
	}

	logger.Info("loaded store",
		zap.String("path", *path),
		zap.Int("variables", st.Len()),
	)

	v := subs.Variable(*root)
	if int(v) >= st.Len() {
		logger.Fatal("variable out of range", zap.Uint32("var", uint32(v)), zap.Int("len", st.Len()))
	}

	if err := subs.Fprint(os.Stdout, st, v); err != nil {
		logger.Fatal("rendering variable", zap.Uint32("var", uint32(v)), zap.Error(err))
	}
}
