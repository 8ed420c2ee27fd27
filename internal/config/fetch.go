// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

// ErrGetConfigFile is returned when a config source cannot be retrieved.
var ErrGetConfigFile = errors.New("failed to get config file")

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// Fetch retrieves the config file at src and parses it.
// src is anything go-getter understands: a local path, an https URL,
// or a forced getter such as git::https://host/repo//dir/.binpath.yaml?ref=v1.
func Fetch(ctx context.Context, src string) (*Config, error) {
	name, data, err := getSource(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(name, data)
}

// getSource downloads the directory containing src into a temporary
// directory, reads the file and removes the directory again.
func getSource(ctx context.Context, src string) (string, []byte, error) {
	if src == "" {
		return "", nil, ErrGetConfigFile
	}

	tmpDir, err := os.MkdirTemp("", "binpath-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter fetches directories, not single files, for remote sources.
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return "", nil, errors.Join(ErrGetConfigFile, err)
		}

		var dirURL string

		dirURL, fileName = splitGetterURL(src)
		if dirURL == "" || fileName == "" {
			return "", nil, fmt.Errorf("%w: invalid URL format: %s", ErrGetConfigFile, src)
		}

		req.Src = dirURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(src)
		fileName = filepath.Base(src)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	return fileName, data, nil
}

// splitGetterURL splits a go-getter URL whose last "//" segment names a file
// into the URL of the containing directory and the file name.
// A ?ref= query is carried over to the directory URL.
func splitGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if path, query, ok := strings.Cut(last, getterRefSeparator); ok {
		ref = query
		last = path
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	if dir := filepath.Dir(last); dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, getterPathSeparator)

	if ref != "" {
		dirURL += getterRefSeparator + ref
	}

	return dirURL, fileName
}
