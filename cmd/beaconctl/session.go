// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beaconpath/assets"
	"github.com/katalvlaran/beaconpath/config"
	"github.com/katalvlaran/beaconpath/core"
	"github.com/katalvlaran/beaconpath/docreader"
	"github.com/katalvlaran/beaconpath/network"
)

// docInfo describes one parsed document.
type docInfo struct {
	path        string
	fingerprint string
	size        int64
}

// session is everything a subcommand needs after loading.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	net    *network.Network
	docs   []docInfo
}

// resolveConfig merges the config file with explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	pf := cmd.Flags()
	if pf.Changed("places") {
		cfg.Places = flags.places
	}
	if pf.Changed("beacons") {
		cfg.Beacons = flags.beacons
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("mirror-dedup") {
		cfg.MirrorDedup = flags.mirrorDedup
	}

	return cfg, cfg.Validate()
}

// loadSession parses the configured documents and assembles the network.
func loadSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	level, _ := cfg.SlogLevel() // validated above
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	reader := docreader.New(docreader.WithLogger(logger))

	s := &session{cfg: cfg, logger: logger}

	doc, err := assets.Open(cfg.Places)
	if err != nil {
		return nil, err
	}
	places, err := reader.ParsePlaces(doc)
	if err != nil {
		return nil, err
	}
	s.record(doc)

	var beacons []*core.Beacon
	if len(cfg.Beacons) > 0 {
		paths, err := assets.Resolve(cfg.Beacons)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			doc, err := assets.Open(p)
			if err != nil {
				return nil, err
			}
			parsed, err := reader.ParseBeacons(doc)
			if err != nil {
				return nil, err
			}
			s.record(doc)
			beacons = append(beacons, parsed...)
		}
	}

	s.net, err = network.Build(places, beacons,
		network.WithMirrorDedup(cfg.MirrorDedup),
		network.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) record(doc *assets.Document) {
	info := docInfo{path: doc.Path(), fingerprint: doc.Fingerprint(), size: doc.BytesRead()}
	s.docs = append(s.docs, info)
	s.logger.Info("document loaded",
		"path", info.path,
		"compressed", doc.Compressed(),
		"bytes", info.size,
		"blake3", info.fingerprint,
	)
}
