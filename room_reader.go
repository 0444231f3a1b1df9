// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/roomtree/avltree"
)

var errMalformedRoom = errors.New("malformed room record")

// readRoomFile reads a room data file. Files ending in .gz are
// decompressed on the fly.
func readRoomFile(path string, showProgress bool) ([]avltree.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("room data file %s not found. Pass a file name or set data.file in ~/%s", path, configFileName)
		}
		return nil, err
	}
	defer file.Close()

	var src io.Reader = file

	var bar *progressbar.ProgressBar
	if showProgress {
		size := int64(-1)
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🏫 Loading rooms..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		src = io.TeeReader(file, bar)
	}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed room data %s: %w", path, err)
		}
		defer zr.Close()
		src = zr
	}

	rooms, err := readRooms(src)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rooms, nil
}

// readRooms parses room data. The first line is a header and is
// ignored; every other line is
//
//	roomNumber,"building / room",class setup,capacity
func readRooms(r io.Reader) ([]avltree.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rooms []avltree.Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		room, err := parseRoom(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func parseRoom(fields []string) (avltree.Record, error) {
	if len(fields) != 4 {
		return avltree.Record{}, fmt.Errorf("%w: expected 4 fields, got %d", errMalformedRoom, len(fields))
	}

	room := avltree.Record{
		Key:        strings.TrimSpace(fields[0]),
		Location:   strings.TrimSpace(fields[1]),
		Descriptor: strings.TrimSpace(fields[2]),
	}

	if room.Key == "" {
		return avltree.Record{}, fmt.Errorf("%w: empty room number", errMalformedRoom)
	}
	if err := checkLength("room number", room.Key, avltree.MaxKeyLen); err != nil {
		return avltree.Record{}, err
	}
	if err := checkLength("building/room", room.Location, avltree.MaxLocationLen); err != nil {
		return avltree.Record{}, err
	}
	if err := checkLength("class setup", room.Descriptor, avltree.MaxDescriptorLen); err != nil {
		return avltree.Record{}, err
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return avltree.Record{}, fmt.Errorf("%w: capacity %q is not a number", errMalformedRoom, fields[3])
	}
	if capacity < 0 {
		return avltree.Record{}, fmt.Errorf("%w: negative capacity %d", errMalformedRoom, capacity)
	}
	room.Capacity = capacity

	return room, nil
}

func checkLength(name string, value string, limit int) error {
	if len(value) > limit {
		return fmt.Errorf("%w: %s %q is longer than %d characters", errMalformedRoom, name, value, limit)
	}
	return nil
}
