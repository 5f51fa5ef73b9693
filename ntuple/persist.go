package ntuple

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Binary weight layout, all little-endian:
//
//	uint32  number of weight tables
//	per table:
//	  uint64   entry count
//	  float64  entries
//
// Serialize followed by Deserialize into a network with the same feature
// groups reproduces Evaluate exactly for every board.

// Serialize writes the network's weight tables to w.
func (n *Network) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.groups))); err != nil {
		return fmt.Errorf("write table count: %w", err)
	}
	for gi := range n.groups {
		table := n.groups[gi].table
		if err := binary.Write(w, binary.LittleEndian, uint64(len(table))); err != nil {
			return fmt.Errorf("write table %d length: %w", gi, err)
		}
		if err := binary.Write(w, binary.LittleEndian, table); err != nil {
			return fmt.Errorf("write table %d entries: %w", gi, err)
		}
	}
	return nil
}

// Deserialize replaces the network's weight tables with the ones read from
// r. The stream must hold exactly one table per feature group, each with the
// group's table size.
func (n *Network) Deserialize(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read table count: %w", err)
	}
	if int(count) != len(n.groups) {
		return fmt.Errorf("weight stream holds %d tables, network has %d groups", count, len(n.groups))
	}
	for gi := range n.groups {
		table := n.groups[gi].table
		var length uint64
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return fmt.Errorf("read table %d length: %w", gi, err)
		}
		if length != uint64(len(table)) {
			return fmt.Errorf("table %d holds %d entries, group needs %d", gi, length, len(table))
		}
		if err := binary.Read(r, binary.LittleEndian, table); err != nil {
			return fmt.Errorf("read table %d entries: %w", gi, err)
		}
	}
	return nil
}

// SaveFile serializes the weight tables to path, truncating any existing
// file.
func (n *Network) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open weight file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := n.Serialize(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush weight file: %w", err)
	}
	return nil
}

// LoadFile deserializes the weight tables from path.
func (n *Network) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open weight file: %w", err)
	}
	defer f.Close()

	return n.Deserialize(bufio.NewReader(f))
}
