package orderio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/flowdissect/nesdis/fcerr"
	"github.com/flowdissect/nesdis/order"
)

// Save writes perm's text representation to w: N lines, line i holding
// pos[i], the elimination position of original node i (perm's inverse).
func Save(w io.Writer, perm order.Permutation) error {
	pos := perm.Inverse()
	bw := bufio.NewWriter(w)
	for _, p := range pos {
		if _, err := fmt.Fprintln(bw, p); err != nil {
			return fmt.Errorf("orderio: write: %w", err)
		}
	}
	return bw.Flush()
}

// Load reads a text permutation file (one pos[i] per line) and reconstructs
// the elimination order perm with perm[pos[i]] == i.
func Load(r io.Reader) (order.Permutation, error) {
	var pos []int32
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("orderio: parse line %q: %w", line, fcerr.ErrInvalidInput)
		}
		pos = append(pos, int32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("orderio: scan: %w", err)
	}
	return invertPositions(pos)
}

// SaveBinary writes perm's binary representation: a little-endian int32
// node count, followed by that many little-endian int32 pos[i] values.
func SaveBinary(w io.Writer, perm order.Permutation) error {
	pos := perm.Inverse()
	if err := binary.Write(w, binary.LittleEndian, int32(len(pos))); err != nil {
		return fmt.Errorf("orderio: write count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, []int32(pos)); err != nil {
		return fmt.Errorf("orderio: write positions: %w", err)
	}
	return nil
}

// LoadBinary reads a binary permutation file written by SaveBinary.
func LoadBinary(r io.Reader) (order.Permutation, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("orderio: read count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("orderio: negative count %d: %w", n, fcerr.ErrInvalidInput)
	}
	pos := make([]int32, n)
	if n > 0 {
		if err := binary.Read(r, binary.LittleEndian, pos); err != nil {
			return nil, fmt.Errorf("orderio: read positions: %w", err)
		}
	}
	return invertPositions(pos)
}

// invertPositions turns a pos[] array (pos[i] = elimination position of
// node i) back into the elimination order perm with perm[pos[i]] == i,
// validating that pos is itself a bijection on [0, len(pos)).
func invertPositions(pos []int32) (order.Permutation, error) {
	n := len(pos)
	perm := make(order.Permutation, n)
	seen := make([]bool, n)
	for i, p := range pos {
		if p < 0 || int(p) >= n || seen[p] {
			return nil, fmt.Errorf("orderio: position %d out of range or duplicate: %w", p, fcerr.ErrInvalidInput)
		}
		seen[p] = true
		perm[p] = int32(i)
	}
	return perm, nil
}
